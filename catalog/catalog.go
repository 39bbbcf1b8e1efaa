// Package catalog holds the static, read-only reference tables the wizard
// selects from. The data is immutable at runtime; all mutable state lives in
// the selection session.
package catalog

// StyleOption is one selectable hairstyle, makeup or scene.
type StyleOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Tag         string `json:"tag,omitempty"`
	SubCategory string `json:"subCategory,omitempty"`
}

// AccessoryCategory is one entry of the fixed accessory category table.
type AccessoryCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// LookbookItem is one inspiration feed entry.
type LookbookItem struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Type   string   `json:"type"` // "merchant" or "blogger"
	Image  string   `json:"image"`
	Author string   `json:"author"`
	Tags   []string `json:"tags"`
}

// FilterAll is the default sub-category facet meaning "no filtering".
const FilterAll = "全部"

var Hairstyles = []StyleOption{
	{ID: "h1", Name: "法式复古卷", Description: "慵懒与优雅的极致碰撞", Image: "https://images.unsplash.com/photo-1595476108010-b4d1f102b1b1?auto=format&fit=crop&w=600&q=80", Tag: "热选", SubCategory: "卷发"},
	{ID: "h2", Name: "摩登齐耳短发", Description: "利落线条勾勒前卫态度", Image: "https://images.unsplash.com/photo-1522337660859-02fbefda4502?auto=format&fit=crop&w=600&q=80", SubCategory: "短发"},
	{ID: "h8", Name: "极简黑长直", Description: "垂坠质感展现东方神韵", Image: "https://images.unsplash.com/photo-1592188657297-c6473609e988?auto=format&fit=crop&w=600&q=80", Tag: "经典", SubCategory: "长发"},
	{ID: "h12", Name: "灵动蝴蝶剪", Description: "轻盈外翻的层次感", Image: "https://images.unsplash.com/photo-1519699047748-de8e457a634e?auto=format&fit=crop&w=600&q=80", Tag: "潮流", SubCategory: "长发"},
	{ID: "h13", Name: "日系波比头", Description: "减龄神器的内扣弧度", Image: "https://images.unsplash.com/photo-1580618672591-eb180b1a973f?auto=format&fit=crop&w=600&q=80", SubCategory: "短发"},
	{ID: "h14", Name: "慵懒羊毛卷", Description: "蓬松质感打造精致小脸", Image: "https://images.unsplash.com/photo-1492158244976-29b84ba93025?auto=format&fit=crop&w=600&q=80", SubCategory: "卷发"},
	{ID: "h15", Name: "狼尾碎发", Description: "叛逆张扬的视觉焦点", Image: "https://images.unsplash.com/photo-1552058544-f2b08422138a?auto=format&fit=crop&w=600&q=80", SubCategory: "短发"},
	{ID: "h16", Name: "森系双马尾", Description: "自然清新的灵动少女感", Image: "https://images.unsplash.com/photo-1610438183186-041793740f90?auto=format&fit=crop&w=600&q=80", SubCategory: "扎发"},
	{ID: "h5", Name: "极简寸头", Description: "硬朗轮廓展现纯粹力量", Image: "https://images.unsplash.com/photo-1599566150163-29194dcaad36?auto=format&fit=crop&w=600&q=80", SubCategory: "男士"},
	{ID: "h6", Name: "复古油头", Description: "绅士格调的经典回归", Image: "https://images.unsplash.com/photo-1621605815971-fbc98d665033?auto=format&fit=crop&w=600&q=80", Tag: "绅士", SubCategory: "男士"},
	{ID: "h17", Name: "雅痞长发", Description: "深邃内敛的艺术气息", Image: "https://images.unsplash.com/photo-1520338661084-680395cb57c9?auto=format&fit=crop&w=600&q=80", SubCategory: "男士"},
}

var Makeups = []StyleOption{
	{ID: "m0", Name: "无妆容", Description: "回归最纯粹的自然本色", Image: "https://images.unsplash.com/photo-1594744803329-e58b31de8bf5?auto=format&fit=crop&w=600&q=80", Tag: "原生", SubCategory: "基础"},
	{ID: "m1", Name: "清透水光妆", Description: "呼吸感的伪素颜美学", Image: "https://images.unsplash.com/photo-1522337300243-26325568374d?auto=format&fit=crop&w=600&q=80", Tag: "自然", SubCategory: "日常"},
	{ID: "m2", Name: "经典复古红", Description: "红唇与远山黛的跨时空对话", Image: "https://images.unsplash.com/photo-1488426862026-3ee34a7d66df?auto=format&fit=crop&w=600&q=80", SubCategory: "派对"},
	{ID: "m4", Name: "微醺甜桃妆", Description: "元气温柔的少女柔焦感", Image: "https://images.unsplash.com/photo-1512496011212-721d80bc6461?auto=format&fit=crop&w=600&q=80", Tag: "元气", SubCategory: "日常"},
	{ID: "m5", Name: "高级裸感妆", Description: "低饱和度的职场精英质感", Image: "https://images.unsplash.com/photo-1503910397258-41d3e896af21?auto=format&fit=crop&w=600&q=80", SubCategory: "职场"},
	{ID: "m6", Name: "中式烟雨妆", Description: "东方韵味的墨色晕染", Image: "https://images.unsplash.com/photo-1512496011212-721d80bc6461?auto=format&fit=crop&w=600&q=80", Tag: "国风", SubCategory: "国潮"},
	{ID: "m7", Name: "泰式落日妆", Description: "浓郁色彩碰撞出的野性美", Image: "https://images.unsplash.com/photo-1596704017254-9b121068fb31?auto=format&fit=crop&w=600&q=80", SubCategory: "度假"},
	{ID: "m8", Name: "哥特暗黑系", Description: "深邃眼神与冷淡风格的交织", Image: "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?auto=format&fit=crop&w=600&q=80", SubCategory: "艺术"},
	{ID: "m3", Name: "赛博闪烁", Description: "数字时代的流光溢彩", Image: "https://images.unsplash.com/photo-1512496011212-721d80bc6461?auto=format&fit=crop&w=600&q=80", SubCategory: "艺术"},
}

var Scenes = []StyleOption{
	{ID: "s1", Name: "都市极简", Description: "混凝土森林中的宁静瞬间", Image: "https://images.unsplash.com/photo-1449156059431-787c5b7adc7e?auto=format&fit=crop&w=800&q=80", Tag: "城市", SubCategory: "户外"},
	{ID: "s2", Name: "艺术画廊", Description: "置身于光影交织的展厅", Image: "https://images.unsplash.com/photo-1499781350541-7783f6c6a0c8?auto=format&fit=crop&w=800&q=80", Tag: "艺术", SubCategory: "室内"},
	{ID: "s3", Name: "巴黎街头", Description: "浪漫与时尚的交织点", Image: "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?auto=format&fit=crop&w=800&q=80", Tag: "旅行", SubCategory: "户外"},
	{ID: "s4", Name: "未来实验室", Description: "赛博世界的冰冷美学", Image: "https://images.unsplash.com/photo-1558591710-4b4a1ae0f04d?auto=format&fit=crop&w=800&q=80", Tag: "赛博", SubCategory: "室内"},
	{ID: "s5", Name: "豪华晚宴", Description: "流光溢彩的社交巅峰", Image: "https://images.unsplash.com/photo-1519671482749-fd09be7ccebf?auto=format&fit=crop&w=800&q=80", Tag: "正式", SubCategory: "室内"},
}

var AccessoryCategories = []AccessoryCategory{
	{ID: "ac1", Name: "包", Type: "bag", Description: "手拎包、单肩包或质感挎包", Image: "https://images.unsplash.com/photo-1584917865442-de89df76afd3?auto=format&fit=crop&w=600&q=80"},
	{ID: "ac2", Name: "球拍", Type: "racket", Description: "网球拍或羽毛球拍专业装备", Image: "https://images.unsplash.com/photo-1622279457486-62dcc4a4bd13?auto=format&fit=crop&w=600&q=80"},
	{ID: "ac3", Name: "手链", Type: "bracelet", Description: "金属、编织或极简手腕饰品", Image: "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?auto=format&fit=crop&w=600&q=80"},
	{ID: "ac4", Name: "手表", Type: "watch", Description: "商务、运动或休闲风格腕表", Image: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&w=600&q=80"},
	{ID: "ac5", Name: "运动挎包", Type: "sports_bag", Description: "大容量帆布或功能性运动包", Image: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?auto=format&fit=crop&w=600&q=80"},
	{ID: "ac6", Name: "项链", Type: "necklace", Description: "锁骨链、长链或装饰挂坠", Image: "https://images.unsplash.com/photo-1599643478123-53d040789260?auto=format&fit=crop&w=600&q=80"},
	{ID: "ac7", Name: "耳环", Type: "earring", Description: "耳钉、耳坠或流苏耳饰", Image: "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?auto=format&fit=crop&w=600&q=80"},
}

var LookbookItems = []LookbookItem{
	{ID: "l1", Title: "春季莫兰迪色系通勤方案", Type: "merchant", Author: "UNIQLO 官方", Image: "https://images.unsplash.com/photo-1539109136881-3be0616acf4b?auto=format&fit=crop&w=800&q=80", Tags: []string{"简约", "职场", "莫兰迪"}},
	{ID: "l2", Title: "高街黑白对比造型", Type: "blogger", Author: "@FashionHunter", Image: "https://images.unsplash.com/photo-1483985988355-763728e1935b?auto=format&fit=crop&w=800&q=80", Tags: []string{"极简", "潮流", "黑白"}},
	{ID: "l3", Title: "轻量化户外徒步穿搭", Type: "merchant", Author: "始祖鸟 Arc'teryx", Image: "https://images.unsplash.com/photo-1523381235312-8388ec71426f?auto=format&fit=crop&w=800&q=80", Tags: []string{"山系", "机能", "专业"}},
	{ID: "l4", Title: "法式慵懒周末随性风", Type: "blogger", Author: "@ParisVibe", Image: "https://images.unsplash.com/photo-1490481651871-ab68de25d43d?auto=format&fit=crop&w=800&q=80", Tags: []string{"法式", "慵懒", "生活"}},
	{ID: "l5", Title: "新中式茶系少年", Type: "merchant", Author: "意树 官方", Image: "https://images.unsplash.com/photo-1552058544-f2b08422138a?auto=format&fit=crop&w=800&q=80", Tags: []string{"国潮", "禅意", "男士"}},
	{ID: "l6", Title: "美式复古校园橄榄球夹克", Type: "blogger", Author: "@Vintager", Image: "https://images.unsplash.com/photo-1516762689617-e1cffcef479d?auto=format&fit=crop&w=800&q=80", Tags: []string{"Vibe", "校园", "复古"}},
}

// Preference option lists offered by the profile editor.
var (
	StyleOptions = []string{
		"新中式", "街头潮酷", "优雅风", "都市极简", "老钱风", "运动风", "静奢风", "美式复古",
		"Y2K辣妹", "山系机能", "废土风", "极简主义", "多巴胺风", "法式慵懒", "暗黑哥特", "美式学院",
		"赛博朋克", "森系仙女", "波西米亚", "中性男友风", "华丽摇滚", "重工刺绣",
	}
	PaletteOptions = []string{
		"经典中性", "大地色系", "黑白灰", "莫兰迪色", "马卡龙色", "多巴胺色", "霓虹赛博", "暗黑冷淡",
		"焦糖暖色", "森林绿系", "海洋蓝系", "金属银感", "复古红金", "薄荷清冷", "燕麦暖咖", "薰衣草紫",
	}
	BudgetOptions = []string{"<1000", "1000-5000", "5000-10000", "10000+"}
	DefaultStores = []string{
		"优衣库", "ZARA", "Nike", "Adidas", "Lululemon", "始祖鸟",
		"Chanel", "Gucci", "Prada", "Hermès", "Dior", "Louis Vuitton",
	}
)

func findOption(options []StyleOption, id string) *StyleOption {
	for i := range options {
		if options[i].ID == id {
			return &options[i]
		}
	}
	return nil
}

// HairstyleByID returns the hairstyle with the given id, or nil.
func HairstyleByID(id string) *StyleOption { return findOption(Hairstyles, id) }

// MakeupByID returns the makeup with the given id, or nil.
func MakeupByID(id string) *StyleOption { return findOption(Makeups, id) }

// SceneByID returns the scene with the given id, or nil.
func SceneByID(id string) *StyleOption { return findOption(Scenes, id) }

// AccessoryCategoryByID returns the accessory category with the given id, or nil.
func AccessoryCategoryByID(id string) *AccessoryCategory {
	for i := range AccessoryCategories {
		if AccessoryCategories[i].ID == id {
			return &AccessoryCategories[i]
		}
	}
	return nil
}

// SubCategories lists the distinct sub-category facets of a catalog, always
// starting with FilterAll.
func SubCategories(options []StyleOption) []string {
	facets := []string{FilterAll}
	seen := map[string]bool{}
	for _, o := range options {
		if o.SubCategory == "" || seen[o.SubCategory] {
			continue
		}
		seen[o.SubCategory] = true
		facets = append(facets, o.SubCategory)
	}
	return facets
}

// Filter returns the options matching a sub-category facet. FilterAll (or an
// empty facet) returns the whole catalog.
func Filter(options []StyleOption, facet string) []StyleOption {
	if facet == "" || facet == FilterAll {
		return options
	}
	var out []StyleOption
	for _, o := range options {
		if o.SubCategory == facet {
			out = append(out, o)
		}
	}
	return out
}
