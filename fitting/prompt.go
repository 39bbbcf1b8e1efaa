package fitting

import (
	"fmt"
	"strings"

	"github.com/stylelab/fitting-lab/catalog"
	"github.com/stylelab/fitting-lab/models"
)

// Fixed fallbacks per the failure policy: advice and image degrade
// independently, and the user never sees an error.
const (
	FallbackAdvice   = "AI 深度拟合视觉报告已生成。"
	PlaceholderImage = "https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?auto=format&fit=crop&w=1200&q=80"
)

// CachedAdvice is returned when a session re-enters an archived result: the
// image is served from the archive and no new advice is generated.
const CachedAdvice = "已载入存档的拟合视觉报告。"

// wardrobeSummary joins the categories of the picked wardrobe items.
func wardrobeSummary(items []models.ExistingItem, sep string) string {
	var cats []string
	for _, item := range items {
		cats = append(cats, item.Category)
	}
	return strings.Join(cats, sep)
}

// BuildAdvicePrompt produces the styling critique request: role framing plus
// gender, height, wardrobe summary, target style and palette.
func BuildAdvicePrompt(sel models.UserSelections, items []models.ExistingItem) string {
	sel = sel.Effective()

	genderLabel := "女性"
	if sel.Gender == "male" {
		genderLabel = "男性"
	}
	owned := wardrobeSummary(items, "、")
	if owned == "" {
		owned = "无"
	}

	return fmt.Sprintf(`Role: 顶级时尚混搭架构师.
Context: 用户是 %s，身高 %scm。
Task: 评价混搭方案。自有单品（需穿戴）: %s。
目标风格: %s，色系: %s。
请给出 40 字内的前卫造型报告，强调自有衣橱单品与新趋势 %s 的跨时空融合感。`,
		genderLabel, sel.BodyData.Height, owned, sel.Preferences.Style, sel.Preferences.Palette, sel.Preferences.Style)
}

// BuildImagePrompt produces the composite-image instruction. The model must
// be re-dressed in the supplied wardrobe items mixed with newly recommended
// garments, staged in the selected scene.
func BuildImagePrompt(sel models.UserSelections, items []models.ExistingItem) string {
	sel = sel.Effective()

	environment := "Minimalist fashion studio"
	if scene := catalog.SceneByID(sel.Scene); scene != nil {
		environment = scene.Name
	}

	return fmt.Sprintf(`Role: Hyper-realistic Virtual Fitting AI.
Identity: Generate a realistic fashion model using the facial and body identity from the profile image.
OBLIGATION: The model MUST BE DRESSED in the EXACT clothes from the provided wardrobe images.
DO NOT use the clothes the model is wearing in the profile photo. REPLACE THEM.
WARDROBE ITEMS TO WEAR: %s.
MIX LOGIC: Coordinate these personal wardrobe pieces with new recommended %s garments and accessories.
If a personal item is a top, match it with new bottoms. If personal items are a full outfit, layer new accessories or coats over them.
Vibe: High-end fashion editorial, Vogue magazine style.
Environment: %s.
Lighting: Soft cinematic studio light.
Quality: 8k resolution, photorealistic fabric textures, sharp details.`,
		wardrobeSummary(items, ", "), sel.Preferences.Style, environment)
}
