// Package recommend synthesizes the shopping list shown next to a fitting
// result: one top, one bottom, one pair of shoes, plus one entry per selected
// accessory category, each with three marketplace quotes. Prices are derived
// from the budget bracket, not fetched from anywhere.
package recommend

import (
	"fmt"
	"hash/fnv"
	"net/url"
	"strconv"

	"github.com/stylelab/fitting-lab/catalog"
	"github.com/stylelab/fitting-lab/models"
)

// Representative ceilings for the four budget brackets.
func budgetCeiling(bracket string) int {
	switch bracket {
	case "<1000":
		return 800
	case "1000-5000":
		return 3000
	case "5000-10000":
		return 8000
	default:
		return 25000
	}
}

// Fixed allocation of the ceiling across item slots.
const (
	topShare       = 0.35
	bottomShare    = 0.25
	shoesShare     = 0.20
	accessoryShare = 0.10
)

const (
	femaleTopImage  = "https://images.unsplash.com/photo-1598554747436-c9293d6a588f?auto=format&fit=crop&w=600&q=80"
	maleTopImage    = "https://images.unsplash.com/photo-1593032465175-481ac7f401a0?auto=format&fit=crop&w=600&q=80"
	femaleBottomImg = "https://images.unsplash.com/photo-1551488831-00ddcb6c6bd3?auto=format&fit=crop&w=600&q=80"
	maleBottomImage = "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?auto=format&fit=crop&w=600&q=80"
	shoesImage      = "https://images.unsplash.com/photo-1549298916-b41d501d3772?auto=format&fit=crop&w=600&q=80"
)

// Synthesize maps the session's preferences and accessory choices to a
// deterministic recommendation list. Profile fields that were never set fall
// back to the defaults table first.
func Synthesize(sel models.UserSelections) []models.Recommendation {
	sel = sel.Effective()

	prefs := *sel.Preferences
	storeA := prefs.Stores[0]
	storeB := storeA
	if len(prefs.Stores) > 1 {
		storeB = prefs.Stores[1]
	}
	ceiling := budgetCeiling(prefs.Budget)
	isMale := sel.Gender == "male"

	topImage, bottomImage := femaleTopImage, femaleBottomImg
	if isMale {
		topImage, bottomImage = maleTopImage, maleBottomImage
	}

	topPrice := int(float64(ceiling) * topShare)
	bottomPrice := int(float64(ceiling) * bottomShare)
	shoesPrice := int(float64(ceiling) * shoesShare)

	recs := []models.Recommendation{
		{
			ID:         "rec-top",
			Name:       fmt.Sprintf("%s %s限定 廓形上装", storeA, prefs.Style),
			Category:   models.CategoryTop,
			Meta:       fmt.Sprintf("适配身高 %scm 的时尚剪裁", sel.BodyData.Height),
			Price:      formatPrice(topPrice),
			PriceValue: topPrice,
			Image:      topImage,
			Source:     "AI-NEW",
			Comparison: comparisons(fmt.Sprintf("%s %s 上衣", storeA, prefs.Style), topPrice),
		},
		{
			ID:         "rec-bottom",
			Name:       fmt.Sprintf("%s 时尚垂感 下装", storeB),
			Category:   models.CategoryBottom,
			Meta:       fmt.Sprintf("流线比例设计，呼应 %s 审美", prefs.Palette),
			Price:      formatPrice(bottomPrice),
			PriceValue: bottomPrice,
			Image:      bottomImage,
			Source:     "AI-NEW",
			Comparison: comparisons(fmt.Sprintf("%s %s 下装", storeB, prefs.Style), bottomPrice),
		},
		{
			ID:         "rec-shoes",
			Name:       fmt.Sprintf("%s 极简系列 潮流鞋履", storeA),
			Category:   models.CategoryShoes,
			Meta:       fmt.Sprintf("完成 %s 整体风格闭环", prefs.Style),
			Price:      formatPrice(shoesPrice),
			PriceValue: shoesPrice,
			Image:      shoesImage,
			Source:     "AI-NEW",
			Comparison: comparisons(fmt.Sprintf("%s %s 鞋子", storeA, prefs.Style), shoesPrice),
		},
	}

	for i, id := range sel.AccessoryCategories {
		cat := catalog.AccessoryCategoryByID(id)
		if cat == nil {
			continue
		}
		price := int(float64(ceiling) * accessoryShare)
		recs = append(recs, models.Recommendation{
			ID:         fmt.Sprintf("rec-acc-%d", i),
			Name:       fmt.Sprintf("风格甄选 %s", cat.Name),
			Category:   models.CategoryAccessory,
			Meta:       fmt.Sprintf("细节处的 %s 审美表达", prefs.Style),
			Price:      formatPrice(price),
			PriceValue: price,
			Image:      cat.Image,
			Source:     "AI-NEW",
			Comparison: comparisons(fmt.Sprintf("%s %s", prefs.Style, cat.Name), price),
		})
	}

	return recs
}

// comparisons builds the three fixed marketplace quotes. JD availability is
// derived from a hash of the search keyword so it is stable for a given item
// rather than re-rolled on every render.
func comparisons(keyword string, price int) []models.PriceComparison {
	query := url.QueryEscape(keyword)
	return []models.PriceComparison{
		{
			Platform:    "淘宝",
			Price:       formatPrice(price),
			URL:         "https://s.taobao.com/search?q=" + query,
			IsAvailable: true,
		},
		{
			Platform:    "天猫",
			Price:       formatPrice(int(float64(price) * 1.05)),
			URL:         "https://list.tmall.com/search_product.htm?q=" + query,
			IsAvailable: true,
		},
		{
			Platform:    "京东",
			Price:       formatPrice(int(float64(price) * 0.98)),
			URL:         "https://search.jd.com/Search?keyword=" + query,
			IsAvailable: stableAvailability(keyword),
		},
	}
}

// stableAvailability keeps roughly 70% of items in stock, keyed on the item
// so repeated renders agree.
func stableAvailability(keyword string) bool {
	h := fnv.New32a()
	h.Write([]byte(keyword))
	return h.Sum32()%10 >= 3
}

// formatPrice renders a yuan amount with thousands separators, e.g. ¥1,050.
func formatPrice(v int) string {
	s := strconv.Itoa(v)
	if len(s) <= 3 {
		return "¥" + s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return "¥" + string(out)
}
