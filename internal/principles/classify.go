package principles

import (
	"strings"

	"github.com/kridha/fit-engine/internal/types"
)

// titleKeywords maps product-title substrings to categories. When several
// keywords match, the longest wins: "maxi dress" beats "maxi".
var titleKeywords = map[types.GarmentCategory][]string{
	types.CategoryDress:        {"dress", "gown", "frock", "sundress", "shirtdress"},
	types.CategoryTop:          {"top", "blouse", "shirt", "tee", "t-shirt", "tank", "camisole", "cami", "sweater", "pullover", "polo", "henley"},
	types.CategoryBottomPants:  {"pants", "trousers", "jeans", "leggings", "chinos", "slacks", "culottes"},
	types.CategoryBottomShorts: {"shorts", "bermudas"},
	types.CategorySkirt:        {"skirt", "skort"},
	types.CategoryJumpsuit:     {"jumpsuit", "overalls", "dungarees"},
	types.CategoryRomper:       {"romper", "playsuit"},
	types.CategoryJacket:       {"jacket", "blazer", "bomber", "windbreaker"},
	types.CategoryCoat:         {"coat", "trench", "parka", "overcoat", "peacoat", "puffer"},
	types.CategorySweatshirt:   {"sweatshirt", "hoodie", "crewneck sweatshirt"},
	types.CategoryCardigan:     {"cardigan"},
	types.CategoryVest:         {"vest", "gilet", "waistcoat"},
	types.CategoryBodysuit:     {"bodysuit", "leotard"},
	types.CategoryLoungewear:   {"loungewear", "pajama", "pyjama", "sleepwear", "robe"},
	types.CategoryActivewear:   {"activewear", "sports bra", "athletic", "workout"},
	types.CategorySaree:        {"saree", "sari"},
	types.CategorySalwarKameez: {"salwar", "kameez", "kurta", "kurti"},
	types.CategoryLehenga:      {"lehenga", "lengha"},
}

// Classify resolves the effective garment category from the product title
// when available, falling back to structural attributes, then to the
// stated category.
func Classify(g *types.GarmentProfile) types.GarmentCategory {
	if g.Title != nil {
		title := strings.ToLower(*g.Title)
		best := types.GarmentCategory("")
		bestLen := 0
		for cat, keywords := range titleKeywords {
			for _, kw := range keywords {
				if strings.Contains(title, kw) && len(kw) > bestLen {
					best = cat
					bestLen = len(kw)
				}
			}
		}
		if best != "" {
			return best
		}
	}

	switch {
	case g.Rise != nil || g.LegShape != nil:
		return types.CategoryBottomPants
	case g.SkirtConstruction != nil:
		return types.CategorySkirt
	case g.JacketClosure != nil:
		return types.CategoryJacket
	}
	return g.Category
}
