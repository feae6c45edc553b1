package utils

import (
	"strings"

	"github.com/anishgupta02/receipt-extraction-service/dto"
)

// categoryKeywords is an ordered table: the first category whose keyword
// appears in the text wins, so iteration order is part of the contract.
var categoryKeywords = []struct {
	category dto.Category
	keywords []string
}{
	{dto.CategoryGroceries, []string{"grocery", "supermarket", "food", "market"}},
	{dto.CategoryDining, []string{"restaurant", "cafe", "dining", "swiggy", "zomato"}},
	{dto.CategoryTransport, []string{"fuel", "gas", "taxi", "uber", "train", "bus"}},
	{dto.CategoryRetail, []string{"shop", "clothing", "electronics", "amazon", "flipkart"}},
	{dto.CategoryGift, []string{"gift"}},
}

// InferCategory maps free text to a coarse spending category by substring
// keyword lookup over the lowercased text. Always returns a value;
// CategoryOther is the fallback.
func InferCategory(text string) dto.Category {
	lowered := strings.ToLower(text)
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lowered, keyword) {
				return entry.category
			}
		}
	}
	return dto.CategoryOther
}
