package services

import (
	"sort"
	"strings"

	"ecofeast/internal/models"
)

// RankItems orders a listing collection for display. Sold-out items always
// sort after items still in stock. Within each group the secondary key
// depends on the viewer's role: charities see cheapest (and therefore free)
// listings first, everyone else sees higher-reputation stores first. The
// sort is stable, so equal keys keep their prior relative order.
func RankItems(items []models.Item, role models.Role) []models.Item {
	ranked := make([]models.Item, len(items))
	copy(ranked, items)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		aSoldOut := a.Quantity == 0
		bSoldOut := b.Quantity == 0
		if aSoldOut != bSoldOut {
			return bSoldOut
		}

		if role == models.RoleCharity {
			return a.DiscountPrice < b.DiscountPrice
		}
		return a.StoreCreditPoints > b.StoreCreditPoints
	})

	return ranked
}

// FilterItems narrows a collection by category and a case-insensitive search
// string matched against the title and store name. Category "all" or ""
// passes everything.
func FilterItems(items []models.Item, category models.Category, search string) []models.Item {
	search = strings.ToLower(strings.TrimSpace(search))

	filtered := make([]models.Item, 0, len(items))
	for _, item := range items {
		if category != "" && category != "all" && item.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Title), search) &&
			!strings.Contains(strings.ToLower(item.StoreName), search) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}
