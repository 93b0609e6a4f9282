package services_test

import (
	"testing"

	"ecofeast/internal/models"
	"ecofeast/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestRankItems_SoldOutLast(t *testing.T) {
	items := []models.Item{
		{ID: "a", Quantity: 0, StoreCreditPoints: 500},
		{ID: "b", Quantity: 2, StoreCreditPoints: 10},
		{ID: "c", Quantity: 0, StoreCreditPoints: 999},
		{ID: "d", Quantity: 1, StoreCreditPoints: 50},
	}

	ranked := services.RankItems(items, models.RoleConsumer)

	assert.Len(t, ranked, 4)
	// Every sold-out item must come after every available item, no matter
	// how many credit points its store has.
	assert.Equal(t, "d", ranked[0].ID)
	assert.Equal(t, "b", ranked[1].ID)
	for _, item := range ranked[2:] {
		assert.Zero(t, item.Quantity)
	}
	// Input must not be reordered in place.
	assert.Equal(t, "a", items[0].ID)
}

func TestRankItems_CharitySeesCheapestFirst(t *testing.T) {
	items := []models.Item{
		{ID: "a", Quantity: 3, DiscountPrice: 250},
		{ID: "b", Quantity: 1, DiscountPrice: 0}, // donation
		{ID: "c", Quantity: 5, DiscountPrice: 150},
		{ID: "d", Quantity: 0, DiscountPrice: 0},
	}

	ranked := services.RankItems(items, models.RoleCharity)

	assert.Equal(t, []string{"b", "c", "a", "d"}, []string{ranked[0].ID, ranked[1].ID, ranked[2].ID, ranked[3].ID})
	for i := 0; i < 2; i++ {
		assert.LessOrEqual(t, ranked[i].DiscountPrice, ranked[i+1].DiscountPrice)
	}
}

func TestRankItems_ConsumerSeesReputationFirst(t *testing.T) {
	items := []models.Item{
		{ID: "a", Quantity: 1, StoreCreditPoints: 45},
		{ID: "b", Quantity: 1, StoreCreditPoints: 300},
		{ID: "c", Quantity: 1}, // missing credit points rank as 0
		{ID: "d", Quantity: 1, StoreCreditPoints: 120},
	}

	ranked := services.RankItems(items, models.RoleConsumer)

	assert.Equal(t, "b", ranked[0].ID)
	assert.Equal(t, "d", ranked[1].ID)
	assert.Equal(t, "a", ranked[2].ID)
	assert.Equal(t, "c", ranked[3].ID)
}

func TestRankItems_StableOnEqualKeys(t *testing.T) {
	items := []models.Item{
		{ID: "first", Quantity: 1, StoreCreditPoints: 100},
		{ID: "second", Quantity: 1, StoreCreditPoints: 100},
		{ID: "third", Quantity: 1, StoreCreditPoints: 100},
	}

	ranked := services.RankItems(items, models.RoleRetailer)

	assert.Equal(t, "first", ranked[0].ID)
	assert.Equal(t, "second", ranked[1].ID)
	assert.Equal(t, "third", ranked[2].ID)
}

// The seed catalog ships item "5" sold out; it must rank last for a consumer
// even though other stores have fewer credit points.
func TestRankItems_SeedSoldOutItemRanksLast(t *testing.T) {
	items := []models.Item{
		{ID: "1", Quantity: 5, StoreCreditPoints: 120},
		{ID: "2", Quantity: 3, StoreCreditPoints: 45},
		{ID: "5", Quantity: 0, StoreCreditPoints: 10},
		{ID: "3", Quantity: 10, StoreCreditPoints: 300},
	}

	ranked := services.RankItems(items, models.RoleConsumer)

	assert.Equal(t, "5", ranked[len(ranked)-1].ID)
}

func TestFilterItems(t *testing.T) {
	items := []models.Item{
		{ID: "1", Title: "Surprise Veggie Bag", StoreName: "Green Valley Grocer", Category: models.CategoryProduce},
		{ID: "2", Title: "Day-old Pastry Box", StoreName: "Crust & Crumb", Category: models.CategoryBakery},
		{ID: "3", Title: "Leftover Lunch Boxes", StoreName: "City Bistro", Category: models.CategoryMeals},
	}

	filtered := services.FilterItems(items, models.CategoryBakery, "")
	assert.Len(t, filtered, 1)
	assert.Equal(t, "2", filtered[0].ID)

	// Search matches title or store name, case-insensitively.
	filtered = services.FilterItems(items, "all", "CRUST")
	assert.Len(t, filtered, 1)
	assert.Equal(t, "2", filtered[0].ID)

	filtered = services.FilterItems(items, "", "box")
	assert.Len(t, filtered, 2)

	filtered = services.FilterItems(items, models.CategoryMeals, "veggie")
	assert.Empty(t, filtered)
}
