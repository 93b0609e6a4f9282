package repositories

import (
	"time"

	"ecofeast/internal/models"
)

// seedItems is the starter catalog written on the first-ever read of the
// items key. Item "5" ships sold out so dashboards have a sold-out card to
// render from the start.
func seedItems() []models.Item {
	now := time.Now()
	return []models.Item{
		{
			ID: "1", StoreID: "s1", StoreName: "Green Valley Grocer", StoreCreditPoints: 120,
			Title: "Surprise Veggie Bag", Description: "Assorted seasonal vegetables.",
			OriginalPrice: 500, DiscountPrice: 150,
			Category: models.CategoryProduce, Tags: []string{"Vegan", "Healthy"},
			Expiry: now.Add(24 * time.Hour), PickupStart: "18:00", PickupEnd: "20:00",
			Quantity: 5, Status: models.ItemAvailable,
		},
		{
			ID: "2", StoreID: "s2", StoreName: "Crust & Crumb", StoreCreditPoints: 45,
			Title: "Day-old Pastry Box", Description: "Croissants, muffins, and danishes.",
			OriginalPrice: 600, DiscountPrice: 200,
			Category: models.CategoryBakery, Tags: []string{"Sweet", "Contains Gluten"},
			Expiry: now.Add(12 * time.Hour), PickupStart: "17:00", PickupEnd: "19:00",
			Quantity: 3, Status: models.ItemAvailable,
		},
		{
			ID: "3", StoreID: "s3", StoreName: "City Bistro", StoreCreditPoints: 300,
			Title: "Leftover Lunch Boxes", Description: "Gourmet pasta and salad.",
			OriginalPrice: 400, DiscountPrice: 0, // Donation
			Category: models.CategoryMeals, Tags: []string{"Hot Food", "Donation"},
			Expiry: now.Add(5 * time.Hour), PickupStart: "15:00", PickupEnd: "16:00",
			Quantity: 10, Status: models.ItemAvailable,
		},
		{
			ID: "4", StoreID: "s1", StoreName: "Green Valley Grocer", StoreCreditPoints: 120,
			Title: "Canned Goods Bundle", Description: "Beans, corn, and soup cans near expiry.",
			OriginalPrice: 800, DiscountPrice: 250,
			Category: models.CategoryGrocery, Tags: []string{"Pantry", "Long Life"},
			Expiry: now.Add(27 * time.Hour), PickupStart: "09:00", PickupEnd: "21:00",
			Quantity: 2, Status: models.ItemAvailable,
		},
		{
			ID: "5", StoreID: "s4", StoreName: "Organic Oasis", StoreCreditPoints: 10,
			Title: "Dairy Essentials", Description: "Yogurt and milk approaching sell-by date.",
			OriginalPrice: 550, DiscountPrice: 150,
			Category: models.CategoryGrocery, Tags: []string{"Dairy", "Cold Chain"},
			Expiry: now.Add(48 * time.Hour), PickupStart: "10:00", PickupEnd: "14:00",
			Quantity: 0, Status: models.ItemAvailable,
		},
	}
}

// seedTasks is the starter set of volunteer transport jobs. Tasks are never
// created from orders; this static seed is the only source.
func seedTasks() []models.Task {
	return []models.Task{
		{
			ID: "t1", StoreName: "City Bistro", PickupAddress: "123 Main St, Downtown",
			DropAddress: "Food For All, 45 Shelter Rd", CharityName: "Food For All",
			Weight: "12kg", Status: models.TaskPending, ItemsSummary: "10x Lunch Boxes",
		},
		{
			ID: "t2", StoreName: "Green Valley Grocer", PickupAddress: "88 Market Ave",
			DropAddress: "Senior Support, 12 Oak Ln", CharityName: "Senior Support",
			Weight: "8kg", Status: models.TaskPending, ItemsSummary: "Assorted Veggies",
		},
		{
			ID: "t3", StoreName: "Organic Oasis", PickupAddress: "55 Fresh Blvd",
			DropAddress: "Tiny Tummies, 99 School St", CharityName: "Tiny Tummies",
			Weight: "5kg", Status: models.TaskPending, ItemsSummary: "Milk & Yogurt",
		},
	}
}

// charities is read-only reference data; there is no mutation path.
var charities = []models.Charity{
	{
		ID: "c1", Name: "Food For All", Mission: "Feeding homeless communities.",
		Description: "We operate daily soup kitchens and distribute grocery packs to families in need across the city.",
		Contact: "contact@foodforall.org", Lat: 40.7128, Lng: -74.0060,
	},
	{
		ID: "c2", Name: "Tiny Tummies", Mission: "School meals for underprivileged kids.",
		Description: "Ensuring no child goes to school hungry. We partner with 20+ schools to provide nutritious breakfasts.",
		Contact: "hello@tinytummies.org", Lat: 40.7580, Lng: -73.9855,
	},
	{
		ID: "c3", Name: "Senior Support", Mission: "Delivering groceries to the elderly.",
		Description: "Dedicated to helping housebound seniors access fresh food and social connection.",
		Contact: "help@seniorsupport.com", Lat: 40.7829, Lng: -73.9654,
	},
}
