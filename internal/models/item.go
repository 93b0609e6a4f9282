package models

import "time"

// Category is the closed set of food categories a listing can belong to.
type Category string

const (
	CategoryBakery  Category = "bakery"
	CategoryMeals   Category = "meals"
	CategoryProduce Category = "produce"
	CategoryGrocery Category = "grocery"
	CategoryCompost Category = "compost"
)

// ItemStatus tracks the lifecycle of a listing.
type ItemStatus string

const (
	ItemAvailable ItemStatus = "available"
	ItemReserved  ItemStatus = "reserved"
	ItemSold      ItemStatus = "sold"
	ItemDonated   ItemStatus = "donated"
	ItemComposted ItemStatus = "composted"
)

// Item is a posted unit of surplus food. A DiscountPrice of zero marks the
// listing as a donation.
type Item struct {
	ID                string     `json:"id"`
	StoreID           string     `json:"store_id"`
	StoreName         string     `json:"store_name"`
	StoreCreditPoints int        `json:"store_credit_points"` // Used for ranking
	Title             string     `json:"title" validate:"required,min=3,max=100"`
	Description       string     `json:"description" validate:"omitempty,max=500"`
	OriginalPrice     float64    `json:"original_price" validate:"gte=0"`
	DiscountPrice     float64    `json:"discount_price" validate:"gte=0"`
	Image             string     `json:"image,omitempty"`
	Category          Category   `json:"category" validate:"required,oneof=bakery meals produce grocery compost"`
	Tags              []string   `json:"tags,omitempty"`
	Expiry            time.Time  `json:"expiry"`
	PickupStart       string     `json:"pickup_start,omitempty"`
	PickupEnd         string     `json:"pickup_end,omitempty"`
	Quantity          int        `json:"quantity" validate:"gte=0"`
	Status            ItemStatus `json:"status"`
	ForAnimalFeed     bool       `json:"for_animal_feed,omitempty"` // Routes the item out of human-food categories
}

// IsDonation reports whether the listing is given away for free.
func (i Item) IsDonation() bool {
	return i.DiscountPrice == 0
}
