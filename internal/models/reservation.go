package models

import "time"

// ReservationStatus tracks a reservation from checkout to pickup.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationReady     ReservationStatus = "ready"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation records a checkout: who ordered, a snapshot of the items at
// order time, the aggregate total, and a short numeric pickup code the buyer
// presents at the store.
type Reservation struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	Status      ReservationStatus `json:"status"`
	Code        string            `json:"code"` // Pickup code
	Items       []Item            `json:"items"`
	TotalAmount float64           `json:"total_amount"`
	CreatedAt   time.Time         `json:"created_at"`
}
