package models

// TaskStatus tracks a volunteer transport job: pending -> accepted -> completed.
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskAccepted  TaskStatus = "accepted"
	TaskCompleted TaskStatus = "completed"
)

// Task is a volunteer-assignable job moving donated food from a store to a
// charity.
type Task struct {
	ID            string     `json:"id"`
	StoreName     string     `json:"store_name"`
	PickupAddress string     `json:"pickup_address"`
	DropAddress   string     `json:"drop_address"`
	CharityName   string     `json:"charity_name"`
	Weight        string     `json:"weight"` // e.g. "5kg"
	Status        TaskStatus `json:"status"`
	ItemsSummary  string     `json:"items_summary"`
}
