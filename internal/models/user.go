package models

import "gorm.io/gorm"

// Role identifies what a user can do on the platform.
type Role string

const (
	RoleConsumer  Role = "consumer"
	RoleRetailer  Role = "retailer"
	RoleCharity   Role = "charity"
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
)

// User represents an account on the platform. Consumers collect eco points
// for rescuing food; retailers collect credit points for donating it.
type User struct {
	ID               string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username         string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email            string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password         string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Role             Role   `json:"role" gorm:"type:varchar(20)" validate:"required,oneof=consumer retailer charity volunteer admin"`
	EcoPoints        int    `json:"eco_points"`
	CreditPoints     int    `json:"credit_points"`
	OrganizationName string `json:"organization_name,omitempty" validate:"omitempty,max=255"`
	Phone            string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Address          string `json:"address,omitempty" validate:"omitempty,max=500"`
	VehicleType      string `json:"vehicle_type,omitempty" validate:"omitempty,max=50"`
	gorm.Model              // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
