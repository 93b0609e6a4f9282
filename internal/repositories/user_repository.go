package repositories

import "ecofeast/internal/models"

// UserRepository defines the interface for user data access. Update exists
// so reward counters (credit points on donation) can be persisted.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}
