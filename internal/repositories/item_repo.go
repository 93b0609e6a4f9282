package repositories

import (
	"ecofeast/internal/models"
)

// ItemRepository defines the interface for listing data access.
type ItemRepository interface {
	GetAll() ([]models.Item, error)
	GetByID(id string) (*models.Item, error)
	Create(item *models.Item) error
	Update(item *models.Item) error
	Delete(id string) error
}
