package repositories

import (
	"ecofeast/internal/models"
)

// ReservationRepository defines the interface for reservation data access.
// Reservations are immutable once created.
type ReservationRepository interface {
	GetAll() ([]models.Reservation, error)
	GetByUser(userID string) ([]models.Reservation, error)
	Create(reservation *models.Reservation) error
}
