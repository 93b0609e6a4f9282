package repositories

import (
	"encoding/json"
	"fmt"
	"sync"

	"ecofeast/internal/models"
)

// KVReservationRepository persists the reservation collection as one JSON
// blob under KeyReservations. An absent key is an empty collection.
type KVReservationRepository struct {
	store Store
	mu    sync.Mutex
}

// NewKVReservationRepository creates a new instance of KVReservationRepository.
func NewKVReservationRepository(store Store) *KVReservationRepository {
	return &KVReservationRepository{store: store}
}

func (r *KVReservationRepository) load() ([]models.Reservation, error) {
	raw, err := r.store.Get(KeyReservations)
	if err != nil {
		return nil, fmt.Errorf("failed to read reservations: %w", err)
	}
	if raw == nil {
		return []models.Reservation{}, nil
	}
	var reservations []models.Reservation
	if err := json.Unmarshal(raw, &reservations); err != nil {
		return nil, fmt.Errorf("corrupt reservations collection: %w", err)
	}
	return reservations, nil
}

func (r *KVReservationRepository) save(reservations []models.Reservation) error {
	raw, err := json.Marshal(reservations)
	if err != nil {
		return fmt.Errorf("failed to encode reservations: %w", err)
	}
	if err := r.store.Set(KeyReservations, raw); err != nil {
		return fmt.Errorf("failed to write reservations: %w", err)
	}
	return nil
}

// GetAll returns all reservations.
func (r *KVReservationRepository) GetAll() ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// GetByUser returns the reservations owned by userID. Linear scan, no index.
func (r *KVReservationRepository) GetByUser(userID string) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reservations, err := r.load()
	if err != nil {
		return nil, err
	}
	owned := make([]models.Reservation, 0)
	for _, res := range reservations {
		if res.UserID == userID {
			owned = append(owned, res)
		}
	}
	return owned, nil
}

// Create appends a new reservation.
func (r *KVReservationRepository) Create(reservation *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reservations, err := r.load()
	if err != nil {
		return err
	}
	reservations = append(reservations, *reservation)
	return r.save(reservations)
}
