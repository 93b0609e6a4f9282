package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"ecofeast/internal/models"
	"ecofeast/internal/repositories"
	"ecofeast/pkg/idgen"
)

// EventPublisher publishes domain events to a message broker. The RabbitMQ
// client in pkg/rabbitmq satisfies it.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService handles checkout and reservation lookups.
type OrderService struct {
	reservationRepo repositories.ReservationRepository
	itemRepo        repositories.ItemRepository
	publisher       EventPublisher
	idGen           idgen.Generator
}

// NewOrderService creates a new OrderService.
func NewOrderService(reservationRepo repositories.ReservationRepository, itemRepo repositories.ItemRepository, publisher EventPublisher, idGen idgen.Generator) *OrderService {
	return &OrderService{
		reservationRepo: reservationRepo,
		itemRepo:        itemRepo,
		publisher:       publisher,
		idGen:           idGen,
	}
}

// CreateOrder reserves one unit of each requested listing for the user.
// Listings that are already sold out are skipped rather than failing the
// whole order; their IDs are returned so the caller can report them. The
// reservation total is the sum of the discount prices of every requested
// listing, and quantities never drop below zero.
func (s *OrderService) CreateOrder(userID string, itemIDs []string) (*models.Reservation, []string, error) {
	if userID == "" {
		return nil, nil, fmt.Errorf("user ID is required")
	}
	if len(itemIDs) == 0 {
		return nil, nil, fmt.Errorf("at least one item is required")
	}

	var (
		snapshot    []models.Item
		unavailable []string
		totalAmount float64
	)

	for _, id := range itemIDs {
		item, err := s.itemRepo.GetByID(id)
		if err != nil {
			return nil, nil, fmt.Errorf("item %s not found: %w", id, err)
		}

		if item.Quantity > 0 {
			item.Quantity--
			if err := s.itemRepo.Update(item); err != nil {
				return nil, nil, fmt.Errorf("failed to update inventory for item %s: %w", id, err)
			}
		} else {
			unavailable = append(unavailable, id)
		}

		snapshot = append(snapshot, *item)
		totalAmount += item.DiscountPrice
	}

	reservation := &models.Reservation{
		ID:          s.idGen.NewID(),
		UserID:      userID,
		Status:      models.ReservationPending,
		Code:        s.idGen.PickupCode(),
		Items:       snapshot,
		TotalAmount: totalAmount,
		CreatedAt:   time.Now(),
	}

	if err := s.reservationRepo.Create(reservation); err != nil {
		return nil, nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	// Publish an event so downstream consumers (pickup notifications,
	// impact accounting) can react. Failure to publish does not fail
	// the checkout.
	if s.publisher != nil {
		event := map[string]interface{}{
			"reservationID": reservation.ID,
			"userID":        reservation.UserID,
			"code":          reservation.Code,
			"total":         reservation.TotalAmount,
			"unavailable":   unavailable,
		}
		body, err := json.Marshal(event)
		if err != nil {
			log.Printf("Failed to marshal reservation event: %v", err)
		} else if err := s.publisher.Publish("reservation", "reservation.created", body); err != nil {
			log.Printf("Warning: Failed to publish reservation created event for %s: %v", reservation.ID, err)
		}
	}

	return reservation, unavailable, nil
}

// GetUserReservations retrieves the reservations owned by a user.
func (s *OrderService) GetUserReservations(userID string) ([]models.Reservation, error) {
	return s.reservationRepo.GetByUser(userID)
}
