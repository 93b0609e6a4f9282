package services

import (
	"fmt"

	"ecofeast/internal/models"
	"ecofeast/internal/repositories"
	"ecofeast/pkg/idgen"
)

// DonationBonus is the credit-point reward a retailer earns for posting a
// free listing.
const DonationBonus = 10

// CatalogService handles business logic for surplus-food listings.
type CatalogService struct {
	itemRepo repositories.ItemRepository
	userRepo repositories.UserRepository
	idGen    idgen.Generator
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(itemRepo repositories.ItemRepository, userRepo repositories.UserRepository, idGen idgen.Generator) *CatalogService {
	return &CatalogService{
		itemRepo: itemRepo,
		userRepo: userRepo,
		idGen:    idGen,
	}
}

// ListItems retrieves all listings in storage order.
func (s *CatalogService) ListItems() ([]models.Item, error) {
	return s.itemRepo.GetAll()
}

// ListItemsForRole retrieves all listings ranked for the given viewer role.
func (s *CatalogService) ListItemsForRole(role models.Role) ([]models.Item, error) {
	items, err := s.itemRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return RankItems(items, role), nil
}

// AddItem creates a new listing on behalf of the acting user. Retailers
// posting a donation (discount price zero) earn the donation bonus, which is
// persisted on their user record immediately so ranking reflects it.
func (s *CatalogService) AddItem(actorID string, draft models.Item) (*models.Item, error) {
	actor, err := s.userRepo.GetByID(actorID)
	if err != nil {
		return nil, fmt.Errorf("acting user not found: %w", err)
	}

	draft.ID = s.idGen.NewID()
	draft.Status = models.ItemAvailable

	// Animal-feed listings must not surface as human food.
	if draft.ForAnimalFeed {
		draft.Category = models.CategoryCompost
	}

	if actor.Role == models.RoleRetailer {
		if draft.StoreID == "" {
			draft.StoreID = actor.ID
		}
		if draft.StoreName == "" {
			draft.StoreName = actor.OrganizationName
		}
		if draft.IsDonation() {
			actor.CreditPoints += DonationBonus
			if err := s.userRepo.Update(actor); err != nil {
				return nil, fmt.Errorf("failed to credit donation bonus: %w", err)
			}
		}
		draft.StoreCreditPoints = actor.CreditPoints
	}

	if err := s.itemRepo.Create(&draft); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return &draft, nil
}

// DeleteItem removes a listing by its ID. Ownership is enforced by the
// role-gated routes, not here.
func (s *CatalogService) DeleteItem(id string) error {
	return s.itemRepo.Delete(id)
}
