package repositories

import "ecofeast/internal/models"

// CharityRepository serves the static partner-charity reference data.
type CharityRepository struct{}

// NewCharityRepository creates a new instance of CharityRepository.
func NewCharityRepository() *CharityRepository {
	return &CharityRepository{}
}

// GetAll returns all partner charities.
func (r *CharityRepository) GetAll() ([]models.Charity, error) {
	out := make([]models.Charity, len(charities))
	copy(out, charities)
	return out, nil
}
