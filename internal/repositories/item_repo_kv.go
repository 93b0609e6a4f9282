package repositories

import (
	"encoding/json"
	"fmt"
	"sync"

	"ecofeast/internal/models"
)

// KVItemRepository persists the whole listing collection as one JSON blob
// under KeyItems. The first-ever read seeds the starter catalog. Malformed
// stored JSON is rejected with an error instead of being passed through.
type KVItemRepository struct {
	store Store
	mu    sync.Mutex
}

// NewKVItemRepository creates a new instance of KVItemRepository.
func NewKVItemRepository(store Store) *KVItemRepository {
	return &KVItemRepository{store: store}
}

// load reads the collection, seeding the defaults on first read.
// Callers must hold r.mu.
func (r *KVItemRepository) load() ([]models.Item, error) {
	raw, err := r.store.Get(KeyItems)
	if err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	if raw == nil {
		items := seedItems()
		if err := r.save(items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var items []models.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("corrupt items collection: %w", err)
	}
	return items, nil
}

// save writes the collection back. Callers must hold r.mu.
func (r *KVItemRepository) save(items []models.Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}
	if err := r.store.Set(KeyItems, raw); err != nil {
		return fmt.Errorf("failed to write items: %w", err)
	}
	return nil
}

// GetAll returns all listings.
func (r *KVItemRepository) GetAll() ([]models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// GetByID returns a listing by its ID.
func (r *KVItemRepository) GetByID(id string) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			item := items[i]
			return &item, nil
		}
	}
	return nil, fmt.Errorf("item with ID %s not found", id)
}

// Create prepends a new listing so the newest post surfaces first.
func (r *KVItemRepository) Create(item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return err
	}
	items = append([]models.Item{*item}, items...)
	return r.save(items)
}

// Update replaces an existing listing in place.
func (r *KVItemRepository) Update(item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = *item
			return r.save(items)
		}
	}
	return fmt.Errorf("item with ID %s not found for update", item.ID)
}

// Delete removes a listing by its ID.
func (r *KVItemRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return err
	}
	kept := items[:0]
	found := false
	for _, item := range items {
		if item.ID == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return fmt.Errorf("item with ID %s not found for deletion", id)
	}
	return r.save(kept)
}
