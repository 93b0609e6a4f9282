package repositories_test

import (
	"testing"

	"ecofeast/internal/models"
	"ecofeast/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestKVItemRepository_SeedsOnFirstRead(t *testing.T) {
	store := repositories.NewMemoryStore()
	repo := repositories.NewKVItemRepository(store)

	items, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, items, 5)

	// The seed is persisted, not regenerated on every read.
	raw, err := store.Get(repositories.KeyItems)
	assert.NoError(t, err)
	assert.NotNil(t, raw)

	// The seed includes the sold-out dairy item used by the dashboards.
	soldOut, err := repo.GetByID("5")
	assert.NoError(t, err)
	assert.Equal(t, 0, soldOut.Quantity)
	assert.Equal(t, models.ItemAvailable, soldOut.Status)
}

func TestKVItemRepository_RejectsCorruptCollection(t *testing.T) {
	store := repositories.NewMemoryStore()
	assert.NoError(t, store.Set(repositories.KeyItems, []byte("{not json")))
	repo := repositories.NewKVItemRepository(store)

	_, err := repo.GetAll()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt items collection")
}

func TestKVItemRepository_CreatePrepends(t *testing.T) {
	store := repositories.NewMemoryStore()
	repo := repositories.NewKVItemRepository(store)

	item := &models.Item{ID: "new", Title: "Fresh Bread", Category: models.CategoryBakery, Quantity: 4, Status: models.ItemAvailable}
	assert.NoError(t, repo.Create(item))

	items, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, items, 6)
	assert.Equal(t, "new", items[0].ID)
}

func TestKVItemRepository_Update(t *testing.T) {
	store := repositories.NewMemoryStore()
	repo := repositories.NewKVItemRepository(store)

	item, err := repo.GetByID("1")
	assert.NoError(t, err)
	item.Quantity--
	assert.NoError(t, repo.Update(item))

	reloaded, err := repo.GetByID("1")
	assert.NoError(t, err)
	assert.Equal(t, 4, reloaded.Quantity)

	err = repo.Update(&models.Item{ID: "ghost"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for update")
}

func TestKVItemRepository_Delete(t *testing.T) {
	store := repositories.NewMemoryStore()
	repo := repositories.NewKVItemRepository(store)

	assert.NoError(t, repo.Delete("2"))

	_, err := repo.GetByID("2")
	assert.Error(t, err)

	items, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, items, 4)

	err = repo.Delete("2")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for deletion")
}

func TestKVReservationRepository_FilterByUser(t *testing.T) {
	store := repositories.NewMemoryStore()
	repo := repositories.NewKVReservationRepository(store)

	// Absent key reads as an empty collection, no seeding.
	empty, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, empty)

	assert.NoError(t, repo.Create(&models.Reservation{ID: "r1", UserID: "u1", Code: "1234"}))
	assert.NoError(t, repo.Create(&models.Reservation{ID: "r2", UserID: "u2", Code: "5678"}))
	assert.NoError(t, repo.Create(&models.Reservation{ID: "r3", UserID: "u1", Code: "4321"}))

	owned, err := repo.GetByUser("u1")
	assert.NoError(t, err)
	assert.Len(t, owned, 2)
	assert.Equal(t, "r1", owned[0].ID)
	assert.Equal(t, "r3", owned[1].ID)

	none, err := repo.GetByUser("stranger")
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestKVTaskRepository_SeedAndUpdateStatus(t *testing.T) {
	store := repositories.NewMemoryStore()
	repo := repositories.NewKVTaskRepository(store)

	tasks, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, tasks, 3)
	for _, task := range tasks {
		assert.Equal(t, models.TaskPending, task.Status)
	}

	assert.NoError(t, repo.UpdateStatus("t2", models.TaskAccepted))

	tasks, err = repo.GetAll()
	assert.NoError(t, err)
	for _, task := range tasks {
		if task.ID == "t2" {
			assert.Equal(t, models.TaskAccepted, task.Status)
		} else {
			assert.Equal(t, models.TaskPending, task.Status)
		}
	}

	err = repo.UpdateStatus("t99", models.TaskCompleted)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
