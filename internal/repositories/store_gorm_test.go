package repositories_test

import (
	"testing"

	"ecofeast/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestGORMStore(t *testing.T) *repositories.GORMStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	assert.NoError(t, err)
	store, err := repositories.NewGORMStore(db)
	assert.NoError(t, err)
	return store
}

func TestGORMStore_GetAbsentKey(t *testing.T) {
	store := newTestGORMStore(t)

	value, err := store.Get("never_written")
	assert.NoError(t, err)
	assert.Nil(t, value)
}

func TestGORMStore_SetAndGet(t *testing.T) {
	store := newTestGORMStore(t)

	assert.NoError(t, store.Set(repositories.KeyItems, []byte(`[{"id":"1"}]`)))

	value, err := store.Get(repositories.KeyItems)
	assert.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(value))

	// Set on an existing key replaces the value.
	assert.NoError(t, store.Set(repositories.KeyItems, []byte(`[]`)))
	value, err = store.Get(repositories.KeyItems)
	assert.NoError(t, err)
	assert.JSONEq(t, `[]`, string(value))
}

func TestGORMStore_BacksItemRepository(t *testing.T) {
	store := newTestGORMStore(t)
	repo := repositories.NewKVItemRepository(store)

	items, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, items, 5)

	// A second repository over the same store sees the persisted catalog.
	repo2 := repositories.NewKVItemRepository(store)
	assert.NoError(t, repo2.Delete("1"))

	items, err = repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, items, 4)
}
