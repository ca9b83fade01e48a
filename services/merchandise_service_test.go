package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Derescio/bugleworldmusic/entity"
	"github.com/Derescio/bugleworldmusic/repository"
)

func newMerchandiseService(t *testing.T) *MerchandiseService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Merchandise{}))
	return NewMerchandiseService(repository.NewMerchandiseRepository(db))
}

func hoodieIn() *MerchandiseIn {
	return &MerchandiseIn{
		Name:      "Tour Hoodie",
		Price:     4999,
		Colors:    []string{"Black", "Red"},
		Sizes:     []string{"M", "L", "XL"},
		ImageURLs: []string{"https://img.example.com/hoodie.jpg"},
	}
}

func TestMerchandiseCreate(t *testing.T) {
	svc := newMerchandiseService(t)

	m, err := svc.Create(hoodieIn())
	require.NoError(t, err)

	assert.NotZero(t, m.ID)
	assert.Equal(t, int64(4999), m.Price)
	assert.True(t, m.IsActive)

	// JSON columns survive the round trip through the database.
	got, err := svc.Get(m.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Black", "Red"}, got.Colors)
	assert.Equal(t, []string{"M", "L", "XL"}, got.Sizes)
}

func TestMerchandiseCreateValidation(t *testing.T) {
	svc := newMerchandiseService(t)

	_, err := svc.Create(&MerchandiseIn{Name: "", Price: -1})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	// name, price, colors, sizes, images all flagged
	assert.Len(t, verr.Fields, 5)
}

func TestMerchandiseUpdate(t *testing.T) {
	svc := newMerchandiseService(t)
	m, err := svc.Create(hoodieIn())
	require.NoError(t, err)

	in := hoodieIn()
	in.Price = 3999
	in.IsActive = ptr(false)

	updated, err := svc.Update(m.ID, in)
	require.NoError(t, err)
	assert.Equal(t, int64(3999), updated.Price)
	assert.False(t, updated.IsActive)
}

func TestMerchandiseListActiveOnly(t *testing.T) {
	svc := newMerchandiseService(t)
	_, err := svc.Create(hoodieIn())
	require.NoError(t, err)

	hidden := hoodieIn()
	hidden.Name = "Retired Tee"
	hidden.IsActive = ptr(false)
	_, err = svc.Create(hidden)
	require.NoError(t, err)

	public, page, err := svc.List(1, 10, true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Tour Hoodie", public[0].Name)
	assert.Equal(t, int64(1), page.Total)
}

func TestMerchandiseDeleteUnknownID(t *testing.T) {
	svc := newMerchandiseService(t)
	assert.ErrorIs(t, svc.Delete(42), gorm.ErrRecordNotFound)
}
