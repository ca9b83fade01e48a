package cart

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vinyl = Product{ID: "vinyl-1", Name: "Toxicity LP", Price: 2499}

func TestItemKey(t *testing.T) {
	assert.Equal(t, "p1-M-Black", ItemKey("p1", "M", "Black"))
	assert.Equal(t, "p1-default-default", ItemKey("p1", "", ""))
	assert.Equal(t, "p1-default-Red", ItemKey("p1", "", "Red"))
}

func TestAddItemMergesSameVariant(t *testing.T) {
	s := New(nil)
	s.Hydrate()

	s.AddItem(vinyl, AddOptions{Size: "M", Color: "Black", Quantity: 2})
	s.AddItem(vinyl, AddOptions{Size: "M", Color: "Black", Quantity: 3})

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, "vinyl-1-M-Black", items[0].ID)
}

func TestAddItemDifferentVariantsAreSeparateLines(t *testing.T) {
	s := New(nil)
	s.Hydrate()

	s.AddItem(vinyl, AddOptions{Size: "M"})
	s.AddItem(vinyl, AddOptions{Size: "L"})

	assert.Len(t, s.Items(), 2)
	assert.True(t, s.HasItem("vinyl-1", "M", ""))
	assert.True(t, s.HasItem("vinyl-1", "L", ""))
}

func TestAddItemQuantityFloorsAtOne(t *testing.T) {
	s := New(nil)
	s.Hydrate()

	item := s.AddItem(vinyl, AddOptions{Quantity: 0})
	assert.Equal(t, 1, item.Quantity)

	item = s.AddItem(vinyl, AddOptions{Quantity: -4})
	assert.Equal(t, 2, item.Quantity)
}

func TestAddItemSnapshotsPrice(t *testing.T) {
	s := New(nil)
	s.Hydrate()

	s.AddItem(vinyl, AddOptions{})

	// Later price changes must not touch the line already in the cart.
	changed := vinyl
	changed.Price = 9999
	s.AddItem(changed, AddOptions{Size: "L"})

	first, ok := s.ItemByID(ItemKey("vinyl-1", "", ""))
	require.True(t, ok)
	assert.Equal(t, int64(2499), first.Price)
}

func TestUpdateQuantity(t *testing.T) {
	s := New(nil)
	s.Hydrate()
	key := s.AddItem(vinyl, AddOptions{Quantity: 2}).ID

	s.UpdateQuantity(key, 7)
	item, ok := s.ItemByID(key)
	require.True(t, ok)
	assert.Equal(t, 7, item.Quantity)

	// Zero or below removes the line entirely.
	s.UpdateQuantity(key, 0)
	_, ok = s.ItemByID(key)
	assert.False(t, ok)
}

func TestRemoveItemUnknownKeyIsNoop(t *testing.T) {
	s := New(nil)
	s.Hydrate()
	s.AddItem(vinyl, AddOptions{})

	s.RemoveItem("missing-default-default")
	assert.Len(t, s.Items(), 1)
}

func TestClear(t *testing.T) {
	s := New(nil)
	s.Hydrate()
	s.AddItem(vinyl, AddOptions{Quantity: 3})

	s.Clear()
	assert.Empty(t, s.Items())
	assert.Equal(t, 0, s.ItemCount())
}

func TestSummaryTotals(t *testing.T) {
	s := New(nil)
	s.Hydrate()

	// 2 x 2499 = 4998, below the free shipping threshold.
	s.AddItem(vinyl, AddOptions{Quantity: 2})

	sum := s.Summary()
	assert.Equal(t, int64(4998), sum.Subtotal)
	assert.Equal(t, int64(425), sum.Tax) // round(4998 * 0.085) = round(424.83)
	assert.Equal(t, int64(899), sum.Shipping)
	assert.Equal(t, int64(0), sum.Discount)
	assert.Equal(t, int64(4998+425+899), sum.Total)
	assert.Equal(t, 2, sum.ItemCount)
}

func TestSummaryFreeShippingAtThreshold(t *testing.T) {
	s := New(nil)
	s.Hydrate()
	s.AddItem(Product{ID: "box", Name: "Box Set", Price: 5000}, AddOptions{})

	sum := s.Summary()
	assert.Equal(t, int64(5000), sum.Subtotal)
	assert.Equal(t, int64(0), sum.Shipping)
}

func TestSummaryEmptyCart(t *testing.T) {
	s := New(nil)
	s.Hydrate()

	sum := s.Summary()
	assert.Equal(t, int64(0), sum.Subtotal)
	assert.Equal(t, int64(0), sum.Tax)
	// An empty cart still quotes the base shipping rate.
	assert.Equal(t, int64(899), sum.Shipping)
	assert.Equal(t, 0, sum.ItemCount)
}

func TestToggleCart(t *testing.T) {
	s := New(nil)
	assert.False(t, s.IsOpen())
	s.ToggleCart()
	assert.True(t, s.IsOpen())
	s.CloseCart()
	assert.False(t, s.IsOpen())
	s.OpenCart()
	assert.True(t, s.IsOpen())
}

func TestHydrateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	storage := NewFileStorage(dir, StorageKey)

	first := New(storage)
	assert.False(t, first.Loaded())
	first.Hydrate()
	require.True(t, first.Loaded())

	first.AddItem(vinyl, AddOptions{Size: "M", Quantity: 2})

	// A second store over the same file sees the persisted lines.
	second := New(NewFileStorage(dir, StorageKey))
	second.Hydrate()

	items := second.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "vinyl-1-M-default", items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, int64(2499), items[0].Price)
}

func TestHydrateCorruptFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, StorageKey+".json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	s := New(NewFileStorage(dir, StorageKey))
	s.Hydrate()

	assert.True(t, s.Loaded())
	assert.Empty(t, s.Items())
}

func TestHydrateMissingFileStartsEmpty(t *testing.T) {
	s := New(NewFileStorage(t.TempDir(), StorageKey))
	s.Hydrate()
	assert.True(t, s.Loaded())
	assert.Empty(t, s.Items())
}

type failingStorage struct{}

func (failingStorage) Load() ([]Item, error)   { return nil, errors.New("load failed") }
func (failingStorage) Save(items []Item) error { return errors.New("save failed") }

func TestMutationsSurviveStorageFailure(t *testing.T) {
	s := New(failingStorage{})
	s.Hydrate()

	s.AddItem(vinyl, AddOptions{Quantity: 2})
	s.UpdateQuantity(ItemKey("vinyl-1", "", ""), 5)

	// Memory stays authoritative even when every write fails.
	item, ok := s.ItemByID(ItemKey("vinyl-1", "", ""))
	require.True(t, ok)
	assert.Equal(t, 5, item.Quantity)
}

func TestManagerReturnsSameStorePerGuest(t *testing.T) {
	m := NewManager(t.TempDir())

	a := m.Get("guest-a")
	b := m.Get("guest-a")
	c := m.Get("guest-b")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.True(t, a.Loaded())
}

func TestManagerSanitizesGuestID(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)

	s := m.Get("../evil/id")
	s.AddItem(vinyl, AddOptions{})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, StorageKey+"-___evil_id.json", entries[0].Name())
}
