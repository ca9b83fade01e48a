package cart

import (
	"fmt"
	"sync"
	"time"
)

// Pricing rules, all in cents.
const (
	// Tax is 8.5%, applied as round(subtotal * 85 / 1000) in integer math.
	taxRateNumer = 85
	taxRateDenom = 1000

	FreeShippingThreshold = 5000 // $50
	ShippingCost          = 899  // $8.99

	// StorageKey is the fixed key the item collection is persisted under.
	StorageKey = "bugle-cart-storage"
)

// Product is the denormalized snapshot captured when an item is added.
// The cart never re-reads product state after that point.
type Product struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"` // cents
	Image string `json:"image,omitempty"`
}

// Item is one cart line. Identity is the (product, size, color) composite
// encoded in ID; Price is immutable after add.
type Item struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Product   Product   `json:"product"`
	Quantity  int       `json:"quantity"`
	Size      string    `json:"size,omitempty"`
	Color     string    `json:"color,omitempty"`
	Price     int64     `json:"price"` // cents, captured at add time
	AddedAt   time.Time `json:"addedAt"`
}

// Summary is derived from the items on every call, never stored.
type Summary struct {
	Subtotal  int64 `json:"subtotal"`
	Tax       int64 `json:"tax"`
	Shipping  int64 `json:"shipping"`
	Discount  int64 `json:"discount"` // reserved for coupon codes
	Total     int64 `json:"total"`
	ItemCount int   `json:"itemCount"`
}

// ItemKey builds the composite identity for a (product, size, color)
// triple; absent options collapse to "default".
func ItemKey(productID, size, color string) string {
	if size == "" {
		size = "default"
	}
	if color == "" {
		color = "default"
	}
	return fmt.Sprintf("%s-%s-%s", productID, size, color)
}

// AddOptions qualifies an AddItem call. Quantity below 1 means 1.
type AddOptions struct {
	Size     string
	Color    string
	Quantity int
}

// Store holds an ordered item collection plus the transient open/closed
// flag. Construct with New and call Hydrate once before serving reads;
// until then the store reports empty and not loaded.
//
// Item operations cannot fail: storage write errors leave the in-memory
// state authoritative and the next mutation retries the write.
type Store struct {
	mu      sync.Mutex
	storage Storage

	items  []Item
	isOpen bool
	loaded bool
}

func New(storage Storage) *Store {
	return &Store{storage: storage}
}

// Hydrate loads persisted items. A load failure is not an error to the
// caller: the store simply starts empty. Loaded() flips either way.
func (s *Store) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return
	}
	items, err := s.storage.Load()
	if err != nil {
		items = nil
	}
	s.items = items
	s.loaded = true
}

// Loaded reports whether Hydrate has run; distinguishes "not yet loaded"
// from "loaded and empty".
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// AddItem merges into an existing line with the same (product, size,
// color) key, or appends a new line snapshotting the product's current
// price. Always succeeds; there is no stock check here.
func (s *Store) AddItem(p Product, opts AddOptions) Item {
	qty := opts.Quantity
	if qty < 1 {
		qty = 1
	}
	key := ItemKey(p.ID, opts.Size, opts.Color)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == key {
			s.items[i].Quantity += qty
			item := s.items[i]
			s.persistLocked()
			return item
		}
	}

	item := Item{
		ID:        key,
		ProductID: p.ID,
		Product:   p,
		Quantity:  qty,
		Size:      opts.Size,
		Color:     opts.Color,
		Price:     p.Price,
		AddedAt:   time.Now().UTC(),
	}
	s.items = append(s.items, item)
	s.persistLocked()
	return item
}

// RemoveItem deletes the line with the given key; absent keys are a no-op.
func (s *Store) RemoveItem(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(key)
	s.persistLocked()
}

// UpdateQuantity sets the line's quantity; zero or negative removes it,
// a line must not linger at quantity <= 0.
func (s *Store) UpdateQuantity(key string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity <= 0 {
		s.removeLocked(key)
	} else {
		for i := range s.items {
			if s.items[i].ID == key {
				s.items[i].Quantity = quantity
				break
			}
		}
	}
	s.persistLocked()
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persistLocked()
}

// Visibility flag: transient, never persisted, resets on load.

func (s *Store) ToggleCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = !s.isOpen
}

func (s *Store) OpenCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = true
}

func (s *Store) CloseCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = false
}

func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOpen
}

// Summary derives the order totals from the current items. Pure and
// side-effect free; total = subtotal + tax + shipping - discount.
func (s *Store) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var subtotal int64
	var count int
	for _, it := range s.items {
		subtotal += it.Price * int64(it.Quantity)
		count += it.Quantity
	}

	// Round half up, same as Math.round on the reference rates.
	tax := (subtotal*taxRateNumer + taxRateDenom/2) / taxRateDenom

	var shipping int64
	if subtotal < FreeShippingThreshold {
		shipping = ShippingCost
	}

	var discount int64 // coupons not implemented

	return Summary{
		Subtotal:  subtotal,
		Tax:       tax,
		Shipping:  shipping,
		Discount:  discount,
		Total:     subtotal + tax + shipping - discount,
		ItemCount: count,
	}
}

func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int
	for _, it := range s.items {
		count += it.Quantity
	}
	return count
}

func (s *Store) ItemByID(key string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == key {
			return it, true
		}
	}
	return Item{}, false
}

func (s *Store) HasItem(productID, size, color string) bool {
	key := ItemKey(productID, size, color)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == key {
			return true
		}
	}
	return false
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) removeLocked(key string) {
	for i := range s.items {
		if s.items[i].ID == key {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// persistLocked writes the full item collection. Errors are swallowed:
// memory stays authoritative and the next mutation writes again.
func (s *Store) persistLocked() {
	if s.storage == nil {
		return
	}
	items := make([]Item, len(s.items))
	copy(items, s.items)
	_ = s.storage.Save(items)
}
