package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Derescio/bugleworldmusic/pkg/cart"
	"github.com/Derescio/bugleworldmusic/pkg/resp"
	"github.com/Derescio/bugleworldmusic/repository"
)

// CartController exposes the cart engine over HTTP. Carts are keyed by a
// client-generated guest id so anonymous visitors keep their cart across
// page loads.
type CartController struct {
	Carts *cart.Manager
	Merch *repository.MerchandiseRepository
}

func NewCartController(carts *cart.Manager, merch *repository.MerchandiseRepository) *CartController {
	return &CartController{Carts: carts, Merch: merch}
}

// guestStore resolves the caller's store, or replies 400 when no guest
// id was sent.
func (ctl *CartController) guestStore(c *gin.Context) *cart.Store {
	guestID := c.GetHeader("X-Guest-ID")
	if guestID == "" {
		guestID = c.Query("guest_id")
	}
	if guestID == "" {
		resp.BadRequest(c, "guest id is required")
		return nil
	}
	return ctl.Carts.Get(guestID)
}

func cartPayload(store *cart.Store) gin.H {
	summary := store.Summary()
	return gin.H{
		"items":     store.Items(),
		"summary":   summary,
		"formatted": cart.FormatSummary(summary),
	}
}

// GET /cart
func (ctl *CartController) Get(c *gin.Context) {
	store := ctl.guestStore(c)
	if store == nil {
		return
	}
	resp.OK(c, cartPayload(store))
}

type addCartItemRequest struct {
	ProductID uint   `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

// POST /cart/items — validates the product and snapshots its current
// price into the line item.
func (ctl *CartController) Add(c *gin.Context) {
	store := ctl.guestStore(c)
	if store == nil {
		return
	}

	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	m, err := ctl.Merch.FindByID(req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.BadRequest(c, "product does not exist")
			return
		}
		resp.ServerError(c, err)
		return
	}

	image := ""
	if len(m.ImageURLs) > 0 {
		image = m.ImageURLs[0]
	}
	product := cart.Product{
		ID:    strconv.FormatUint(uint64(m.ID), 10),
		Name:  m.Name,
		Price: m.Price,
		Image: image,
	}

	item := store.AddItem(product, cart.AddOptions{
		Size:     req.Size,
		Color:    req.Color,
		Quantity: req.Quantity,
	})
	resp.Created(c, gin.H{"item": item, "summary": store.Summary()})
}

// PATCH /cart/items/qty — qty <= 0 removes the line
func (ctl *CartController) UpdateQty(c *gin.Context) {
	store := ctl.guestStore(c)
	if store == nil {
		return
	}

	var req struct {
		ItemID   string `json:"itemId" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	store.UpdateQuantity(req.ItemID, req.Quantity)
	resp.OK(c, cartPayload(store))
}

// DELETE /cart/items
func (ctl *CartController) Remove(c *gin.Context) {
	store := ctl.guestStore(c)
	if store == nil {
		return
	}

	var req struct {
		ItemID string `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	store.RemoveItem(req.ItemID)
	resp.OK(c, cartPayload(store))
}

// DELETE /cart
func (ctl *CartController) Clear(c *gin.Context) {
	store := ctl.guestStore(c)
	if store == nil {
		return
	}
	store.Clear()
	resp.OK(c, cartPayload(store))
}
