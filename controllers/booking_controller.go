package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Derescio/bugleworldmusic/pkg/resp"
	"github.com/Derescio/bugleworldmusic/services"
)

type BookingController struct{ Svc *services.BookingService }

func NewBookingController(s *services.BookingService) *BookingController {
	return &BookingController{Svc: s}
}

// POST /bookings — public inquiry form
func (ctl *BookingController) Create(c *gin.Context) {
	var in services.BookingIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	b, err := ctl.Svc.Create(&in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, b)
}

// GET /admin/bookings?status=pending
func (ctl *BookingController) List(c *gin.Context) {
	bookings, err := ctl.Svc.List(c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, bookings)
}

// PATCH /admin/bookings/:id/status
func (ctl *BookingController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid booking id")
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Svc.UpdateStatus(uint(id), req.Status); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "booking updated"})
}
