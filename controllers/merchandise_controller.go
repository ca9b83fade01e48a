package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Derescio/bugleworldmusic/pkg/resp"
	"github.com/Derescio/bugleworldmusic/services"
)

type MerchandiseController struct{ Svc *services.MerchandiseService }

func NewMerchandiseController(s *services.MerchandiseService) *MerchandiseController {
	return &MerchandiseController{Svc: s}
}

// GET /merchandise — public store listing, active products only
func (ctl *MerchandiseController) List(c *gin.Context) {
	ctl.list(c, true)
}

// GET /admin/merchandise
func (ctl *MerchandiseController) ListAll(c *gin.Context) {
	ctl.list(c, false)
}

func (ctl *MerchandiseController) list(c *gin.Context, activeOnly bool) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	merch, pagination, err := ctl.Svc.List(page, limit, activeOnly)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"merchandise": merch, "pagination": pagination})
}

// GET /merchandise/:id
func (ctl *MerchandiseController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid merchandise id")
		return
	}
	m, err := ctl.Svc.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, m)
}

// POST /admin/merchandise
func (ctl *MerchandiseController) Create(c *gin.Context) {
	var in services.MerchandiseIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := ctl.Svc.Create(&in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, m)
}

// PUT /admin/merchandise/:id
func (ctl *MerchandiseController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid merchandise id")
		return
	}
	var in services.MerchandiseIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := ctl.Svc.Update(uint(id), &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, m)
}

// DELETE /admin/merchandise/:id
func (ctl *MerchandiseController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid merchandise id")
		return
	}
	if err := ctl.Svc.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "merchandise deleted"})
}
