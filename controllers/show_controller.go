package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Derescio/bugleworldmusic/pkg/resp"
	"github.com/Derescio/bugleworldmusic/services"
)

type ShowController struct{ Svc *services.ShowService }

func NewShowController(s *services.ShowService) *ShowController {
	return &ShowController{Svc: s}
}

// GET /shows — soonest first
func (ctl *ShowController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	shows, pagination, err := ctl.Svc.List(page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"shows": shows, "pagination": pagination})
}

// POST /admin/shows
func (ctl *ShowController) Create(c *gin.Context) {
	var in services.ShowIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	show, err := ctl.Svc.Create(&in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, show)
}

// PUT /admin/shows/:id
func (ctl *ShowController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid show id")
		return
	}
	var in services.ShowIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	show, err := ctl.Svc.Update(uint(id), &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, show)
}

// DELETE /admin/shows/:id
func (ctl *ShowController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid show id")
		return
	}
	if err := ctl.Svc.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "show deleted"})
}
