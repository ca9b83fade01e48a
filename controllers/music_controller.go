package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Derescio/bugleworldmusic/pkg/resp"
	"github.com/Derescio/bugleworldmusic/services"
)

type MusicController struct{ Svc *services.MusicService }

func NewMusicController(s *services.MusicService) *MusicController {
	return &MusicController{Svc: s}
}

// GET /music — public listing, active records only
func (ctl *MusicController) List(c *gin.Context) {
	ctl.list(c, true)
}

// GET /admin/music — everything, inactive included
func (ctl *MusicController) ListAll(c *gin.Context) {
	ctl.list(c, false)
}

func (ctl *MusicController) list(c *gin.Context, activeOnly bool) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	music, pagination, err := ctl.Svc.List(page, limit, activeOnly)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"music": music, "pagination": pagination})
}

// GET /music/featured?limit=
func (ctl *MusicController) Featured(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
	music, err := ctl.Svc.Featured(limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"music": music})
}

// GET /music/search?q=
func (ctl *MusicController) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		resp.BadRequest(c, "q is required")
		return
	}
	music, err := ctl.Svc.Search(query)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"music": music})
}

// GET /music/type/:type — album / single / ep
func (ctl *MusicController) ByType(c *gin.Context) {
	music, err := ctl.Svc.ByType(c.Param("type"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"music": music})
}

// GET /music/:id
func (ctl *MusicController) Get(c *gin.Context) {
	music, err := ctl.Svc.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, music)
}

// POST /admin/music
func (ctl *MusicController) Create(c *gin.Context) {
	var in services.MusicIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	music, err := ctl.Svc.Create(&in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, music)
}

// PUT /admin/music/:id — full-replace semantics for every association
// list present in the payload
func (ctl *MusicController) Update(c *gin.Context) {
	var in services.MusicIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	music, err := ctl.Svc.Update(c.Param("id"), &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, music)
}

// DELETE /admin/music/:id
func (ctl *MusicController) Delete(c *gin.Context) {
	if err := ctl.Svc.Delete(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "music deleted"})
}
