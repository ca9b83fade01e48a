package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Derescio/bugleworldmusic/entity"
	"github.com/Derescio/bugleworldmusic/pkg/resp"
	"github.com/Derescio/bugleworldmusic/repository"
)

type TagController struct{ Repo *repository.TagRepository }

func NewTagController(db *gorm.DB) *TagController {
	return &TagController{Repo: repository.NewTagRepository(db)}
}

// GET /tags — ordered by name
func (ctl *TagController) List(c *gin.Context) {
	tags, err := ctl.Repo.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, tags)
}

// POST /admin/tags
func (ctl *TagController) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	tag := entity.Tag{Name: strings.TrimSpace(req.Name)}
	if err := ctl.Repo.Create(&tag); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, tag)
}
