package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Derescio/bugleworldmusic/entity"
	"github.com/Derescio/bugleworldmusic/pkg/resp"
	"github.com/Derescio/bugleworldmusic/repository"
)

type GenreController struct{ Repo *repository.GenreRepository }

func NewGenreController(db *gorm.DB) *GenreController {
	return &GenreController{Repo: repository.NewGenreRepository(db)}
}

// GET /genres — ordered by name
func (ctl *GenreController) List(c *gin.Context) {
	genres, err := ctl.Repo.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, genres)
}

// POST /admin/genres
func (ctl *GenreController) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	genre := entity.Genre{Name: strings.TrimSpace(req.Name)}
	if err := ctl.Repo.Create(&genre); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, genre)
}
