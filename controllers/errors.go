package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Derescio/bugleworldmusic/pkg/resp"
	"github.com/Derescio/bugleworldmusic/services"
)

// fail maps service errors onto the response taxonomy: validation -> 400
// with details, missing record -> 404, anything else -> opaque 500.
func fail(c *gin.Context, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		resp.ValidationFailed(c, vErr.Fields)
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	default:
		resp.ServerError(c, err)
	}
}
