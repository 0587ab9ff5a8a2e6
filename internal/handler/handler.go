package handler

import (
	"net/http"

	"smart-healthcare-backend/internal/apperror"
	"smart-healthcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP status codes: NotFound -> 404,
// Conflict -> 409, InvalidInput -> 400, everything else -> 500 with a
// generic message.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case apperror.IsNotFound(err):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case apperror.IsConflict(err):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case apperror.IsInvalidInput(err):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, fallback)
	}
}

// currentUser pulls the authenticated principal out of the gin context
// (set by the auth middleware)
func currentUser(c *gin.Context) (uint, string) {
	userID, _ := c.Get("userID")
	role, _ := c.Get("role")

	id, _ := userID.(uint)
	r, _ := role.(string)
	return id, r
}
