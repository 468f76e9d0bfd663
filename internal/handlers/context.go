package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/shop-booking/internal/httperr"
	"github.com/BruksfildServices01/shop-booking/internal/middleware"
	bookinguc "github.com/BruksfildServices01/shop-booking/internal/usecase/booking"
)

func actorFrom(c *gin.Context) (bookinguc.Actor, bool) {
	userID, role, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Authentication required.")
		return bookinguc.Actor{}, false
	}
	return bookinguc.Actor{UserID: userID, PlatformRole: role}, true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid "+name+".")
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return false
	}
	return true
}
