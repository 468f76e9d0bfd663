package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/shop-booking/internal/domain/shop"
	"github.com/BruksfildServices01/shop-booking/internal/domain/user"
	"github.com/BruksfildServices01/shop-booking/internal/httperr"
	"github.com/BruksfildServices01/shop-booking/internal/httpresp"
	"github.com/BruksfildServices01/shop-booking/internal/models"
	bookinguc "github.com/BruksfildServices01/shop-booking/internal/usecase/booking"
	shopuc "github.com/BruksfildServices01/shop-booking/internal/usecase/shop"
)

// Inbox is the caller's in-app notification list.
type Inbox interface {
	ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID uuid.UUID, notificationID uuid.UUID) error
}

type MeHandler struct {
	users       user.Repository
	memberships *shopuc.ListMemberships
	bookings    *bookinguc.ListUserBookings
	inbox       Inbox
}

func NewMeHandler(
	users user.Repository,
	memberships *shopuc.ListMemberships,
	bookings *bookinguc.ListUserBookings,
	inbox Inbox,
) *MeHandler {
	return &MeHandler{
		users:       users,
		memberships: memberships,
		bookings:    bookings,
		inbox:       inbox,
	}
}

type MeResponse struct {
	User        *models.User      `json:"user"`
	Memberships []shop.Membership `json:"memberships"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	u, err := h.users.GetByID(c.Request.Context(), actor.UserID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	memberships, err := h.memberships.Execute(c.Request.Context(), actor.UserID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, MeResponse{User: u, Memberships: memberships})
}

// MyBookings lists the caller's bookings; ?scope=upcoming|past|all.
func (h *MeHandler) MyBookings(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	list, err := h.bookings.Execute(c.Request.Context(), actor.UserID, c.Query("scope"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *MeHandler) Notifications(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	unread := c.Query("unread") == "true"
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	list, err := h.inbox.ListForUser(c.Request.Context(), actor.UserID, unread, limit)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *MeHandler) MarkNotificationRead(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.inbox.MarkRead(c.Request.Context(), actor.UserID, id); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"id": id, "read": true})
}
