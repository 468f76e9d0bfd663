package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/shop-booking/internal/httperr"
	"github.com/BruksfildServices01/shop-booking/internal/httpresp"
	bookinguc "github.com/BruksfildServices01/shop-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create     *bookinguc.CreateBooking
	get        *bookinguc.GetBooking
	listShop   *bookinguc.ListShopBookings
	confirm    *bookinguc.ConfirmBooking
	cancel     *bookinguc.CancelBooking
	reschedule *bookinguc.RescheduleBooking
	rate       *bookinguc.RateBooking
}

type BookingUseCases struct {
	Create     *bookinguc.CreateBooking
	Get        *bookinguc.GetBooking
	ListShop   *bookinguc.ListShopBookings
	Confirm    *bookinguc.ConfirmBooking
	Cancel     *bookinguc.CancelBooking
	Reschedule *bookinguc.RescheduleBooking
	Rate       *bookinguc.RateBooking
}

func NewBookingHandler(uc BookingUseCases) *BookingHandler {
	return &BookingHandler{
		create:     uc.Create,
		get:        uc.Get,
		listShop:   uc.ListShop,
		confirm:    uc.Confirm,
		cancel:     uc.Cancel,
		reschedule: uc.Reschedule,
		rate:       uc.Rate,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ProviderID *uuid.UUID           `json:"provider_id"`
	Date       string               `json:"date" binding:"required"`
	Time       string               `json:"time" binding:"required"`
	Services   []domain.ServiceLine `json:"services" binding:"required"`
	Notes      string               `json:"notes"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

type RescheduleBookingRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type RateBookingRequest struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// ======================================================
// HELPERS
// ======================================================

// target resolves the caller and the shop/booking ids of the route.
func target(c *gin.Context) (bookinguc.Actor, uuid.UUID, uuid.UUID, bool) {
	actor, ok := actorFrom(c)
	if !ok {
		return actor, uuid.Nil, uuid.Nil, false
	}
	shopID, ok := uuidParam(c, "shopId")
	if !ok {
		return actor, uuid.Nil, uuid.Nil, false
	}
	bookingID, ok := uuidParam(c, "bookingId")
	if !ok {
		return actor, uuid.Nil, uuid.Nil, false
	}
	return actor, shopID, bookingID, true
}

// ======================================================
// CREATE / READ
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	shopID, ok := uuidParam(c, "shopId")
	if !ok {
		return
	}

	var req CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.create.Execute(c.Request.Context(), bookinguc.CreateBookingInput{
		Actor:      actor,
		ShopID:     shopID,
		ProviderID: req.ProviderID,
		Date:       req.Date,
		Time:       req.Time,
		Services:   req.Services,
		Notes:      req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) Get(c *gin.Context) {
	actor, shopID, bookingID, ok := target(c)
	if !ok {
		return
	}

	view, err := h.get.Execute(c.Request.Context(), actor, shopID, bookingID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, view)
}

// ListByMonth serves ?year=&month= for shop staff.
func (h *BookingHandler) ListByMonth(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	shopID, ok := uuidParam(c, "shopId")
	if !ok {
		return
	}

	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil {
		httperr.BadRequest(c, domain.CodeInvalidMonth, "year and month are required.")
		return
	}

	list, err := h.listShop.Execute(c.Request.Context(), actor, shopID, year, month)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, list)
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	actor, shopID, bookingID, ok := target(c)
	if !ok {
		return
	}

	b, err := h.confirm.Execute(c.Request.Context(), actor, shopID, bookingID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	actor, shopID, bookingID, ok := target(c)
	if !ok {
		return
	}

	// empty body is a customer cancelling without a reason
	var req CancelBookingRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), actor, shopID, bookingID, req.Reason)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Reschedule(c *gin.Context) {
	actor, shopID, bookingID, ok := target(c)
	if !ok {
		return
	}

	var req RescheduleBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.reschedule.Execute(c.Request.Context(), actor, shopID, bookingID, req.Date, req.Time)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Rate(c *gin.Context) {
	actor, shopID, bookingID, ok := target(c)
	if !ok {
		return
	}

	var req RateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.rate.Execute(c.Request.Context(), actor, shopID, bookingID, req.Score, req.Comment)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, r)
}
