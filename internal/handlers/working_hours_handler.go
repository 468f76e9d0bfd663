package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/shop-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/shop-booking/internal/httperr"
	"github.com/BruksfildServices01/shop-booking/internal/httpresp"
	"github.com/BruksfildServices01/shop-booking/internal/models"
	scheduleuc "github.com/BruksfildServices01/shop-booking/internal/usecase/schedule"
)

type WorkingHoursHandler struct {
	getHours     *scheduleuc.GetWorkingHours
	updateHours  *scheduleuc.UpdateWorkingHours
	availability *scheduleuc.GetAvailability
}

func NewWorkingHoursHandler(
	getHours *scheduleuc.GetWorkingHours,
	updateHours *scheduleuc.UpdateWorkingHours,
	availability *scheduleuc.GetAvailability,
) *WorkingHoursHandler {
	return &WorkingHoursHandler{
		getHours:     getHours,
		updateHours:  updateHours,
		availability: availability,
	}
}

type WorkingDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	Active     bool   `json:"active"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required,dive"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	shopID, ok := uuidParam(c, "shopId")
	if !ok {
		return
	}
	providerID, ok := uuidParam(c, "providerId")
	if !ok {
		return
	}

	days, err := h.getHours.Execute(c.Request.Context(), shopID, providerID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, days)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	shopID, ok := uuidParam(c, "shopId")
	if !ok {
		return
	}
	providerID, ok := uuidParam(c, "providerId")
	if !ok {
		return
	}

	var req WorkingHoursUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	days := make([]models.WorkingHours, 0, len(req.Days))
	for _, d := range req.Days {
		days = append(days, models.WorkingHours{
			Weekday:    d.Weekday,
			Active:     d.Active,
			StartTime:  d.StartTime,
			EndTime:    d.EndTime,
			LunchStart: d.LunchStart,
			LunchEnd:   d.LunchEnd,
		})
	}

	saved, err := h.updateHours.Execute(c.Request.Context(), actor, shopID, providerID, days)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, saved)
}

// Availability handles GET /shops/:shopId/availability?provider_id=&date=&slot_minutes=
func (h *WorkingHoursHandler) Availability(c *gin.Context) {
	shopID, ok := uuidParam(c, "shopId")
	if !ok {
		return
	}

	providerID, err := uuid.Parse(c.Query("provider_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid provider_id.")
		return
	}

	slot := 0
	if raw := c.Query("slot_minutes"); raw != "" {
		slot, err = strconv.Atoi(raw)
		if err != nil || slot <= 0 {
			httperr.BadRequest(c, "invalid_slot", "Invalid slot_minutes.")
			return
		}
	}

	out, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		ShopID:      shopID,
		ProviderID:  providerID,
		Date:        c.Query("date"),
		SlotMinutes: slot,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, out)
}
