package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shop-booking/internal/audit"
	"github.com/BruksfildServices01/shop-booking/internal/httperr"
	"github.com/BruksfildServices01/shop-booking/internal/httpresp"
	"github.com/BruksfildServices01/shop-booking/internal/timezone"
	shopuc "github.com/BruksfildServices01/shop-booking/internal/usecase/shop"
)

type AuditLogsHandler struct {
	list *shopuc.ListAuditLogs
}

func NewAuditLogsHandler(list *shopuc.ListAuditLogs) *AuditLogsHandler {
	return &AuditLogsHandler{list: list}
}

// List serves ?action=&entity=&from=&to=&page=&limit= for shop managers.
func (h *AuditLogsHandler) List(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	shopID, ok := uuidParam(c, "shopId")
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(timezone.DateLayout, from)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid from date.")
			return
		}
		f.From = &t
	}

	if to := c.Query("to"); to != "" {
		t, err := time.Parse(timezone.DateLayout, to)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid to date.")
			return
		}
		f.To = &t
	}

	out, err := h.list.Execute(c.Request.Context(), actor, shopID, f)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, out)
}
