package httperr

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Success bool   `json:"success"`
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

const CodeOperationFailed = "operation_failed"

func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Success: false,
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func TooManyRequests(c *gin.Context, code, message string) {
	Write(c, http.StatusTooManyRequests, code, message)
}

type businessMapping struct {
	status  int
	message string
}

var businessStatus = map[string]businessMapping{
	"reason_required":        {http.StatusBadRequest, "A cancellation reason is required."},
	"invalid_slot":           {http.StatusBadRequest, "Invalid date or time."},
	"invalid_services":       {http.StatusBadRequest, "Invalid services."},
	"invalid_rating":         {http.StatusBadRequest, "Rating must be between 1 and 5."},
	"invalid_scope":          {http.StatusBadRequest, "Unknown bookings scope."},
	"invalid_role":           {http.StatusBadRequest, "Unknown staff role."},
	"invalid_provider":       {http.StatusBadRequest, "Provider is not part of this shop."},
	"invalid_shop":           {http.StatusBadRequest, "Shop name and slug are required."},
	"invalid_timezone":       {http.StatusBadRequest, "Unknown timezone."},
	"invalid_request":        {http.StatusBadRequest, "Invalid request."},
	"invalid_date":           {http.StatusBadRequest, "Invalid date."},
	"invalid_working_hours":  {http.StatusBadRequest, "Invalid working hours."},
	"invalid_month":          {http.StatusBadRequest, "Invalid month."},
	"outside_working_hours":  {http.StatusBadRequest, "The selected time is outside the provider's working hours."},
	"not_authorized":         {http.StatusForbidden, "You are not allowed to perform this action."},
	"booking_not_found":      {http.StatusNotFound, "Booking not found."},
	"shop_not_found":         {http.StatusNotFound, "Shop not found."},
	"user_not_found":         {http.StatusNotFound, "User not found."},
	"notification_not_found": {http.StatusNotFound, "Notification not found."},
	"invalid_credentials":    {http.StatusUnauthorized, "Invalid email or password."},
	"email_already_exists":   {http.StatusConflict, "Email already registered."},
	"transition_rejected":    {http.StatusConflict, "This booking can no longer be changed this way. Please refresh."},
	"time_conflict":          {http.StatusConflict, "The selected time is no longer available."},
	"already_rated":          {http.StatusConflict, "This booking has already been rated."},
	"action_in_progress":     {http.StatusConflict, "This action is already in progress."},
	"slug_already_exists":    {http.StatusConflict, "Shop slug already taken."},
	"already_staff":          {http.StatusConflict, "User is already a staff member of this shop."},
}

// FromError writes the failure response for err. Business errors keep their
// code; anything else is reported as a generic operation failure.
func FromError(c *gin.Context, err error) {
	if code, ok := BusinessCode(err); ok {
		if m, known := businessStatus[code]; known {
			Write(c, m.status, code, m.message)
			return
		}
		BadRequest(c, code, code)
		return
	}

	slog.ErrorContext(c.Request.Context(), "request failed",
		"path", c.FullPath(),
		"error", err,
	)
	_ = c.Error(err)
	Internal(c, CodeOperationFailed, "Operation failed, please try again.")
}
