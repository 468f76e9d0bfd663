package booking

import "github.com/BruksfildServices01/shop-booking/internal/httperr"

// Business error codes surfaced to callers.
const (
	CodeTransitionRejected = "transition_rejected"
	CodeReasonRequired     = "reason_required"
	CodeNotAuthorized      = "not_authorized"
	CodeNotFound           = "booking_not_found"
	CodeShopNotFound       = "shop_not_found"
	CodeAlreadyRated       = "already_rated"
	CodeInvalidRating      = "invalid_rating"
	CodeInvalidSlot        = "invalid_slot"
	CodeTimeConflict       = "time_conflict"
	CodeInvalidServices    = "invalid_services"
	CodeInvalidScope       = "invalid_scope"
	CodeInvalidProvider    = "invalid_provider"
	CodeActionInProgress   = "action_in_progress"
	CodeOutsideHours       = "outside_working_hours"
	CodeInvalidMonth       = "invalid_month"
)

var (
	ErrTransitionRejected = httperr.ErrBusiness(CodeTransitionRejected)
	ErrReasonRequired     = httperr.ErrBusiness(CodeReasonRequired)
	ErrNotAuthorized      = httperr.ErrBusiness(CodeNotAuthorized)
	ErrNotFound           = httperr.ErrBusiness(CodeNotFound)
	ErrShopNotFound       = httperr.ErrBusiness(CodeShopNotFound)
	ErrAlreadyRated       = httperr.ErrBusiness(CodeAlreadyRated)
	ErrInvalidRating      = httperr.ErrBusiness(CodeInvalidRating)
	ErrInvalidSlot        = httperr.ErrBusiness(CodeInvalidSlot)
	ErrTimeConflict       = httperr.ErrBusiness(CodeTimeConflict)
	ErrInvalidServices    = httperr.ErrBusiness(CodeInvalidServices)
	ErrInvalidScope       = httperr.ErrBusiness(CodeInvalidScope)
	ErrInvalidProvider    = httperr.ErrBusiness(CodeInvalidProvider)
	ErrActionInProgress   = httperr.ErrBusiness(CodeActionInProgress)
	ErrOutsideHours       = httperr.ErrBusiness(CodeOutsideHours)
	ErrInvalidMonth       = httperr.ErrBusiness(CodeInvalidMonth)
)
