package shop

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/shop-booking/internal/audit"
	booking "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	domain "github.com/BruksfildServices01/shop-booking/internal/domain/shop"
	"github.com/BruksfildServices01/shop-booking/internal/models"
	bookinguc "github.com/BruksfildServices01/shop-booking/internal/usecase/booking"
)

type AuditReader interface {
	List(ctx context.Context, shopID uuid.UUID, f audit.Filter) ([]models.AuditLog, int64, error)
}

type AuditPage struct {
	Items []models.AuditLog `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

type ListAuditLogs struct {
	repo   domain.Repository
	reader AuditReader
}

func NewListAuditLogs(repo domain.Repository, reader AuditReader) *ListAuditLogs {
	return &ListAuditLogs{repo: repo, reader: reader}
}

func (uc *ListAuditLogs) Execute(
	ctx context.Context,
	actor bookinguc.Actor,
	shopID uuid.UUID,
	f audit.Filter,
) (*AuditPage, error) {

	caller, err := callerRole(ctx, uc.repo, actor, shopID)
	if err != nil {
		return nil, err
	}
	if err := booking.Authorize(caller, booking.ActionViewAudit); err != nil {
		return nil, err
	}

	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}

	items, total, err := uc.reader.List(ctx, shopID, f)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.AuditLog{}
	}

	return &AuditPage{
		Items: items,
		Total: total,
		Page:  f.Page,
		Limit: f.Limit,
	}, nil
}
