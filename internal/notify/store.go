package notify

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/shop-booking/internal/httperr"
	"github.com/BruksfildServices01/shop-booking/internal/models"
)

// Store is the in-app inbox: it persists notifications and serves
// them back to their recipients.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Send(ctx context.Context, msg Message) error {
	n := models.Notification{
		RecipientID: msg.RecipientID,
		ShopID:      msg.ShopID,
		BookingID:   msg.BookingID,
		Kind:        msg.Kind,
		Title:       msg.Title,
		Body:        msg.Body,
	}
	if err := s.db.WithContext(ctx).Create(&n).Error; err != nil {
		return errors.Wrap(err, "store notification")
	}
	return nil
}

func (s *Store) ListForUser(
	ctx context.Context,
	userID uuid.UUID,
	unreadOnly bool,
	limit int,
) ([]models.Notification, error) {

	if limit <= 0 || limit > 200 {
		limit = 50
	}

	q := s.db.WithContext(ctx).Where("recipient_id = ?", userID)
	if unreadOnly {
		q = q.Where("read_at IS NULL")
	}

	var out []models.Notification
	if err := q.Order("created_at DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list notifications")
	}
	return out, nil
}

func (s *Store) MarkRead(
	ctx context.Context,
	userID uuid.UUID,
	notificationID uuid.UUID,
) error {

	res := s.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ? AND read_at IS NULL", notificationID, userID).
		Update("read_at", time.Now())
	if res.Error != nil {
		return errors.Wrap(res.Error, "mark notification read")
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := s.db.WithContext(ctx).
			Model(&models.Notification{}).
			Where("id = ? AND recipient_id = ?", notificationID, userID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "check notification")
		}
		if count == 0 {
			return httperr.ErrBusiness("notification_not_found")
		}
	}
	return nil
}
