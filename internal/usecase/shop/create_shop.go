package shop

import (
	"context"
	"regexp"
	"strings"

	"github.com/BruksfildServices01/shop-booking/internal/audit"
	domain "github.com/BruksfildServices01/shop-booking/internal/domain/shop"
	"github.com/BruksfildServices01/shop-booking/internal/models"
	"github.com/BruksfildServices01/shop-booking/internal/timezone"
	bookinguc "github.com/BruksfildServices01/shop-booking/internal/usecase/booking"
)

var slugJunk = regexp.MustCompile(`[^a-z0-9]+`)

type CreateShopInput struct {
	Name     string
	Slug     string
	Phone    string
	Address  string
	Timezone string
}

type CreateShop struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateShop(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateShop {
	return &CreateShop{
		repo:  repo,
		audit: audit,
	}
}

// Execute opens a shop owned by the caller.
func (uc *CreateShop) Execute(
	ctx context.Context,
	actor bookinguc.Actor,
	in CreateShopInput,
) (*models.Shop, error) {

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrInvalidShop
	}

	slug := Slugify(in.Slug)
	if slug == "" {
		slug = Slugify(name)
	}
	if slug == "" {
		return nil, ErrInvalidShop
	}

	tz := strings.TrimSpace(in.Timezone)
	if tz == "" {
		tz = timezone.DefaultTimezone
	}
	if !timezone.IsValid(tz) {
		return nil, ErrInvalidTimezone
	}

	shop := &models.Shop{
		Name:     name,
		Slug:     slug,
		Phone:    strings.TrimSpace(in.Phone),
		Address:  strings.TrimSpace(in.Address),
		Timezone: tz,
	}

	if err := uc.repo.CreateShopWithOwner(ctx, shop, actor.UserID); err != nil {
		return nil, err
	}

	actorID := actor.UserID
	uc.audit.Dispatch(audit.Event{
		ShopID:   shop.ID,
		UserID:   &actorID,
		Action:   "shop_created",
		Entity:   "shop",
		EntityID: &shop.ID,
		Metadata: map[string]any{"slug": shop.Slug},
	})

	return shop, nil
}

func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugJunk.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
