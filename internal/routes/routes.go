package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/shop-booking/internal/audit"
	"github.com/BruksfildServices01/shop-booking/internal/clock"
	"github.com/BruksfildServices01/shop-booking/internal/config"
	"github.com/BruksfildServices01/shop-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/shop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/shop-booking/internal/middleware"
	"github.com/BruksfildServices01/shop-booking/internal/notify"
	ucBooking "github.com/BruksfildServices01/shop-booking/internal/usecase/booking"
	ucSchedule "github.com/BruksfildServices01/shop-booking/internal/usecase/schedule"
	ucShop "github.com/BruksfildServices01/shop-booking/internal/usecase/shop"
)

type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Clock   clock.Clock
	Effects *ucBooking.Effects
}

type Handlers struct {
	Auth     *handlers.AuthHandler
	Me       *handlers.MeHandler
	Shop     *handlers.ShopHandler
	Booking  *handlers.BookingHandler
	Audit    *handlers.AuditLogsHandler
	Schedule *handlers.WorkingHoursHandler
}

// NewHandlers wires repositories and use cases behind every handler.
func NewHandlers(d Deps) Handlers {

	// ======================================================
	// INFRA
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	shopRepo := infraRepo.NewShopGormRepository(d.DB)
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	scheduleRepo := infraRepo.NewScheduleGormRepository(d.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	slot := time.Duration(d.Config.SlotMinutes) * time.Minute

	bookingUC := handlers.BookingUseCases{
		Create:     ucBooking.NewCreateBooking(bookingRepo, d.Effects, slot),
		Get:        ucBooking.NewGetBooking(bookingRepo),
		ListShop:   ucBooking.NewListShopBookings(bookingRepo),
		Confirm:    ucBooking.NewConfirmBooking(bookingRepo, d.Effects),
		Cancel:     ucBooking.NewCancelBooking(bookingRepo, d.Effects),
		Reschedule: ucBooking.NewRescheduleBooking(bookingRepo, d.Effects, slot),
		Rate:       ucBooking.NewRateBooking(bookingRepo, d.Effects),
	}

	listUserBookings := ucBooking.NewListUserBookings(
		bookingRepo,
		d.Effects.Cache,
		d.Clock,
		d.Config.DefaultTimezone,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	return Handlers{
		Auth: handlers.NewAuthHandler(userRepo, d.Config, d.Clock),
		Me: handlers.NewMeHandler(
			userRepo,
			ucShop.NewListMemberships(shopRepo),
			listUserBookings,
			notify.NewStore(d.DB),
		),
		Shop: handlers.NewShopHandler(
			ucShop.NewCreateShop(shopRepo, d.Effects.Audit),
			ucShop.NewAddStaff(shopRepo, d.Effects.Audit),
			ucShop.NewListStaff(shopRepo),
		),
		Booking: handlers.NewBookingHandler(bookingUC),
		Audit:   handlers.NewAuditLogsHandler(ucShop.NewListAuditLogs(shopRepo, audit.New(d.DB))),
		Schedule: handlers.NewWorkingHoursHandler(
			ucSchedule.NewGetWorkingHours(scheduleRepo),
			ucSchedule.NewUpdateWorkingHours(scheduleRepo),
			ucSchedule.NewGetAvailability(scheduleRepo, d.Clock, d.Config.SlotMinutes),
		),
	}
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, h Handlers, authLimiter *middleware.IPRateLimiter) {

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		auth := api.Group("/auth")
		auth.Use(authLimiter.Middleware())
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
		}

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", h.Me.GetMe)
			secured.GET("/me/bookings", h.Me.MyBookings)
			secured.GET("/me/notifications", h.Me.Notifications)
			secured.PATCH("/me/notifications/:id/read", h.Me.MarkNotificationRead)

			// ------------------------------
			// SHOPS
			// ------------------------------
			secured.POST("/shops", h.Shop.Create)
			secured.GET("/shops/:shopId/staff", h.Shop.ListStaff)
			secured.POST("/shops/:shopId/staff", h.Shop.AddStaff)
			secured.GET("/shops/:shopId/audit-logs", h.Audit.List)

			// ------------------------------
			// SCHEDULE
			// ------------------------------
			secured.GET("/shops/:shopId/availability", h.Schedule.Availability)
			secured.GET("/shops/:shopId/providers/:providerId/working-hours", h.Schedule.Get)
			secured.PUT("/shops/:shopId/providers/:providerId/working-hours", h.Schedule.Update)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			bookings := secured.Group("/shops/:shopId/bookings")
			{
				bookings.GET("", h.Booking.ListByMonth)
				bookings.POST("", h.Booking.Create)
				bookings.GET("/:bookingId", h.Booking.Get)
				bookings.PATCH("/:bookingId/confirm", h.Booking.Confirm)
				bookings.PATCH("/:bookingId/cancel", h.Booking.Cancel)
				bookings.PATCH("/:bookingId/reschedule", h.Booking.Reschedule)
				bookings.POST("/:bookingId/rating", h.Booking.Rate)
			}
		}
	}
}
