package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shop-booking/internal/audit"
	"github.com/BruksfildServices01/shop-booking/internal/cache"
	"github.com/BruksfildServices01/shop-booking/internal/clock"
	"github.com/BruksfildServices01/shop-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/shop-booking/internal/db"
	infraRepo "github.com/BruksfildServices01/shop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/shop-booking/internal/jobs"
	"github.com/BruksfildServices01/shop-booking/internal/logger"
	"github.com/BruksfildServices01/shop-booking/internal/middleware"
	"github.com/BruksfildServices01/shop-booking/internal/notify"
	"github.com/BruksfildServices01/shop-booking/internal/routes"
	ucBooking "github.com/BruksfildServices01/shop-booking/internal/usecase/booking"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}

	rdb, err := cache.NewRedis(ctx, cfg)
	if err != nil {
		return err
	}
	defer rdb.Close()

	clk := clock.NewRealClock()

	notifier := notify.NewDispatcher(notify.NewStore(db), 256)
	auditor := audit.NewDispatcher(audit.New(db))

	fx := &ucBooking.Effects{
		Notifier: notifier,
		Audit:    auditor,
		Cache:    cache.NewBookingCache(rdb, cfg.BookingsCacheTTL),
		Guard:    cache.NewActionGuard(rdb, cfg.ActionLockTTL),
		Clock:    clk,
	}

	scheduler := jobs.NewScheduler(
		ucBooking.NewSweepOverdue(infraRepo.NewBookingGormRepository(db), fx, cfg.NoShowGrace),
		time.Minute,
	)
	if err := scheduler.Register(cfg.SweepSchedule); err != nil {
		return err
	}
	scheduler.Start()

	limiter := middleware.NewIPRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case t := <-ticker.C:
				limiter.Prune(t)
			}
		}
	}()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	h := routes.NewHandlers(routes.Deps{
		DB:      db,
		Config:  cfg,
		Clock:   clk,
		Effects: fx,
	})
	routes.RegisterRoutes(r, cfg, h, limiter)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "error", err)
	}
	scheduler.Stop(shutdownCtx)

	// transitions are done; flush what they queued
	notifier.Close()
	auditor.Close()

	return nil
}
