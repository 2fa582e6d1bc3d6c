package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/resort-booking/internal/booking"
	"github.com/iliyamo/resort-booking/internal/config"
	"github.com/iliyamo/resort-booking/internal/database"
	"github.com/iliyamo/resort-booking/internal/handler"
	"github.com/iliyamo/resort-booking/internal/logging"
	"github.com/iliyamo/resort-booking/internal/middleware"
	"github.com/iliyamo/resort-booking/internal/queue"
	"github.com/iliyamo/resort-booking/internal/receipt"
	"github.com/iliyamo/resort-booking/internal/repository"
	"github.com/iliyamo/resort-booking/internal/router"
	"github.com/iliyamo/resort-booking/internal/store"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func run(ctx context.Context, cfg config.Config, log *logrus.Logger) error {
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	rdb := config.NewRedisClient(ctx)
	var sessions booking.SessionStore
	if rdb != nil {
		defer rdb.Close()
		sessions = store.NewRedisStore(rdb, cfg.SessionPrefix, cfg.SessionTTL)
	} else {
		log.Warn("redis unavailable; sessions kept in memory, cache and rate limit disabled")
		sessions = store.NewMemoryStore()
	}

	resorts := repository.NewResortRepo(db)
	rooms := repository.NewRoomRepo(db)
	bookings := repository.NewBookingRepo(db)
	signer := receipt.NewSigner(cfg.ReceiptSecret, cfg.ReceiptTTL)
	brokerURL := queue.BrokerURL()
	svc := booking.NewService(rooms, sessions, bookings, signer, queue.NewPublisher(brokerURL, log),
		booking.SystemClock{}, cfg.HotelTZ, log)

	bookingLog := queue.NewBookingLog(cfg.BookingLogPath)
	defer bookingLog.Close()
	consumer := &queue.Consumer{URL: brokerURL, Out: bookingLog, Log: log}
	go func() {
		if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.WithError(err).Error("booking consumer stopped")
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewRequestValidator()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(log))

	router.RegisterRoutes(e)
	router.RegisterCatalog(e, handler.NewCatalogHandler(resorts, rooms),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb, log))
	router.RegisterBooking(e, handler.NewBookingSessionHandler(svc), handler.NewBookingHandler(bookings, signer),
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, log))

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env, "hotel_tz": cfg.HotelTZ.String()}).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
