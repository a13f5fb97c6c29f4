package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Temutjin2k/car-rental-system/config"
	httpserver "github.com/Temutjin2k/car-rental-system/internal/adapter/http/server"
	"github.com/Temutjin2k/car-rental-system/internal/adapter/rentalapi"
	"github.com/Temutjin2k/car-rental-system/internal/service/account"
	"github.com/Temutjin2k/car-rental-system/internal/service/booking"
	rentcalc "github.com/Temutjin2k/car-rental-system/internal/service/calculator"
	"github.com/Temutjin2k/car-rental-system/internal/service/catalog"
	"github.com/Temutjin2k/car-rental-system/internal/service/review"
	"github.com/Temutjin2k/car-rental-system/internal/service/session"
	"github.com/Temutjin2k/car-rental-system/pkg/logger"
)

// App wires the rental API client, the services and the HTTP server.
type App struct {
	httpServer *httpserver.API

	cfg config.Config
	log logger.Logger
}

func NewApplication(ctx context.Context, cfg config.Config, log logger.Logger) (*App, error) {
	// outbound client
	client := rentalapi.New(cfg.RentalAPI.BaseURL, cfg.RentalAPI.Timeout, log)

	// services
	calc := rentcalc.New()
	sessions := session.NewManager(cfg.Session.Secure, cfg.Session.TTL)
	catalogSvc := catalog.NewCatalogService(client, calc, log)
	bookingSvc := booking.NewBookingService(client, calc, log)
	reviewSvc := review.NewReviewService(client, log)
	accountSvc := account.NewAccountService(client, log)

	server, err := httpserver.New(cfg, catalogSvc, bookingSvc, reviewSvc, accountSvc, sessions, log)
	if err != nil {
		return nil, err
	}

	return &App{
		httpServer: server,
		cfg:        cfg,
		log:        log,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	defer func() {
		a.close(ctx)
		a.log.Info(ctx, "application closed")
	}()

	errCh := make(chan error, 1)
	a.httpServer.Run(ctx, errCh)

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	a.log.Info(ctx, "application started")
	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		a.log.Info(ctx, "shutting down application", "signal", sig.String())
		return nil
	}
}

func (a *App) close(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error(ctx, "failed to shutdown HTTP server", err)
	}
}
