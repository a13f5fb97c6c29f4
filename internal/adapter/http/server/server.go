package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Temutjin2k/car-rental-system/config"
	"github.com/Temutjin2k/car-rental-system/internal/adapter/http/handler"
	"github.com/Temutjin2k/car-rental-system/internal/adapter/http/middleware"
	"github.com/Temutjin2k/car-rental-system/internal/service/session"
	"github.com/Temutjin2k/car-rental-system/pkg/logger"
	wrap "github.com/Temutjin2k/car-rental-system/pkg/logger/wrapper"
)

const serviceName = "car-rental-web"

const serverIPAddress = "%s:%s"

type API struct {
	mux    *http.ServeMux
	server *http.Server
	routes *handlers
	m      *middleware.Middleware

	addr string
	cfg  config.Config
	log  logger.Logger
}

type handlers struct {
	health *handler.Health
	pages  *handler.Pages
	auth   *handler.Auth
	api    *handler.API
}

func New(
	cfg config.Config,
	catalog handler.CatalogService,
	booking handler.BookingService,
	reviews handler.ReviewService,
	account handler.AccountService,
	sessions *session.Manager,
	log logger.Logger,
) (*API, error) {
	if account == nil {
		return nil, errors.New("account service is required")
	}

	render, err := handler.NewRenderer(cfg.Server.TemplateDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to init renderer: %w", err)
	}

	routes := &handlers{
		health: handler.NewHealth(serviceName, log),
		pages:  handler.NewPages(catalog, booking, reviews, account, render, log),
		auth:   handler.NewAuth(account, sessions, render, log),
		api:    handler.NewAPI(catalog, booking, reviews, log),
	}

	mid := middleware.NewMiddleware(sessions, log)

	api := &API{
		mux:    http.NewServeMux(),
		routes: routes,
		m:      mid,
		addr:   fmt.Sprintf(serverIPAddress, cfg.Server.Host, cfg.Server.Port),
		cfg:    cfg,
		log:    log,
	}

	api.setupRoutes()

	api.server = &http.Server{
		Addr:    api.addr,
		Handler: api.withMiddleware(),
	}

	return api, nil
}

func (a *API) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ctx = wrap.WithAction(ctx, "http_server_stop")

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, "http_server_start")
		a.log.Info(ctx, "started http server", "address", a.addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
	}()
}

// withMiddleware applies middlewares to the mux
func (a *API) withMiddleware() http.Handler {
	return a.m.Recover(a.m.RequestID(a.m.Logging(a.m.Metrics(serviceName)(a.m.Session(a.mux)))))
}
