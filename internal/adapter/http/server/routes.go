package server

import (
	"net/http"

	"github.com/Temutjin2k/car-rental-system/internal/domain/types"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// setupRoutes - setups http routes
func (a *API) setupRoutes() {
	// System
	a.mux.HandleFunc("/health", a.routes.health.HealthCheck)
	a.mux.Handle("/metrics", promhttp.Handler())
	a.mux.HandleFunc("/swagger/", httpSwagger.Handler())

	// Static assets
	a.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(a.cfg.Server.StaticDir))))

	// Auth screens
	a.mux.HandleFunc("GET /login", a.routes.auth.LoginPage)
	a.mux.HandleFunc("POST /login", a.routes.auth.Login)
	a.mux.HandleFunc("GET /register", a.routes.auth.RegisterPage)
	a.mux.HandleFunc("POST /register", a.routes.auth.Register)
	a.mux.HandleFunc("POST /logout", a.routes.auth.Logout)

	// Screens
	a.mux.HandleFunc("GET /", a.routes.pages.Landing)
	a.mux.Handle("GET /dashboard", a.m.RequireSession(a.routes.pages.Dashboard))
	a.mux.Handle("GET /make-reservation", a.m.RequireSession(a.routes.pages.MakeReservation))
	a.mux.Handle("GET /manage-reservation", a.m.RequireSession(a.routes.pages.ManageReservation))
	a.mux.Handle("GET /settings", a.m.RequireSession(a.routes.pages.Settings))
	a.mux.Handle("GET /car/{licensePlate}", a.m.RequireSession(a.routes.pages.CarDetails))
	a.mux.Handle("GET /admin", a.m.RequireRoles(a.routes.pages.Admin, types.RoleAdmin))

	// Page actions
	a.mux.Handle("POST /api/search", a.m.RequireSession(a.routes.api.Search))
	a.mux.HandleFunc("POST /api/quote", a.routes.api.Quote) // pure computation, no session needed
	a.mux.Handle("POST /api/reservations", a.m.RequireSession(a.routes.api.Reserve))
	a.mux.Handle("POST /api/reservations/cancel", a.m.RequireSession(a.routes.api.Cancel))
	a.mux.Handle("POST /api/reviews", a.m.RequireSession(a.routes.api.Review))
}
