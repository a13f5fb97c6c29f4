package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
	"github.com/Temutjin2k/car-rental-system/internal/domain/types"
	"github.com/Temutjin2k/car-rental-system/internal/service/filter"
	"github.com/Temutjin2k/car-rental-system/internal/service/session"
	"github.com/Temutjin2k/car-rental-system/pkg/logger"
	wrap "github.com/Temutjin2k/car-rental-system/pkg/logger/wrapper"
)

type CatalogService interface {
	ListAll(ctx context.Context, token string) ([]models.Car, error)
	GetByPlate(ctx context.Context, token, licensePlate string) (*models.Car, error)
	Search(ctx context.Context, token string, q filter.Query) ([]models.Car, error)
	Dropdowns(cars []models.Car) models.DropdownData
	Stats(cars []models.Car) models.CatalogStats
	SearchSubstring(cars []models.Car, query string) []models.Car
}

type BookingService interface {
	Quote(pickUpDate, dropOffDate string, pricePerDay float64) (models.Quote, error)
	Reserve(ctx context.Context, sess *models.Session, req models.ReservationRequest) error
	Cancel(ctx context.Context, sess *models.Session, licensePlate string) error
	History(ctx context.Context, sess *models.Session) ([]models.Reservation, error)
	All(ctx context.Context, sess *models.Session) ([]models.Reservation, error)
	SearchSubstring(reservations []models.Reservation, query string) []models.Reservation
}

type ReviewService interface {
	Submit(ctx context.Context, sess *models.Session, review models.Review) error
	All(ctx context.Context, sess *models.Session) ([]models.Review, error)
}

// Pages renders the HTML screens. Every screen loads its data from the
// rental API on each request; nothing is cached locally.
type Pages struct {
	catalog CatalogService
	booking BookingService
	reviews ReviewService
	account AccountService
	render  *Renderer
	l       logger.Logger
}

func NewPages(
	catalog CatalogService,
	booking BookingService,
	reviews ReviewService,
	account AccountService,
	render *Renderer,
	l logger.Logger,
) *Pages {
	return &Pages{
		catalog: catalog,
		booking: booking,
		reviews: reviews,
		account: account,
		render:  render,
		l:       l,
	}
}

// Landing is the public front page. Logged-in visitors go straight to
// the dashboard.
func (h *Pages) Landing(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.render.RenderError(w, r, http.StatusNotFound, "Page not found")
		return
	}

	sess := models.SessionFromContext(r.Context())
	if !sess.IsAnonymous() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	h.render.Render(w, r, http.StatusOK, "landing.html", map[string]any{})
}

// Dashboard shows the car catalog with the two-field search form, the
// dropdown values and the summary stats.
func (h *Pages) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "dashboard")
	sess := models.SessionFromContext(ctx)

	cars, err := h.catalog.ListAll(ctx, sess.Token)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to load car catalog", err)
		h.render.RenderError(w, r, GetCode(err), remoteMessage(err))
		return
	}

	state := stateFromQuery(r.URL.Query())
	results := cars

	data := map[string]any{
		"Session":   sess,
		"Fields":    types.FilterFields,
		"State":     state,
		"Dropdowns": h.catalog.Dropdowns(cars),
		"Stats":     h.catalog.Stats(cars),
	}

	if q, ok := state.Query(); ok {
		results, err = h.catalog.Search(ctx, sess.Token, q)
		if err != nil {
			h.l.Error(wrap.ErrorCtx(ctx, err), "search failed", err)
			h.render.RenderError(w, r, GetCode(err), remoteMessage(err))
			return
		}
	} else if len(state.Active()) == 1 {
		data["SearchError"] = "Fill in exactly two fields to search."
	}

	data["Cars"] = results
	h.render.Render(w, r, http.StatusOK, "dashboard.html", data)
}

// MakeReservation shows the booking form for one car.
func (h *Pages) MakeReservation(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "make_reservation_page")
	sess := models.SessionFromContext(ctx)

	licensePlate := r.URL.Query().Get("licensePlate")
	if licensePlate == "" {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	car, err := h.catalog.GetByPlate(ctx, sess.Token, licensePlate)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to load car", err)
		h.render.RenderError(w, r, GetCode(err), remoteMessage(err))
		return
	}

	h.render.Render(w, r, http.StatusOK, "make_reservation.html", map[string]any{
		"Session": sess,
		"Car":     car,
	})
}

// ManageReservation lists the reservation history of the session user,
// with cancel and review actions on each row. The optional q parameter
// narrows the list by substring match over every field.
func (h *Pages) ManageReservation(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "manage_reservation_page")
	sess := models.SessionFromContext(ctx)

	reservations, err := h.booking.History(ctx, sess)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to load reservation history", err)
		h.render.RenderError(w, r, GetCode(err), remoteMessage(err))
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query != "" {
		reservations = h.booking.SearchSubstring(reservations, query)
	}

	h.render.Render(w, r, http.StatusOK, "manage_reservation.html", map[string]any{
		"Session":      sess,
		"Reservations": reservations,
		"Query":        query,
	})
}

// CarDetails shows one car with its reviews.
func (h *Pages) CarDetails(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "car_details")
	sess := models.SessionFromContext(ctx)

	licensePlate := r.PathValue("licensePlate")

	car, err := h.catalog.GetByPlate(ctx, sess.Token, licensePlate)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to load car", err)
		h.render.RenderError(w, r, GetCode(err), remoteMessage(err))
		return
	}

	all, err := h.reviews.All(ctx, sess)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to load reviews", err)
		h.render.RenderError(w, r, GetCode(err), remoteMessage(err))
		return
	}

	reviews := make([]models.Review, 0, len(all))
	for _, review := range all {
		if review.LicensePlate == licensePlate {
			reviews = append(reviews, review)
		}
	}

	h.render.Render(w, r, http.StatusOK, "car.html", map[string]any{
		"Session": sess,
		"Car":     car,
		"Reviews": reviews,
	})
}

// Settings shows the profile of the session user plus the claims of the
// bearer token.
func (h *Pages) Settings(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "settings")
	sess := models.SessionFromContext(ctx)

	user, err := h.account.Profile(ctx, sess)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to load profile", err)
		h.render.RenderError(w, r, GetCode(err), remoteMessage(err))
		return
	}

	data := map[string]any{
		"Session": sess,
		"User":    user,
	}
	if info, ok := session.PeekToken(sess.Token); ok {
		data["TokenInfo"] = info
	}

	h.render.Render(w, r, http.StatusOK, "settings.html", data)
}

// Admin shows every reservation and every registered user, with the
// catalog summary on top. The optional q parameter narrows the
// reservation list.
func (h *Pages) Admin(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "admin_overview")
	sess := models.SessionFromContext(ctx)

	cars, err := h.catalog.ListAll(ctx, sess.Token)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to load car catalog", err)
		h.render.RenderError(w, r, GetCode(err), remoteMessage(err))
		return
	}

	reservations, err := h.booking.All(ctx, sess)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to load reservations", err)
		h.render.RenderError(w, r, GetCode(err), remoteMessage(err))
		return
	}

	users, err := h.account.AllUsers(ctx, sess)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to load users", err)
		h.render.RenderError(w, r, GetCode(err), remoteMessage(err))
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query != "" {
		reservations = h.booking.SearchSubstring(reservations, query)
	}

	h.render.Render(w, r, http.StatusOK, "admin.html", map[string]any{
		"Session":      sess,
		"Stats":        h.catalog.Stats(cars),
		"Reservations": reservations,
		"Users":        users,
		"Query":        query,
	})
}

// stateFromQuery rebuilds the filter state from the submitted search
// form. Fields are replayed in render order, so the first two non-empty
// fields become the active pair.
func stateFromQuery(values url.Values) *filter.State {
	state := filter.NewState()
	for _, f := range types.FilterFields {
		if v := strings.TrimSpace(values.Get(f.String())); v != "" {
			state.Set(f, v)
		}
	}
	return state
}
