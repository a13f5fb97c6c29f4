package handler

import (
	"net/http"

	"github.com/Temutjin2k/car-rental-system/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
	"github.com/Temutjin2k/car-rental-system/pkg/logger"
	wrap "github.com/Temutjin2k/car-rental-system/pkg/logger/wrapper"
	"github.com/Temutjin2k/car-rental-system/pkg/validator"
)

// API serves the JSON endpoints behind the dynamic page actions.
type API struct {
	catalog CatalogService
	booking BookingService
	reviews ReviewService
	l       logger.Logger
}

func NewAPI(catalog CatalogService, booking BookingService, reviews ReviewService, l logger.Logger) *API {
	return &API{
		catalog: catalog,
		booking: booking,
		reviews: reviews,
		l:       l,
	}
}

// Search godoc
// @Summary      Search cars
// @Description  Searches the catalog by the first two active filter fields
// @Tags         Cars
// @Accept       json
// @Produce      json
// @Param        request body dto.SearchRequest true "Search filters in activation order"
// @Success      200  {object}  map[string]any
// @Failure      422  {object}  map[string]any
// @Router       /api/search [post]
func (h *API) Search(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "search_cars")
	sess := models.SessionFromContext(ctx)

	req := &dto.SearchRequest{}
	if err := readJSON(w, r, req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	dto.ValidateSearch(v, req)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	state := req.ToState()
	q, ok := state.Query()
	if !ok {
		v.AddError("filters", "exactly two filter fields must be active")
		failedValidationResponse(w, v.Errors)
		return
	}

	cars, err := h.catalog.Search(ctx, sess.Token, q)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "search failed", err)
		errorResponse(w, GetCode(err), remoteMessage(err))
		return
	}

	response := envelope{"cars": cars}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

// Quote godoc
// @Summary      Price quote
// @Description  Computes the day count and total for a date range
// @Tags         Reservations
// @Accept       json
// @Produce      json
// @Param        request body dto.QuoteRequest true "Rental period and daily price"
// @Success      200  {object}  map[string]any
// @Failure      422  {object}  map[string]any
// @Router       /api/quote [post]
func (h *API) Quote(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "quote")

	req := &dto.QuoteRequest{}
	if err := readJSON(w, r, req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	dto.ValidateQuote(v, req)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	quote, err := h.booking.Quote(req.PickUpDate, req.DropOffDate, req.PricePerDay)
	if err != nil {
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{"quote": quote}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

// Reserve godoc
// @Summary      Reserve a car
// @Description  Submits a reservation for the logged-in user
// @Tags         Reservations
// @Accept       json
// @Produce      json
// @Param        request body dto.ReserveRequest true "Reservation details"
// @Success      201  {object}  map[string]any
// @Failure      409  {object}  map[string]any
// @Router       /api/reservations [post]
func (h *API) Reserve(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "reserve_car")
	sess := models.SessionFromContext(ctx)

	req := &dto.ReserveRequest{}
	if err := readJSON(w, r, req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	dto.ValidateReserve(v, req)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	if err := h.booking.Reserve(ctx, sess, req.ToModel(sess.Email)); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to reserve car", err)
		errorResponse(w, GetCode(err), remoteMessage(err))
		return
	}

	response := envelope{"message": "reservation submitted"}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

// Cancel godoc
// @Summary      Cancel a reservation
// @Description  Cancels the reservation of one car for the logged-in user
// @Tags         Reservations
// @Accept       json
// @Produce      json
// @Param        request body dto.CancelRequest true "License plate"
// @Success      200  {object}  map[string]any
// @Router       /api/reservations/cancel [post]
func (h *API) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "cancel_reservation")
	sess := models.SessionFromContext(ctx)

	req := &dto.CancelRequest{}
	if err := readJSON(w, r, req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	dto.ValidateCancel(v, req)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	if err := h.booking.Cancel(ctx, sess, req.LicensePlate); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to cancel reservation", err)
		errorResponse(w, GetCode(err), remoteMessage(err))
		return
	}

	response := envelope{"message": "reservation cancelled"}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

// Review godoc
// @Summary      Submit a review
// @Description  Submits a rating and text for a car the user rented
// @Tags         Reviews
// @Accept       json
// @Produce      json
// @Param        request body dto.ReviewRequest true "Review details"
// @Success      201  {object}  map[string]any
// @Failure      422  {object}  map[string]any
// @Router       /api/reviews [post]
func (h *API) Review(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "submit_review")
	sess := models.SessionFromContext(ctx)

	req := &dto.ReviewRequest{}
	if err := readJSON(w, r, req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	dto.ValidateReview(v, req)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	if err := h.reviews.Submit(ctx, sess, req.ToModel(sess.Email)); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to submit review", err)
		errorResponse(w, GetCode(err), remoteMessage(err))
		return
	}

	response := envelope{"message": "review submitted"}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}
