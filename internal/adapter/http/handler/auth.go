package handler

import (
	"context"
	"net/http"

	"github.com/Temutjin2k/car-rental-system/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
	"github.com/Temutjin2k/car-rental-system/internal/service/session"
	"github.com/Temutjin2k/car-rental-system/pkg/logger"
	wrap "github.com/Temutjin2k/car-rental-system/pkg/logger/wrapper"
	"github.com/Temutjin2k/car-rental-system/pkg/validator"
)

type AccountService interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	Profile(ctx context.Context, sess *models.Session) (*models.User, error)
	AllUsers(ctx context.Context, sess *models.Session) ([]models.User, error)
}

type Auth struct {
	account  AccountService
	sessions *session.Manager
	render   *Renderer
	l        logger.Logger
}

func NewAuth(account AccountService, sessions *session.Manager, render *Renderer, l logger.Logger) *Auth {
	return &Auth{
		account:  account,
		sessions: sessions,
		render:   render,
		l:        l,
	}
}

// LoginPage shows the login form. Logged-in users are sent straight to
// the dashboard.
func (h *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	sess := models.SessionFromContext(r.Context())
	if !sess.IsAnonymous() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := map[string]any{"Errors": map[string]string{}, "Email": ""}
	if r.URL.Query().Get("registered") == "1" {
		data["Notice"] = "Registration successful. Please log in."
	}
	h.render.Render(w, r, http.StatusOK, "login.html", data)
}

// RegisterPage shows the registration form.
func (h *Auth) RegisterPage(w http.ResponseWriter, r *http.Request) {
	sess := models.SessionFromContext(r.Context())
	if !sess.IsAnonymous() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	h.render.Render(w, r, http.StatusOK, "register.html", map[string]any{
		"Errors": map[string]string{},
		"Form":   &dto.RegisterForm{},
	})
}

// Login handles the posted credentials form. A failed login re-renders
// the form with the remote error text untouched.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "login_user")

	form := dto.LoginFormFromRequest(r)

	v := validator.New()
	dto.ValidateLogin(v, form)
	if !v.Valid() {
		h.render.Render(w, r, http.StatusUnprocessableEntity, "login.html", map[string]any{
			"Errors": v.Errors,
			"Email":  form.Email,
		})
		return
	}

	sess, err := h.account.Login(ctx, form.Email, form.Password)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to login user", err)
		h.render.Render(w, r, GetCode(err), "login.html", map[string]any{
			"Error":  remoteMessage(err),
			"Errors": map[string]string{},
			"Email":  form.Email,
		})
		return
	}

	h.sessions.Set(w, sess)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Register handles the posted registration form.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "register_user")

	form := dto.RegisterFormFromRequest(r)

	v := validator.New()
	dto.ValidateRegister(v, form)
	if !v.Valid() {
		h.render.Render(w, r, http.StatusUnprocessableEntity, "register.html", map[string]any{
			"Errors": v.Errors,
			"Form":   form,
		})
		return
	}

	if err := h.account.Register(ctx, form.ToModel()); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to register a new user", err)
		h.render.Render(w, r, GetCode(err), "register.html", map[string]any{
			"Error":  remoteMessage(err),
			"Errors": map[string]string{},
			"Form":   form,
		})
		return
	}

	http.Redirect(w, r, "/login?registered=1", http.StatusSeeOther)
}

// Logout clears the session cookies. The token is not revoked upstream.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
