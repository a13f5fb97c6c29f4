package middleware

import (
	"net/http"
	"strings"

	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
	"github.com/Temutjin2k/car-rental-system/internal/domain/types"
	wrap "github.com/Temutjin2k/car-rental-system/pkg/logger/wrapper"
)

// Session reads the cookie-backed session and injects it into the
// request context. A missing session is the anonymous session, never an
// error; protected routes decide what to do with it.
func (m *Middleware) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sess, ok := m.sessions.Get(r)
		if !ok {
			next.ServeHTTP(w, r.WithContext(models.WithSession(ctx, models.AnonymousSession())))
			return
		}

		ctx = wrap.WithUserEmail(ctx, sess.Email)
		next.ServeHTTP(w, r.WithContext(models.WithSession(ctx, sess)))
	})
}

// RequireSession rejects anonymous requests. Page requests are redirected
// to the login screen, API requests get a 401.
func (m *Middleware) RequireSession(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := models.SessionFromContext(r.Context())
		if sess.IsAnonymous() {
			m.deny(w, r, http.StatusUnauthorized, "authorization required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireRoles allows only sessions carrying one of the given roles.
func (m *Middleware) RequireRoles(next http.HandlerFunc, allowedRoles ...types.UserRole) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := models.SessionFromContext(r.Context())
		if sess.IsAnonymous() {
			m.deny(w, r, http.StatusUnauthorized, "authorization required")
			return
		}

		for _, role := range allowedRoles {
			if sess.HasRole(role) {
				next.ServeHTTP(w, r)
				return
			}
		}

		m.deny(w, r, http.StatusForbidden, "forbidden: insufficient role")
	})
}

func (m *Middleware) deny(w http.ResponseWriter, r *http.Request, status int, message string) {
	if isAPIRequest(r) {
		errorResponse(w, status, message)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func isAPIRequest(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/")
}
