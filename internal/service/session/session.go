package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
)

// Fixed cookie keys, mirroring the storage keys the rental platform has
// always used.
const (
	CookieToken        = "token"
	CookieRefreshToken = "refresh_token"
	CookieRole         = "role"
	CookieEmail        = "email"
)

// Manager is the single place session state is read or written. Handlers
// receive the session through the request context instead of reading
// storage ad hoc.
type Manager struct {
	secure bool
	ttl    time.Duration
}

func NewManager(secure bool, ttl time.Duration) *Manager {
	return &Manager{
		secure: secure,
		ttl:    ttl,
	}
}

// Get reads the session from the request cookies. A missing or partial
// session is reported as absent, never as an error.
func (m *Manager) Get(r *http.Request) (*models.Session, bool) {
	token := cookieValue(r, CookieToken)
	if token == "" {
		return nil, false
	}

	s := &models.Session{
		Token:        token,
		RefreshToken: cookieValue(r, CookieRefreshToken),
		Email:        cookieValue(r, CookieEmail),
	}

	// roles travel base64-wrapped because the JSON array is not
	// cookie-safe
	if encoded := cookieValue(r, CookieRole); encoded != "" {
		if raw, err := base64.RawURLEncoding.DecodeString(encoded); err == nil {
			json.Unmarshal(raw, &s.Roles)
		}
	}

	return s, true
}

// Set writes the full session under the fixed cookie keys.
func (m *Manager) Set(w http.ResponseWriter, s *models.Session) {
	roles, _ := json.Marshal(s.Roles)

	m.setCookie(w, CookieToken, s.Token)
	m.setCookie(w, CookieRefreshToken, s.RefreshToken)
	m.setCookie(w, CookieRole, base64.RawURLEncoding.EncodeToString(roles))
	m.setCookie(w, CookieEmail, s.Email)
}

// Clear expires every session cookie. Logout is purely local; the token
// is not revoked upstream.
func (m *Manager) Clear(w http.ResponseWriter) {
	for _, name := range []string{CookieToken, CookieRefreshToken, CookieRole, CookieEmail} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   m.secure,
		})
	}
}

func (m *Manager) setCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(m.ttl),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

// TokenInfo is the best-effort view of the bearer token claims shown on
// the settings screen.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// PeekToken decodes the JWT claims without verifying the signature.
// Verification is the rental API's job; this is display-only and no
// request is ever gated on it.
func PeekToken(token string) (TokenInfo, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}

	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return TokenInfo{}, false
	}

	info := TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}

	return info, true
}
