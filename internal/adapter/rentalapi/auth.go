package rentalapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
	"github.com/Temutjin2k/car-rental-system/internal/domain/types"
	wrap "github.com/Temutjin2k/car-rental-system/pkg/logger/wrapper"
)

// LoginResponse is the credential set returned by a successful login.
type LoginResponse struct {
	Token        string   `json:"token"`
	RefreshToken string   `json:"refreshToken"`
	Role         []string `json:"role"`
}

// Login authenticates against the rental API. The request is
// form-encoded per the remote contract; a failed login surfaces the
// server's error text verbatim.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	ctx = wrap.WithUserEmail(ctx, email)

	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	_, raw, err := c.call(ctx, "login", http.MethodPost, "/api/Auth/Login", nil, "",
		"application/x-www-form-urlencoded", []byte(form.Encode()))
	if err != nil {
		return nil, err
	}

	var resp LoginResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, wrap.Error(ctx, &types.RequestError{Message: "login: failed to decode response", Err: err})
	}
	if resp.Token == "" {
		return nil, wrap.Error(ctx, &types.RequestError{Message: "login: response carried no token"})
	}

	return &resp, nil
}

// Register submits a full profile payload. The remote API answers with
// plain success text or error text.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) error {
	ctx = wrap.WithUserEmail(ctx, req.Email)

	raw, err := c.postJSON(ctx, "register", "/api/Auth/register", nil, "", req)
	if err != nil {
		return err
	}

	// Some deployments answer 200 with an error sentence instead of a
	// non-2xx status.
	text := strings.ToLower(strings.TrimSpace(string(raw)))
	if strings.Contains(text, "error") || strings.Contains(text, "already exists") {
		return wrap.Error(ctx, &types.RequestError{Status: http.StatusOK, Message: strings.TrimSpace(string(raw))})
	}

	return nil
}
