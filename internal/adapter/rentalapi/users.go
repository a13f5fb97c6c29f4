package rentalapi

import (
	"context"
	"net/url"

	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
	wrap "github.com/Temutjin2k/car-rental-system/pkg/logger/wrapper"
)

// GetAllUsers fetches every registered user. Bearer required.
func (c *Client) GetAllUsers(ctx context.Context, token string) ([]models.User, error) {
	var users []models.User
	if err := c.getJSON(ctx, "get_all_users", "/api/User/get-all-users", nil, token, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches one user profile by email. Bearer required.
func (c *Client) GetUser(ctx context.Context, token, email string) (*models.User, error) {
	ctx = wrap.WithUserEmail(ctx, email)

	params := url.Values{}
	params.Set("email", email)

	var user models.User
	if err := c.getJSON(ctx, "get_user", "/api/User/get-user", params, token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
