package account

import (
	"context"

	"github.com/Temutjin2k/car-rental-system/internal/adapter/rentalapi"
	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
	"github.com/Temutjin2k/car-rental-system/internal/domain/types"
	"github.com/Temutjin2k/car-rental-system/pkg/logger"
	wrap "github.com/Temutjin2k/car-rental-system/pkg/logger/wrapper"
	"github.com/Temutjin2k/car-rental-system/pkg/metrics"
)

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*rentalapi.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	GetUser(ctx context.Context, token, email string) (*models.User, error)
	GetAllUsers(ctx context.Context, token string) ([]models.User, error)
}

// AccountService handles authentication and user profile lookups.
type AccountService struct {
	api AuthAPI
	l   logger.Logger
}

func NewAccountService(api AuthAPI, l logger.Logger) *AccountService {
	return &AccountService{
		api: api,
		l:   l,
	}
}

// Login exchanges credentials for a session. Failed attempts surface the
// remote error untouched so the caller can show it verbatim.
func (s *AccountService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	ctx = wrap.WithAction(ctx, "login")

	resp, err := s.api.Login(ctx, email, password)

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	metrics.LoginsTotal.WithLabelValues("car-rental-web", outcome).Inc()

	if err != nil {
		s.l.Warn(ctx, "login failed")
		return nil, err
	}

	sess := &models.Session{
		Token:        resp.Token,
		RefreshToken: resp.RefreshToken,
		Roles:        resp.Role,
		Email:        email,
	}

	s.l.Info(ctx, "user logged in")
	return sess, nil
}

// Register creates a new account. Registration does not log the user in,
// the caller redirects to the login screen on success.
func (s *AccountService) Register(ctx context.Context, req models.RegisterRequest) error {
	ctx = wrap.WithAction(ctx, "register")

	if err := s.api.Register(ctx, req); err != nil {
		return err
	}

	s.l.Info(ctx, "user registered")
	return nil
}

// Profile fetches the profile of the logged-in user.
func (s *AccountService) Profile(ctx context.Context, sess *models.Session) (*models.User, error) {
	if sess.IsAnonymous() {
		return nil, types.ErrNotLoggedIn
	}
	return s.api.GetUser(ctx, sess.Token, sess.Email)
}

// AllUsers lists every registered user. The remote API enforces the
// admin requirement, the role check here only saves a round trip.
func (s *AccountService) AllUsers(ctx context.Context, sess *models.Session) ([]models.User, error) {
	if sess.IsAnonymous() {
		return nil, types.ErrNotLoggedIn
	}
	return s.api.GetAllUsers(ctx, sess.Token)
}
