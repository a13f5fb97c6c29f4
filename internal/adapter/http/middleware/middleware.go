package middleware

import (
	"github.com/Temutjin2k/car-rental-system/internal/service/session"
	"github.com/Temutjin2k/car-rental-system/pkg/logger"
)

type Middleware struct {
	sessions *session.Manager
	log      logger.Logger
}

func NewMiddleware(sessions *session.Manager, log logger.Logger) *Middleware {
	return &Middleware{
		sessions: sessions,
		log:      log,
	}
}
