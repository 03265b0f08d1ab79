package app

import (
	"github.com/takashi605/blog-backend/internal/http/middleware"
	"github.com/takashi605/blog-backend/internal/pkg/logger"
)

type Middleware struct {
	Auth *middleware.AuthMiddleware
}

func wireMiddleware(log *logger.Logger, cfg Config) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: middleware.NewAuthMiddleware(log, cfg.AdminJWTSecret),
	}
}
