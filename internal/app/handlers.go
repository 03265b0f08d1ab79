package app

import (
	"github.com/takashi605/blog-backend/internal/http/handlers"
	"github.com/takashi605/blog-backend/internal/pkg/logger"
)

type Handlers struct {
	Health *handlers.HealthHandler
	Blog   *handlers.BlogHandler
	Admin  *handlers.AdminBlogHandler
	Image  *handlers.ImageHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health: handlers.NewHealthHandler(),
		Blog:   handlers.NewBlogHandler(serviceset.BlogPost, serviceset.Curated),
		Admin:  handlers.NewAdminBlogHandler(serviceset.BlogPost, serviceset.Curated),
		Image:  handlers.NewImageHandler(serviceset.Image),
	}
}
