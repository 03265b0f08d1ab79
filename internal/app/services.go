package app

import (
	types "github.com/takashi605/blog-backend/internal/domain"
	"github.com/takashi605/blog-backend/internal/pkg/logger"
	"github.com/takashi605/blog-backend/internal/services"
)

type Services struct {
	BlogPost services.BlogPostService
	Curated  services.CuratedPostService
	Image    services.ImageService
}

func wireServices(log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")
	factory := types.NewBlogPostFactory(types.NewImageContentFactory(reposet.Image))
	return Services{
		BlogPost: services.NewBlogPostService(log, reposet.BlogPost, factory),
		Curated:  services.NewCuratedPostService(log, reposet.BlogPost),
		Image:    services.NewImageService(log, reposet.Image),
	}
}
