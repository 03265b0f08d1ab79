package app

import (
	"github.com/takashi605/blog-backend/internal/data/repos"
	"github.com/takashi605/blog-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type Repos struct {
	BlogPost repos.BlogPostRepo
	Image    repos.ImageRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		BlogPost: repos.NewBlogPostRepo(db, log),
		Image:    repos.NewImageRepo(db, log),
	}
}
