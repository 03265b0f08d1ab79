package repos

import (
	"github.com/takashi605/blog-backend/internal/data/repos/blog"
	types "github.com/takashi605/blog-backend/internal/domain"
	"github.com/takashi605/blog-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type BlogPostRepo = types.BlogPostRepository
type ImageRepo = types.ImageRepository

func NewBlogPostRepo(db *gorm.DB, baseLog *logger.Logger) BlogPostRepo {
	return blog.NewBlogPostRepo(db, baseLog)
}

func NewImageRepo(db *gorm.DB, baseLog *logger.Logger) ImageRepo {
	return blog.NewImageRepo(db, baseLog)
}
