package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/takashi605/blog-backend/internal/data/records"
	types "github.com/takashi605/blog-backend/internal/domain"
	"gorm.io/gorm"
)

func PtrInt(v int) *int { return &v }

// SeedImage registers an image row directly.
func SeedImage(tb testing.TB, ctx context.Context, db *gorm.DB, path string) types.Image {
	tb.Helper()
	row := records.Image{ID: uuid.New(), FilePath: path}
	if err := db.WithContext(ctx).Create(&row).Error; err != nil {
		tb.Fatalf("seed image: %v", err)
	}
	return types.NewImage(row.ID, row.FilePath)
}

// BuildPost assembles an in-memory aggregate with a seeded thumbnail and
// the given dates, ready to be saved through the repository.
func BuildPost(tb testing.TB, ctx context.Context, db *gorm.DB, title string, postDate, publishedDate types.JstDate) *types.BlogPost {
	tb.Helper()
	thumbnail := SeedImage(tb, ctx, db, "/thumbs/"+uuid.NewString()+".jpg")
	post := types.NewBlogPost(uuid.New(), title)
	post.SetThumbnail(thumbnail.ID(), thumbnail.Path())
	post.SetPostDate(postDate)
	post.SetLastUpdateDate(postDate)
	post.SetPublishedDate(publishedDate)
	return post
}

// MustDate builds a JstDate or fails the test.
func MustDate(tb testing.TB, year, month, day int) types.JstDate {
	tb.Helper()
	d, err := types.NewJstDate(year, time.Month(month), day)
	if err != nil {
		tb.Fatalf("date %d-%d-%d: %v", year, month, day, err)
	}
	return d
}
