package blog

import (
	"context"

	"github.com/google/uuid"
)

// BlogPostRepository is the persistence port for the BlogPost aggregate.
// Save and Update write the whole aggregate atomically and return the
// re-read result; Update replaces the entire content list while keeping
// the post id. Content order survives a save/load round trip.
type BlogPostRepository interface {
	Find(ctx context.Context, id uuid.UUID) (*BlogPost, error)
	Save(ctx context.Context, post *BlogPost) (*BlogPost, error)
	Update(ctx context.Context, post *BlogPost) (*BlogPost, error)
	// FindLatests lists posts by post date descending; a nil quantity
	// means no limit.
	FindLatests(ctx context.Context, quantity *int) ([]*BlogPost, error)
	FindAll(ctx context.Context) ([]*BlogPost, error)

	FindTopTechPick(ctx context.Context) (TopTechPick, error)
	UpdateTopTechPick(ctx context.Context, pick TopTechPick) (TopTechPick, error)
	FindPickUpPosts(ctx context.Context) (PickUpPostSet, error)
	UpdatePickUpPosts(ctx context.Context, set PickUpPostSet) (PickUpPostSet, error)
	FindPopularPosts(ctx context.Context) (PopularPostSet, error)
	UpdatePopularPosts(ctx context.Context, set PopularPostSet) (PopularPostSet, error)
}

// ImageRepository is the persistence port for registered images.
type ImageRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (Image, error)
	FindByPath(ctx context.Context, path string) (Image, error)
	Create(ctx context.Context, image Image) (Image, error)
	FindAll(ctx context.Context) ([]Image, error)
}
