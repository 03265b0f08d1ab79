package blog

import (
	"context"
	"errors"
	"fmt"

	"github.com/takashi605/blog-backend/internal/data/records"
	types "github.com/takashi605/blog-backend/internal/domain"
	"gorm.io/gorm"
)

func (r *blogPostRepo) FindTopTechPick(ctx context.Context) (types.TopTechPick, error) {
	var row records.TopTechPick
	if err := r.db.WithContext(ctx).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.TopTechPick{}, &types.NotFoundError{Entity: "top tech pick", Key: "current"}
		}
		return types.TopTechPick{}, fmt.Errorf("load top tech pick: %w", err)
	}
	post, err := r.Find(ctx, row.PostID)
	if err != nil {
		return types.TopTechPick{}, err
	}
	return types.NewTopTechPick(post), nil
}

func (r *blogPostRepo) UpdateTopTechPick(ctx context.Context, pick types.TopTechPick) (types.TopTechPick, error) {
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&records.TopTechPick{}).Error; err != nil {
			return fmt.Errorf("clear top tech pick: %w", err)
		}
		row := records.TopTechPick{PostID: pick.Post().ID()}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("insert top tech pick: %w", err)
		}
		return nil
	}); err != nil {
		return types.TopTechPick{}, err
	}
	return r.FindTopTechPick(ctx)
}

func (r *blogPostRepo) FindPickUpPosts(ctx context.Context) (types.PickUpPostSet, error) {
	var rows []records.PickupPost
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return types.PickUpPostSet{}, fmt.Errorf("load pickup posts: %w", err)
	}
	posts, err := r.loadCuratedPosts(ctx, rows)
	if err != nil {
		return types.PickUpPostSet{}, err
	}
	return types.NewPickUpPostSet(posts)
}

func (r *blogPostRepo) UpdatePickUpPosts(ctx context.Context, set types.PickUpPostSet) (types.PickUpPostSet, error) {
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&records.PickupPost{}).Error; err != nil {
			return fmt.Errorf("clear pickup posts: %w", err)
		}
		for _, post := range set.Posts() {
			row := records.PickupPost{PostID: post.ID()}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("insert pickup post %s: %w", post.ID(), err)
			}
		}
		return nil
	}); err != nil {
		return types.PickUpPostSet{}, err
	}
	return r.FindPickUpPosts(ctx)
}

func (r *blogPostRepo) FindPopularPosts(ctx context.Context) (types.PopularPostSet, error) {
	var rows []records.PopularPost
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return types.PopularPostSet{}, fmt.Errorf("load popular posts: %w", err)
	}
	posts, err := r.loadCuratedPostsPopular(ctx, rows)
	if err != nil {
		return types.PopularPostSet{}, err
	}
	return types.NewPopularPostSet(posts)
}

func (r *blogPostRepo) UpdatePopularPosts(ctx context.Context, set types.PopularPostSet) (types.PopularPostSet, error) {
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&records.PopularPost{}).Error; err != nil {
			return fmt.Errorf("clear popular posts: %w", err)
		}
		for _, post := range set.Posts() {
			row := records.PopularPost{PostID: post.ID()}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("insert popular post %s: %w", post.ID(), err)
			}
		}
		return nil
	}); err != nil {
		return types.PopularPostSet{}, err
	}
	return r.FindPopularPosts(ctx)
}

func (r *blogPostRepo) loadCuratedPosts(ctx context.Context, rows []records.PickupPost) ([]*types.BlogPost, error) {
	posts := make([]*types.BlogPost, 0, len(rows))
	for _, row := range rows {
		post, err := r.Find(ctx, row.PostID)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (r *blogPostRepo) loadCuratedPostsPopular(ctx context.Context, rows []records.PopularPost) ([]*types.BlogPost, error) {
	posts := make([]*types.BlogPost, 0, len(rows))
	for _, row := range rows {
		post, err := r.Find(ctx, row.PostID)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}
