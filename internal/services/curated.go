package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/takashi605/blog-backend/internal/data/repos"
	types "github.com/takashi605/blog-backend/internal/domain"
	"github.com/takashi605/blog-backend/internal/pkg/logger"
)

type CuratedPostService interface {
	// ViewTopTechPick serves readers; an unpublished pick is rejected.
	ViewTopTechPick(ctx context.Context) (*types.BlogPost, error)
	// ViewPickUpPosts serves readers; unpublished members are filtered
	// out, so fewer than three posts may come back.
	ViewPickUpPosts(ctx context.Context) ([]*types.BlogPost, error)
	ViewPopularPosts(ctx context.Context) ([]*types.BlogPost, error)

	SelectTopTechPick(ctx context.Context, postID uuid.UUID) (*types.BlogPost, error)
	SelectPickUpPosts(ctx context.Context, postIDs []uuid.UUID) ([]*types.BlogPost, error)
	SelectPopularPosts(ctx context.Context, postIDs []uuid.UUID) ([]*types.BlogPost, error)
}

type curatedPostService struct {
	log    *logger.Logger
	posts  repos.BlogPostRepo
	viewer types.PublishedPostViewer
}

func NewCuratedPostService(baseLog *logger.Logger, posts repos.BlogPostRepo) CuratedPostService {
	serviceLog := baseLog.With("service", "CuratedPostService")
	return &curatedPostService{
		log:    serviceLog,
		posts:  posts,
		viewer: types.NewPublishedPostViewer(),
	}
}

func (s *curatedPostService) ViewTopTechPick(ctx context.Context) (*types.BlogPost, error) {
	pick, err := s.posts.FindTopTechPick(ctx)
	if err != nil {
		return nil, err
	}
	return s.viewer.ViewPublishedPost(pick.Post())
}

func (s *curatedPostService) ViewPickUpPosts(ctx context.Context) ([]*types.BlogPost, error) {
	set, err := s.posts.FindPickUpPosts(ctx)
	if err != nil {
		return nil, err
	}
	return s.viewer.FilterPublishedPosts(set.Posts()), nil
}

func (s *curatedPostService) ViewPopularPosts(ctx context.Context) ([]*types.BlogPost, error) {
	set, err := s.posts.FindPopularPosts(ctx)
	if err != nil {
		return nil, err
	}
	return s.viewer.FilterPublishedPosts(set.Posts()), nil
}

func (s *curatedPostService) SelectTopTechPick(ctx context.Context, postID uuid.UUID) (*types.BlogPost, error) {
	post, err := s.posts.Find(ctx, postID)
	if err != nil {
		return nil, err
	}
	pick, err := s.posts.UpdateTopTechPick(ctx, types.NewTopTechPick(post))
	if err != nil {
		s.log.Error("SelectTopTechPick failed", "error", err, "post_id", postID)
		return nil, fmt.Errorf("update top tech pick: %w", err)
	}
	return pick.Post(), nil
}

func (s *curatedPostService) SelectPickUpPosts(ctx context.Context, postIDs []uuid.UUID) ([]*types.BlogPost, error) {
	posts, err := s.resolvePosts(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	set, err := types.NewPickUpPostSet(posts)
	if err != nil {
		return nil, err
	}
	stored, err := s.posts.UpdatePickUpPosts(ctx, set)
	if err != nil {
		s.log.Error("SelectPickUpPosts failed", "error", err)
		return nil, fmt.Errorf("update pickup posts: %w", err)
	}
	return stored.Posts(), nil
}

func (s *curatedPostService) SelectPopularPosts(ctx context.Context, postIDs []uuid.UUID) ([]*types.BlogPost, error) {
	posts, err := s.resolvePosts(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	set, err := types.NewPopularPostSet(posts)
	if err != nil {
		return nil, err
	}
	stored, err := s.posts.UpdatePopularPosts(ctx, set)
	if err != nil {
		s.log.Error("SelectPopularPosts failed", "error", err)
		return nil, fmt.Errorf("update popular posts: %w", err)
	}
	return stored.Posts(), nil
}

// resolvePosts loads each id in order; the first missing id aborts the
// whole selection before anything is written.
func (s *curatedPostService) resolvePosts(ctx context.Context, postIDs []uuid.UUID) ([]*types.BlogPost, error) {
	posts := make([]*types.BlogPost, 0, len(postIDs))
	for _, id := range postIDs {
		post, err := s.posts.Find(ctx, id)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}
