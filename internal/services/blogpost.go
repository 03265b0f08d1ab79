package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/takashi605/blog-backend/internal/data/repos"
	types "github.com/takashi605/blog-backend/internal/domain"
	"github.com/takashi605/blog-backend/internal/pkg/logger"
)

// UpdateBlogPostInput carries the replacement state for an existing
// post. The post date never changes and the last update date is always
// set to today, so neither appears here.
type UpdateBlogPostInput struct {
	Title         string
	Thumbnail     *types.ThumbnailInput
	PublishedDate types.JstDate
	Contents      []types.ContentInput
}

type BlogPostService interface {
	// ViewPost serves readers and rejects unpublished posts.
	ViewPost(ctx context.Context, id uuid.UUID) (*types.BlogPost, error)
	// ViewAdminPost serves the admin surface without a publication gate.
	ViewAdminPost(ctx context.Context, id uuid.UUID) (*types.BlogPost, error)
	ViewAllPosts(ctx context.Context, includeUnpublished bool) ([]*types.BlogPost, error)
	ViewLatestPosts(ctx context.Context, quantity *int) ([]*types.BlogPost, error)
	CreatePost(ctx context.Context, input types.BlogPostInput) (*types.BlogPost, error)
	UpdatePost(ctx context.Context, id uuid.UUID, input UpdateBlogPostInput) (*types.BlogPost, error)
}

type blogPostService struct {
	log     *logger.Logger
	posts   repos.BlogPostRepo
	factory *types.BlogPostFactory
	viewer  types.PublishedPostViewer
}

func NewBlogPostService(baseLog *logger.Logger, posts repos.BlogPostRepo, factory *types.BlogPostFactory) BlogPostService {
	serviceLog := baseLog.With("service", "BlogPostService")
	return &blogPostService{
		log:     serviceLog,
		posts:   posts,
		factory: factory,
		viewer:  types.NewPublishedPostViewer(),
	}
}

func (s *blogPostService) ViewPost(ctx context.Context, id uuid.UUID) (*types.BlogPost, error) {
	post, err := s.posts.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.viewer.ViewPublishedPost(post)
}

func (s *blogPostService) ViewAdminPost(ctx context.Context, id uuid.UUID) (*types.BlogPost, error) {
	return s.posts.Find(ctx, id)
}

func (s *blogPostService) ViewAllPosts(ctx context.Context, includeUnpublished bool) ([]*types.BlogPost, error) {
	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	if includeUnpublished {
		return posts, nil
	}
	return s.viewer.FilterPublishedPosts(posts), nil
}

func (s *blogPostService) ViewLatestPosts(ctx context.Context, quantity *int) ([]*types.BlogPost, error) {
	posts, err := s.posts.FindLatests(ctx, quantity)
	if err != nil {
		return nil, fmt.Errorf("list latest posts: %w", err)
	}
	return s.viewer.FilterPublishedPosts(posts), nil
}

func (s *blogPostService) CreatePost(ctx context.Context, input types.BlogPostInput) (*types.BlogPost, error) {
	post, err := s.factory.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	saved, err := s.posts.Save(ctx, post)
	if err != nil {
		s.log.Error("CreatePost save failed", "error", err, "post_id", post.ID())
		return nil, err
	}
	return saved, nil
}

func (s *blogPostService) UpdatePost(ctx context.Context, id uuid.UUID, input UpdateBlogPostInput) (*types.BlogPost, error) {
	post, err := s.posts.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	today := types.TodayJST()
	if input.PublishedDate.After(today) {
		// Moving the published date into the future unpublishes the
		// post, which is forbidden while any curated set pins it.
		if err := s.ensureNotPinned(ctx, id); err != nil {
			return nil, err
		}
	}

	post.SetTitle(input.Title)
	if input.Thumbnail != nil {
		post.SetThumbnail(input.Thumbnail.ID, input.Thumbnail.Path)
	}
	post.SetPublishedDate(input.PublishedDate)
	post.SetLastUpdateDate(today)
	if err := s.factory.ApplyContents(ctx, post, input.Contents); err != nil {
		return nil, err
	}

	updated, err := s.posts.Update(ctx, post)
	if err != nil {
		s.log.Error("UpdatePost failed", "error", err, "post_id", id)
		return nil, err
	}
	return updated, nil
}

// ensureNotPinned checks the three curated sources in a fixed order and
// rejects the unpublish when any of them references the post. The reads
// happen outside the update transaction; the race with a concurrent
// curation change is accepted.
func (s *blogPostService) ensureNotPinned(ctx context.Context, id uuid.UUID) error {
	pick, err := s.posts.FindTopTechPick(ctx)
	switch {
	case err == nil:
		if pick.Post().ID() == id {
			return &types.CuratedPinError{Kind: types.CuratedKindTopTechPick}
		}
	case isAbsentCuratedSet(err):
		// no pick configured
	default:
		return fmt.Errorf("check top tech pick: %w", err)
	}

	pickUp, err := s.posts.FindPickUpPosts(ctx)
	switch {
	case err == nil:
		for _, member := range pickUp.Posts() {
			if member.ID() == id {
				return &types.CuratedPinError{Kind: types.CuratedKindPickUp}
			}
		}
	case isAbsentCuratedSet(err):
	default:
		return fmt.Errorf("check pickup posts: %w", err)
	}

	popular, err := s.posts.FindPopularPosts(ctx)
	switch {
	case err == nil:
		for _, member := range popular.Posts() {
			if member.ID() == id {
				return &types.CuratedPinError{Kind: types.CuratedKindPopular}
			}
		}
	case isAbsentCuratedSet(err):
	default:
		return fmt.Errorf("check popular posts: %w", err)
	}

	return nil
}

// isAbsentCuratedSet reports errors that just mean a curated set has not
// been configured yet.
func isAbsentCuratedSet(err error) bool {
	var notFound *types.NotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	var cardinality *types.CardinalityError
	return errors.As(err, &cardinality)
}
