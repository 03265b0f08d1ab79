package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	types "github.com/takashi605/blog-backend/internal/domain"
	pkgerrors "github.com/takashi605/blog-backend/internal/pkg/errors"
)

func dateDaysFromNow(days int) types.JstDate {
	return types.JstDateFromTime(time.Now().AddDate(0, 0, days))
}

func seedPost(repo *fakePostRepo, title string, publishedDate types.JstDate) *types.BlogPost {
	post := types.NewBlogPost(uuid.New(), title)
	post.SetThumbnail(uuid.New(), "thumbs/"+title+".jpg")
	post.SetPublishedDate(publishedDate)
	repo.put(post)
	return post
}

func newPostService(tb testing.TB, repo *fakePostRepo, images *fakeImageRepo) BlogPostService {
	tb.Helper()
	factory := types.NewBlogPostFactory(types.NewImageContentFactory(images))
	return NewBlogPostService(testLogger(tb), repo, factory)
}

func TestViewPostRejectsUnpublished(t *testing.T) {
	ctx := context.Background()
	repo := newFakePostRepo()
	svc := newPostService(t, repo, &fakeImageRepo{})

	post := seedPost(repo, "draft", dateDaysFromNow(2))

	_, err := svc.ViewPost(ctx, post.ID())
	var accessErr *types.UnpublishedPostAccessError
	if !errors.As(err, &accessErr) {
		t.Fatalf("expected UnpublishedPostAccessError, got %v", err)
	}
	if !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("expected the error to present as not found, got %v", err)
	}
}

func TestViewAdminPostReturnsUnpublished(t *testing.T) {
	ctx := context.Background()
	repo := newFakePostRepo()
	svc := newPostService(t, repo, &fakeImageRepo{})

	post := seedPost(repo, "draft", dateDaysFromNow(2))

	got, err := svc.ViewAdminPost(ctx, post.ID())
	if err != nil {
		t.Fatalf("failed to view post as admin: %v", err)
	}
	if got.ID() != post.ID() {
		t.Fatalf("expected post %s, got %s", post.ID(), got.ID())
	}
}

func TestViewAllPostsFiltersUnpublished(t *testing.T) {
	ctx := context.Background()
	repo := newFakePostRepo()
	svc := newPostService(t, repo, &fakeImageRepo{})

	published := seedPost(repo, "live", dateDaysFromNow(-2))
	seedPost(repo, "draft", dateDaysFromNow(2))

	got, err := svc.ViewAllPosts(ctx, false)
	if err != nil {
		t.Fatalf("failed to list posts: %v", err)
	}
	if len(got) != 1 || got[0].ID() != published.ID() {
		t.Fatalf("expected only the published post, got %d posts", len(got))
	}

	all, err := svc.ViewAllPosts(ctx, true)
	if err != nil {
		t.Fatalf("failed to list all posts: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected both posts for admin listing, got %d", len(all))
	}
}

func TestViewLatestPostsAppliesLimit(t *testing.T) {
	ctx := context.Background()
	repo := newFakePostRepo()
	svc := newPostService(t, repo, &fakeImageRepo{})

	older := seedPost(repo, "older", dateDaysFromNow(-1))
	older.SetPostDate(dateDaysFromNow(-10))
	newer := seedPost(repo, "newer", dateDaysFromNow(-1))
	newer.SetPostDate(dateDaysFromNow(-3))

	limit := 1
	got, err := svc.ViewLatestPosts(ctx, &limit)
	if err != nil {
		t.Fatalf("failed to list latest posts: %v", err)
	}
	if len(got) != 1 || got[0].ID() != newer.ID() {
		t.Fatalf("expected the newest post only, got %d posts", len(got))
	}
}

func TestCreatePostPersistsAggregate(t *testing.T) {
	ctx := context.Background()
	repo := newFakePostRepo()
	images := &fakeImageRepo{}
	img, _ := images.Create(ctx, types.NewImage(uuid.New(), "photos/cat.jpg"))
	svc := newPostService(t, repo, images)

	created, err := svc.CreatePost(ctx, types.BlogPostInput{
		Title:     "new post",
		Thumbnail: &types.ThumbnailInput{ID: img.ID(), Path: img.Path()},
		Contents: []types.ContentInput{
			{Kind: types.ContentKindH2, Text: "intro"},
			{Kind: types.ContentKindImage, Path: "photos/cat.jpg"},
		},
	})
	if err != nil {
		t.Fatalf("failed to create post: %v", err)
	}

	stored, err := repo.Find(ctx, created.ID())
	if err != nil {
		t.Fatalf("created post missing from repo: %v", err)
	}
	if stored.Title() != "new post" {
		t.Fatalf("unexpected stored title %q", stored.Title())
	}
	if len(stored.Contents()) != 2 {
		t.Fatalf("expected 2 contents, got %d", len(stored.Contents()))
	}
}

func TestCreatePostUnknownImagePath(t *testing.T) {
	ctx := context.Background()
	repo := newFakePostRepo()
	svc := newPostService(t, repo, &fakeImageRepo{})

	_, err := svc.CreatePost(ctx, types.BlogPostInput{
		Title:    "broken",
		Contents: []types.ContentInput{{Kind: types.ContentKindImage, Path: "missing.jpg"}},
	})
	var imgErr *types.ImageNotFoundError
	if !errors.As(err, &imgErr) {
		t.Fatalf("expected ImageNotFoundError, got %v", err)
	}
	if len(repo.posts) != 0 {
		t.Fatalf("expected nothing persisted, got %d posts", len(repo.posts))
	}
}

func TestUpdatePostAppliesChanges(t *testing.T) {
	ctx := context.Background()
	repo := newFakePostRepo()
	svc := newPostService(t, repo, &fakeImageRepo{})

	post := seedPost(repo, "before", dateDaysFromNow(-5))
	post.SetLastUpdateDate(dateDaysFromNow(-5))
	blockID := uuid.New()

	updated, err := svc.UpdatePost(ctx, post.ID(), UpdateBlogPostInput{
		Title:         "after",
		PublishedDate: dateDaysFromNow(-1),
		Contents: []types.ContentInput{
			{Kind: types.ContentKindH3, ID: &blockID, Text: "section"},
		},
	})
	if err != nil {
		t.Fatalf("failed to update post: %v", err)
	}
	if updated.Title() != "after" {
		t.Fatalf("unexpected title %q", updated.Title())
	}
	if !updated.LastUpdateDate().Equal(types.TodayJST()) {
		t.Fatalf("expected last update date to be today, got %s", updated.LastUpdateDate())
	}
	contents := updated.Contents()
	if len(contents) != 1 || contents[0].ID() != blockID {
		t.Fatalf("expected the supplied block id to survive the rebuild")
	}
}

func TestUpdatePostMissing(t *testing.T) {
	ctx := context.Background()
	repo := newFakePostRepo()
	svc := newPostService(t, repo, &fakeImageRepo{})

	_, err := svc.UpdatePost(ctx, uuid.New(), UpdateBlogPostInput{
		Title:         "ghost",
		PublishedDate: dateDaysFromNow(-1),
	})
	if !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdatePostUnpublishBlockedByTopTechPick(t *testing.T) {
	ctx := context.Background()
	repo := newFakePostRepo()
	svc := newPostService(t, repo, &fakeImageRepo{})

	post := seedPost(repo, "pinned", dateDaysFromNow(-5))
	pick := types.NewTopTechPick(post)
	repo.topPick = &pick

	_, err := svc.UpdatePost(ctx, post.ID(), UpdateBlogPostInput{
		Title:         "renamed",
		PublishedDate: dateDaysFromNow(3),
	})
	var pinErr *types.CuratedPinError
	if !errors.As(err, &pinErr) {
		t.Fatalf("expected CuratedPinError, got %v", err)
	}
	if pinErr.Kind != types.CuratedKindTopTechPick {
		t.Fatalf("unexpected pin kind %q", pinErr.Kind)
	}
	if repo.updateCalls != 0 {
		t.Fatalf("expected no write after a rejected unpublish")
	}
	stored, _ := repo.Find(ctx, post.ID())
	if stored.Title() != "pinned" {
		t.Fatalf("stored post changed despite the rejection: %q", stored.Title())
	}
}

func TestUpdatePostUnpublishBlockedByPickUp(t *testing.T) {
	ctx := context.Background()
	repo := newFakePostRepo()
	svc := newPostService(t, repo, &fakeImageRepo{})

	a := seedPost(repo, "a", dateDaysFromNow(-5))
	b := seedPost(repo, "b", dateDaysFromNow(-5))
	c := seedPost(repo, "c", dateDaysFromNow(-5))
	set, err := types.NewPickUpPostSet([]*types.BlogPost{a, b, c})
	if err != nil {
		t.Fatalf("failed to build pickup set: %v", err)
	}
	repo.pickUp = &set

	_, err = svc.UpdatePost(ctx, b.ID(), UpdateBlogPostInput{
		Title:         "b",
		PublishedDate: dateDaysFromNow(3),
	})
	var pinErr *types.CuratedPinError
	if !errors.As(err, &pinErr) || pinErr.Kind != types.CuratedKindPickUp {
		t.Fatalf("expected pickup pin rejection, got %v", err)
	}
}

func TestUpdatePostUnpublishAllowedWhenUnpinned(t *testing.T) {
	ctx := context.Background()
	repo := newFakePostRepo()
	svc := newPostService(t, repo, &fakeImageRepo{})

	post := seedPost(repo, "free", dateDaysFromNow(-5))

	updated, err := svc.UpdatePost(ctx, post.ID(), UpdateBlogPostInput{
		Title:         "free",
		PublishedDate: dateDaysFromNow(3),
	})
	if err != nil {
		t.Fatalf("expected unpublish to succeed with no curated sets: %v", err)
	}
	if updated.IsPublished() {
		t.Fatalf("expected the post to be unpublished")
	}
}
