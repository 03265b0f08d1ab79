package blog

import (
	"context"
	"errors"
	"testing"

	"github.com/takashi605/blog-backend/internal/data/repos/testutil"
	types "github.com/takashi605/blog-backend/internal/domain"
	pkgerrors "github.com/takashi605/blog-backend/internal/pkg/errors"
)

func TestTopTechPickRoundTrip(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewBlogPostRepo(db, testutil.Logger(t))

	if _, err := repo.FindTopTechPick(ctx); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("FindTopTechPick on empty table err = %v, want not found", err)
	}

	post := testutil.BuildPost(t, ctx, db, "pick",
		testutil.MustDate(t, 2024, 1, 1), testutil.MustDate(t, 2024, 1, 1))
	if _, err := repo.Save(ctx, post); err != nil {
		t.Fatalf("Save: %v", err)
	}

	updated, err := repo.UpdateTopTechPick(ctx, types.NewTopTechPick(post))
	if err != nil {
		t.Fatalf("UpdateTopTechPick: %v", err)
	}
	if updated.Post().ID() != post.ID() {
		t.Fatalf("updated pick = %s, want %s", updated.Post().ID(), post.ID())
	}

	found, err := repo.FindTopTechPick(ctx)
	if err != nil {
		t.Fatalf("FindTopTechPick: %v", err)
	}
	if found.Post().ID() != post.ID() || found.Post().Title() != "pick" {
		t.Fatalf("found pick = %s %q", found.Post().ID(), found.Post().Title())
	}

	// Replacing the pick leaves a single row behind.
	other := testutil.BuildPost(t, ctx, db, "other",
		testutil.MustDate(t, 2024, 1, 2), testutil.MustDate(t, 2024, 1, 2))
	if _, err := repo.Save(ctx, other); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := repo.UpdateTopTechPick(ctx, types.NewTopTechPick(other)); err != nil {
		t.Fatalf("UpdateTopTechPick replace: %v", err)
	}
	found, err = repo.FindTopTechPick(ctx)
	if err != nil {
		t.Fatalf("FindTopTechPick after replace: %v", err)
	}
	if found.Post().ID() != other.ID() {
		t.Fatalf("pick after replace = %s, want %s", found.Post().ID(), other.ID())
	}
}

func TestPickUpPostsRoundTrip(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewBlogPostRepo(db, testutil.Logger(t))

	posts := make([]*types.BlogPost, 0, 3)
	for _, title := range []string{"one", "two", "three"} {
		post := testutil.BuildPost(t, ctx, db, title,
			testutil.MustDate(t, 2024, 1, 1), testutil.MustDate(t, 2024, 1, 1))
		if _, err := repo.Save(ctx, post); err != nil {
			t.Fatalf("Save %s: %v", title, err)
		}
		posts = append(posts, post)
	}

	set, err := types.NewPickUpPostSet(posts)
	if err != nil {
		t.Fatalf("NewPickUpPostSet: %v", err)
	}
	if _, err := repo.UpdatePickUpPosts(ctx, set); err != nil {
		t.Fatalf("UpdatePickUpPosts: %v", err)
	}

	found, err := repo.FindPickUpPosts(ctx)
	if err != nil {
		t.Fatalf("FindPickUpPosts: %v", err)
	}
	foundPosts := found.Posts()
	for i, want := range posts {
		if foundPosts[i].ID() != want.ID() {
			t.Fatalf("pickup[%d] = %s, want %s", i, foundPosts[i].ID(), want.ID())
		}
	}
}

func TestPopularPostsRoundTrip(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewBlogPostRepo(db, testutil.Logger(t))

	posts := make([]*types.BlogPost, 0, 3)
	for _, title := range []string{"a", "b", "c"} {
		post := testutil.BuildPost(t, ctx, db, title,
			testutil.MustDate(t, 2024, 1, 1), testutil.MustDate(t, 2024, 1, 1))
		if _, err := repo.Save(ctx, post); err != nil {
			t.Fatalf("Save %s: %v", title, err)
		}
		posts = append(posts, post)
	}

	set, err := types.NewPopularPostSet(posts)
	if err != nil {
		t.Fatalf("NewPopularPostSet: %v", err)
	}
	if _, err := repo.UpdatePopularPosts(ctx, set); err != nil {
		t.Fatalf("UpdatePopularPosts: %v", err)
	}

	found, err := repo.FindPopularPosts(ctx)
	if err != nil {
		t.Fatalf("FindPopularPosts: %v", err)
	}
	foundPosts := found.Posts()
	for i, want := range posts {
		if foundPosts[i].ID() != want.ID() {
			t.Fatalf("popular[%d] = %s, want %s", i, foundPosts[i].ID(), want.ID())
		}
	}
}
