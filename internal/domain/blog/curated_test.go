package blog

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func threePosts() []*BlogPost {
	return []*BlogPost{
		NewBlogPost(uuid.New(), "a"),
		NewBlogPost(uuid.New(), "b"),
		NewBlogPost(uuid.New(), "c"),
	}
}

func TestNewPickUpPostSetCardinality(t *testing.T) {
	posts := threePosts()

	set, err := NewPickUpPostSet(posts)
	if err != nil {
		t.Fatalf("NewPickUpPostSet(3): %v", err)
	}
	got := set.Posts()
	for i := range posts {
		if got[i].ID() != posts[i].ID() {
			t.Fatalf("Posts()[%d] out of order", i)
		}
	}

	for _, wrong := range [][]*BlogPost{nil, posts[:2], append(threePosts(), NewBlogPost(uuid.New(), "d"))} {
		_, err := NewPickUpPostSet(wrong)
		var cardErr *CardinalityError
		if !errors.As(err, &cardErr) {
			t.Fatalf("NewPickUpPostSet(%d): got %v, want CardinalityError", len(wrong), err)
		}
		if cardErr.Kind != CuratedKindPickUp || cardErr.Expected != CuratedSetSize || cardErr.Got != len(wrong) {
			t.Fatalf("CardinalityError = %+v", cardErr)
		}
	}
}

func TestNewPopularPostSetCardinality(t *testing.T) {
	set, err := NewPopularPostSet(threePosts())
	if err != nil {
		t.Fatalf("NewPopularPostSet(3): %v", err)
	}
	if len(set.Posts()) != CuratedSetSize {
		t.Fatalf("Posts() = %d entries", len(set.Posts()))
	}

	_, err = NewPopularPostSet(threePosts()[:2])
	var cardErr *CardinalityError
	if !errors.As(err, &cardErr) {
		t.Fatalf("NewPopularPostSet(2): got %v, want CardinalityError", err)
	}
	if cardErr.Kind != CuratedKindPopular || cardErr.Got != 2 {
		t.Fatalf("CardinalityError = %+v", cardErr)
	}
}

func TestPickUpAndPopularErrorsAreDistinct(t *testing.T) {
	_, pickupErr := NewPickUpPostSet(nil)
	_, popularErr := NewPopularPostSet(nil)
	if pickupErr.Error() == popularErr.Error() {
		t.Fatalf("pickup and popular cardinality messages should differ")
	}
}

func TestTopTechPick(t *testing.T) {
	post := NewBlogPost(uuid.New(), "pick")
	pick := NewTopTechPick(post)
	if pick.Post().ID() != post.ID() {
		t.Fatalf("Post() = %s, want %s", pick.Post().ID(), post.ID())
	}
}
