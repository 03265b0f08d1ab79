package blog

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewBlogPostDefaults(t *testing.T) {
	id := uuid.New()
	post := NewBlogPost(id, "hello")

	if post.ID() != id {
		t.Fatalf("ID = %s, want %s", post.ID(), id)
	}
	if post.Title() != "hello" {
		t.Fatalf("Title = %q", post.Title())
	}
	if post.Thumbnail() != nil {
		t.Fatalf("new post should have no thumbnail")
	}
	if len(post.Contents()) != 0 {
		t.Fatalf("new post should have no contents")
	}

	today := TodayJST()
	if !post.PostDate().Equal(today) || !post.LastUpdateDate().Equal(today) || !post.PublishedDate().Equal(today) {
		t.Fatalf("dates = %s/%s/%s, want all %s",
			post.PostDate(), post.LastUpdateDate(), post.PublishedDate(), today)
	}
}

func TestIsPublished(t *testing.T) {
	post := NewBlogPost(uuid.New(), "p")

	past, _ := NewJstDate(2000, time.January, 1)
	post.SetPublishedDate(past)
	if !post.IsPublished() {
		t.Fatalf("post dated %s should be published", past)
	}

	post.SetPublishedDate(TodayJST())
	if !post.IsPublished() {
		t.Fatalf("post dated today should be published")
	}

	future, _ := NewJstDate(3000, time.December, 31)
	post.SetPublishedDate(future)
	if post.IsPublished() {
		t.Fatalf("post dated %s should not be published", future)
	}
}

func TestContentsOrderAndReplacement(t *testing.T) {
	post := NewBlogPost(uuid.New(), "p")
	first := NewH2Content(uuid.New(), "first")
	second := NewH3Content(uuid.New(), "second")
	post.AddContent(first)
	post.AddContent(second)

	contents := post.Contents()
	if len(contents) != 2 {
		t.Fatalf("len(Contents) = %d", len(contents))
	}
	if contents[0].ID() != first.ID() || contents[1].ID() != second.ID() {
		t.Fatalf("contents out of order")
	}

	post.ClearContents()
	if len(post.Contents()) != 0 {
		t.Fatalf("ClearContents left %d contents", len(post.Contents()))
	}

	replacement := NewCodeContent(uuid.New(), "t", "c", "go")
	post.AddContent(replacement)
	contents = post.Contents()
	if len(contents) != 1 || contents[0].ID() != replacement.ID() {
		t.Fatalf("replacement contents wrong")
	}
}

func TestThumbnailIsCopiedOut(t *testing.T) {
	post := NewBlogPost(uuid.New(), "p")
	imgID := uuid.New()
	post.SetThumbnail(imgID, "/t.jpg")

	thumb := post.Thumbnail()
	if thumb == nil || thumb.ID() != imgID || thumb.Path() != "/t.jpg" {
		t.Fatalf("Thumbnail = %+v", thumb)
	}
}
