package blog

import "github.com/google/uuid"

// BlogPost is the aggregate root for an article. It owns its ordered
// content blocks; callers read them through copies and replace them via
// ClearContents/AddContent. Identity is by ID, assigned once at creation.
type BlogPost struct {
	id             uuid.UUID
	title          string
	thumbnail      *Image
	contents       []Content
	postDate       JstDate
	lastUpdateDate JstDate
	publishedDate  JstDate
}

// NewBlogPost constructs a post with today's JST date in all three date
// fields, no thumbnail and no contents.
func NewBlogPost(id uuid.UUID, title string) *BlogPost {
	today := TodayJST()
	return &BlogPost{
		id:             id,
		title:          title,
		postDate:       today,
		lastUpdateDate: today,
		publishedDate:  today,
	}
}

func (p *BlogPost) ID() uuid.UUID { return p.id }

func (p *BlogPost) Title() string { return p.title }

func (p *BlogPost) SetTitle(title string) { p.title = title }

// Thumbnail returns the post's thumbnail image, or nil when none has
// been attached yet. A thumbnail is required by the time the post is
// persisted.
func (p *BlogPost) Thumbnail() *Image {
	if p.thumbnail == nil {
		return nil
	}
	img := *p.thumbnail
	return &img
}

func (p *BlogPost) SetThumbnail(id uuid.UUID, path string) {
	img := NewImage(id, path)
	p.thumbnail = &img
}

// Contents returns the content blocks in order.
func (p *BlogPost) Contents() []Content {
	contents := make([]Content, len(p.contents))
	copy(contents, p.contents)
	return contents
}

func (p *BlogPost) AddContent(c Content) {
	p.contents = append(p.contents, c)
}

func (p *BlogPost) ClearContents() {
	p.contents = nil
}

func (p *BlogPost) PostDate() JstDate { return p.postDate }

// SetPostDate is only meaningful while reconstructing a post; the post
// date never changes after creation.
func (p *BlogPost) SetPostDate(d JstDate) { p.postDate = d }

func (p *BlogPost) LastUpdateDate() JstDate { return p.lastUpdateDate }

func (p *BlogPost) SetLastUpdateDate(d JstDate) { p.lastUpdateDate = d }

func (p *BlogPost) PublishedDate() JstDate { return p.publishedDate }

// SetPublishedDate moves the publication date freely. A future date
// hides the post from readers; a past date publishes it.
func (p *BlogPost) SetPublishedDate(d JstDate) { p.publishedDate = d }

// IsPublished reports whether the post is visible to readers, i.e. the
// published date is on or before today in JST.
func (p *BlogPost) IsPublished() bool {
	return !p.publishedDate.After(TodayJST())
}
