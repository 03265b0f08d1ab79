package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/takashi605/blog-backend/internal/domain/blog"
)

type BlogPost = blog.BlogPost
type Content = blog.Content
type H2Content = blog.H2Content
type H3Content = blog.H3Content
type ParagraphContent = blog.ParagraphContent
type ImageContent = blog.ImageContent
type CodeContent = blog.CodeContent
type Run = blog.Run
type RunStyles = blog.RunStyles
type RunLink = blog.RunLink
type Image = blog.Image
type JstDate = blog.JstDate

type TopTechPick = blog.TopTechPick
type PickUpPostSet = blog.PickUpPostSet
type PopularPostSet = blog.PopularPostSet

type BlogPostRepository = blog.BlogPostRepository
type ImageRepository = blog.ImageRepository

type BlogPostFactory = blog.BlogPostFactory
type ImageContentFactory = blog.ImageContentFactory
type PublishedPostViewer = blog.PublishedPostViewer

type BlogPostInput = blog.BlogPostInput
type ContentInput = blog.ContentInput
type RunInput = blog.RunInput
type ThumbnailInput = blog.ThumbnailInput
type ContentKind = blog.ContentKind

const (
	ContentKindH2        = blog.ContentKindH2
	ContentKindH3        = blog.ContentKindH3
	ContentKindParagraph = blog.ContentKindParagraph
	ContentKindImage     = blog.ContentKindImage
	ContentKindCode      = blog.ContentKindCode
)

type CuratedKind = blog.CuratedKind

const (
	CuratedKindTopTechPick = blog.CuratedKindTopTechPick
	CuratedKindPickUp      = blog.CuratedKindPickUp
	CuratedKindPopular     = blog.CuratedKindPopular
)

type NotFoundError = blog.NotFoundError
type InvalidDateError = blog.InvalidDateError
type UnpublishedPostAccessError = blog.UnpublishedPostAccessError
type CardinalityError = blog.CardinalityError
type CuratedPinError = blog.CuratedPinError
type ImageNotFoundError = blog.ImageNotFoundError

func NewBlogPost(id uuid.UUID, title string) *BlogPost { return blog.NewBlogPost(id, title) }
func NewImage(id uuid.UUID, path string) Image         { return blog.NewImage(id, path) }

func NewH2Content(id uuid.UUID, text string) H2Content { return blog.NewH2Content(id, text) }
func NewH3Content(id uuid.UUID, text string) H3Content { return blog.NewH3Content(id, text) }
func NewParagraphContent(id uuid.UUID, runs []Run) ParagraphContent {
	return blog.NewParagraphContent(id, runs)
}
func NewRun(text string, styles RunStyles, link *RunLink) Run { return blog.NewRun(text, styles, link) }
func NewImageContent(id uuid.UUID, image Image) ImageContent  { return blog.NewImageContent(id, image) }
func NewCodeContent(id uuid.UUID, title, code, language string) CodeContent {
	return blog.NewCodeContent(id, title, code, language)
}

func NewJstDate(year int, month time.Month, day int) (JstDate, error) {
	return blog.NewJstDate(year, month, day)
}
func JstDateFromTime(t time.Time) JstDate    { return blog.JstDateFromTime(t) }
func JstDateFromUTC(t time.Time) JstDate     { return blog.JstDateFromUTC(t) }
func TodayJST() JstDate                      { return blog.TodayJST() }
func ParseJstDate(s string) (JstDate, error) { return blog.ParseJstDate(s) }

func NewTopTechPick(post *BlogPost) TopTechPick { return blog.NewTopTechPick(post) }
func NewPickUpPostSet(posts []*BlogPost) (PickUpPostSet, error) {
	return blog.NewPickUpPostSet(posts)
}
func NewPopularPostSet(posts []*BlogPost) (PopularPostSet, error) {
	return blog.NewPopularPostSet(posts)
}

func NewBlogPostFactory(imageContents *ImageContentFactory) *BlogPostFactory {
	return blog.NewBlogPostFactory(imageContents)
}
func NewImageContentFactory(images ImageRepository) *ImageContentFactory {
	return blog.NewImageContentFactory(images)
}
func NewPublishedPostViewer() PublishedPostViewer { return blog.NewPublishedPostViewer() }
