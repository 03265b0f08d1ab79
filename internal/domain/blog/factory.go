package blog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	pkgerrors "github.com/takashi605/blog-backend/internal/pkg/errors"
)

// ContentKind discriminates the content variants on input.
type ContentKind string

const (
	ContentKindH2        ContentKind = "h2"
	ContentKindH3        ContentKind = "h3"
	ContentKindParagraph ContentKind = "paragraph"
	ContentKindImage     ContentKind = "image"
	ContentKindCode      ContentKind = "codeBlock"
)

// RunInput describes one paragraph run.
type RunInput struct {
	Text   string
	Styles RunStyles
	Link   *RunLink
}

// ContentInput describes one content block to build. ID is kept verbatim
// when present; a fresh id is assigned when absent. Only the fields of
// the named kind are read.
type ContentInput struct {
	Kind ContentKind
	ID   *uuid.UUID

	Text string // h2, h3

	Runs []RunInput // paragraph

	Path string // image: storage path of an already registered image

	Title    string // codeBlock
	Code     string
	Language string
}

// ThumbnailInput references an already registered image.
type ThumbnailInput struct {
	ID   uuid.UUID
	Path string
}

// BlogPostInput is everything needed to build a new post.
type BlogPostInput struct {
	Title          string
	Thumbnail      *ThumbnailInput
	PostDate       *JstDate
	LastUpdateDate *JstDate
	PublishedDate  *JstDate
	Contents       []ContentInput
}

// ImageContentFactory builds image content blocks by resolving the
// referenced image through the image repository. The block gets a fresh
// id; the underlying image keeps its own.
type ImageContentFactory struct {
	images ImageRepository
}

func NewImageContentFactory(images ImageRepository) *ImageContentFactory {
	return &ImageContentFactory{images: images}
}

func (f *ImageContentFactory) Create(ctx context.Context, path string) (ImageContent, error) {
	return f.create(ctx, uuid.New(), path)
}

// CreateWithID keeps a caller-supplied block id, used when rebuilding an
// existing post's contents.
func (f *ImageContentFactory) CreateWithID(ctx context.Context, id uuid.UUID, path string) (ImageContent, error) {
	return f.create(ctx, id, path)
}

func (f *ImageContentFactory) create(ctx context.Context, id uuid.UUID, path string) (ImageContent, error) {
	image, err := f.images.FindByPath(ctx, path)
	if errors.Is(err, pkgerrors.ErrNotFound) {
		return ImageContent{}, &ImageNotFoundError{Path: path}
	}
	if err != nil {
		return ImageContent{}, fmt.Errorf("resolve image by path %s: %w", path, err)
	}
	return NewImageContent(id, image), nil
}

// BlogPostFactory constructs aggregates from input DTOs, assigning a
// fresh post id and resolving image references.
type BlogPostFactory struct {
	imageContents *ImageContentFactory
}

func NewBlogPostFactory(imageContents *ImageContentFactory) *BlogPostFactory {
	return &BlogPostFactory{imageContents: imageContents}
}

func (f *BlogPostFactory) Create(ctx context.Context, input BlogPostInput) (*BlogPost, error) {
	post := NewBlogPost(uuid.New(), input.Title)

	if input.PostDate != nil {
		post.SetPostDate(*input.PostDate)
	}
	switch {
	case input.LastUpdateDate != nil:
		post.SetLastUpdateDate(*input.LastUpdateDate)
	case input.PostDate != nil:
		// An explicit post date without an update date mirrors the
		// post date.
		post.SetLastUpdateDate(*input.PostDate)
	}
	if input.PublishedDate != nil {
		post.SetPublishedDate(*input.PublishedDate)
	}

	if input.Thumbnail != nil {
		post.SetThumbnail(input.Thumbnail.ID, input.Thumbnail.Path)
	}

	if err := f.ApplyContents(ctx, post, input.Contents); err != nil {
		return nil, err
	}
	return post, nil
}

// ApplyContents clears the post's contents and rebuilds them from the
// inputs, keeping caller-supplied block ids and minting fresh ones where
// absent. An unresolvable image reference fails the whole operation.
func (f *BlogPostFactory) ApplyContents(ctx context.Context, post *BlogPost, inputs []ContentInput) error {
	post.ClearContents()
	for _, in := range inputs {
		content, err := f.buildContent(ctx, in)
		if err != nil {
			return err
		}
		post.AddContent(content)
	}
	return nil
}

func (f *BlogPostFactory) buildContent(ctx context.Context, in ContentInput) (Content, error) {
	id := uuid.New()
	if in.ID != nil {
		id = *in.ID
	}
	switch in.Kind {
	case ContentKindH2:
		return NewH2Content(id, in.Text), nil
	case ContentKindH3:
		return NewH3Content(id, in.Text), nil
	case ContentKindParagraph:
		runs := make([]Run, 0, len(in.Runs))
		for _, r := range in.Runs {
			runs = append(runs, NewRun(r.Text, r.Styles, r.Link))
		}
		return NewParagraphContent(id, runs), nil
	case ContentKindImage:
		return f.imageContents.CreateWithID(ctx, id, in.Path)
	case ContentKindCode:
		return NewCodeContent(id, in.Title, in.Code, in.Language), nil
	default:
		return nil, &InvalidContentKindError{Kind: string(in.Kind)}
	}
}
