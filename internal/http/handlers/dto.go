package handlers

import (
	"fmt"

	"github.com/google/uuid"
	types "github.com/takashi605/blog-backend/internal/domain"
)

type imagePayload struct {
	ID   uuid.UUID `json:"id"`
	Path string    `json:"path"`
}

type runStylesPayload struct {
	Bold       bool `json:"bold"`
	InlineCode bool `json:"inlineCode"`
}

type runLinkPayload struct {
	URL string `json:"url"`
}

type runPayload struct {
	Text   string           `json:"text"`
	Styles runStylesPayload `json:"styles"`
	Link   *runLinkPayload  `json:"link,omitempty"`
}

// contentPayload is the wire form of one content block, discriminated by
// Type. Only the fields of the named kind are populated; requests may
// reference an image by bare path or by the full image object.
type contentPayload struct {
	Type string     `json:"type"`
	ID   *uuid.UUID `json:"id,omitempty"`

	Text string `json:"text,omitempty"`

	Runs []runPayload `json:"runs,omitempty"`

	Image *imagePayload `json:"image,omitempty"`
	Path  string        `json:"path,omitempty"`

	Title    string `json:"title,omitempty"`
	Code     string `json:"code,omitempty"`
	Language string `json:"language,omitempty"`
}

type blogPostResponse struct {
	ID             uuid.UUID        `json:"id"`
	Title          string           `json:"title"`
	Thumbnail      *imagePayload    `json:"thumbnail,omitempty"`
	PostDate       types.JstDate    `json:"postDate"`
	LastUpdateDate types.JstDate    `json:"lastUpdateDate"`
	PublishedDate  types.JstDate    `json:"publishedDate"`
	Contents       []contentPayload `json:"contents"`
}

func newBlogPostResponse(post *types.BlogPost) blogPostResponse {
	resp := blogPostResponse{
		ID:             post.ID(),
		Title:          post.Title(),
		PostDate:       post.PostDate(),
		LastUpdateDate: post.LastUpdateDate(),
		PublishedDate:  post.PublishedDate(),
		Contents:       make([]contentPayload, 0, len(post.Contents())),
	}
	if thumb := post.Thumbnail(); thumb != nil {
		resp.Thumbnail = &imagePayload{ID: thumb.ID(), Path: thumb.Path()}
	}
	for _, content := range post.Contents() {
		resp.Contents = append(resp.Contents, newContentPayload(content))
	}
	return resp
}

func newBlogPostResponses(posts []*types.BlogPost) []blogPostResponse {
	resps := make([]blogPostResponse, 0, len(posts))
	for _, post := range posts {
		resps = append(resps, newBlogPostResponse(post))
	}
	return resps
}

func newContentPayload(content types.Content) contentPayload {
	id := content.ID()
	switch c := content.(type) {
	case types.H2Content:
		return contentPayload{Type: "h2", ID: &id, Text: c.Text()}
	case types.H3Content:
		return contentPayload{Type: "h3", ID: &id, Text: c.Text()}
	case types.ParagraphContent:
		runs := make([]runPayload, 0, len(c.Runs()))
		for _, run := range c.Runs() {
			rp := runPayload{
				Text: run.Text(),
				Styles: runStylesPayload{
					Bold:       run.Styles().Bold,
					InlineCode: run.Styles().InlineCode,
				},
			}
			if link := run.Link(); link != nil {
				rp.Link = &runLinkPayload{URL: link.URL}
			}
			runs = append(runs, rp)
		}
		return contentPayload{Type: "paragraph", ID: &id, Runs: runs}
	case types.ImageContent:
		img := c.Image()
		return contentPayload{
			Type:  "image",
			ID:    &id,
			Image: &imagePayload{ID: img.ID(), Path: img.Path()},
		}
	case types.CodeContent:
		return contentPayload{
			Type:     "codeBlock",
			ID:       &id,
			Title:    c.Title(),
			Code:     c.Code(),
			Language: c.Language(),
		}
	default:
		// With the known variants exhausted this is unreachable.
		return contentPayload{ID: &id}
	}
}

func (p contentPayload) toInput() types.ContentInput {
	in := types.ContentInput{
		Kind:     types.ContentKind(p.Type),
		ID:       p.ID,
		Text:     p.Text,
		Path:     p.Path,
		Title:    p.Title,
		Code:     p.Code,
		Language: p.Language,
	}
	if in.Path == "" && p.Image != nil {
		in.Path = p.Image.Path
	}
	for _, run := range p.Runs {
		runIn := types.RunInput{
			Text: run.Text,
			Styles: types.RunStyles{
				Bold:       run.Styles.Bold,
				InlineCode: run.Styles.InlineCode,
			},
		}
		if run.Link != nil {
			runIn.Link = &types.RunLink{URL: run.Link.URL}
		}
		in.Runs = append(in.Runs, runIn)
	}
	return in
}

func contentInputs(payloads []contentPayload) []types.ContentInput {
	ins := make([]types.ContentInput, 0, len(payloads))
	for _, p := range payloads {
		ins = append(ins, p.toInput())
	}
	return ins
}

type createPostRequest struct {
	Title          string           `json:"title"`
	Thumbnail      *imagePayload    `json:"thumbnail"`
	PostDate       *string          `json:"postDate"`
	LastUpdateDate *string          `json:"lastUpdateDate"`
	PublishedDate  *string          `json:"publishedDate"`
	Contents       []contentPayload `json:"contents"`
}

func (r createPostRequest) toInput() (types.BlogPostInput, error) {
	in := types.BlogPostInput{
		Title:    r.Title,
		Contents: contentInputs(r.Contents),
	}
	if r.Thumbnail != nil {
		in.Thumbnail = &types.ThumbnailInput{ID: r.Thumbnail.ID, Path: r.Thumbnail.Path}
	}
	var err error
	if in.PostDate, err = parseOptionalDate(r.PostDate, "postDate"); err != nil {
		return types.BlogPostInput{}, err
	}
	if in.LastUpdateDate, err = parseOptionalDate(r.LastUpdateDate, "lastUpdateDate"); err != nil {
		return types.BlogPostInput{}, err
	}
	if in.PublishedDate, err = parseOptionalDate(r.PublishedDate, "publishedDate"); err != nil {
		return types.BlogPostInput{}, err
	}
	return in, nil
}

type updatePostRequest struct {
	Title         string           `json:"title"`
	Thumbnail     *imagePayload    `json:"thumbnail"`
	PublishedDate string           `json:"publishedDate"`
	Contents      []contentPayload `json:"contents"`
}

func parseOptionalDate(s *string, field string) (*types.JstDate, error) {
	if s == nil {
		return nil, nil
	}
	d, err := types.ParseJstDate(*s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &d, nil
}

type imageResponse struct {
	ID   uuid.UUID `json:"id"`
	Path string    `json:"path"`
}

func newImageResponses(images []types.Image) []imageResponse {
	resps := make([]imageResponse, 0, len(images))
	for _, img := range images {
		resps = append(resps, imageResponse{ID: img.ID(), Path: img.Path()})
	}
	return resps
}

// postRef is how curated-set requests reference posts: a full post body
// may be sent but only the id is read.
type postRef struct {
	ID uuid.UUID `json:"id"`
}

func postRefIDs(refs []postRef) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}
	return ids
}
