package blog

import "github.com/google/uuid"

// Content is one block of a post body. Five concrete kinds exist: H2 and
// H3 headings, rich-text paragraphs, image references, and code blocks.
// Each block carries its own identity, stable across updates of the
// owning post.
type Content interface {
	ID() uuid.UUID
}

type H2Content struct {
	id   uuid.UUID
	text string
}

func NewH2Content(id uuid.UUID, text string) H2Content {
	return H2Content{id: id, text: text}
}

func (c H2Content) ID() uuid.UUID { return c.id }
func (c H2Content) Text() string  { return c.text }

type H3Content struct {
	id   uuid.UUID
	text string
}

func NewH3Content(id uuid.UUID, text string) H3Content {
	return H3Content{id: id, text: text}
}

func (c H3Content) ID() uuid.UUID { return c.id }
func (c H3Content) Text() string  { return c.text }

// RunStyles are the flags a paragraph run may carry, in any combination.
type RunStyles struct {
	Bold       bool
	InlineCode bool
}

// RunLink is an optional link attached to a run. The URL is stored as
// received, without validation.
type RunLink struct {
	URL string
}

// Run is a styled, optionally linked, contiguous fragment of paragraph
// text. Text may be empty.
type Run struct {
	text   string
	styles RunStyles
	link   *RunLink
}

func NewRun(text string, styles RunStyles, link *RunLink) Run {
	return Run{text: text, styles: styles, link: link}
}

func (r Run) Text() string      { return r.text }
func (r Run) Styles() RunStyles { return r.styles }

// Link returns the run's link, or nil. The returned value is a copy.
func (r Run) Link() *RunLink {
	if r.link == nil {
		return nil
	}
	link := *r.link
	return &link
}

type ParagraphContent struct {
	id   uuid.UUID
	runs []Run
}

func NewParagraphContent(id uuid.UUID, runs []Run) ParagraphContent {
	copied := make([]Run, len(runs))
	copy(copied, runs)
	return ParagraphContent{id: id, runs: copied}
}

func (c ParagraphContent) ID() uuid.UUID { return c.id }

// Runs returns the runs in order. Order is semantic.
func (c ParagraphContent) Runs() []Run {
	runs := make([]Run, len(c.runs))
	copy(runs, c.runs)
	return runs
}

type ImageContent struct {
	id    uuid.UUID
	image Image
}

func NewImageContent(id uuid.UUID, image Image) ImageContent {
	return ImageContent{id: id, image: image}
}

func (c ImageContent) ID() uuid.UUID { return c.id }
func (c ImageContent) Image() Image  { return c.image }

type CodeContent struct {
	id       uuid.UUID
	title    string
	code     string
	language string
}

func NewCodeContent(id uuid.UUID, title, code, language string) CodeContent {
	return CodeContent{id: id, title: title, code: code, language: language}
}

func (c CodeContent) ID() uuid.UUID { return c.id }
func (c CodeContent) Title() string { return c.title }
func (c CodeContent) Code() string  { return c.code }

// Language is a free-form hint; it is never validated.
func (c CodeContent) Language() string { return c.language }
