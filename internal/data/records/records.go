// Package records holds the GORM row types for the blog schema. The
// table and column names are a stable external contract; the domain
// aggregate is decomposed into and recomposed from these rows by the
// repository layer.
package records

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BlogPost struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title            string         `gorm:"column:title;not null" json:"title"`
	ThumbnailImageID uuid.UUID      `gorm:"column:thumbnail_image_id;type:uuid;not null" json:"thumbnail_image_id"`
	PostDate         datatypes.Date `gorm:"column:post_date;not null" json:"post_date"`
	LastUpdateDate   datatypes.Date `gorm:"column:last_update_date;not null" json:"last_update_date"`
	PublishedDate    datatypes.Date `gorm:"column:published_date;not null" json:"published_date"`
}

func (BlogPost) TableName() string { return "blog_posts" }

type Image struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FilePath string    `gorm:"column:file_path;not null;uniqueIndex" json:"file_path"`
}

func (Image) TableName() string { return "images" }

// Content type discriminators stored in post_contents.content_type.
const (
	ContentTypeHeading   = "heading"
	ContentTypeParagraph = "paragraph"
	ContentTypeImage     = "image"
	ContentTypeCodeBlock = "code_block"
)

type PostContent struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PostID      uuid.UUID `gorm:"column:post_id;type:uuid;not null;index" json:"post_id"`
	ContentType string    `gorm:"column:content_type;not null" json:"content_type"`
	SortOrder   int       `gorm:"column:sort_order;not null" json:"sort_order"`
}

func (PostContent) TableName() string { return "post_contents" }

// HeadingBlock shares its id with the owning post_contents row.
type HeadingBlock struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	HeadingLevel int       `gorm:"column:heading_level;not null" json:"heading_level"`
	TextContent  string    `gorm:"column:text_content;not null" json:"text_content"`
}

func (HeadingBlock) TableName() string { return "heading_blocks" }

type ParagraphBlock struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
}

func (ParagraphBlock) TableName() string { return "paragraph_blocks" }

type RichText struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ParagraphBlockID uuid.UUID `gorm:"column:paragraph_block_id;type:uuid;not null;index" json:"paragraph_block_id"`
	TextContent      string    `gorm:"column:text_content;not null" json:"text_content"`
	SortOrder        int       `gorm:"column:sort_order;not null" json:"sort_order"`
}

func (RichText) TableName() string { return "rich_texts" }

// Style type dictionary values stored in text_styles.style_type.
const (
	StyleTypeBold       = "bold"
	StyleTypeInlineCode = "inline-code"
)

// TextStyle is a dictionary row; one row per style type, shared by every
// rich text that carries the style.
type TextStyle struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StyleType string    `gorm:"column:style_type;not null;uniqueIndex" json:"style_type"`
}

func (TextStyle) TableName() string { return "text_styles" }

type RichTextStyle struct {
	StyleID    uuid.UUID `gorm:"column:style_id;type:uuid;primaryKey" json:"style_id"`
	RichTextID uuid.UUID `gorm:"column:rich_text_id;type:uuid;primaryKey;index" json:"rich_text_id"`
}

func (RichTextStyle) TableName() string { return "rich_text_styles" }

type RichTextLink struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RichTextID uuid.UUID `gorm:"column:rich_text_id;type:uuid;not null;index" json:"rich_text_id"`
	URL        string    `gorm:"column:url;not null" json:"url"`
}

func (RichTextLink) TableName() string { return "rich_text_links" }

type ImageBlock struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ImageID uuid.UUID `gorm:"column:image_id;type:uuid;not null" json:"image_id"`
}

func (ImageBlock) TableName() string { return "image_blocks" }

type CodeBlock struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title    string    `gorm:"column:title;not null" json:"title"`
	Code     string    `gorm:"column:code;not null" json:"code"`
	Language string    `gorm:"column:language;not null" json:"language"`
}

func (CodeBlock) TableName() string { return "code_blocks" }

// TopTechPick holds a single row.
type TopTechPick struct {
	PostID uuid.UUID `gorm:"column:post_id;type:uuid;primaryKey" json:"post_id"`
}

func (TopTechPick) TableName() string { return "top_tech_pick" }

// PickupPost holds three rows.
type PickupPost struct {
	PostID uuid.UUID `gorm:"column:post_id;type:uuid;primaryKey" json:"post_id"`
}

func (PickupPost) TableName() string { return "pickup_posts" }

// PopularPost holds three rows.
type PopularPost struct {
	PostID uuid.UUID `gorm:"column:post_id;type:uuid;primaryKey" json:"post_id"`
}

func (PopularPost) TableName() string { return "popular_posts" }

// All lists every record type for migration.
func All() []any {
	return []any{
		&BlogPost{},
		&Image{},
		&PostContent{},
		&HeadingBlock{},
		&ParagraphBlock{},
		&RichText{},
		&TextStyle{},
		&RichTextStyle{},
		&RichTextLink{},
		&ImageBlock{},
		&CodeBlock{},
		&TopTechPick{},
		&PickupPost{},
		&PopularPost{},
	}
}
