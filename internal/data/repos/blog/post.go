package blog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/takashi605/blog-backend/internal/data/records"
	types "github.com/takashi605/blog-backend/internal/domain"
	pkgerrors "github.com/takashi605/blog-backend/internal/pkg/errors"
	"github.com/takashi605/blog-backend/internal/pkg/logger"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type blogPostRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewBlogPostRepo builds the GORM-backed blog post repository. The
// aggregate is decomposed across the content tables on write and
// recomposed on read; every write runs inside one transaction.
func NewBlogPostRepo(db *gorm.DB, baseLog *logger.Logger) types.BlogPostRepository {
	repoLog := baseLog.With("repo", "BlogPostRepo")
	return &blogPostRepo{db: db, log: repoLog}
}

func (r *blogPostRepo) Find(ctx context.Context, id uuid.UUID) (*types.BlogPost, error) {
	return r.findWith(ctx, r.db, id)
}

func (r *blogPostRepo) findWith(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.BlogPost, error) {
	var row records.BlogPost
	if err := tx.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &types.NotFoundError{Entity: "post", Key: id.String()}
		}
		return nil, fmt.Errorf("load blog post %s: %w", id, err)
	}
	return r.assemble(ctx, tx, row)
}

// assemble recomposes one aggregate from its rows, restoring content and
// run order by ascending sort_order.
func (r *blogPostRepo) assemble(ctx context.Context, tx *gorm.DB, row records.BlogPost) (*types.BlogPost, error) {
	post := types.NewBlogPost(row.ID, row.Title)
	post.SetPostDate(types.JstDateFromTime(time.Time(row.PostDate)))
	post.SetLastUpdateDate(types.JstDateFromTime(time.Time(row.LastUpdateDate)))
	post.SetPublishedDate(types.JstDateFromTime(time.Time(row.PublishedDate)))

	var thumbnail records.Image
	if err := tx.WithContext(ctx).First(&thumbnail, "id = ?", row.ThumbnailImageID).Error; err != nil {
		return nil, fmt.Errorf("load thumbnail %s of post %s: %w", row.ThumbnailImageID, row.ID, err)
	}
	post.SetThumbnail(thumbnail.ID, thumbnail.FilePath)

	var contentRows []records.PostContent
	if err := tx.WithContext(ctx).
		Where("post_id = ?", row.ID).
		Order("sort_order ASC").
		Find(&contentRows).Error; err != nil {
		return nil, fmt.Errorf("load contents of post %s: %w", row.ID, err)
	}

	for _, contentRow := range contentRows {
		content, err := r.assembleContent(ctx, tx, contentRow)
		if err != nil {
			return nil, err
		}
		post.AddContent(content)
	}
	return post, nil
}

func (r *blogPostRepo) assembleContent(ctx context.Context, tx *gorm.DB, row records.PostContent) (types.Content, error) {
	switch row.ContentType {
	case records.ContentTypeHeading:
		var heading records.HeadingBlock
		if err := tx.WithContext(ctx).First(&heading, "id = ?", row.ID).Error; err != nil {
			return nil, fmt.Errorf("load heading block %s: %w", row.ID, err)
		}
		if heading.HeadingLevel == 2 {
			return types.NewH2Content(row.ID, heading.TextContent), nil
		}
		return types.NewH3Content(row.ID, heading.TextContent), nil

	case records.ContentTypeParagraph:
		runs, err := r.assembleRuns(ctx, tx, row.ID)
		if err != nil {
			return nil, err
		}
		return types.NewParagraphContent(row.ID, runs), nil

	case records.ContentTypeImage:
		var block records.ImageBlock
		if err := tx.WithContext(ctx).First(&block, "id = ?", row.ID).Error; err != nil {
			return nil, fmt.Errorf("load image block %s: %w", row.ID, err)
		}
		var image records.Image
		if err := tx.WithContext(ctx).First(&image, "id = ?", block.ImageID).Error; err != nil {
			return nil, fmt.Errorf("load image %s of block %s: %w", block.ImageID, row.ID, err)
		}
		return types.NewImageContent(row.ID, types.NewImage(image.ID, image.FilePath)), nil

	case records.ContentTypeCodeBlock:
		var code records.CodeBlock
		if err := tx.WithContext(ctx).First(&code, "id = ?", row.ID).Error; err != nil {
			return nil, fmt.Errorf("load code block %s: %w", row.ID, err)
		}
		return types.NewCodeContent(row.ID, code.Title, code.Code, code.Language), nil

	default:
		return nil, fmt.Errorf("post content %s has unknown content type %q", row.ID, row.ContentType)
	}
}

func (r *blogPostRepo) assembleRuns(ctx context.Context, tx *gorm.DB, paragraphID uuid.UUID) ([]types.Run, error) {
	var textRows []records.RichText
	if err := tx.WithContext(ctx).
		Where("paragraph_block_id = ?", paragraphID).
		Order("sort_order ASC").
		Find(&textRows).Error; err != nil {
		return nil, fmt.Errorf("load rich texts of paragraph %s: %w", paragraphID, err)
	}

	runs := make([]types.Run, 0, len(textRows))
	for _, textRow := range textRows {
		var styleTypes []string
		if err := tx.WithContext(ctx).
			Model(&records.TextStyle{}).
			Joins("JOIN rich_text_styles ON rich_text_styles.style_id = text_styles.id").
			Where("rich_text_styles.rich_text_id = ?", textRow.ID).
			Pluck("text_styles.style_type", &styleTypes).Error; err != nil {
			return nil, fmt.Errorf("load styles of rich text %s: %w", textRow.ID, err)
		}
		var styles types.RunStyles
		for _, styleType := range styleTypes {
			switch styleType {
			case records.StyleTypeBold:
				styles.Bold = true
			case records.StyleTypeInlineCode:
				styles.InlineCode = true
			}
		}

		var link *types.RunLink
		var linkRow records.RichTextLink
		err := tx.WithContext(ctx).First(&linkRow, "rich_text_id = ?", textRow.ID).Error
		switch {
		case err == nil:
			link = &types.RunLink{URL: linkRow.URL}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// no link on this run
		default:
			return nil, fmt.Errorf("load link of rich text %s: %w", textRow.ID, err)
		}

		runs = append(runs, types.NewRun(textRow.TextContent, styles, link))
	}
	return runs, nil
}

func (r *blogPostRepo) Save(ctx context.Context, post *types.BlogPost) (*types.BlogPost, error) {
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return r.writePost(ctx, tx, post)
	}); err != nil {
		return nil, err
	}
	return r.Find(ctx, post.ID())
}

func (r *blogPostRepo) Update(ctx context.Context, post *types.BlogPost) (*types.BlogPost, error) {
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing records.BlogPost
		if err := tx.WithContext(ctx).First(&existing, "id = ?", post.ID()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &types.NotFoundError{Entity: "post", Key: post.ID().String()}
			}
			return fmt.Errorf("load blog post %s for update: %w", post.ID(), err)
		}
		if err := r.deleteContents(ctx, tx, post.ID()); err != nil {
			return err
		}
		return r.writePost(ctx, tx, post)
	}); err != nil {
		return nil, err
	}
	return r.Find(ctx, post.ID())
}

// deleteContents removes every content row of the post, children first,
// so the replacement list can be inserted cleanly.
func (r *blogPostRepo) deleteContents(ctx context.Context, tx *gorm.DB, postID uuid.UUID) error {
	contentIDs := func() *gorm.DB {
		return tx.Session(&gorm.Session{NewDB: true}).
			Table("post_contents").Select("id").Where("post_id = ?", postID)
	}
	richTextIDs := func() *gorm.DB {
		return tx.Session(&gorm.Session{NewDB: true}).
			Table("rich_texts").Select("id").Where("paragraph_block_id IN (?)", contentIDs())
	}

	steps := []struct {
		model any
		query *gorm.DB
	}{
		{&records.RichTextLink{}, tx.WithContext(ctx).Where("rich_text_id IN (?)", richTextIDs())},
		{&records.RichTextStyle{}, tx.WithContext(ctx).Where("rich_text_id IN (?)", richTextIDs())},
		{&records.RichText{}, tx.WithContext(ctx).Where("paragraph_block_id IN (?)", contentIDs())},
		{&records.ParagraphBlock{}, tx.WithContext(ctx).Where("id IN (?)", contentIDs())},
		{&records.HeadingBlock{}, tx.WithContext(ctx).Where("id IN (?)", contentIDs())},
		{&records.ImageBlock{}, tx.WithContext(ctx).Where("id IN (?)", contentIDs())},
		{&records.CodeBlock{}, tx.WithContext(ctx).Where("id IN (?)", contentIDs())},
		{&records.PostContent{}, tx.WithContext(ctx).Where("post_id = ?", postID)},
	}
	for _, step := range steps {
		if err := step.query.Delete(step.model).Error; err != nil {
			return fmt.Errorf("delete contents of post %s: %w", postID, err)
		}
	}
	return nil
}

// writePost upserts the header row and inserts every content row with
// its sort order. Callers are responsible for running it inside a
// transaction.
func (r *blogPostRepo) writePost(ctx context.Context, tx *gorm.DB, post *types.BlogPost) error {
	thumbnail := post.Thumbnail()
	if thumbnail == nil {
		return fmt.Errorf("blog post %s has no thumbnail: %w", post.ID(), pkgerrors.ErrInvalidArgument)
	}

	header := records.BlogPost{
		ID:               post.ID(),
		Title:            post.Title(),
		ThumbnailImageID: thumbnail.ID(),
		PostDate:         datatypes.Date(post.PostDate().NaiveTime()),
		LastUpdateDate:   datatypes.Date(post.LastUpdateDate().NaiveTime()),
		PublishedDate:    datatypes.Date(post.PublishedDate().NaiveTime()),
	}
	if err := tx.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&header).Error; err != nil {
		return fmt.Errorf("upsert blog post %s: %w", post.ID(), err)
	}

	for i, content := range post.Contents() {
		if err := r.writeContent(ctx, tx, post.ID(), content, i); err != nil {
			return err
		}
	}
	return nil
}

func (r *blogPostRepo) writeContent(ctx context.Context, tx *gorm.DB, postID uuid.UUID, content types.Content, sortOrder int) error {
	contentType, err := contentTypeOf(content)
	if err != nil {
		return err
	}
	contentRow := records.PostContent{
		ID:          content.ID(),
		PostID:      postID,
		ContentType: contentType,
		SortOrder:   sortOrder,
	}
	if err := tx.WithContext(ctx).Create(&contentRow).Error; err != nil {
		return fmt.Errorf("insert post content %s: %w", content.ID(), err)
	}

	switch c := content.(type) {
	case types.H2Content:
		return r.writeHeading(ctx, tx, c.ID(), 2, c.Text())
	case types.H3Content:
		return r.writeHeading(ctx, tx, c.ID(), 3, c.Text())
	case types.ParagraphContent:
		return r.writeParagraph(ctx, tx, c)
	case types.ImageContent:
		return r.writeImageBlock(ctx, tx, c)
	case types.CodeContent:
		code := records.CodeBlock{ID: c.ID(), Title: c.Title(), Code: c.Code(), Language: c.Language()}
		if err := tx.WithContext(ctx).Create(&code).Error; err != nil {
			return fmt.Errorf("insert code block %s: %w", c.ID(), err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported content type %T", content)
	}
}

func contentTypeOf(content types.Content) (string, error) {
	switch content.(type) {
	case types.H2Content, types.H3Content:
		return records.ContentTypeHeading, nil
	case types.ParagraphContent:
		return records.ContentTypeParagraph, nil
	case types.ImageContent:
		return records.ContentTypeImage, nil
	case types.CodeContent:
		return records.ContentTypeCodeBlock, nil
	default:
		return "", fmt.Errorf("unsupported content type %T", content)
	}
}

func (r *blogPostRepo) writeHeading(ctx context.Context, tx *gorm.DB, id uuid.UUID, level int, text string) error {
	heading := records.HeadingBlock{ID: id, HeadingLevel: level, TextContent: text}
	if err := tx.WithContext(ctx).Create(&heading).Error; err != nil {
		return fmt.Errorf("insert heading block %s: %w", id, err)
	}
	return nil
}

func (r *blogPostRepo) writeParagraph(ctx context.Context, tx *gorm.DB, paragraph types.ParagraphContent) error {
	block := records.ParagraphBlock{ID: paragraph.ID()}
	if err := tx.WithContext(ctx).Create(&block).Error; err != nil {
		return fmt.Errorf("insert paragraph block %s: %w", paragraph.ID(), err)
	}

	for i, run := range paragraph.Runs() {
		textRow := records.RichText{
			ID:               uuid.New(),
			ParagraphBlockID: paragraph.ID(),
			TextContent:      run.Text(),
			SortOrder:        i,
		}
		if err := tx.WithContext(ctx).Create(&textRow).Error; err != nil {
			return fmt.Errorf("insert rich text of paragraph %s: %w", paragraph.ID(), err)
		}

		styles := run.Styles()
		if styles.Bold {
			if err := r.linkStyle(ctx, tx, textRow.ID, records.StyleTypeBold); err != nil {
				return err
			}
		}
		if styles.InlineCode {
			if err := r.linkStyle(ctx, tx, textRow.ID, records.StyleTypeInlineCode); err != nil {
				return err
			}
		}

		if link := run.Link(); link != nil {
			linkRow := records.RichTextLink{ID: uuid.New(), RichTextID: textRow.ID, URL: link.URL}
			if err := tx.WithContext(ctx).Create(&linkRow).Error; err != nil {
				return fmt.Errorf("insert link of rich text %s: %w", textRow.ID, err)
			}
		}
	}
	return nil
}

// linkStyle attaches a style to a rich text, creating the dictionary row
// for the style type on first use.
func (r *blogPostRepo) linkStyle(ctx context.Context, tx *gorm.DB, richTextID uuid.UUID, styleType string) error {
	var style records.TextStyle
	err := tx.WithContext(ctx).First(&style, "style_type = ?", styleType).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		style = records.TextStyle{ID: uuid.New(), StyleType: styleType}
		if err := tx.WithContext(ctx).Create(&style).Error; err != nil {
			return fmt.Errorf("insert text style %q: %w", styleType, err)
		}
	case err != nil:
		return fmt.Errorf("load text style %q: %w", styleType, err)
	}

	linkRow := records.RichTextStyle{StyleID: style.ID, RichTextID: richTextID}
	if err := tx.WithContext(ctx).Create(&linkRow).Error; err != nil {
		return fmt.Errorf("link style %q to rich text %s: %w", styleType, richTextID, err)
	}
	return nil
}

// writeImageBlock re-resolves the image by path inside the transaction;
// the id carried on the block is the block id, not the image id, and the
// stored image row is authoritative.
func (r *blogPostRepo) writeImageBlock(ctx context.Context, tx *gorm.DB, content types.ImageContent) error {
	var image records.Image
	err := tx.WithContext(ctx).First(&image, "file_path = ?", content.Image().Path()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &types.ImageNotFoundError{Path: content.Image().Path()}
	}
	if err != nil {
		return fmt.Errorf("resolve image by path %s: %w", content.Image().Path(), err)
	}

	block := records.ImageBlock{ID: content.ID(), ImageID: image.ID}
	if err := tx.WithContext(ctx).Create(&block).Error; err != nil {
		return fmt.Errorf("insert image block %s: %w", content.ID(), err)
	}
	return nil
}

func (r *blogPostRepo) FindLatests(ctx context.Context, quantity *int) ([]*types.BlogPost, error) {
	query := r.db.WithContext(ctx).Order("post_date DESC")
	if quantity != nil {
		query = query.Limit(*quantity)
	}
	var rows []records.BlogPost
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list latest blog posts: %w", err)
	}
	return r.assembleAll(ctx, rows)
}

func (r *blogPostRepo) FindAll(ctx context.Context) ([]*types.BlogPost, error) {
	var rows []records.BlogPost
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	return r.assembleAll(ctx, rows)
}

func (r *blogPostRepo) assembleAll(ctx context.Context, rows []records.BlogPost) ([]*types.BlogPost, error) {
	posts := make([]*types.BlogPost, 0, len(rows))
	for _, row := range rows {
		post, err := r.assemble(ctx, r.db, row)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}
