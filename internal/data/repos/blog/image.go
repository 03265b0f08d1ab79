package blog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/takashi605/blog-backend/internal/data/records"
	types "github.com/takashi605/blog-backend/internal/domain"
	pkgerrors "github.com/takashi605/blog-backend/internal/pkg/errors"
	"github.com/takashi605/blog-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type imageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewImageRepo(db *gorm.DB, baseLog *logger.Logger) types.ImageRepository {
	repoLog := baseLog.With("repo", "ImageRepo")
	return &imageRepo{db: db, log: repoLog}
}

func (r *imageRepo) FindByID(ctx context.Context, id uuid.UUID) (types.Image, error) {
	var row records.Image
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.Image{}, &types.NotFoundError{Entity: "image", Key: id.String()}
		}
		return types.Image{}, fmt.Errorf("load image %s: %w", id, err)
	}
	return types.NewImage(row.ID, row.FilePath), nil
}

func (r *imageRepo) FindByPath(ctx context.Context, path string) (types.Image, error) {
	var row records.Image
	if err := r.db.WithContext(ctx).First(&row, "file_path = ?", path).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.Image{}, &types.NotFoundError{Entity: "image", Key: path}
		}
		return types.Image{}, fmt.Errorf("load image by path %s: %w", path, err)
	}
	return types.NewImage(row.ID, row.FilePath), nil
}

func (r *imageRepo) Create(ctx context.Context, image types.Image) (types.Image, error) {
	var existing records.Image
	err := r.db.WithContext(ctx).First(&existing, "file_path = ?", image.Path()).Error
	if err == nil {
		return types.Image{}, fmt.Errorf("image path %s already registered: %w", image.Path(), pkgerrors.ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return types.Image{}, fmt.Errorf("check image path %s: %w", image.Path(), err)
	}

	row := records.Image{ID: image.ID(), FilePath: image.Path()}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return types.Image{}, fmt.Errorf("insert image %s: %w", image.ID(), err)
	}
	return types.NewImage(row.ID, row.FilePath), nil
}

func (r *imageRepo) FindAll(ctx context.Context) ([]types.Image, error) {
	var rows []records.Image
	if err := r.db.WithContext(ctx).Order("file_path ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	images := make([]types.Image, 0, len(rows))
	for _, row := range rows {
		images = append(images, types.NewImage(row.ID, row.FilePath))
	}
	return images, nil
}
