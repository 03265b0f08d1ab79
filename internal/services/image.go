package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/takashi605/blog-backend/internal/data/repos"
	types "github.com/takashi605/blog-backend/internal/domain"
	"github.com/takashi605/blog-backend/internal/pkg/logger"
)

type ImageService interface {
	// Register stores a new image path and returns it with its minted id.
	Register(ctx context.Context, path string) (types.Image, error)
	List(ctx context.Context) ([]types.Image, error)
}

type imageService struct {
	log    *logger.Logger
	images repos.ImageRepo
}

func NewImageService(baseLog *logger.Logger, images repos.ImageRepo) ImageService {
	serviceLog := baseLog.With("service", "ImageService")
	return &imageService{log: serviceLog, images: images}
}

func (s *imageService) Register(ctx context.Context, path string) (types.Image, error) {
	image := types.NewImage(uuid.New(), path)
	created, err := s.images.Create(ctx, image)
	if err != nil {
		s.log.Error("Register image failed", "error", err, "path", path)
		return types.Image{}, err
	}
	return created, nil
}

func (s *imageService) List(ctx context.Context) ([]types.Image, error) {
	images, err := s.images.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	return images, nil
}
