package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestRegisterImageMintsID(t *testing.T) {
	ctx := context.Background()
	repo := &fakeImageRepo{}
	svc := NewImageService(testLogger(t), repo)

	img, err := svc.Register(ctx, "photos/dog.jpg")
	if err != nil {
		t.Fatalf("failed to register image: %v", err)
	}
	if img.ID() == uuid.Nil {
		t.Fatalf("expected a minted image id")
	}
	if img.Path() != "photos/dog.jpg" {
		t.Fatalf("unexpected path %q", img.Path())
	}

	stored, err := repo.FindByPath(ctx, "photos/dog.jpg")
	if err != nil {
		t.Fatalf("registered image missing from repo: %v", err)
	}
	if stored.ID() != img.ID() {
		t.Fatalf("stored id %s does not match returned id %s", stored.ID(), img.ID())
	}
}

func TestListImages(t *testing.T) {
	ctx := context.Background()
	repo := &fakeImageRepo{}
	svc := NewImageService(testLogger(t), repo)

	if _, err := svc.Register(ctx, "a.jpg"); err != nil {
		t.Fatalf("failed to register image: %v", err)
	}
	if _, err := svc.Register(ctx, "b.jpg"); err != nil {
		t.Fatalf("failed to register image: %v", err)
	}

	images, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("failed to list images: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(images))
	}
}
