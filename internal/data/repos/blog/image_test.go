package blog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/takashi605/blog-backend/internal/data/repos/testutil"
	types "github.com/takashi605/blog-backend/internal/domain"
	pkgerrors "github.com/takashi605/blog-backend/internal/pkg/errors"
)

func TestImageRepoCreateAndLookup(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewImageRepo(db, testutil.Logger(t))

	image := types.NewImage(uuid.New(), "/img/a.png")
	created, err := repo.Create(ctx, image)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID() != image.ID() || created.Path() != image.Path() {
		t.Fatalf("created = %+v", created)
	}

	byID, err := repo.FindByID(ctx, image.ID())
	if err != nil || byID.Path() != "/img/a.png" {
		t.Fatalf("FindByID = %+v, %v", byID, err)
	}

	byPath, err := repo.FindByPath(ctx, "/img/a.png")
	if err != nil || byPath.ID() != image.ID() {
		t.Fatalf("FindByPath = %+v, %v", byPath, err)
	}
}

func TestImageRepoMissing(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewImageRepo(db, testutil.Logger(t))

	if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("FindByID err = %v, want not found", err)
	}
	if _, err := repo.FindByPath(ctx, "/nope.png"); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("FindByPath err = %v, want not found", err)
	}
}

func TestImageRepoDuplicatePath(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewImageRepo(db, testutil.Logger(t))

	if _, err := repo.Create(ctx, types.NewImage(uuid.New(), "/img/dup.png")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err := repo.Create(ctx, types.NewImage(uuid.New(), "/img/dup.png"))
	if !errors.Is(err, pkgerrors.ErrConflict) {
		t.Fatalf("duplicate Create err = %v, want conflict", err)
	}
}

func TestImageRepoFindAll(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewImageRepo(db, testutil.Logger(t))

	for _, path := range []string{"/img/b.png", "/img/a.png"} {
		if _, err := repo.Create(ctx, types.NewImage(uuid.New(), path)); err != nil {
			t.Fatalf("Create %s: %v", path, err)
		}
	}
	images, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(images) != 2 || images[0].Path() != "/img/a.png" || images[1].Path() != "/img/b.png" {
		t.Fatalf("FindAll = %+v", images)
	}
}
