package services

import (
	"context"
	"sort"
	"testing"

	"github.com/google/uuid"
	types "github.com/takashi605/blog-backend/internal/domain"
	"github.com/takashi605/blog-backend/internal/pkg/logger"
)

func testLogger(tb testing.TB) *logger.Logger {
	tb.Helper()
	log, err := logger.New("test")
	if err != nil {
		tb.Fatalf("failed to init logger: %v", err)
	}
	return log
}

// fakePostRepo is an in-memory BlogPostRepository. It records how many
// curated writes happened so tests can assert a rejected operation left
// the stored state alone.
type fakePostRepo struct {
	posts map[uuid.UUID]*types.BlogPost
	order []uuid.UUID

	topPick *types.TopTechPick
	pickUp  *types.PickUpPostSet
	popular *types.PopularPostSet

	updateCalls        int
	pickUpUpdateCalls  int
	popularUpdateCalls int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[uuid.UUID]*types.BlogPost{}}
}

func (r *fakePostRepo) put(post *types.BlogPost) {
	if _, ok := r.posts[post.ID()]; !ok {
		r.order = append(r.order, post.ID())
	}
	r.posts[post.ID()] = post
}

func (r *fakePostRepo) Find(ctx context.Context, id uuid.UUID) (*types.BlogPost, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, &types.NotFoundError{Entity: "post", Key: id.String()}
	}
	return post, nil
}

func (r *fakePostRepo) Save(ctx context.Context, post *types.BlogPost) (*types.BlogPost, error) {
	r.put(post)
	return post, nil
}

func (r *fakePostRepo) Update(ctx context.Context, post *types.BlogPost) (*types.BlogPost, error) {
	r.updateCalls++
	if _, ok := r.posts[post.ID()]; !ok {
		return nil, &types.NotFoundError{Entity: "post", Key: post.ID().String()}
	}
	r.posts[post.ID()] = post
	return post, nil
}

func (r *fakePostRepo) FindLatests(ctx context.Context, quantity *int) ([]*types.BlogPost, error) {
	posts, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PostDate().After(posts[j].PostDate())
	})
	if quantity != nil && *quantity < len(posts) {
		posts = posts[:*quantity]
	}
	return posts, nil
}

func (r *fakePostRepo) FindAll(ctx context.Context) ([]*types.BlogPost, error) {
	posts := make([]*types.BlogPost, 0, len(r.order))
	for _, id := range r.order {
		posts = append(posts, r.posts[id])
	}
	return posts, nil
}

func (r *fakePostRepo) FindTopTechPick(ctx context.Context) (types.TopTechPick, error) {
	if r.topPick == nil {
		return types.TopTechPick{}, &types.NotFoundError{Entity: "top tech pick", Key: "current"}
	}
	return *r.topPick, nil
}

func (r *fakePostRepo) UpdateTopTechPick(ctx context.Context, pick types.TopTechPick) (types.TopTechPick, error) {
	r.topPick = &pick
	return pick, nil
}

func (r *fakePostRepo) FindPickUpPosts(ctx context.Context) (types.PickUpPostSet, error) {
	if r.pickUp == nil {
		return types.PickUpPostSet{}, &types.NotFoundError{Entity: "pickup posts", Key: "current"}
	}
	return *r.pickUp, nil
}

func (r *fakePostRepo) UpdatePickUpPosts(ctx context.Context, set types.PickUpPostSet) (types.PickUpPostSet, error) {
	r.pickUpUpdateCalls++
	r.pickUp = &set
	return set, nil
}

func (r *fakePostRepo) FindPopularPosts(ctx context.Context) (types.PopularPostSet, error) {
	if r.popular == nil {
		return types.PopularPostSet{}, &types.NotFoundError{Entity: "popular posts", Key: "current"}
	}
	return *r.popular, nil
}

func (r *fakePostRepo) UpdatePopularPosts(ctx context.Context, set types.PopularPostSet) (types.PopularPostSet, error) {
	r.popularUpdateCalls++
	r.popular = &set
	return set, nil
}

// fakeImageRepo is an in-memory ImageRepository keyed by id and path.
type fakeImageRepo struct {
	images []types.Image
}

func (r *fakeImageRepo) FindByID(ctx context.Context, id uuid.UUID) (types.Image, error) {
	for _, img := range r.images {
		if img.ID() == id {
			return img, nil
		}
	}
	return types.Image{}, &types.NotFoundError{Entity: "image", Key: id.String()}
}

func (r *fakeImageRepo) FindByPath(ctx context.Context, path string) (types.Image, error) {
	for _, img := range r.images {
		if img.Path() == path {
			return img, nil
		}
	}
	return types.Image{}, &types.NotFoundError{Entity: "image", Key: path}
}

func (r *fakeImageRepo) Create(ctx context.Context, image types.Image) (types.Image, error) {
	r.images = append(r.images, image)
	return image, nil
}

func (r *fakeImageRepo) FindAll(ctx context.Context) ([]types.Image, error) {
	images := make([]types.Image, len(r.images))
	copy(images, r.images)
	return images, nil
}
