package blog

import (
	"fmt"

	pkgerrors "github.com/takashi605/blog-backend/internal/pkg/errors"
)

// NotFoundError reports a missing entity by name and lookup key.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == pkgerrors.ErrNotFound
}

// InvalidDateError reports an impossible calendar value.
type InvalidDateError struct {
	Detail string
}

func (e *InvalidDateError) Error() string {
	return "invalid date: " + e.Detail
}

func (e *InvalidDateError) Is(target error) bool {
	return target == pkgerrors.ErrInvalidArgument
}

// UnpublishedPostAccessError reports a reader trying to view a post
// whose published date is still in the future.
type UnpublishedPostAccessError struct {
	PostTitle string
}

func (e *UnpublishedPostAccessError) Error() string {
	return fmt.Sprintf("post %q is not published yet", e.PostTitle)
}

func (e *UnpublishedPostAccessError) Is(target error) bool {
	return target == pkgerrors.ErrNotFound
}

// CuratedKind names one of the three editor-managed collections.
type CuratedKind string

const (
	CuratedKindTopTechPick CuratedKind = "top tech pick"
	CuratedKindPickUp      CuratedKind = "pickup"
	CuratedKindPopular     CuratedKind = "popular"
)

// CardinalityError reports a curated set built from the wrong number of
// posts.
type CardinalityError struct {
	Kind     CuratedKind
	Expected int
	Got      int
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("%s posts must contain exactly %d posts, got %d", e.Kind, e.Expected, e.Got)
}

func (e *CardinalityError) Is(target error) bool {
	return target == pkgerrors.ErrInvalidArgument
}

// CuratedPinError rejects an update that would unpublish a post while it
// is still referenced by a curated set.
type CuratedPinError struct {
	Kind CuratedKind
}

func (e *CuratedPinError) Error() string {
	return fmt.Sprintf("post is pinned as %s and cannot be unpublished", e.Kind)
}

func (e *CuratedPinError) Is(target error) bool {
	return target == pkgerrors.ErrConflict
}

// InvalidContentKindError reports an unrecognised content discriminator.
type InvalidContentKindError struct {
	Kind string
}

func (e *InvalidContentKindError) Error() string {
	return fmt.Sprintf("unknown content kind %q", e.Kind)
}

func (e *InvalidContentKindError) Is(target error) bool {
	return target == pkgerrors.ErrInvalidArgument
}

// ImageNotFoundError reports an image reference that resolves to nothing.
type ImageNotFoundError struct {
	Path string
}

func (e *ImageNotFoundError) Error() string {
	return fmt.Sprintf("image not found for path %s", e.Path)
}

func (e *ImageNotFoundError) Is(target error) bool {
	// Surfaces while validating a submitted post, so it is a bad
	// request rather than a missing resource.
	return target == pkgerrors.ErrInvalidArgument
}
