package blog

import "github.com/google/uuid"

// Image references a stored image by identifier and opaque storage path.
// Binary handling lives outside the core; paths are unique.
type Image struct {
	id   uuid.UUID
	path string
}

func NewImage(id uuid.UUID, path string) Image {
	return Image{id: id, path: path}
}

func (i Image) ID() uuid.UUID { return i.id }
func (i Image) Path() string  { return i.path }
