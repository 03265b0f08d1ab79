package blog

// PublishedPostViewer gates reader access by the publication predicate.
// It is stateless and safe to share.
type PublishedPostViewer struct{}

func NewPublishedPostViewer() PublishedPostViewer {
	return PublishedPostViewer{}
}

// FilterPublishedPosts retains only published posts, preserving the
// input order among the retained items. Callers depend on that ordering.
func (PublishedPostViewer) FilterPublishedPosts(posts []*BlogPost) []*BlogPost {
	published := make([]*BlogPost, 0, len(posts))
	for _, post := range posts {
		if post.IsPublished() {
			published = append(published, post)
		}
	}
	return published
}

// ViewPublishedPost returns the post when it is published, otherwise an
// UnpublishedPostAccessError carrying the post title.
func (PublishedPostViewer) ViewPublishedPost(post *BlogPost) (*BlogPost, error) {
	if !post.IsPublished() {
		return nil, &UnpublishedPostAccessError{PostTitle: post.Title()}
	}
	return post, nil
}
