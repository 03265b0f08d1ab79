package blog

// CuratedSetSize is the fixed cardinality of the pickup and popular sets.
const CuratedSetSize = 3

// TopTechPick is the single editor-chosen headline post. Process-wide
// there is at most one.
type TopTechPick struct {
	post *BlogPost
}

func NewTopTechPick(post *BlogPost) TopTechPick {
	return TopTechPick{post: post}
}

func (t TopTechPick) Post() *BlogPost { return t.post }

// PickUpPostSet holds exactly three pickup posts in positional order.
type PickUpPostSet struct {
	posts [CuratedSetSize]*BlogPost
}

// NewPickUpPostSet builds the set from a dynamic sequence and fails
// unless it contains exactly three posts.
func NewPickUpPostSet(posts []*BlogPost) (PickUpPostSet, error) {
	var set PickUpPostSet
	if len(posts) != CuratedSetSize {
		return set, &CardinalityError{Kind: CuratedKindPickUp, Expected: CuratedSetSize, Got: len(posts)}
	}
	copy(set.posts[:], posts)
	return set, nil
}

// Posts returns the three posts in their positional order.
func (s PickUpPostSet) Posts() []*BlogPost {
	return []*BlogPost{s.posts[0], s.posts[1], s.posts[2]}
}

// PopularPostSet holds exactly three popular posts in positional order.
type PopularPostSet struct {
	posts [CuratedSetSize]*BlogPost
}

// NewPopularPostSet builds the set from a dynamic sequence and fails
// unless it contains exactly three posts.
func NewPopularPostSet(posts []*BlogPost) (PopularPostSet, error) {
	var set PopularPostSet
	if len(posts) != CuratedSetSize {
		return set, &CardinalityError{Kind: CuratedKindPopular, Expected: CuratedSetSize, Got: len(posts)}
	}
	copy(set.posts[:], posts)
	return set, nil
}

// Posts returns the three posts in their positional order.
func (s PopularPostSet) Posts() []*BlogPost {
	return []*BlogPost{s.posts[0], s.posts[1], s.posts[2]}
}
