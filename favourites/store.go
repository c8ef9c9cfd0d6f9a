// Package favourites keeps the client-side set of selected media items.
// Toggle is the only mutation: an absent item is appended, a present one is
// removed. The store is meant for single-goroutine (UI loop) use and never
// outlives the process.
package favourites

import "tunes-proxy-go/services/itunes"

// sameItem reports whether two results are the same entry. Identity prefers
// trackId: when both sides carry one, only the trackIds decide. The
// collectionId comparison applies to collection-level results (albums,
// audiobooks) that have no trackId. A track and a collection never match,
// so favouriting one track cannot toggle off another that merely shares
// its album.
func sameItem(a, b itunes.Result) bool {
	if a.TrackID != 0 && b.TrackID != 0 {
		return a.TrackID == b.TrackID
	}
	if a.TrackID == 0 && b.TrackID == 0 {
		return a.CollectionID != 0 && a.CollectionID == b.CollectionID
	}
	return false
}

// Store is an ordered collection of favourited items.
type Store struct {
	items []itunes.Result
}

func NewStore() *Store {
	return &Store{}
}

// Toggle removes item if a matching entry is present, otherwise appends it.
// Insertion order is preserved across removals.
func (s *Store) Toggle(item itunes.Result) {
	for i, existing := range s.items {
		if sameItem(existing, item) {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
	s.items = append(s.items, item)
}

// Contains reports whether a matching entry is present.
func (s *Store) Contains(item itunes.Result) bool {
	for _, existing := range s.items {
		if sameItem(existing, item) {
			return true
		}
	}
	return false
}

// Items returns the favourites in insertion order. The returned slice is a
// copy; mutating it does not affect the store.
func (s *Store) Items() []itunes.Result {
	out := make([]itunes.Result, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int {
	return len(s.items)
}
