package favourites

import (
	"testing"

	"tunes-proxy-go/services/itunes"
)

func TestToggleAddRemove(t *testing.T) {
	store := NewStore()
	a := itunes.Result{TrackID: 1, TrackName: "Let It Be"}

	store.Toggle(a)
	if store.Len() != 1 {
		t.Fatalf("Expected 1 item after first toggle, got %d", store.Len())
	}
	if !store.Contains(a) {
		t.Error("Expected store to contain the toggled item")
	}

	store.Toggle(a)
	if store.Len() != 0 {
		t.Fatalf("Expected empty store after second toggle, got %d", store.Len())
	}
	if store.Contains(a) {
		t.Error("Expected item to be removed")
	}
}

func TestToggleSequencePreservesOthers(t *testing.T) {
	store := NewStore()
	a := itunes.Result{TrackID: 1, TrackName: "Let It Be"}
	b := itunes.Result{TrackID: 2, TrackName: "Hey Jude"}

	store.Toggle(a)
	store.Toggle(b)
	store.Toggle(a)

	items := store.Items()
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	if items[0].TrackID != 2 {
		t.Errorf("Expected only item B to remain, got trackId %d", items[0].TrackID)
	}
}

func TestToggleInsertionOrder(t *testing.T) {
	store := NewStore()
	ids := []int64{5, 3, 9, 1}
	for _, id := range ids {
		store.Toggle(itunes.Result{TrackID: id})
	}

	items := store.Items()
	if len(items) != len(ids) {
		t.Fatalf("Expected %d items, got %d", len(ids), len(items))
	}
	for i, id := range ids {
		if items[i].TrackID != id {
			t.Errorf("Expected trackId %d at position %d, got %d", id, i, items[i].TrackID)
		}
	}
}

func TestToggleAppendsWhenNoMatch(t *testing.T) {
	store := NewStore()

	for i := int64(1); i <= 5; i++ {
		before := store.Len()
		store.Toggle(itunes.Result{TrackID: i})
		if store.Len() != before+1 {
			t.Errorf("Expected exactly one appended entry, len went %d -> %d", before, store.Len())
		}
	}
}

func TestIdentityRule(t *testing.T) {
	tests := []struct {
		name string
		a, b itunes.Result
		same bool
	}{
		{
			name: "matching trackIds",
			a:    itunes.Result{TrackID: 1, CollectionID: 10},
			b:    itunes.Result{TrackID: 1, CollectionID: 20},
			same: true,
		},
		{
			name: "different trackIds same collection",
			a:    itunes.Result{TrackID: 1, CollectionID: 10},
			b:    itunes.Result{TrackID: 2, CollectionID: 10},
			same: false,
		},
		{
			name: "collection-only items match on collectionId",
			a:    itunes.Result{CollectionID: 10},
			b:    itunes.Result{CollectionID: 10},
			same: true,
		},
		{
			name: "collection-only items differ",
			a:    itunes.Result{CollectionID: 10},
			b:    itunes.Result{CollectionID: 11},
			same: false,
		},
		{
			name: "track vs collection-only never match",
			a:    itunes.Result{TrackID: 1, CollectionID: 10},
			b:    itunes.Result{CollectionID: 10},
			same: false,
		},
		{
			name: "both empty never match",
			a:    itunes.Result{},
			b:    itunes.Result{},
			same: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameItem(tt.a, tt.b); got != tt.same {
				t.Errorf("sameItem(%+v, %+v) = %v, want %v", tt.a, tt.b, got, tt.same)
			}
			// identity is symmetric
			if got := sameItem(tt.b, tt.a); got != tt.same {
				t.Errorf("sameItem is not symmetric for %s", tt.name)
			}
		})
	}
}

func TestUnrelatedCollectionDoesNotToggleTrackOff(t *testing.T) {
	store := NewStore()
	track := itunes.Result{TrackID: 1, CollectionID: 10}
	otherTrack := itunes.Result{TrackID: 2, CollectionID: 10}

	store.Toggle(track)
	store.Toggle(otherTrack)

	// Sharing a collectionId must not count as identity when both items
	// carry trackIds. Both tracks must be present.
	if store.Len() != 2 {
		t.Fatalf("Expected both tracks favourited, got %d items", store.Len())
	}
	if !store.Contains(track) || !store.Contains(otherTrack) {
		t.Error("Expected both tracks to be present")
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Toggle(itunes.Result{TrackID: 1, TrackName: "Let It Be"})

	items := store.Items()
	items[0].TrackName = "mutated"

	if store.Items()[0].TrackName != "Let It Be" {
		t.Error("Expected store contents to be unaffected by mutating the returned slice")
	}
}
