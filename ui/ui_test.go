package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tunes-proxy-go/client"
	"tunes-proxy-go/services/itunes"
)

func newTestModel() *Model {
	m := NewModel(context.Background(), client.New("http://localhost:8080", nil), "test-token")
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func TestSearchResultsPopulateList(t *testing.T) {
	m := newTestModel()

	m.Update(searchResultMsg{resp: itunes.SearchResponse{
		ResultCount: 2,
		Results: []itunes.Result{
			{TrackID: 1, TrackName: "Let It Be", ArtistName: "The Beatles"},
			{TrackID: 2, TrackName: "Hey Jude", ArtistName: "The Beatles"},
		},
	}})

	if len(m.results.Items()) != 2 {
		t.Fatalf("Expected 2 result items, got %d", len(m.results.Items()))
	}
	if m.errLine != "" {
		t.Errorf("Expected no error line, got %q", m.errLine)
	}
}

func TestFailedSearchKeepsPreviousResults(t *testing.T) {
	m := newTestModel()

	m.Update(searchResultMsg{resp: itunes.SearchResponse{
		ResultCount: 1,
		Results:     []itunes.Result{{TrackID: 1, TrackName: "Let It Be"}},
	}})
	m.Update(searchResultMsg{err: errors.New("boom")})

	if len(m.results.Items()) != 1 {
		t.Errorf("Expected previous results to survive a failed search, got %d items", len(m.results.Items()))
	}
	if m.errLine == "" {
		t.Error("Expected an error line after a failed search")
	}
}

func TestLastResponseWins(t *testing.T) {
	m := newTestModel()

	m.Update(searchResultMsg{resp: itunes.SearchResponse{
		Results: []itunes.Result{{TrackID: 1, TrackName: "First"}},
	}})
	m.Update(searchResultMsg{resp: itunes.SearchResponse{
		Results: []itunes.Result{{TrackID: 2, TrackName: "Second"}, {TrackID: 3, TrackName: "Third"}},
	}})

	items := m.results.Items()
	if len(items) != 2 {
		t.Fatalf("Expected the later response to replace the earlier one, got %d items", len(items))
	}
	if items[0].(mediaItem).result.TrackID != 2 {
		t.Errorf("Unexpected first item: %+v", items[0])
	}
}

func TestToggleSelectedSyncsBothViews(t *testing.T) {
	m := newTestModel()

	m.Update(searchResultMsg{resp: itunes.SearchResponse{
		Results: []itunes.Result{{TrackID: 1, TrackName: "Let It Be"}},
	}})

	m.toggleSelected()
	if m.favs.Len() != 1 {
		t.Fatalf("Expected 1 favourite after toggle, got %d", m.favs.Len())
	}
	if len(m.favList.Items()) != 1 {
		t.Errorf("Expected favourites list to be rebuilt, got %d items", len(m.favList.Items()))
	}
	if !m.results.Items()[0].(mediaItem).fav {
		t.Error("Expected the result row to carry the favourite marker")
	}

	// Toggle the same item off from the favourites view.
	m.view = FavouritesView
	m.toggleSelected()
	if m.favs.Len() != 0 {
		t.Errorf("Expected favourite removed, got %d", m.favs.Len())
	}
	if m.results.Items()[0].(mediaItem).fav {
		t.Error("Expected the favourite marker to be cleared")
	}
}

func TestMediaCycle(t *testing.T) {
	m := newTestModel()

	if m.media() != "" {
		t.Errorf(`Expected "all" to map to an empty media filter, got %q`, m.media())
	}

	for i := 1; i < len(mediaFilters); i++ {
		m.mediaIdx = i
		if m.media() != mediaFilters[i] {
			t.Errorf("Expected media %q at index %d, got %q", mediaFilters[i], i, m.media())
		}
	}
}
