// Package ui is the interactive terminal client: a search view over the
// proxy and a favourites view over the in-memory toggle store, sharing one
// list component style.
package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tunes-proxy-go/client"
	"tunes-proxy-go/favourites"
	"tunes-proxy-go/services/itunes"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	SearchView ViewState = iota
	FavouritesView
)

// mediaFilters is the cycle order of the media filter; "all" omits the
// media parameter entirely.
var mediaFilters = append([]string{"all"}, itunes.MediaTypes...)

type searchResultMsg struct {
	resp itunes.SearchResponse
	err  error
}

// Model represents the TUI application state.
type Model struct {
	ctx       context.Context
	api       *client.Client
	token     string
	favs      *favourites.Store
	view      ViewState
	input     textinput.Model
	results   list.Model
	favList   list.Model
	hits      []itunes.Result
	mediaIdx  int
	searching bool
	errLine   string
	width     int
	height    int
	help      help.Model
	keys      keyMap
}

// NewModel creates a new TUI model. The token was obtained by the caller
// and is injected into every search request explicitly.
func NewModel(ctx context.Context, api *client.Client, tok string) *Model {
	input := textinput.New()
	input.Placeholder = "Search..."
	input.Focus()
	input.CharLimit = 100

	results := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	results.Title = "Results"
	results.SetShowHelp(false)

	favList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	favList.Title = "Favourites"
	favList.SetShowHelp(false)

	return &Model{
		ctx:     ctx,
		api:     api,
		token:   tok,
		favs:    favourites.NewStore(),
		view:    SearchView,
		input:   input,
		results: results,
		favList: favList,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// media returns the active media filter, empty for "all".
func (m *Model) media() string {
	if m.mediaIdx == 0 {
		return ""
	}
	return mediaFilters[m.mediaIdx]
}

// runSearch fires an asynchronous search. There is no request sequencing:
// if the filter changes while a search is in flight, whichever response
// arrives last wins.
func (m *Model) runSearch() tea.Cmd {
	q := itunes.Query{Term: m.input.Value(), Media: m.media(), Limit: itunes.DefaultLimit}
	api, tok, ctx := m.api, m.token, m.ctx

	return func() tea.Msg {
		resp, err := api.Search(ctx, tok, q)
		return searchResultMsg{resp: resp, err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listHeight := m.height - 7
		if listHeight < 3 {
			listHeight = 3
		}
		m.results.SetSize(m.width, listHeight)
		m.favList.SetSize(m.width, listHeight)
		return m, nil

	case searchResultMsg:
		m.searching = false
		if msg.err != nil {
			// Failed search leaves the previous results rendered.
			m.errLine = fmt.Sprintf("search failed: %v", msg.err)
			return m, nil
		}
		m.errLine = ""
		m.hits = msg.resp.Results
		m.refreshLists()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.switchTab):
			if m.view == SearchView {
				m.view = FavouritesView
			} else {
				m.view = SearchView
			}
			return m, nil

		case key.Matches(msg, m.keys.media):
			m.mediaIdx = (m.mediaIdx + 1) % len(mediaFilters)
			// Filter changes re-run the search when a term is set.
			if m.input.Value() != "" {
				m.searching = true
				return m, m.runSearch()
			}
			return m, nil

		case key.Matches(msg, m.keys.search):
			if m.view == SearchView && m.input.Value() != "" {
				m.searching = true
				return m, m.runSearch()
			}
			return m, nil

		case key.Matches(msg, m.keys.toggleFav):
			m.toggleSelected()
			return m, nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	if m.view == SearchView {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
		m.results, cmd = m.results.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		m.favList, cmd = m.favList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// toggleSelected toggles the highlighted item of the active view in and
// out of the favourites store, then rebuilds both lists so markers and the
// favourites view stay in sync.
func (m *Model) toggleSelected() {
	var active *list.Model
	if m.view == SearchView {
		active = &m.results
	} else {
		active = &m.favList
	}

	selected, ok := active.SelectedItem().(mediaItem)
	if !ok {
		return
	}

	m.favs.Toggle(selected.result)
	m.refreshLists()
}

// refreshLists rebuilds both list models from the current hits and store.
func (m *Model) refreshLists() {
	items := make([]list.Item, len(m.hits))
	for i, r := range m.hits {
		items[i] = mediaItem{result: r, fav: m.favs.Contains(r)}
	}
	m.results.SetItems(items)

	favs := m.favs.Items()
	favItems := make([]list.Item, len(favs))
	for i, r := range favs {
		favItems[i] = mediaItem{result: r, fav: true}
	}
	m.favList.SetItems(favItems)
}

func (m *Model) View() string {
	header := styles.title.Render("iTunes Media Search")

	var body string
	if m.view == SearchView {
		filter := styles.filter.Render("media: " + mediaFilters[m.mediaIdx])
		status := ""
		if m.searching {
			status = " searching..."
		}
		body = fmt.Sprintf("%s\n%s%s\n\n%s", m.input.View(), filter, status, m.results.View())
	} else {
		body = m.favList.View()
		if m.favs.Len() == 0 {
			body = styles.help.Render("No favourites yet")
		}
	}

	view := fmt.Sprintf("%s\n%s", header, body)
	if m.errLine != "" {
		view += "\n" + styles.err.Render(m.errLine)
	}
	view += "\n" + m.help.View(m.keys)

	return view
}
