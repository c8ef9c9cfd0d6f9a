package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"tunes-proxy-go/services/itunes"
)

var _ list.Item = mediaItem{}

// mediaItem wraps [itunes.Result] to implement [list.Item]. fav is computed
// when the list is rebuilt, so the heart marker always reflects the store.
type mediaItem struct {
	result itunes.Result
	fav    bool
}

func (i mediaItem) FilterValue() string { return i.result.DisplayTitle() }

func (i mediaItem) Title() string {
	title := i.result.DisplayTitle()
	if i.fav {
		return styles.heart.Render("♥ ") + title
	}
	return title
}

func (i mediaItem) Description() string {
	desc := i.result.ArtistName
	if desc == "" {
		desc = i.result.WrapperType
	}
	if i.result.ReleaseDate != "" {
		date := i.result.ReleaseDate
		if len(date) >= 10 {
			date = date[:10]
		}
		desc = fmt.Sprintf("%s • %s", desc, date)
	}
	return desc
}
