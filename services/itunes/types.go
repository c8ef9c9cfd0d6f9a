package itunes

// DefaultLimit is applied when the caller does not specify a result limit.
const DefaultLimit = 50

// MediaTypes lists the media values the iTunes Search API documents.
// Validation against this list is advisory: upstream tolerates unknown
// values, so we log and forward rather than reject.
var MediaTypes = []string{
	"movie",
	"podcast",
	"music",
	"musicVideo",
	"audiobook",
	"shortFilm",
	"tvShow",
	"software",
	"ebook",
}

// ValidMedia reports whether media is one of the documented media types.
func ValidMedia(media string) bool {
	for _, m := range MediaTypes {
		if m == media {
			return true
		}
	}
	return false
}

// Result is the display subset of an upstream search hit. The server never
// decodes results; only the client reads these fields for rendering and
// favourites identity.
type Result struct {
	WrapperType    string `json:"wrapperType,omitempty"`
	TrackID        int64  `json:"trackId,omitempty"`
	CollectionID   int64  `json:"collectionId,omitempty"`
	TrackName      string `json:"trackName,omitempty"`
	CollectionName string `json:"collectionName,omitempty"`
	ArtistName     string `json:"artistName,omitempty"`
	ArtworkURL100  string `json:"artworkUrl100,omitempty"`
	ReleaseDate    string `json:"releaseDate,omitempty"`
}

// DisplayTitle returns the best available title for a result.
func (r Result) DisplayTitle() string {
	if r.TrackName != "" {
		return r.TrackName
	}
	if r.CollectionName != "" {
		return r.CollectionName
	}
	return "Untitled"
}

// SearchResponse mirrors the upstream envelope {resultCount, results}.
type SearchResponse struct {
	ResultCount int      `json:"resultCount"`
	Results     []Result `json:"results"`
}
