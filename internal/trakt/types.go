package trakt

import (
	"fmt"
	"strings"
)

// MediaType distinguishes the two kinds of catalog entries a list can hold.
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeShow  MediaType = "show"
)

// ParseMediaType normalizes user input into a MediaType. Accepts "movie", "show" and "tv".
func ParseMediaType(s string) (MediaType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie", "movies":
		return MediaTypeMovie, nil
	case "show", "shows", "tv":
		return MediaTypeShow, nil
	default:
		return "", fmt.Errorf("unknown media type %q (expected movie or show)", s)
	}
}

// IDs holds the identifier set Trakt attaches to every catalog entry.
// Trakt is the stable numeric id used for list mutations.
type IDs struct {
	Trakt int64  `json:"trakt"`
	Slug  string `json:"slug,omitempty"`
	IMDB  string `json:"imdb,omitempty"`
	TMDB  int64  `json:"tmdb,omitempty"`
}

// Movie represents a movie entry in search results and list items.
type Movie struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
	IDs   IDs    `json:"ids"`
}

// Show represents a show entry in search results and list items.
type Show struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
	IDs   IDs    `json:"ids"`
}

// SearchResult is a single entry of a /search response.
// Exactly one of Movie or Show is populated depending on the searched type.
type SearchResult struct {
	Type  string  `json:"type"`
	Score float64 `json:"score"`
	Movie *Movie  `json:"movie,omitempty"`
	Show  *Show   `json:"show,omitempty"`
}

// TraktID returns the Trakt id of whichever entry the result carries.
// The boolean is false when the response shape carries neither, which is a
// malformed payload rather than a miss.
func (r SearchResult) TraktID() (int64, bool) {
	switch {
	case r.Movie != nil:
		return r.Movie.IDs.Trakt, true
	case r.Show != nil:
		return r.Show.IDs.Trakt, true
	default:
		return 0, false
	}
}

// ListItem is a single entry of a list items response.
type ListItem struct {
	Rank  int    `json:"rank"`
	Type  string `json:"type"`
	Movie *Movie `json:"movie,omitempty"`
	Show  *Show  `json:"show,omitempty"`
}

// TraktID returns the Trakt id of the item, movie or show alike.
func (li ListItem) TraktID() (int64, bool) {
	switch {
	case li.Movie != nil:
		return li.Movie.IDs.Trakt, true
	case li.Show != nil:
		return li.Show.IDs.Trakt, true
	default:
		return 0, false
	}
}

// List represents a user list's metadata.
type List struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Privacy     string `json:"privacy"`
	ItemCount   int    `json:"item_count"`
	IDs         IDs    `json:"ids"`
}

// ListPayload is the request body for list creation.
type ListPayload struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Privacy        string `json:"privacy"`
	DisplayNumbers bool   `json:"display_numbers"`
	AllowComments  bool   `json:"allow_comments"`
	SortBy         string `json:"sort_by"`
	SortHow        string `json:"sort_how"`
}

// NewListPayload builds a creation payload with the defaults the tool always uses
// (no display numbers, comments allowed, ranked ascending).
func NewListPayload(name, description, privacy string) ListPayload {
	return ListPayload{
		Name:           name,
		Description:    description,
		Privacy:        privacy,
		DisplayNumbers: false,
		AllowComments:  true,
		SortBy:         "rank",
		SortHow:        "asc",
	}
}

// MediaRef is a resolved title: the media type, the Trakt id it resolved to,
// and the original free-text title. Immutable after creation.
type MediaRef struct {
	Type    MediaType
	TraktID int64
	Title   string
}

// ItemRef is the wire shape for one item in a list mutation body.
type ItemRef struct {
	IDs IDs `json:"ids"`
}

// AddItemsPayload is the request body for adding items to a list,
// grouped by media type within a batch.
type AddItemsPayload struct {
	Movies []ItemRef `json:"movies"`
	Shows  []ItemRef `json:"shows"`
}

// NewAddItemsPayload groups a batch of refs into the {movies, shows} wire shape.
func NewAddItemsPayload(refs []MediaRef) AddItemsPayload {
	payload := AddItemsPayload{
		Movies: []ItemRef{},
		Shows:  []ItemRef{},
	}

	for _, ref := range refs {
		item := ItemRef{IDs: IDs{Trakt: ref.TraktID}}
		switch ref.Type {
		case MediaTypeShow:
			payload.Shows = append(payload.Shows, item)
		default:
			payload.Movies = append(payload.Movies, item)
		}
	}

	return payload
}

// AddedCounts reports how many items of each type a mutation call affected.
type AddedCounts struct {
	Movies int `json:"movies"`
	Shows  int `json:"shows"`
}

// AddItemsResult is the response body of a list mutation call.
type AddItemsResult struct {
	Added    AddedCounts `json:"added"`
	Existing AddedCounts `json:"existing"`
}
