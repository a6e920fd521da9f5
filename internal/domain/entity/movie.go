package entity

// Movie is the provider's movie shape, passed through per request and never
// persisted. Movies carry Title, TV shows carry Name.
type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title,omitempty"`
	Name        string  `json:"name,omitempty"`
	PosterPath  *string `json:"poster_path"`
	Overview    string  `json:"overview,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
}

const posterPlaceholder = "/poster-placeholder.png"

// DisplayTitle falls back from title to name to "Untitled".
func (m Movie) DisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}
	if m.Name != "" {
		return m.Name
	}
	return "Untitled"
}

// PosterURL returns the poster path or a local placeholder when the provider
// has none.
func (m Movie) PosterURL() string {
	if m.PosterPath == nil || *m.PosterPath == "" {
		return posterPlaceholder
	}
	return *m.PosterPath
}

// SearchResult is a movie plus the optional IMDb cross-reference resolved by
// the enrichment lookup. ImdbID stays nil when that lookup fails.
type SearchResult struct {
	Movie
	ImdbID *string `json:"imdb_id"`
}
