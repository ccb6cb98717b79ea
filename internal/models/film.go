package models

// Column positions of a catalog row.
const (
	ColID = iota
	ColTitle
	ColGenres
	ColDescription
	ColDirector
	ColActors
	ColYear
	ColRuntime
	ColRating
	ColVotes
	ColRevenue
	ColMetascore

	// ColumnCount is the number of fields every catalog row must carry.
	ColumnCount
)

// ColumnNames maps column positions to the names used in error messages.
var ColumnNames = [ColumnCount]string{
	"id", "title", "genre", "description", "director", "actors",
	"year", "runtime", "rating", "votes", "revenue", "metascore",
}

// Film is one parsed catalog row. Only Title, Genres, Actors, Year and Rating
// take part in ranking; the remaining columns are kept verbatim.
type Film struct {
	ID          string
	Title       string
	Genres      []string
	Description string
	Director    string
	Actors      []string
	Year        int
	Runtime     string
	Rating      float64
	Votes       string
	Revenue     string
	Metascore   string

	// Line is the 1-based line number the film was read from.
	Line int
}

// HasGenre reports whether genre is one of the film's genre tokens.
func (f *Film) HasGenre(genre string) bool {
	for _, g := range f.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// RankedEntry is a (title, composite score) output pair.
type RankedEntry struct {
	Title string  `json:"title" yaml:"title"`
	Score float64 `json:"score" yaml:"score"`
}
