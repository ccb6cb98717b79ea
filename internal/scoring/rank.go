package scoring

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spboyer/filmtop/internal/catalog"
	"github.com/spboyer/filmtop/internal/metrics"
	"github.com/spboyer/filmtop/internal/models"
)

// GenreMatch selects how the genre filter is compared against a film's
// genre list.
type GenreMatch string

const (
	// MatchExact keeps a film when the whole filter is one of its genres.
	MatchExact GenreMatch = "exact"

	// MatchAny splits the filter on commas and keeps a film when any of its
	// genres is in that set.
	MatchAny GenreMatch = "any"
)

// ScorePolicy selects the composite score formula.
type ScorePolicy string

const (
	// PolicyBlend averages the film's rating with its cast average.
	PolicyBlend ScorePolicy = "blend"

	// PolicyCast scores a film by its cast average alone.
	PolicyCast ScorePolicy = "cast"
)

// ParseGenreMatch validates a genre match name. The empty string selects
// MatchExact.
func ParseGenreMatch(s string) (GenreMatch, error) {
	switch GenreMatch(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchExact:
		return MatchExact, nil
	case MatchAny:
		return MatchAny, nil
	}
	return "", fmt.Errorf("unknown genre match %q (want %s or %s)", s, MatchExact, MatchAny)
}

// ParseScorePolicy validates a score policy name. The empty string selects
// PolicyBlend.
func ParseScorePolicy(s string) (ScorePolicy, error) {
	switch ScorePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyBlend:
		return PolicyBlend, nil
	case PolicyCast:
		return PolicyCast, nil
	}
	return "", fmt.Errorf("unknown score policy %q (want %s or %s)", s, PolicyBlend, PolicyCast)
}

// Options controls Rank.
type Options struct {
	// Genre filters films by genre. Empty keeps every film.
	Genre string

	// Limit truncates the ranking. Zero or negative returns all entries.
	Limit int

	// Match defaults to MatchExact.
	Match GenreMatch

	// Policy defaults to PolicyBlend.
	Policy ScorePolicy
}

// Rank scores every film that passes the genre filter and returns the entries
// sorted by descending score, then ascending title. Entries that compare
// equal keep their catalog order.
func Rank(films []models.Film, scores ActorScores, opts Options) []models.RankedEntry {
	keep := genreFilter(opts.Genre, opts.Match)

	entries := make([]models.RankedEntry, 0, len(films))
	for i := range films {
		f := &films[i]
		if !keep(f) {
			continue
		}
		entries = append(entries, models.RankedEntry{
			Title: f.Title,
			Score: compositeScore(f, scores, opts.Policy),
		})
	}

	slices.SortStableFunc(entries, compareEntries)

	if opts.Limit > 0 && len(entries) > opts.Limit {
		entries = entries[:opts.Limit]
	}

	slog.Debug("films ranked", "films", len(films), "entries", len(entries), "genre", opts.Genre, "limit", opts.Limit)
	return entries
}

// Top builds the actor score table from films and ranks them in one call.
func Top(films []models.Film, opts Options) []models.RankedEntry {
	return Rank(films, BuildActorScores(films), opts)
}

// CastAverage returns the mean score of the film's actors that appear in
// scores. Unknown actors are left out of the mean; a film with no known
// actors averages 0.
func CastAverage(f *models.Film, scores ActorScores) float64 {
	known := make([]float64, 0, len(f.Actors))
	for _, actor := range f.Actors {
		if v, ok := scores.Lookup(actor); ok {
			known = append(known, v)
		}
	}
	return metrics.Mean(known)
}

func compositeScore(f *models.Film, scores ActorScores, policy ScorePolicy) float64 {
	cast := CastAverage(f, scores)
	if policy == PolicyCast {
		return cast
	}
	return (f.Rating + cast) / 2
}

func genreFilter(genre string, match GenreMatch) func(*models.Film) bool {
	genre = strings.TrimSpace(genre)
	if genre == "" {
		return func(*models.Film) bool { return true }
	}

	if match != MatchAny {
		return func(f *models.Film) bool { return f.HasGenre(genre) }
	}

	wanted := make(map[string]struct{})
	for _, g := range catalog.SplitList(genre) {
		wanted[g] = struct{}{}
	}
	return func(f *models.Film) bool {
		for _, g := range f.Genres {
			if _, ok := wanted[g]; ok {
				return true
			}
		}
		return false
	}
}
