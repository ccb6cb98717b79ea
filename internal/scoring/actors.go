// Package scoring builds the actor score table and ranks films by their
// composite score.
package scoring

import (
	"cmp"
	"slices"
	"strings"

	"github.com/spboyer/filmtop/internal/models"
)

// ActorScores maps an actor name to the highest rating among the films
// crediting that actor. Names match exactly and case-sensitively.
type ActorScores map[string]float64

// BuildActorScores derives the actor score table from films. Actors that
// appear in no film are absent from the table.
func BuildActorScores(films []models.Film) ActorScores {
	scores := make(ActorScores)
	for i := range films {
		f := &films[i]
		for _, actor := range f.Actors {
			actor = strings.TrimSpace(actor)
			if actor == "" {
				continue
			}
			if best, ok := scores[actor]; !ok || f.Rating > best {
				scores[actor] = f.Rating
			}
		}
	}
	return scores
}

// Lookup returns the score of actor and whether the actor is known.
func (s ActorScores) Lookup(actor string) (float64, bool) {
	v, ok := s[strings.TrimSpace(actor)]
	return v, ok
}

// Ranked lists the table by descending score, then ascending name.
func (s ActorScores) Ranked() []models.RankedEntry {
	out := make([]models.RankedEntry, 0, len(s))
	for name, score := range s {
		out = append(out, models.RankedEntry{Title: name, Score: score})
	}
	slices.SortFunc(out, compareEntries)
	return out
}

// compareEntries orders entries by descending score, then ascending title.
func compareEntries(a, b models.RankedEntry) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	return strings.Compare(a.Title, b.Title)
}
