package store

import (
	"context"
	"sort"
	"sync"

	"github.com/gamescores/apiserver/types"
)

// HighscoreStore holds highscore records for the lifetime of the
// process. Records are append-only with no uniqueness constraint:
// repeat submissions for the same user and level are all retained.
type HighscoreStore struct {
	mu     sync.Mutex
	scores []types.Highscore
}

func NewHighscoreStore() *HighscoreStore {
	return &HighscoreStore{}
}

// Create appends a highscore record.
func (r *HighscoreStore) Create(ctx context.Context, highscore types.Highscore) (types.Highscore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.scores = append(r.scores, highscore)
	return highscore, nil
}

// ListByLevel returns one page of the records whose level matches
// exactly, ordered by score descending, along with the total number
// of matches. The sort is stable: equal scores keep insertion order.
// Pages past the end of the result set are empty, not an error.
func (r *HighscoreStore) ListByLevel(ctx context.Context, level string, offset, limit int) ([]types.Highscore, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]types.Highscore, 0)
	for _, score := range r.scores {
		if score.Level == level {
			matched = append(matched, score)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Score > matched[j].Score
	})

	total := len(matched)
	if offset >= total {
		return []types.Highscore{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}
