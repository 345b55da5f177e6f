package services

import (
	"context"

	"github.com/gamescores/apiserver/types"
)

const defaultPerPage = 20

// HighscoreRepository defines storage operations for highscores.
type HighscoreRepository interface {
	Create(ctx context.Context, highscore types.Highscore) (types.Highscore, error)
	ListByLevel(ctx context.Context, level string, offset, limit int) ([]types.Highscore, int, error)
}

// HighscoreService encapsulates highscore use-cases.
type HighscoreService struct {
	repo HighscoreRepository
}

func NewHighscoreService(repo HighscoreRepository) *HighscoreService {
	return &HighscoreService{repo: repo}
}

func (s *HighscoreService) Submit(ctx context.Context, highscore types.Highscore) (types.Highscore, error) {
	return s.repo.Create(ctx, highscore)
}

// ListByLevel returns a page of highscores for a level, ranked by
// score descending. There is deliberately no upper bound on limit.
func (s *HighscoreService) ListByLevel(ctx context.Context, level string, offset, limit int) ([]types.Highscore, int, error) {
	if limit <= 0 {
		limit = defaultPerPage
	}
	return s.repo.ListByLevel(ctx, level, offset, limit)
}
