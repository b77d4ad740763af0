package services

import (
	"cmp"
	"slices"

	"alfredoptarigan/resume-screener/internal/models"
)

type ResultRanker interface {
	Rank(candidates []models.ScoredCandidate) []models.ScoredCandidate
}

type resultRanker struct{}

func NewResultRanker() ResultRanker {
	return &resultRanker{}
}

// Rank implements ResultRanker. Highest similarity first; equal scores keep
// their submission order. The input slice is left untouched.
func (r *resultRanker) Rank(candidates []models.ScoredCandidate) []models.ScoredCandidate {
	ranked := append(make([]models.ScoredCandidate, 0, len(candidates)), candidates...)
	slices.SortStableFunc(ranked, func(a, b models.ScoredCandidate) int {
		return cmp.Compare(b.Similarity, a.Similarity)
	})
	return ranked
}
