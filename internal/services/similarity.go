package services

type SimilarityScorer interface {
	Score(textA, textB string) float64
}

type jaccardScorer struct {
	tokenizer TextTokenizer
}

func NewSimilarityScorer(tokenizer TextTokenizer) SimilarityScorer {
	if tokenizer == nil {
		tokenizer = NewTextTokenizer()
	}
	return &jaccardScorer{tokenizer: tokenizer}
}

// Score implements SimilarityScorer with the Jaccard index of the distinct
// token sets. Two texts without any token score 0.
func (s *jaccardScorer) Score(textA, textB string) float64 {
	setA := s.tokenizer.TokenSet(textA)
	setB := s.tokenizer.TokenSet(textB)

	small, large := setA, setB
	if len(small) > len(large) {
		small, large = large, small
	}

	intersection := 0
	for token := range small {
		if _, ok := large[token]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
