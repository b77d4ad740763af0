package models

type ScreenResponse struct {
	Success bool              `json:"success"`
	Results []ScoredCandidate `json:"results"`
}

type SummaryResponse struct {
	Success bool    `json:"success"`
	Summary Summary `json:"summary"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type CandidateScore struct {
	Name       string `json:"name"`
	Similarity string `json:"similarity"`
}

type Count struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type Summary struct {
	TotalCandidates       int              `json:"total_candidates"`
	TotalUniversities     int              `json:"total_universities"`
	FreshGraduates        int              `json:"fresh_graduates"`
	ExperiencedCandidates int              `json:"experienced_candidates"`
	AverageSimilarity     float64          `json:"average_similarity"`
	TopCandidates         []CandidateScore `json:"top_candidates"`
	ExperienceBuckets     []Count          `json:"experience_buckets"`
	TopSkills             []Count          `json:"top_skills"`
	TopUniversities       []Count          `json:"top_universities"`
}
