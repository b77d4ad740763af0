package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const FreshGraduate = "Fresh Graduate"

type CandidateProfile struct {
	Name       Field
	Email      Field
	University Field
	Skills     Field
	SoftSkills Field
	Experience Field
	Location   Field
}

// ScoredCandidate is a profile plus its similarity to the job description, in [0,1].
type ScoredCandidate struct {
	CandidateProfile
	Similarity float64
	Source     string
}

// Percent renders the similarity the way the dashboard expects it, e.g. "83%".
func (c ScoredCandidate) Percent() string {
	return FormatPercent(c.Similarity)
}

func FormatPercent(similarity float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(similarity*100)))
}

func ParsePercent(s string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid similarity %q: %w", s, err)
	}
	return n / 100, nil
}

type candidateJSON struct {
	Name       Field  `json:"name"`
	Similarity string `json:"similarity"`
	University Field  `json:"university"`
	Email      Field  `json:"email"`
	Skills     Field  `json:"skills"`
	SoftSkills Field  `json:"soft_skills"`
	Experience Field  `json:"experience"`
	Location   Field  `json:"location"`
}

func (c ScoredCandidate) MarshalJSON() ([]byte, error) {
	return json.Marshal(candidateJSON{
		Name:       c.Name,
		Similarity: c.Percent(),
		University: c.University,
		Email:      c.Email,
		Skills:     c.Skills,
		SoftSkills: c.SoftSkills,
		Experience: c.Experience,
		Location:   c.Location,
	})
}

func (c *ScoredCandidate) UnmarshalJSON(data []byte) error {
	var raw candidateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	similarity, err := ParsePercent(raw.Similarity)
	if err != nil {
		return err
	}
	c.CandidateProfile = CandidateProfile{
		Name:       raw.Name,
		Email:      raw.Email,
		University: raw.University,
		Skills:     raw.Skills,
		SoftSkills: raw.SoftSkills,
		Experience: raw.Experience,
		Location:   raw.Location,
	}
	c.Similarity = similarity
	return nil
}

// ResumeOutcome is the result of screening one resume: a candidate, or the
// reason it was skipped.
type ResumeOutcome struct {
	Index     int
	Document  string
	Candidate *ScoredCandidate
	Err       error
}

func Screened(index int, document string, candidate ScoredCandidate) ResumeOutcome {
	return ResumeOutcome{Index: index, Document: document, Candidate: &candidate}
}

func Skipped(index int, document string, err error) ResumeOutcome {
	return ResumeOutcome{Index: index, Document: document, Err: err}
}

func (o ResumeOutcome) IsSkipped() bool {
	return o.Candidate == nil
}

type SkippedDocument struct {
	Document string `json:"document"`
	Reason   string `json:"reason"`
}

type RankedBatch struct {
	ID         uuid.UUID
	Candidates []ScoredCandidate
	Skipped    []SkippedDocument
}
