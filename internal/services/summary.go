package services

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"

	"alfredoptarigan/resume-screener/internal/models"
)

const (
	summaryTopCandidates   = 5
	summaryTopSkills       = 8
	summaryTopUniversities = 6
)

const (
	bucketFresh   = models.FreshGraduate
	bucketJunior  = "1-2 years"
	bucketMid     = "3-5 years"
	bucketSenior  = "5+ years"
	bucketUnknown = "Unknown"
)

var bucketOrder = []string{bucketFresh, bucketJunior, bucketMid, bucketSenior, bucketUnknown}

// Summarize builds the dashboard figures for a batch of candidates.
func Summarize(candidates []models.ScoredCandidate) models.Summary {
	summary := models.Summary{
		TopCandidates:     []models.CandidateScore{},
		ExperienceBuckets: []models.Count{},
		TopSkills:         []models.Count{},
		TopUniversities:   []models.Count{},
	}
	if len(candidates) == 0 {
		return summary
	}

	ranked := NewResultRanker().Rank(candidates)
	buckets := make(map[string]int, len(bucketOrder))
	skills := newCounter()
	universities := newCounter()
	percentTotal := 0

	for _, c := range ranked {
		percentTotal += int(math.Round(c.Similarity * 100))

		bucket := experienceBucket(c.Experience)
		buckets[bucket]++
		if c.Experience.String() == models.FreshGraduate {
			summary.FreshGraduates++
		}

		if c.University.Present() {
			universities.add(c.University.String())
		}
		if c.Skills.Present() {
			for _, skill := range strings.Split(c.Skills.String(), ", ") {
				skills.add(skill)
			}
		}
	}

	summary.TotalCandidates = len(ranked)
	summary.ExperiencedCandidates = summary.TotalCandidates - summary.FreshGraduates
	summary.TotalUniversities = len(universities.counts)
	summary.AverageSimilarity = math.Round(float64(percentTotal)/float64(len(ranked))*10) / 10

	for i, c := range ranked {
		if i == summaryTopCandidates {
			break
		}
		summary.TopCandidates = append(summary.TopCandidates, models.CandidateScore{
			Name:       c.Name.String(),
			Similarity: c.Percent(),
		})
	}

	for _, bucket := range bucketOrder {
		if n := buckets[bucket]; n > 0 {
			summary.ExperienceBuckets = append(summary.ExperienceBuckets, models.Count{Name: bucket, Value: n})
		}
	}

	summary.TopSkills = skills.top(summaryTopSkills)
	summary.TopUniversities = universities.top(summaryTopUniversities)
	return summary
}

func experienceBucket(experience models.Field) string {
	if !experience.Present() {
		return bucketUnknown
	}
	value := experience.String()
	if value == models.FreshGraduate {
		return bucketFresh
	}

	years, err := strconv.Atoi(strings.Fields(value)[0])
	switch {
	case err != nil:
		return bucketUnknown
	case years == 0:
		return bucketFresh
	case years <= 2:
		return bucketJunior
	case years <= 5:
		return bucketMid
	default:
		return bucketSenior
	}
}

// counter counts names and remembers the order they were first seen in.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(name string) {
	if _, ok := c.counts[name]; !ok {
		c.order = append(c.order, name)
	}
	c.counts[name]++
}

func (c *counter) top(n int) []models.Count {
	out := make([]models.Count, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, models.Count{Name: name, Value: c.counts[name]})
	}
	slices.SortStableFunc(out, func(a, b models.Count) int {
		return cmp.Compare(b.Value, a.Value)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
