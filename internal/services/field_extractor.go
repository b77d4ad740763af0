package services

import (
	"strings"

	"alfredoptarigan/resume-screener/internal/models"
)

type FieldExtractor interface {
	ExtractProfile(resumeText string) models.CandidateProfile
}

type fieldExtractor struct{}

func NewFieldExtractor() FieldExtractor {
	return &fieldExtractor{}
}

// ExtractProfile implements FieldExtractor. It never fails; anything no rule
// matches is left missing.
func (f *fieldExtractor) ExtractProfile(resumeText string) models.CandidateProfile {
	lowered := strings.ToLower(resumeText)

	return models.CandidateProfile{
		Name:       firstMatch(nameRules, resumeText),
		Email:      firstMatch(emailRules, resumeText),
		University: firstMatch(universityRules, resumeText),
		Skills:     matchVocabulary(technicalSkills, lowered),
		SoftSkills: matchVocabulary(softSkills, lowered),
		Experience: firstMatch(experienceRules, resumeText),
		Location:   firstMatch(locationRules, resumeText),
	}
}

// firstMatch walks the cascade in order and stops at the first rule whose
// pattern matches, even when it yields an empty value.
func firstMatch(rules []fieldRule, text string) models.Field {
	for _, rule := range rules {
		if value, ok := rule.apply(text); ok {
			return models.Extracted(value)
		}
	}
	return models.Missing()
}

func matchVocabulary(vocabulary []string, loweredText string) models.Field {
	found := make([]string, 0, maxListedSkills)
	for _, term := range vocabulary {
		if !strings.Contains(loweredText, term) {
			continue
		}
		found = append(found, term)
		if len(found) == maxListedSkills {
			break
		}
	}
	return models.Extracted(strings.Join(found, ", "))
}
