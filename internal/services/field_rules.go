package services

import (
	"regexp"
	"strings"

	"alfredoptarigan/resume-screener/internal/models"
)

const maxListedSkills = 5

// fieldRule is one pattern in a field's cascade. extract turns a submatch
// slice into the field value.
type fieldRule struct {
	name    string
	pattern *regexp.Regexp
	extract func(match []string) string
}

func (r fieldRule) apply(text string) (string, bool) {
	match := r.pattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return r.extract(match), true
}

// firstGroup returns the first capture group verbatim.
func firstGroup(match []string) string {
	return match[1]
}

// groupOrWhole returns the trimmed first capture group, falling back to the
// whole match when the pattern has no group or it captured nothing.
func groupOrWhole(match []string) string {
	if len(match) > 1 && match[1] != "" {
		return strings.TrimSpace(match[1])
	}
	return strings.TrimSpace(match[0])
}

func yearsOfExperience(match []string) string {
	return match[1] + " years"
}

func freshGraduate([]string) string {
	return models.FreshGraduate
}

var nameRules = []fieldRule{
	{
		name:    "leading_line",
		pattern: regexp.MustCompile(`(?m)^([A-Z][a-z]+ [A-Z][a-z]+)`),
		extract: firstGroup,
	},
	{
		name:    "name_label",
		pattern: regexp.MustCompile(`(?i:name)[:\s]+([A-Z][a-z]+ [A-Z][a-z]+)`),
		extract: firstGroup,
	},
}

var emailRules = []fieldRule{
	{
		name:    "address",
		pattern: regexp.MustCompile(`([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`),
		extract: firstGroup,
	},
}

var universityRules = []fieldRule{
	{
		name:    "university_of",
		pattern: regexp.MustCompile(`(?i)university of ([^,\n]+)`),
		extract: groupOrWhole,
	},
	{
		name:    "x_university",
		pattern: regexp.MustCompile(`(?i)([^,\n]+ university)`),
		extract: groupOrWhole,
	},
	{
		name:    "x_college",
		pattern: regexp.MustCompile(`(?i)([^,\n]+ college)`),
		extract: groupOrWhole,
	},
	{
		name:    "elite_school",
		pattern: regexp.MustCompile(`(?i)(mit|stanford|harvard|berkeley|caltech)`),
		extract: groupOrWhole,
	},
}

var experienceRules = []fieldRule{
	{
		name:    "years_experience",
		pattern: regexp.MustCompile(`(?i)(\d+)\s*years?\s*(?:of\s*)?experience`),
		extract: yearsOfExperience,
	},
	{
		name:    "experience_label",
		pattern: regexp.MustCompile(`(?i)experience[:\s]*(\d+)\s*years?`),
		extract: yearsOfExperience,
	},
	{
		name:    "fresh_graduate",
		pattern: regexp.MustCompile(`(?i)(fresh graduate|entry level|new grad)`),
		extract: freshGraduate,
	},
}

var locationRules = []fieldRule{
	{
		name:    "city_region",
		pattern: regexp.MustCompile(`([A-Z][a-z]+,\s*[A-Z]{2})\b`),
		extract: firstGroup,
	},
	{
		name:    "city_country",
		pattern: regexp.MustCompile(`([A-Z][a-z]+,\s*[A-Z][a-z]+)`),
		extract: firstGroup,
	},
}

var technicalSkills = []string{
	"javascript", "python", "java", "react", "node.js", "typescript", "html", "css",
	"sql", "mongodb", "postgresql", "aws", "docker", "kubernetes", "git", "linux",
	"angular", "vue.js", "express", "django", "flask", "spring", "c++", "c#",
	"php", "ruby", "go", "rust", "swift", "kotlin", "tensorflow", "pytorch",
}

var softSkills = []string{
	"leadership", "communication", "teamwork", "problem solving", "analytical",
	"creative", "adaptable", "organized", "detail oriented", "time management",
	"critical thinking", "collaboration", "innovation", "mentoring", "project management",
}

// TechnicalSkills returns a copy of the technical vocabulary in match order.
func TechnicalSkills() []string {
	return append([]string(nil), technicalSkills...)
}

// SoftSkills returns a copy of the soft-skill vocabulary in match order.
func SoftSkills() []string {
	return append([]string(nil), softSkills...)
}
