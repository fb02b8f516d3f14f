package core

import (
	"math"
	"strings"
)

// roleKeywords maps known target roles to the skills expected of them.
// Immutable after init; unknown roles use fallbackKeywords.
var roleKeywords = map[string][]string{
	"Backend Developer":  {"node.js", "python", "sql", "api", "database", "git"},
	"Frontend Developer": {"javascript", "react", "html", "css", "figma", "git"},
	"AI Engineer":        {"python", "machine learning", "pytorch", "tensorflow", "data analysis"},
	"UI/UX Designer":     {"figma", "design", "user research", "prototyping"},
}

var fallbackKeywords = []string{"git", "api"}

// MatchPercentage estimates how well the stated skills cover a target role's
// expected keyword set. A keyword counts as matched when it appears as a
// substring of any lower-cased skill name. The result is clamped to [10, 95];
// the band is a deliberate display floor/ceiling, not a calibrated score.
func MatchPercentage(skills []Skill, targetRole string) int {
	keywords, ok := roleKeywords[targetRole]
	if !ok {
		keywords = fallbackKeywords
	}
	if len(keywords) == 0 {
		return clampPercent(0)
	}

	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = strings.ToLower(s.Name)
	}

	matched := 0
	for _, keyword := range keywords {
		for _, name := range names {
			if strings.Contains(name, keyword) {
				matched++
				break
			}
		}
	}

	percent := int(math.Round(float64(matched) / float64(len(keywords)) * 100))
	return clampPercent(percent)
}

func clampPercent(p int) int {
	if p < 10 {
		return 10
	}
	if p > 95 {
		return 95
	}
	return p
}
