package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func skillList(names ...string) []Skill {
	skills := make([]Skill, len(names))
	for i, n := range names {
		skills[i] = Skill{Name: n}
	}
	return skills
}

func TestMatchPercentage_UIUXDesigner(t *testing.T) {
	// 2 of 4 keywords (figma, user research) match.
	got := MatchPercentage(skillList("Figma", "User Research"), "UI/UX Designer")
	assert.Equal(t, 50, got)
}

func TestMatchPercentage_UnknownRoleUsesFallback(t *testing.T) {
	// Fallback list is [git, api]; git matches.
	got := MatchPercentage(skillList("git"), "Data Scientist")
	assert.Equal(t, 50, got)
}

func TestMatchPercentage_ClampsLow(t *testing.T) {
	// Zero matches would be 0%, floor is 10.
	got := MatchPercentage(skillList("Cooking"), "Backend Developer")
	assert.Equal(t, 10, got)
}

func TestMatchPercentage_ClampsHigh(t *testing.T) {
	// All four keywords match, raw 100%, ceiling is 95.
	got := MatchPercentage(skillList("Figma", "Design", "User Research", "Prototyping"), "UI/UX Designer")
	assert.Equal(t, 95, got)
}

func TestMatchPercentage_CaseFolding(t *testing.T) {
	got := MatchPercentage(skillList("PyTorch", "TensorFlow"), "AI Engineer")
	assert.Equal(t, 40, got)
}

func TestMatchPercentage_SubstringMatch(t *testing.T) {
	// "node.js" matches inside a longer skill name.
	got := MatchPercentage(skillList("Node.js and Express"), "Backend Developer")
	assert.Equal(t, 17, got)
}

func TestMatchPercentage_NoSkills(t *testing.T) {
	got := MatchPercentage(nil, "Frontend Developer")
	assert.Equal(t, 10, got)
}

func TestMatchPercentage_AlwaysInBand(t *testing.T) {
	cases := []struct {
		skills []Skill
		role   string
	}{
		{nil, "Backend Developer"},
		{skillList("git", "api", "sql", "python", "node.js", "database"), "Backend Developer"},
		{skillList("git", "api"), "Some Made Up Role"},
		{skillList(""), "AI Engineer"},
	}
	for _, tc := range cases {
		got := MatchPercentage(tc.skills, tc.role)
		assert.GreaterOrEqual(t, got, 10, "role %q", tc.role)
		assert.LessOrEqual(t, got, 95, "role %q", tc.role)
	}
}

func TestMatchPercentage_Deterministic(t *testing.T) {
	skills := skillList("Figma", "User Research")
	first := MatchPercentage(skills, "UI/UX Designer")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, MatchPercentage(skills, "UI/UX Designer"))
	}
}
