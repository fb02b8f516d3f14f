package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(PathRequest{
		Skills:     skillList("Figma", "User Research"),
		Interest:   "Product design",
		TargetRole: "UI/UX Designer",
	})

	assert.Contains(t, prompt, "User Current Skills: Figma, User Research")
	assert.Contains(t, prompt, "User Interest: Product design")
	assert.Contains(t, prompt, "Target Job Role: UI/UX Designer")
	assert.Contains(t, prompt, "highly qualified UI/UX Designer")
	assert.Contains(t, prompt, "* Missing skills to learn")
	assert.Contains(t, prompt, "structured list with clear section headers")
}
