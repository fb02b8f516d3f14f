package core

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the fixed natural-language template sent upstream.
func BuildPrompt(req PathRequest) string {
	names := make([]string, len(req.Skills))
	for i, s := range req.Skills {
		names[i] = s.Name
	}

	return fmt.Sprintf(`User Current Skills: %s
User Interest: %s
Target Job Role: %s

Suggest a complete step-by-step learning path to become a highly qualified %s.
Include:
* Missing skills to learn
* Technologies to learn
* Tools and frameworks
* Beginner to advanced roadmap
* Correct order of learning

Return the result as a structured list with clear section headers.`,
		strings.Join(names, ", "), req.Interest, req.TargetRole, req.TargetRole)
}
