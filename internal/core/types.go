package core

// Skill is a named capability supplied by the caller. Free text; the only
// normalization anywhere is lower-casing during matching.
type Skill struct {
	Name string `json:"name"`
}

// PathRequest is a single learning-path generation request.
type PathRequest struct {
	Skills     []Skill
	Interest   string
	TargetRole string
}

// PathResult is the assembled outcome of a successful generation.
type PathResult struct {
	LearningPath    string
	MatchPercentage int
	TargetRole      string
}
