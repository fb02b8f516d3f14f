package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/skillbridge/learning-path/internal/core"
	"github.com/skillbridge/learning-path/internal/observability"
)

type GenerateRequest struct {
	Skills     []SkillPayload `json:"skills" validate:"required,min=1,dive"`
	Interest   string         `json:"interest" validate:"required"`
	TargetRole string         `json:"target_role" validate:"required"`
}

type SkillPayload struct {
	Name string `json:"name" validate:"required"`
}

// Validate checks the required-fields contract using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

type GenerateResponse struct {
	Success         bool   `json:"success"`
	LearningPath    string `json:"learning_path"`
	MatchPercentage int    `json:"match_percentage"`
	TargetRole      string `json:"target_role"`
}

type GenerateFailure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Server) handleGenerateLearningPath(w http.ResponseWriter, r *http.Request) {
	observability.IncRequest()

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.IncRejected()
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// All three fields are required; the upstream is never contacted for a
	// request that fails here.
	if err := req.Validate(); err != nil {
		observability.IncRejected()
		respondError(w, http.StatusBadRequest, "Missing required data")
		return
	}

	s.logger.Info("generating learning path",
		zap.String("target_role", req.TargetRole),
		zap.Int("skill_count", len(req.Skills)))

	result, err := s.paths.Generate(r.Context(), toPathRequest(req))
	if err != nil {
		observability.IncError(observability.ClassifyUpstreamError(err))
		respondJSON(w, http.StatusInternalServerError, GenerateFailure{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	observability.ObserveMatchPercent(result.MatchPercentage)

	respondJSON(w, http.StatusOK, GenerateResponse{
		Success:         true,
		LearningPath:    result.LearningPath,
		MatchPercentage: result.MatchPercentage,
		TargetRole:      result.TargetRole,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, observability.Snapshot())
}

func toPathRequest(req GenerateRequest) core.PathRequest {
	skills := make([]core.Skill, len(req.Skills))
	for i, s := range req.Skills {
		skills[i] = core.Skill{Name: s.Name}
	}
	return core.PathRequest{
		Skills:     skills,
		Interest:   req.Interest,
		TargetRole: req.TargetRole,
	}
}
