package core

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/skillbridge/learning-path/internal/ai"
	"github.com/skillbridge/learning-path/internal/observability"
)

// PathService orchestrates a generation: prompt construction, the upstream
// call, and the match estimate. Stateless; every request owns its own values.
type PathService struct {
	aiClient ai.Client
	timeout  time.Duration
	logger   *zap.Logger
}

func NewPathService(aiClient ai.Client, timeout time.Duration, logger *zap.Logger) *PathService {
	return &PathService{
		aiClient: aiClient,
		timeout:  timeout,
		logger:   logger,
	}
}

// Generate produces a learning path for the request. The upstream call is
// bounded by the configured timeout on top of the caller's context. Errors
// pass through for the handler boundary to surface; there is no retry.
func (s *PathService) Generate(ctx context.Context, req PathRequest) (*PathResult, error) {
	prompt := BuildPrompt(req)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	observability.IncUpstreamCall()
	text, err := s.aiClient.GenerateLearningPath(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("learning path generation failed: %w", err)
	}
	observability.IncPathGenerated()

	s.logger.Debug("learning path generated",
		zap.String("target_role", req.TargetRole),
		zap.Int("path_chars", len(text)))

	return &PathResult{
		LearningPath:    text,
		MatchPercentage: MatchPercentage(req.Skills, req.TargetRole),
		TargetRole:      req.TargetRole,
	}, nil
}
