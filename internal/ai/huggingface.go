package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNoCredential is returned when a generation is attempted without an API key.
var ErrNoCredential = errors.New("huggingface credential not configured")

// StatusError is a non-2xx reply from the inference API.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("inference API returned status %d: %s", e.Status, truncateText(e.Body, 200))
}

// HuggingFaceClient talks to the Hugging Face hosted inference API.
type HuggingFaceClient struct {
	apiKey     string
	endpoint   string
	params     GenerationParams
	httpClient *http.Client
}

// NewHuggingFaceClient creates a client for the given model endpoint.
// The API key may be empty; calls then fail with ErrNoCredential.
func NewHuggingFaceClient(apiKey, endpoint string, params GenerationParams) *HuggingFaceClient {
	return &HuggingFaceClient{
		apiKey:   apiKey,
		endpoint: endpoint,
		params:   params,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxLength   int     `json:"max_length"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

// hfReply is the upstream answer as a tagged variant: either the documented
// list of generations, or an opaque JSON value the API returned instead. The
// upstream shape is not a validated contract, so the opaque arm must exist.
type hfReply struct {
	generations []hfGeneration
	raw         json.RawMessage
}

func parseReply(body []byte) (hfReply, error) {
	var gens []hfGeneration
	if err := json.Unmarshal(body, &gens); err == nil && len(gens) > 0 {
		return hfReply{generations: gens}, nil
	}

	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return hfReply{}, fmt.Errorf("failed to parse inference reply: %w", err)
	}
	return hfReply{raw: raw}, nil
}

// text returns the generated text, or the raw reply verbatim for opaque shapes.
func (r hfReply) text() string {
	if len(r.generations) > 0 {
		return r.generations[0].GeneratedText
	}
	return string(r.raw)
}

// GenerateLearningPath sends the prompt with the fixed generation parameters
// and returns the generated text. No retries; any failure is the caller's to
// surface.
func (h *HuggingFaceClient) GenerateLearningPath(ctx context.Context, prompt string) (string, error) {
	if h.apiKey == "" {
		return "", ErrNoCredential
	}

	reqBody := hfRequest{
		Inputs: prompt,
		Parameters: hfParameters{
			MaxLength:   h.params.MaxLength,
			Temperature: h.params.Temperature,
			TopP:        h.params.TopP,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+h.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{Status: resp.StatusCode, Body: string(body)}
	}

	reply, err := parseReply(body)
	if err != nil {
		return "", err
	}

	return reply.text(), nil
}

// truncateText limits text to maxLen characters
func truncateText(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen] + "..."
}
