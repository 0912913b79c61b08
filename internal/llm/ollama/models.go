package ollama

import "journey_poster/internal/domain"

type chatRequest struct {
	Model    string           `json:"model"`
	Messages []domain.Message `json:"messages"`
	Stream   bool             `json:"stream"`
	Options  chatOptions      `json:"options"`
}

type chatOptions struct {
	Temperature float64 `json:"temperature"`
}

type chatResponse struct {
	Model   string         `json:"model"`
	Message domain.Message `json:"message"`
	Done    bool           `json:"done"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type tagsResponse struct {
	Models []modelInfo `json:"models"`
}

type modelInfo struct {
	Name string `json:"name"`
}
