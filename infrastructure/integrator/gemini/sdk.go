package gemini

import (
	"context"

	"github.com/google/generative-ai-go/genai"
	"github.com/vfg2006/insights-assistant-api/internal/config"
	"google.golang.org/api/option"
)

// SDKGenerator faz a mesma chamada através do SDK oficial
type SDKGenerator struct {
	apiKey string
	model  string
}

func NewSDKGenerator(cfg *config.Config) *SDKGenerator {
	return &SDKGenerator{
		apiKey: cfg.Generation.APIKey,
		model:  cfg.Generation.Model,
	}
}

func (g *SDKGenerator) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", &GenerationError{Err: ErrRequestFailed, Cause: err}
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	model.SetTemperature(Temperature)
	model.SetTopP(TopP)
	model.SetMaxOutputTokens(req.MaxOutputTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", &GenerationError{Err: ErrRequestFailed, Cause: err}
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", &GenerationError{Err: ErrEmptyResponse}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &GenerationError{Err: ErrEmptyResponse}
	}

	text, ok := candidate.Content.Parts[0].(genai.Text)
	if !ok || text == "" {
		return "", &GenerationError{Err: ErrEmptyResponse}
	}

	return string(text), nil
}
