package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"careerpilot/pkg/types"
)

type geminiProvider struct {
	client *genai.Client
	model  string
}

func newGeminiProvider(ctx context.Context, apiKey, model string) (*geminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) Complete(ctx context.Context, prompt string, params types.GenerationParams) (string, error) {
	model := p.client.GenerativeModel(p.model)
	if params.Temperature > 0 {
		model.SetTemperature(params.Temperature)
	}
	if params.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(params.MaxTokens))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API call failed: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from Gemini API")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response format from Gemini API")
	}
	return string(text), nil
}

func (p *geminiProvider) Close() error {
	return p.client.Close()
}
