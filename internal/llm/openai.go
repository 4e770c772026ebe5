package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"careerpilot/pkg/types"
)

type openAIProvider struct {
	client *openai.Client
	model  string
}

func newOpenAIProvider(apiKey, model string) *openAIProvider {
	return &openAIProvider{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (p *openAIProvider) Complete(ctx context.Context, prompt string, params types.GenerationParams) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: params.Temperature,
		MaxTokens:   params.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from completion API")
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *openAIProvider) Close() error {
	return nil
}
