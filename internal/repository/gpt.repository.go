package repository

import (
	"context"
	"fmt"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	ReviewPerformance(ctx context.Context, summary string) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const reviewPrompt = `
You are reviewing a retail trader's journal. You will receive a plain-text
summary of their account: daily performance entries (date, realized P&L,
ending balance, returns), aggregate totals, and open positions.

Write a short review (under 250 words) covering:
- overall direction of the account (growing, flat, declining)
- notable concentration in single symbols among the open positions
- days with outsized gains or losses relative to the rest of the series

Be concrete and reference the numbers given. Do not invent trades or
prices that are not in the summary, and do not give financial advice
beyond describing what the data shows.
`

func (h gptRepositoryHandler) ReviewPerformance(ctx context.Context, summary string) (string, error) {
	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: reviewPrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: summary,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to get performance review: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("performance review returned no choices")
	}

	return res.Choices[0].Message.Content, nil
}
