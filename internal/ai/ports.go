package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

type Completer interface {
	Complete(ctx context.Context, model string, temperature float32, messages []openai.ChatCompletionMessage) (string, error)
}
