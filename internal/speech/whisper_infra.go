package speech

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type WhisperClient struct {
	client *openai.Client
}

func NewWhisperClient(apiKey string) *WhisperClient {
	return &WhisperClient{
		client: openai.NewClient(apiKey),
	}
}

func (c *WhisperClient) Transcribe(ctx context.Context, filePath string) (Transcription, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filePath,
		// verbose_json отдаёт ещё и язык — дешёвый хинт для классификатора
		Format: openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return Transcription{}, fmt.Errorf("whisper: %w", err)
	}

	return Transcription{
		Text:         strings.TrimSpace(resp.Text),
		LanguageHint: resp.Language,
	}, nil
}
