package pipeline

import (
	"context"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"nomadai/internal/persona"
	"nomadai/internal/places"
	"nomadai/internal/speech"
	"nomadai/internal/tips"
)

// IncomingMessage — одно входящее сообщение, живёт ровно один прогон пайплайна.
type IncomingMessage struct {
	UserID     int64
	ChatID     int64
	Text       string
	AudioPath  string
	ReceivedAt time.Time
}

type ReplyMessage struct {
	Text      string
	AudioPath string
}

type Transcriber interface {
	Transcribe(ctx context.Context, filePath string) (speech.Transcription, error)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text, language, outPath string) error
}

type Classifier interface {
	Classify(ctx context.Context, text, languageHint string) (persona.Decision, error)
}

type TipFinder interface {
	Lookup(ctx context.Context, text string) (*tips.Tip, error)
}

type PlaceSearcher interface {
	TextSearch(ctx context.Context, query string) ([]places.Recommendation, error)
}

type Completer interface {
	Complete(ctx context.Context, model string, temperature float32, messages []openai.ChatCompletionMessage) (string, error)
}
