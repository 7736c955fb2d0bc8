package speech

import "context"

// Transcription — сырой текст плюс необязательный хинт языка от провайдера.
type Transcription struct {
	Text         string
	LanguageHint string
}

type STTClient interface {
	Transcribe(ctx context.Context, filePath string) (Transcription, error) // голос → текст
}

type TTSClient interface {
	Synthesize(ctx context.Context, text, language, outPath string) error // текст → голос (сохраняет файл)
}
