package speech

import (
	"context"
)

// === Единый сервис (и для стт и для ттс) ===

type Service struct {
	stt STTClient
	tts TTSClient
}

func NewService(stt STTClient, tts TTSClient) *Service {
	return &Service{
		stt: stt,
		tts: tts,
	}
}

func (s *Service) Transcribe(ctx context.Context, filePath string) (Transcription, error) {
	return s.stt.Transcribe(ctx, filePath)
}

func (s *Service) Synthesize(ctx context.Context, text, language, outPath string) error {
	return s.tts.Synthesize(ctx, text, language, outPath)
}
