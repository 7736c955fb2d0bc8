package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/xid"
	openai "github.com/sashabaranov/go-openai"
)

// Таймауты на каждый внешний вызов. Внутри одного сообщения всё строго
// последовательно; параллельность есть только между сообщениями.
const (
	defaultSTTTimeout    = 60 * time.Second
	defaultLLMTimeout    = 45 * time.Second
	defaultPlacesTimeout = 10 * time.Second
	defaultTTSTimeout    = 60 * time.Second
)

type Service struct {
	stt        Transcriber
	tts        Synthesizer
	classifier Classifier
	tips       TipFinder
	places     PlaceSearcher
	llm        Completer

	sttTimeout    time.Duration
	llmTimeout    time.Duration
	placesTimeout time.Duration
	ttsTimeout    time.Duration

	audioDir string
}

func NewService(
	stt Transcriber,
	tts Synthesizer,
	classifier Classifier,
	tipFinder TipFinder,
	placeSearcher PlaceSearcher,
	llm Completer,
) *Service {
	return &Service{
		stt:        stt,
		tts:        tts,
		classifier: classifier,
		tips:       tipFinder,
		places:     placeSearcher,
		llm:        llm,

		sttTimeout:    defaultSTTTimeout,
		llmTimeout:    defaultLLMTimeout,
		placesTimeout: defaultPlacesTimeout,
		ttsTimeout:    defaultTTSTimeout,

		audioDir: os.TempDir(),
	}
}

// Process гонит одно сообщение через все этапы: STT → язык/персона →
// локальный совет → живые места → финальный ответ → TTS.
// Любой упавший внешний вызов обрывает пайплайн с StageError; последующие
// этапы не вызываются.
func (s *Service) Process(ctx context.Context, msg IncomingMessage) (ReplyMessage, error) {
	reqID := xid.New().String()
	start := time.Now()

	userText := strings.TrimSpace(msg.Text)
	languageHint := ""

	switch {
	case msg.AudioPath != "":
		tctx, cancel := context.WithTimeout(ctx, s.sttTimeout)
		tr, err := s.stt.Transcribe(tctx, msg.AudioPath)
		cancel()
		if err != nil {
			return ReplyMessage{}, &StageError{Stage: StageTranscribe, Fallback: FallbackTranscribe, Err: err}
		}
		if strings.TrimSpace(tr.Text) == "" {
			return ReplyMessage{}, &StageError{Stage: StageTranscribe, Fallback: FallbackTranscribe, Err: errors.New("empty transcript")}
		}
		userText = strings.TrimSpace(tr.Text)
		languageHint = tr.LanguageHint
		log.Printf("[pipeline] req=%s tgID=%d transcribed: %q (hint=%q)", reqID, msg.UserID, userText, languageHint)

	case userText == "":
		return ReplyMessage{}, &StageError{Stage: StageInput, Fallback: FallbackBadInput, Err: errors.New("no audio and no text")}
	}

	cctx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	decision, err := s.classifier.Classify(cctx, userText, languageHint)
	cancel()
	if err != nil {
		return ReplyMessage{}, &StageError{Stage: StageClassify, Fallback: FallbackGeneric, Err: err}
	}
	log.Printf("[pipeline] req=%s language=%s tone=%s", reqID, decision.Language, decision.Tone)

	// локальный совет: промах — не ошибка, просто без совета
	tip, err := s.tips.Lookup(ctx, userText)
	if err != nil {
		log.Printf("[pipeline] req=%s tips lookup fail: %v", reqID, err)
		tip = nil
	}

	pctx, cancel := context.WithTimeout(ctx, s.placesTimeout)
	recs, err := s.places.TextSearch(pctx, userText)
	cancel()
	if err != nil {
		return ReplyMessage{}, &StageError{Stage: StagePlaces, Fallback: FallbackGeneric, Err: err}
	}
	log.Printf("[pipeline] req=%s places=%d tip=%v", reqID, len(recs), tip != nil)

	prompt := masterPrompt(decision, userText, recs, tip)

	lctx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	reply, err := s.llm.Complete(lctx, openai.GPT4o, 0, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: prompt},
	})
	cancel()
	if err != nil {
		return ReplyMessage{}, &StageError{Stage: StageSynthesize, Fallback: FallbackGeneric, Err: err}
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return ReplyMessage{}, &StageError{Stage: StageSynthesize, Fallback: FallbackGeneric, Err: errors.New("empty completion")}
	}

	outPath := filepath.Join(s.audioDir, fmt.Sprintf("reply_%s.mp3", reqID))
	sctx, cancel := context.WithTimeout(ctx, s.ttsTimeout)
	err = s.tts.Synthesize(sctx, reply, string(decision.Language), outPath)
	cancel()
	if err != nil {
		return ReplyMessage{}, &StageError{Stage: StageTTS, Fallback: FallbackTTS, Err: err}
	}

	log.Printf("[pipeline] req=%s done in %s", reqID, time.Since(start).Round(time.Millisecond))

	return ReplyMessage{Text: reply, AudioPath: outPath}, nil
}
