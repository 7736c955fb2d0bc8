package pipeline

import "fmt"

type Stage string

const (
	StageInput      Stage = "input"
	StageTranscribe Stage = "transcribe"
	StageClassify   Stage = "classify"
	StagePlaces     Stage = "places"
	StageSynthesize Stage = "synthesize"
	StageTTS        Stage = "tts"
)

// Тексты fallback-ответов. Один упавший этап — ровно один fallback,
// повторов и ретраев нет.
const (
	FallbackBadInput   = "Please send me a voice message or some text about what you want to do in Delhi!"
	FallbackTranscribe = "Sorry, I couldn't understand that, please try again."
	FallbackGeneric    = "I'm sorry, I'm having a little trouble thinking right now. Please try again in a moment."
	FallbackTTS        = "Sorry, I'm feeling a bit speechless right now. Please try again."
)

// StageError — обрыв пайплайна на конкретном этапе с готовым текстом
// fallback-ответа для пользователя.
type StageError struct {
	Stage    Stage
	Fallback string
	Err      error
}

func (e *StageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pipeline stage %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("pipeline stage %s failed", e.Stage)
}

func (e *StageError) Unwrap() error { return e.Err }
