package persona

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode"

	openai "github.com/sashabaranov/go-openai"

	"nomadai/internal/ai"
)

const detectSystemPrompt = "You are a language detection expert. Analyze the following text " +
	"and respond with only the name of the language in lowercase. " +
	"For example: 'english', 'hindi', 'french'."

type service struct {
	llm ai.Completer
}

func NewService(llm ai.Completer) Service {
	return &service{llm: llm}
}

func (s *service) Classify(ctx context.Context, text, languageHint string) (Decision, error) {
	if lang, ok := parseLanguage(languageHint); ok {
		return decide(lang), nil
	}

	raw, err := s.llm.Complete(ctx, openai.GPT4oMini, 0.1, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: detectSystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: text},
	})
	if err != nil {
		return Decision{}, fmt.Errorf("detect language: %w", err)
	}

	lang, ok := parseLanguage(raw)
	if !ok {
		// вызов успешен, просто ответ вне enum — не ошибка, дефолтная персона
		log.Printf("[persona] out-of-enum language %q, defaulting to english", raw)
		lang = LangEnglish
	}

	return decide(lang), nil
}

// parseLanguage принимает и полные названия, и ISO-коды от STT-хинтов
// ("hi" от Deepgram, "hindi devanagari" от болтливой модели).
func parseLanguage(raw string) (Language, bool) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if i := strings.IndexFunc(v, func(r rune) bool { return !unicode.IsLetter(r) }); i > 0 {
		v = v[:i]
	}

	switch v {
	case "en":
		return LangEnglish, true
	case "hi":
		return LangHindi, true
	case "fr":
		return LangFrench, true
	case "es":
		return LangSpanish, true
	}

	switch Language(v) {
	case LangEnglish, LangHindi, LangHinglish, LangFrench, LangSpanish:
		return Language(v), true
	}
	return "", false
}

func decide(lang Language) Decision {
	switch lang {
	case LangHindi, LangHinglish:
		return Decision{Language: lang, Tone: ToneDilliDost}
	case LangFrench:
		return Decision{Language: lang, Tone: ToneAmiDelhi}
	case LangSpanish:
		return Decision{Language: lang, Tone: ToneAmigoDelhi}
	default:
		return Decision{Language: lang, Tone: ToneLocalGuide}
	}
}

// Instruction — персона-инструкция для финального промпта.
func (d Decision) Instruction() string {
	switch d.Tone {
	case ToneDilliDost:
		return "Your persona is 'Dilli Dost'. You are a witty, friendly best friend. " +
			"You MUST speak in Hinglish (a mix of Hindi and English). " +
			"Use slang like 'yaar', 'bhai', 'scene', 'chill', 'mast'. Be enthusiastic and informal."
	case ToneAmiDelhi:
		return "Your persona is 'Votre ami à Delhi'. Be warm, encouraging, and polite. " +
			"Use phrases like 'Bienvenue' and 'Profitez bien'. Respond in fluent, natural-sounding French."
	case ToneAmigoDelhi:
		return "Your persona is 'Tu amigo en Delhi'. Be friendly, enthusiastic, and helpful. " +
			"Use phrases like '¡Hola!' and '¡Qué disfrutes!'. Respond in fluent, natural-sounding Spanish."
	default:
		return "Your persona is a friendly and knowledgeable local guide. " +
			"Be clear, helpful, and welcoming. Respond in fluent, natural-sounding English."
	}
}
