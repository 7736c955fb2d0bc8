package persona

import "context"

type Language string

const (
	LangEnglish  Language = "english"
	LangHindi    Language = "hindi"
	LangHinglish Language = "hinglish"
	LangFrench   Language = "french"
	LangSpanish  Language = "spanish"
)

type Tone string

const (
	ToneDilliDost  Tone = "dilli_dost"
	ToneAmiDelhi   Tone = "ami_delhi"
	ToneAmigoDelhi Tone = "amigo_delhi"
	ToneLocalGuide Tone = "local_guide"
)

// Decision — проверенный результат классификации, а не сырой текст модели.
type Decision struct {
	Language Language
	Tone     Tone
}

type Service interface {
	// Classify определяет язык и тон ответа. languageHint (от STT) может
	// закрыть вопрос без вызова модели; пустой hint — обычное дело.
	Classify(ctx context.Context, text, languageHint string) (Decision, error)
}
