package tips

import "context"

// Tip — запись из локальной таблицы инсайдерских советов.
// Таблица read-only, грузится один раз на старте.
type Tip struct {
	Landmark     string `json:"-"`
	Vibe         string `json:"vibe"`
	UniversalTip string `json:"universal_tip"`
	Warning      string `json:"warning,omitempty"`
}

type Repo interface {
	All(ctx context.Context) ([]Tip, error)
}

type Service interface {
	// Lookup ищет упоминание ориентира в свободном тексте.
	// nil без ошибки — нормальный исход "совета нет".
	Lookup(ctx context.Context, text string) (*Tip, error)
}
