package places

import "context"

// Recommendation — живая точка из внешнего places API, живёт один запрос.
type Recommendation struct {
	Name    string
	Address string
	Rating  float64 // 0 = рейтинга нет
}

type Client interface {
	TextSearch(ctx context.Context, query string) ([]Recommendation, error)
}
