package tips

import (
	"context"
	"strings"
)

type service struct {
	repo Repo
}

func NewService(repo Repo) Service {
	return &service{repo: repo}
}

// Lookup — case-insensitive поиск имени ориентира как подстроки текста.
// Если упомянуто несколько ориентиров, побеждает самое длинное имя
// ("Hauz Khas Village" важнее, чем "Hauz Khas").
func (s *service) Lookup(ctx context.Context, text string) (*Tip, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(text)

	var best *Tip
	bestLen := 0
	for i := range all {
		name := strings.ToLower(all[i].Landmark)
		if !strings.Contains(lower, name) {
			continue
		}
		if len(name) > bestLen {
			best = &all[i]
			bestLen = len(name)
		}
	}

	return best, nil
}
