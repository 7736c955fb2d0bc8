package tips

import (
	"context"
	"fmt"
	"os"
	"sort"

	json "github.com/goccy/go-json"
)

type fileRepo struct {
	tips []Tip
}

// NewFileRepo загружает таблицу советов из JSON-файла вида
// {"Hauz Khas Village": {"vibe": "...", "universal_tip": "...", "warning": "..."}}.
// Любая битая запись — ошибка загрузки целиком, частичной таблицы не бывает.
func NewFileRepo(path string) (Repo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tips file: %w", err)
	}

	var raw map[string]Tip
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode tips file %s: %w", path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("tips file %s has no entries", path)
	}

	out := make([]Tip, 0, len(raw))
	for name, t := range raw {
		if name == "" {
			return nil, fmt.Errorf("tips file %s: empty landmark name", path)
		}
		if t.Vibe == "" || t.UniversalTip == "" {
			return nil, fmt.Errorf("tips entry %q: vibe and universal_tip are required", name)
		}
		t.Landmark = name
		out = append(out, t)
	}

	// стабильный порядок, чтобы совпадения при равной длине были детерминированы
	sort.Slice(out, func(i, j int) bool { return out[i].Landmark < out[j].Landmark })

	return &fileRepo{tips: out}, nil
}

func (r *fileRepo) All(ctx context.Context) ([]Tip, error) {
	return r.tips, nil
}
