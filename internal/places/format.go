package places

import (
	"fmt"
	"strings"
)

const maxPromptPlaces = 3

// FormatForPrompt готовит блок [Live Data] для финального промпта:
// топ-3 места одной строкой на каждое, чтобы модель не утонула в данных.
func FormatForPrompt(recs []Recommendation) string {
	if len(recs) == 0 {
		return "No relevant places found."
	}

	if len(recs) > maxPromptPlaces {
		recs = recs[:maxPromptPlaces]
	}

	lines := make([]string, 0, len(recs))
	for _, p := range recs {
		rating := "N/A"
		if p.Rating > 0 {
			rating = fmt.Sprintf("%.1f", p.Rating)
		}
		address := p.Address
		if address == "" {
			address = "N/A"
		}
		lines = append(lines, fmt.Sprintf("- Name: %s, Rating: %s, Address: %s", p.Name, rating, address))
	}
	return strings.Join(lines, "\n")
}
