package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"

	"nomadai/internal/tips"
)

type TipsHandler struct {
	repo    tips.Repo
	service tips.Service
	log     *logger.ZapLogger
}

func NewTipsHandler(repo tips.Repo, service tips.Service, log *logger.ZapLogger) *TipsHandler {
	return &TipsHandler{
		repo:    repo,
		service: service,
		log:     log,
	}
}

func (h *TipsHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.repo.All(r.Context())
	if err != nil {
		http.Error(w, "failed to load tips: "+err.Error(), http.StatusInternalServerError)
		return
	}

	type item struct {
		Landmark string `json:"landmark"`
		Vibe     string `json:"vibe"`
	}

	out := make([]item, 0, len(all))
	for _, t := range all {
		out = append(out, item{Landmark: t.Landmark, Vibe: t.Vibe})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func (h *TipsHandler) Get(w http.ResponseWriter, r *http.Request) {
	landmark := chi.URLParam(r, "landmark")
	if landmark == "" {
		http.Error(w, "missing landmark", http.StatusBadRequest)
		return
	}

	tip, err := h.service.Lookup(r.Context(), landmark)
	if err != nil {
		http.Error(w, "lookup failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if tip == nil {
		http.Error(w, "no tip for this landmark", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"landmark":      tip.Landmark,
		"vibe":          tip.Vibe,
		"universal_tip": tip.UniversalTip,
		"warning":       tip.Warning,
	})
}
