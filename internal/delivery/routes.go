package delivery

import (
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func RegisterRoutes(
	r chi.Router,
	hWebhook *WebhookHandler,
	hTips *TipsHandler,
) {
	// --- telegram webhook ---
	r.With(
		httputil.RecoverMiddleware,
		httprate.LimitByIP(60, time.Minute),
	).Post("/webhook", hWebhook.HandleUpdate)

	// --- локальная таблица советов ---
	r.Route("/tips", func(pr chi.Router) {
		pr.Use(httputil.RecoverMiddleware)

		pr.Get("/", hTips.List)
		pr.Get("/{landmark}", hTips.Get)
	})
}
