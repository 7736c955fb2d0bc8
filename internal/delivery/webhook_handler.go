package delivery

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type UpdateSink interface {
	HandleUpdate(ctx context.Context, update tgbotapi.Update)
}

type WebhookHandler struct {
	sink UpdateSink
	log  *logger.ZapLogger
}

func NewWebhookHandler(sink UpdateSink, log *logger.ZapLogger) *WebhookHandler {
	return &WebhookHandler{
		sink: sink,
		log:  log,
	}
}

// HandleUpdate принимает апдейт от Telegram. Отвечаем 200 ВСЕГДА, даже на
// мусор и упавшую обработку, иначе Telegram начнёт передоставлять апдейт.
func (h *WebhookHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	defer func() {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "webhook: read body failed: " + err.Error(),
			Service: "nomadai",
		})
		return
	}

	var update tgbotapi.Update
	if err := json.Unmarshal(body, &update); err != nil {
		h.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "webhook: malformed update: " + err.Error(),
			Service: "nomadai",
		})
		return
	}

	// обработка в горутине: ответ платформе не ждёт пайплайн
	go h.sink.HandleUpdate(context.Background(), update)
}
