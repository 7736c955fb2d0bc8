package delivery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type fakeSink struct {
	got chan tgbotapi.Update
}

func (f *fakeSink) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	f.got <- update
}

func newTestWebhook() (*WebhookHandler, *fakeSink) {
	sink := &fakeSink{got: make(chan tgbotapi.Update, 1)}
	zl := logger.NewZapLogger(zap.NewNop().Sugar())
	return NewWebhookHandler(sink, zl), sink
}

func TestWebhook_DispatchesValidUpdate(t *testing.T) {
	h, sink := newTestWebhook()

	body := `{
		"update_id": 42,
		"message": {
			"message_id": 1,
			"date": 1700000000,
			"chat": {"id": 7, "type": "private"},
			"from": {"id": 7, "is_bot": false, "first_name": "Asha"},
			"text": "tell me about Lodhi Garden"
		}
	}`

	w := httptest.NewRecorder()
	h.HandleUpdate(w, httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body)))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	select {
	case upd := <-sink.got:
		if upd.UpdateID != 42 || upd.Message == nil || upd.Message.Text != "tell me about Lodhi Garden" {
			t.Fatalf("sink got %+v", upd)
		}
	case <-time.After(time.Second):
		t.Fatal("update never reached the sink")
	}
}

// Мусор в теле — всё равно 200, иначе Telegram зациклит доставку.
func TestWebhook_MalformedBodyStillAcks(t *testing.T) {
	h, sink := newTestWebhook()

	w := httptest.NewRecorder()
	h.HandleUpdate(w, httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{broken`)))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	select {
	case <-sink.got:
		t.Fatal("malformed update dispatched to sink")
	case <-time.After(50 * time.Millisecond):
	}
}
