package telegram

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"nomadai/internal/pipeline"
)

const ackText = "Got it! Let me think for a moment..."

func (app *BotApp) handleVoice(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	fileID := msg.Voice.FileID

	log.Printf("[voice] start tgID=%d fileID=%s duration=%ds", msg.From.ID, fileID, msg.Voice.Duration)

	app.send(chatID, ackText)

	file, err := app.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		log.Printf("[voice] get file fail tgID=%d err=%v", msg.From.ID, err)
		app.send(chatID, pipeline.FallbackTranscribe)
		return
	}

	url := file.Link(app.bot.Token)

	resp, err := http.Get(url)
	if err != nil {
		log.Printf("[voice] download fail tgID=%d err=%v", msg.From.ID, err)
		app.send(chatID, pipeline.FallbackTranscribe)
		return
	}
	defer resp.Body.Close()

	path := filepath.Join(os.TempDir(), fmt.Sprintf("%s.ogg", fileID))
	out, err := os.Create(path)
	if err != nil {
		log.Printf("[voice] create tmp fail tgID=%d err=%v", msg.From.ID, err)
		app.send(chatID, pipeline.FallbackTranscribe)
		return
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		log.Printf("[voice] save tmp fail tgID=%d err=%v", msg.From.ID, err)
		out.Close()
		app.send(chatID, pipeline.FallbackTranscribe)
		return
	}
	out.Close()
	defer os.Remove(path)

	log.Printf("[voice] saved to %s", path)

	reply, err := app.pipeline.Process(ctx, pipeline.IncomingMessage{
		UserID:     msg.From.ID,
		ChatID:     chatID,
		AudioPath:  path,
		ReceivedAt: msg.Time(),
	})
	if err != nil {
		app.replyFallback(ctx, chatID, err)
		return
	}
	defer os.Remove(reply.AudioPath)

	app.sendReply(chatID, reply)

	log.Printf("[voice] done tgID=%d", msg.From.ID)
}

func (app *BotApp) sendReply(chatID int64, reply pipeline.ReplyMessage) {
	if reply.AudioPath != "" {
		voice := tgbotapi.NewVoice(chatID, tgbotapi.FilePath(reply.AudioPath))
		if _, err := app.bot.Send(voice); err != nil {
			// голос не ушёл — хотя бы текст
			log.Printf("[voice] send voice fail chatID=%d err=%v", chatID, err)
			app.send(chatID, reply.Text)
			return
		}
	}

	if reply.Text != "" {
		app.send(chatID, reply.Text)
	}
}
