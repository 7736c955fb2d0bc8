package telegram

import (
	"context"
	"log"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"nomadai/internal/pipeline"
)

const welcomeText = "Hey! I'm NomadAI. Send me a voice message in any language " +
	"about what you want to do or see in Delhi!"

func (app *BotApp) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		app.send(msg.Chat.ID, welcomeText)
	default:
		app.send(msg.Chat.ID, "Unknown command. Just send me a voice or text message!")
	}
}

func (app *BotApp) handleText(ctx context.Context, msg *tgbotapi.Message) {
	log.Printf("[text] start tgID=%d", msg.From.ID)

	reply, err := app.pipeline.Process(ctx, pipeline.IncomingMessage{
		UserID:     msg.From.ID,
		ChatID:     msg.Chat.ID,
		Text:       msg.Text,
		ReceivedAt: msg.Time(),
	})
	if err != nil {
		app.replyFallback(ctx, msg.Chat.ID, err)
		return
	}
	defer os.Remove(reply.AudioPath)

	app.sendReply(msg.Chat.ID, reply)

	log.Printf("[text] done tgID=%d", msg.From.ID)
}
