package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"nomadai/internal/notificator"
	"nomadai/internal/pipeline"
)

type Pipeline interface {
	Process(ctx context.Context, msg pipeline.IncomingMessage) (pipeline.ReplyMessage, error)
}

type BotApp struct {
	bot      *tgbotapi.BotAPI
	pipeline Pipeline
	notify   notificator.Notificator
}

func NewBotApp(token string, p Pipeline, notify notificator.Notificator) (*BotApp, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}

	log.Printf("[bot_app] ready: @%s", bot.Self.UserName)

	return &BotApp{
		bot:      bot,
		pipeline: p,
		notify:   notify,
	}, nil
}

func (app *BotApp) Bot() *tgbotapi.BotAPI {
	return app.bot
}

// RunPolling — главный цикл получения апдейтов (long poll).
// В webhook-режиме апдейты приходят через delivery и этот цикл не запускается.
func (app *BotApp) RunPolling() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := app.bot.GetUpdatesChan(u)
	log.Printf("[bot_loop] started username=@%s", app.bot.Self.UserName)

	for update := range updates {
		// сообщения независимы, каждое обрабатываем в своей горутине
		go app.HandleUpdate(context.Background(), update)
	}
}

func (app *BotApp) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	log.Printf("[bot_touch] fromTG=%d updateID=%d", msg.From.ID, update.UpdateID)

	switch {
	case msg.IsCommand():
		app.handleCommand(ctx, msg)
	case msg.Voice != nil:
		app.handleVoice(ctx, msg)
	case msg.Text != "":
		app.handleText(ctx, msg)
	default:
		app.send(msg.Chat.ID, pipeline.FallbackBadInput)
	}
}

func (app *BotApp) send(chatID int64, text string) {
	if _, err := app.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("[bot] send fail chatID=%d err=%v", chatID, err)
	}
}

// replyFallback — единственный ответ на упавший пайплайн: текст этапа, если
// он есть, иначе общий. Вебхук при этом всё равно отвечает 200.
func (app *BotApp) replyFallback(ctx context.Context, chatID int64, err error) {
	text := pipeline.FallbackGeneric

	var se *pipeline.StageError
	if errors.As(err, &se) {
		text = se.Fallback
	}

	log.Printf("[bot] pipeline fail chatID=%d err=%v", chatID, err)

	if app.notify != nil {
		_ = app.notify.Notify(ctx, err, fmt.Sprintf("pipeline failed for chat %d", chatID))
	}

	app.send(chatID, text)
}
