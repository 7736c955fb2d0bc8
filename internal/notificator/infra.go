package notificator

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Infra struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
}

func NewInfra(bot *tgbotapi.BotAPI, adminChatID int64) *Infra {
	return &Infra{bot: bot, adminChatID: adminChatID}
}

// SetBot — позволяет передать бота ПОСЛЕ того, как он инициализировался
func (i *Infra) SetBot(bot *tgbotapi.BotAPI) {
	i.bot = bot
}

func (i *Infra) Notify(ctx context.Context, err error, details string) error {
	// без ADMIN_CHAT_ID уведомления просто выключены
	if i.adminChatID == 0 {
		return nil
	}
	if i.bot == nil {
		log.Printf("[notificator] bot not set")
		return fmt.Errorf("bot not set")
	}

	text := fmt.Sprintf(
		"❗ Ошибка в боте\n\nОшибка: %v\n\nДетали: %s",
		err,
		details,
	)

	msg := tgbotapi.NewMessage(i.adminChatID, text)

	_, sendErr := i.bot.Send(msg)
	if sendErr != nil {
		log.Printf("[notificator] send fail: %v", sendErr)
		return sendErr
	}

	return nil
}
