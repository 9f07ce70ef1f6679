package notify

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram шлёт служебные сообщения в админский чат.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram возвращает nil без ошибки, если токен или чат не заданы —
// уведомления в этом случае просто выключены.
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	if token == "" || chatID == 0 {
		return nil, nil
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Telegram{api: api, chatID: chatID}, nil
}

func (t *Telegram) Send(text string) error {
	_, err := t.api.Send(tgbotapi.NewMessage(t.chatID, text))
	return err
}
