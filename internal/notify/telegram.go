package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"
)

// TelegramNotifier отправляет уведомления в личный чат Telegram.
// TelegramNotifier pushes notifications to a personal Telegram chat.
type TelegramNotifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
	Debug  bool
}

// NewTelegramNotifier инициализирует Telegram бота для отправки уведомлений.
// token - API токен бота, chatID - чат, куда слать уведомления.
// NewTelegramNotifier initializes the Telegram bot for sending notifications.
// token - bot API token, chatID - the chat notifications go to.
func NewTelegramNotifier(token string, chatID int64, debug bool) (*TelegramNotifier, error) {
	if token == "" {
		return nil, fmt.Errorf("токен Telegram API не предоставлен")
	}
	if chatID == 0 {
		return nil, fmt.Errorf("не указан chat_id для уведомлений")
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации Telegram Bot API: %w", err)
	}
	api.Debug = debug

	log.Printf("Авторизован как аккаунт %s", api.Self.UserName)

	return &TelegramNotifier{api: api, chatID: chatID, Debug: debug}, nil
}

func (t *TelegramNotifier) Success(message string) {
	t.send("✅ " + message)
}

func (t *TelegramNotifier) Error(message string) {
	t.send("❌ " + message)
}

func (t *TelegramNotifier) send(text string) {
	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.api.Send(msg); err != nil {
		// Уведомления не критичны: логируем и продолжаем
		// Notifications are not critical: log and move on
		log.Printf("TelegramNotifier: ошибка отправки уведомления: %v", err)
	}
}
