package notify

import "log"

// Notifier — приёмник пользовательских уведомлений.
// Вызовы fire-and-forget: возвращаемого значения нет, доставка не гарантируется.
// Notifier is the sink for user-facing notifications.
// Calls are fire-and-forget: no return value, no delivery guarantee.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier пишет уведомления в стандартный лог.
// Используется по умолчанию, когда Telegram-уведомления не настроены.
type LogNotifier struct{}

// NewLogNotifier создаёт уведомитель, пишущий только в лог.
func NewLogNotifier() LogNotifier {
	return LogNotifier{}
}

func (LogNotifier) Success(message string) {
	log.Printf("Уведомление: %s", message)
}

func (LogNotifier) Error(message string) {
	log.Printf("Уведомление об ошибке: %s", message)
}
