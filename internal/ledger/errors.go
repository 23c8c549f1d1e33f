package ledger

import "errors"

// Ошибки валидации. Все они локальны и восстановимы: операция отклоняется,
// состояние не меняется, пользователю показывается уведомление.
// Validation errors. All of them are local and recoverable: the operation is
// rejected, state is unchanged, the user gets a notification.
var (
	ErrDuplicateDate        = errors.New("смена на эту дату уже существует")
	ErrMissingOrderNumber   = errors.New("не указан номер заказа")
	ErrInvalidPrice         = errors.New("сумма доставки должна быть больше нуля")
	ErrMissingPaymentMethod = errors.New("не выбран способ оплаты")
	ErrUnknownPaymentMethod = errors.New("неизвестный способ оплаты")
	ErrInvalidAmount        = errors.New("сумма платежа должна быть больше нуля")
	ErrExceedsRemaining     = errors.New("сумма платежа превышает остаток задолженности")
)
