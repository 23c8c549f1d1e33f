package constants

// Способы оплаты доставки
// Delivery payment methods
const (
	PAYMENT_CASH   = "cash"
	PAYMENT_ONLINE = "online"
	PAYMENT_BOTH   = "both"
	PAYMENT_QR     = "qr"
	PAYMENT_NONE   = "none"
)

// Статусы доставки. Доставка всегда создаётся уже со статусом "delivered",
// остальные значения зарезервированы.
// Delivery statuses. A delivery is always created already "delivered",
// the other values are reserved.
const (
	STATUS_PENDING   = "pending"
	STATUS_DELIVERED = "delivered"
	STATUS_CANCELLED = "cancelled"
)

// Ключи хранилища. Каждая коллекция хранится целиком под своим ключом.
// Storage keys. Each collection is stored whole under its own key.
const (
	KEY_SHIFTS     = "shifts"
	KEY_DELIVERIES = "deliveries"
	KEY_PAYMENTS   = "payments"
)

// SENTINEL_DAY_OFF — время "00:00", пара 00:00–00:00 обозначает выходной день.
const SENTINEL_DAY_OFF = "00:00"

// DEFAULT_HOURLY_RATE — почасовая ставка по умолчанию, если HOURLY_RATE не задана.
const DEFAULT_HOURLY_RATE = 50.0

// 9-часовая смена включает неоплачиваемый перерыв и учитывается как 8 часов.
const (
	SPECIAL_SHIFT_RAW_HOURS       = 9.0
	SPECIAL_SHIFT_EFFECTIVE_HOURS = 8.0
)

// CLEAR_ALL_COOLDOWN_SECONDS — задержка перед подтверждением полного удаления смен.
const CLEAR_ALL_COOLDOWN_SECONDS = 5

// SESSION_KEY_CLEAR_SHIFTS — ключ взведения для действия "удалить все смены".
const SESSION_KEY_CLEAR_SHIFTS = "clear_all_shifts"

// PaymentMethodDisplayMap — отображаемые названия способов оплаты.
var PaymentMethodDisplayMap = map[string]string{
	PAYMENT_CASH:   "Наличные",
	PAYMENT_ONLINE: "Онлайн",
	PAYMENT_BOTH:   "Наличные + Онлайн",
	PAYMENT_QR:     "QR-код",
	PAYMENT_NONE:   "—",
}

// StatusDisplayMap — отображаемые названия статусов доставки.
var StatusDisplayMap = map[string]string{
	STATUS_PENDING:   "Ожидает",
	STATUS_DELIVERED: "Доставлен",
	STATUS_CANCELLED: "Отменён",
}

// ShiftPreset — фиксированный вариант смены для выбора на клиенте.
type ShiftPreset struct {
	Label     string `json:"label"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ShiftPresets — типовые смены магазина. Пара 00:00–00:00 — выходной.
var ShiftPresets = []ShiftPreset{
	{Label: "9:00 AM to 3:30 PM", StartTime: "09:00", EndTime: "15:30"},
	{Label: "9:00 AM to 6:00 PM", StartTime: "09:00", EndTime: "18:00"},
	{Label: "11:00 AM to 5:30 PM", StartTime: "11:00", EndTime: "17:30"},
	{Label: "11:00 AM to 8:00 PM", StartTime: "11:00", EndTime: "20:00"},
	{Label: "12:00 PM to 9:00 PM", StartTime: "12:00", EndTime: "21:00"},
	{Label: "12:00 PM to 6:30 PM", StartTime: "12:00", EndTime: "18:30"},
	{Label: "1:00 PM to 10:00 PM", StartTime: "13:00", EndTime: "22:00"},
	{Label: "2:00 PM to 8:30 PM", StartTime: "14:00", EndTime: "20:30"},
	{Label: "Weekly Off", StartTime: "00:00", EndTime: "00:00"},
}
