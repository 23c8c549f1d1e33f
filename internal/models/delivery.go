package models

// Delivery — доставка заказа. Для оплаченной доставки Price равен 0,
// а PaymentMethod — "none": долга по ней нет.
type Delivery struct {
	ID            string  `json:"id"`
	OrderNo       int     `json:"orderNo"`
	Price         float64 `json:"price"`
	PaymentMethod string  `json:"paymentMethod"` // cash | online | both | qr | none
	Date          string  `json:"date"`          // ГГГГ-ММ-ДД, дата создания
	Status        string  `json:"status"`        // pending | delivered | cancelled
	IsPaid        bool    `json:"isPaid"`
}
