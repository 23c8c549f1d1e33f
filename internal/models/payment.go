package models

// Payment — частичный платёж в счёт задолженности по доставкам.
type Payment struct {
	ID        string  `json:"id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`    // cash | online | qr
	Timestamp string  `json:"timestamp"` // RFC3339, момент создания
}
