package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ShiftTracker/internal/constants"
	"ShiftTracker/internal/ledger"
	"ShiftTracker/internal/models"
	"ShiftTracker/internal/reports"
	"ShiftTracker/internal/utils"
)

// Handlers объединяет обработчики API с их зависимостями.
type Handlers struct {
	Deps ApiDependencies
}

// jsonResponse - вспомогательная структура для стандартного ответа API
type jsonResponse struct {
	Status  string      `json:"status"` // "success" или "error"
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// AddShiftRequest - структура запроса на добавление смены
type AddShiftRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// AddDeliveryRequest - структура запроса на добавление доставки
type AddDeliveryRequest struct {
	OrderNo       int     `json:"orderNo"`
	IsPaid        bool    `json:"isPaid"`
	Price         float64 `json:"price"`
	PaymentMethod string  `json:"paymentMethod"`
}

// AddPaymentRequest - структура запроса на добавление платежа
type AddPaymentRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
}

// --- Вспомогательные функции для JSON-ответов ---

func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(jsonResponse{Status: "error", Message: message})
}

func writeJSONSuccess(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(jsonResponse{Status: "success", Message: message, Data: data})
}

// validationStatusCode сопоставляет ошибку валидации HTTP-статусу.
// Ошибки валидации — пользовательские (400/409), остальное — 500.
func validationStatusCode(err error) int {
	switch {
	case errors.Is(err, ledger.ErrDuplicateDate):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrMissingOrderNumber),
		errors.Is(err, ledger.ErrInvalidPrice),
		errors.Is(err, ledger.ErrMissingPaymentMethod),
		errors.Is(err, ledger.ErrUnknownPaymentMethod),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrExceedsRemaining):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// reverseShifts возвращает копию списка от новых к старым (для отображения).
func reverseShifts(shifts []models.Shift) []models.Shift {
	out := make([]models.Shift, 0, len(shifts))
	for i := len(shifts) - 1; i >= 0; i-- {
		out = append(out, shifts[i])
	}
	return out
}

func reverseDeliveries(deliveries []models.Delivery) []models.Delivery {
	out := make([]models.Delivery, 0, len(deliveries))
	for i := len(deliveries) - 1; i >= 0; i-- {
		out = append(out, deliveries[i])
	}
	return out
}

func reversePayments(payments []models.Payment) []models.Payment {
	out := make([]models.Payment, 0, len(payments))
	for i := len(payments) - 1; i >= 0; i-- {
		out = append(out, payments[i])
	}
	return out
}

// GetClientConfig отдаёт клиенту ставку и типовые смены.
func (h *Handlers) GetClientConfig(w http.ResponseWriter, r *http.Request) {
	writeJSONSuccess(w, http.StatusOK, "ok", map[string]interface{}{
		"hourly_rate":                constants.DEFAULT_HOURLY_RATE,
		"configured_hourly_rate":     h.Deps.Config.HourlyRate,
		"shift_presets":              constants.ShiftPresets,
		"clear_all_cooldown_seconds": constants.CLEAR_ALL_COOLDOWN_SECONDS,
	})
}

// --- Обработчики смен ---

func (h *Handlers) GetShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.Deps.Shifts.Shifts()
	if err != nil {
		log.Printf("GetShifts: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Не удалось прочитать смены")
		return
	}
	writeJSONSuccess(w, http.StatusOK, "ok", reverseShifts(shifts))
}

func (h *Handlers) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req AddShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Некорректное тело запроса")
		return
	}

	shift, err := h.Deps.Shifts.AddShift(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		writeJSONError(w, validationStatusCode(err), err.Error())
		return
	}
	writeJSONSuccess(w, http.StatusCreated, "Смена добавлена", shift)
}

func (h *Handlers) DeleteShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Deps.Shifts.DeleteShift(id); err != nil {
		log.Printf("DeleteShift: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Не удалось удалить смену")
		return
	}
	// Отсутствующий id — тоже успех: операция идемпотентна
	writeJSONSuccess(w, http.StatusOK, "ok", nil)
}

// ClearAllShifts выполняет двухшаговое подтверждение: первый запрос взводит
// действие, повторный после истечения задержки удаляет все смены.
func (h *Handlers) ClearAllShifts(w http.ResponseWriter, r *http.Request) {
	sessions := h.Deps.Sessions
	if !sessions.Ready(constants.SESSION_KEY_CLEAR_SHIFTS) {
		sessions.Arm(constants.SESSION_KEY_CLEAR_SHIFTS)
		remaining := sessions.Remaining(constants.SESSION_KEY_CLEAR_SHIFTS)
		writeJSONSuccess(w, http.StatusAccepted,
			fmt.Sprintf("Повторите запрос через %.0f сек. для подтверждения удаления всех смен", remaining.Seconds()), nil)
		return
	}
	sessions.Reset(constants.SESSION_KEY_CLEAR_SHIFTS)

	if err := h.Deps.Shifts.ClearAll(); err != nil {
		log.Printf("ClearAllShifts: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Не удалось удалить смены")
		return
	}
	writeJSONSuccess(w, http.StatusOK, "Все смены удалены", nil)
}

func (h *Handlers) GetShiftSummary(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.Deps.Shifts.Shifts()
	if err != nil {
		log.Printf("GetShiftSummary: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Не удалось прочитать смены")
		return
	}
	writeJSONSuccess(w, http.StatusOK, "ok", ledger.SummarizeEarnings(shifts, h.Deps.Config.HourlyRate))
}

// --- Обработчики доставок ---

func (h *Handlers) GetDeliveries(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.Deps.Deliveries.Deliveries()
	if err != nil {
		log.Printf("GetDeliveries: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Не удалось прочитать доставки")
		return
	}
	writeJSONSuccess(w, http.StatusOK, "ok", reverseDeliveries(deliveries))
}

func (h *Handlers) CreateDelivery(w http.ResponseWriter, r *http.Request) {
	var req AddDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Некорректное тело запроса")
		return
	}

	delivery, err := h.Deps.Deliveries.AddDelivery(req.OrderNo, req.IsPaid, req.Price, req.PaymentMethod)
	if err != nil {
		writeJSONError(w, validationStatusCode(err), err.Error())
		return
	}
	writeJSONSuccess(w, http.StatusCreated, "Доставка добавлена", delivery)
}

func (h *Handlers) DeleteDelivery(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Deps.Deliveries.DeleteDelivery(id); err != nil {
		log.Printf("DeleteDelivery: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Не удалось удалить доставку")
		return
	}
	writeJSONSuccess(w, http.StatusOK, "ok", nil)
}

func (h *Handlers) GetDeliverySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Deps.Deliveries.Summary()
	if err != nil {
		log.Printf("GetDeliverySummary: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Не удалось прочитать доставки")
		return
	}
	writeJSONSuccess(w, http.StatusOK, "ok", summary)
}

// --- Обработчики платежей ---

func (h *Handlers) GetPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Deps.Checkout.Payments()
	if err != nil {
		log.Printf("GetPayments: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Не удалось прочитать платежи")
		return
	}
	writeJSONSuccess(w, http.StatusOK, "ok", reversePayments(payments))
}

func (h *Handlers) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req AddPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Некорректное тело запроса")
		return
	}

	payment, err := h.Deps.Checkout.AddPayment(req.Amount, req.Method)
	if err != nil {
		writeJSONError(w, validationStatusCode(err), err.Error())
		return
	}
	writeJSONSuccess(w, http.StatusCreated, "Платёж записан", payment)
}

func (h *Handlers) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Deps.Checkout.DeletePayment(id); err != nil {
		log.Printf("DeletePayment: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Не удалось удалить платёж")
		return
	}
	writeJSONSuccess(w, http.StatusOK, "ok", nil)
}

func (h *Handlers) GetPaymentSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Deps.Checkout.Summary()
	if err != nil {
		log.Printf("GetPaymentSummary: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Не удалось выполнить сверку платежей")
		return
	}
	writeJSONSuccess(w, http.StatusOK, "ok", summary)
}

// GetPaymentMax отдаёт остаток для подстановки в поле суммы платежа.
func (h *Handlers) GetPaymentMax(w http.ResponseWriter, r *http.Request) {
	amount, ok, err := h.Deps.Checkout.MaxOut()
	if err != nil {
		log.Printf("GetPaymentMax: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Не удалось выполнить сверку платежей")
		return
	}
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "Нет остатка к оплате")
		return
	}
	writeJSONSuccess(w, http.StatusOK, "ok", map[string]float64{"amount": amount})
}

// GetPaymentQR отдаёт PNG с QR-кодом на оплату остатка задолженности.
func (h *Handlers) GetPaymentQR(w http.ResponseWriter, r *http.Request) {
	remaining, err := h.Deps.Checkout.Remaining()
	if err != nil {
		log.Printf("GetPaymentQR: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Не удалось выполнить сверку платежей")
		return
	}
	if remaining <= 0 {
		writeJSONError(w, http.StatusBadRequest, "Нет остатка к оплате")
		return
	}

	qrBytes, err := utils.GeneratePaymentQRCode(h.Deps.Config.PayeeVPA, remaining)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(qrBytes)
}

// --- Экспорт ---

// ExportExcel отдаёт xlsx-отчёт по всем трём коллекциям.
func (h *Handlers) ExportExcel(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.Deps.Shifts.Shifts()
	if err != nil {
		log.Printf("ExportExcel: ошибка чтения смен: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Не удалось прочитать смены")
		return
	}
	deliveries, err := h.Deps.Deliveries.Deliveries()
	if err != nil {
		log.Printf("ExportExcel: ошибка чтения доставок: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Не удалось прочитать доставки")
		return
	}
	payments, err := h.Deps.Checkout.Payments()
	if err != nil {
		log.Printf("ExportExcel: ошибка чтения платежей: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Не удалось прочитать платежи")
		return
	}

	f, err := reports.BuildWorkbook(shifts, deliveries, payments, h.Deps.Config.HourlyRate)
	if err != nil {
		log.Printf("ExportExcel: ошибка формирования отчёта: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Не удалось сформировать Excel отчёт")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, reports.ReportFileName()))
	if err := f.Write(w); err != nil {
		log.Printf("ExportExcel: ошибка записи отчёта в ответ: %v", err)
	}
}
