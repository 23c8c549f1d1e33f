package api

import (
	"github.com/go-chi/chi/v5"

	"ShiftTracker/internal/config"
	"ShiftTracker/internal/ledger"
	"ShiftTracker/internal/session"
)

// ApiDependencies содержит зависимости для обработчиков API.
type ApiDependencies struct {
	Config     *config.Config
	Shifts     *ledger.ShiftLedger
	Deliveries *ledger.DeliveryLedger
	Checkout   *ledger.Checkout
	Sessions   *session.Manager
}

// SetupRoutes настраивает все маршруты для API.
func SetupRoutes(r *chi.Mux, deps ApiDependencies) {
	h := &Handlers{Deps: deps}

	// Конфигурация клиента доступна без авторизации
	r.Get("/api/client-config", h.GetClientConfig)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(deps.Config.APIToken))

		// --- Маршруты для смен ---
		r.Route("/api/shifts", func(r chi.Router) {
			r.Get("/", h.GetShifts)
			r.Post("/", h.CreateShift)
			r.Get("/summary", h.GetShiftSummary)
			r.Post("/clear-all", h.ClearAllShifts)
			r.Delete("/{id}", h.DeleteShift)
		})

		// --- Маршруты для доставок ---
		r.Route("/api/deliveries", func(r chi.Router) {
			r.Get("/", h.GetDeliveries)
			r.Post("/", h.CreateDelivery)
			r.Get("/summary", h.GetDeliverySummary)
			r.Delete("/{id}", h.DeleteDelivery)
		})

		// --- Маршруты для платежей ---
		r.Route("/api/payments", func(r chi.Router) {
			r.Get("/", h.GetPayments)
			r.Post("/", h.CreatePayment)
			r.Get("/summary", h.GetPaymentSummary)
			r.Get("/max", h.GetPaymentMax)
			r.Get("/qr", h.GetPaymentQR)
			r.Delete("/{id}", h.DeletePayment)
		})

		// --- Экспорт ---
		r.Get("/api/export/excel", h.ExportExcel)
	})
}
