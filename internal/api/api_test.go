package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"ShiftTracker/internal/config"
	"ShiftTracker/internal/ledger"
	"ShiftTracker/internal/notify"
	"ShiftTracker/internal/session"
	"ShiftTracker/internal/store"
)

func newTestServer(t *testing.T, apiToken string) *httptest.Server {
	t.Helper()

	st := store.NewMemoryStore()
	notifier := notify.NewLogNotifier()

	cfg := &config.Config{
		APIToken:   apiToken,
		HourlyRate: 50,
		PayeeVPA:   "worker@upi",
	}

	checkout := ledger.NewCheckout(st, notifier)
	require.NoError(t, checkout.Load())

	r := chi.NewRouter()
	SetupRoutes(r, ApiDependencies{
		Config:     cfg,
		Shifts:     ledger.NewShiftLedger(st, notifier),
		Deliveries: ledger.NewDeliveryLedger(st, notifier),
		Checkout:   checkout,
		Sessions:   session.NewManager(0), // без задержки подтверждения в тестах
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("X-Api-Token", token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeResponse(t *testing.T, resp *http.Response) jsonResponse {
	t.Helper()
	defer resp.Body.Close()
	var out jsonResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestClientConfigIsPublic(t *testing.T) {
	srv := newTestServer(t, "секретный-токен")

	resp, err := http.Get(srv.URL + "/api/client-config")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeResponse(t, resp)
	require.Equal(t, "success", out.Status)
}

func TestAuthMiddleware(t *testing.T) {
	srv := newTestServer(t, "секретный-токен")

	// Без токена
	resp, err := http.Get(srv.URL + "/api/shifts/")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// С неверным токеном
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/shifts/", "не тот токен", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// С верным токеном
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/shifts/", "секретный-токен", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestShiftLifecycle(t *testing.T) {
	srv := newTestServer(t, "")

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/shifts/", "", AddShiftRequest{
		Date: "2026-09-01", StartTime: "09:00", EndTime: "18:00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decodeResponse(t, resp)

	// Дубликат даты отклоняется конфликтом
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/shifts/", "", AddShiftRequest{
		Date: "2026-09-01", StartTime: "10:00", EndTime: "19:00",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Сводка: 9 часов учитываются как 8, ставка 50
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/shifts/summary", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeResponse(t, resp)

	data, err := json.Marshal(out.Data)
	require.NoError(t, err)
	var summary ledger.EarningsSummary
	require.NoError(t, json.Unmarshal(data, &summary))
	require.Equal(t, 1, summary.ShiftCount)
	require.Equal(t, 8.0, summary.TotalHours)
	require.Equal(t, 400.0, summary.EstimatedEarnings)
}

func TestClearAllShiftsTwoStep(t *testing.T) {
	srv := newTestServer(t, "")

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/shifts/", "", AddShiftRequest{
		Date: "2026-09-01", StartTime: "09:00", EndTime: "18:00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Первый запрос только взводит действие
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/shifts/clear-all", "", nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	resp.Body.Close()

	// Повторный запрос выполняет удаление (задержка в тестах нулевая)
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/shifts/clear-all", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/shifts/", "", nil)
	out := decodeResponse(t, resp)
	require.Empty(t, out.Data)
}

func TestPaymentFlow(t *testing.T) {
	srv := newTestServer(t, "")

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/deliveries/", "", AddDeliveryRequest{
		OrderNo: 1, Price: 300, PaymentMethod: "cash",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Платёж сверх остатка отклоняется
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/payments/", "", AddPaymentRequest{
		Amount: 400, Method: "cash",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/payments/", "", AddPaymentRequest{
		Amount: 100, Method: "cash",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Подстановка максимальной суммы возвращает остаток
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/payments/max", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeResponse(t, resp)
	data, err := json.Marshal(out.Data)
	require.NoError(t, err)
	var max map[string]float64
	require.NoError(t, json.Unmarshal(data, &max))
	require.Equal(t, 200.0, max["amount"])

	// QR на остаток отдаётся как PNG
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/payments/qr", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	resp.Body.Close()
}

func TestDeleteMissingIDReturnsOK(t *testing.T) {
	srv := newTestServer(t, "")

	for _, path := range []string{
		"/api/shifts/нет-такого-id",
		"/api/deliveries/нет-такого-id",
		"/api/payments/нет-такого-id",
	} {
		resp := doJSON(t, http.MethodDelete, srv.URL+path, "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, "путь %s", path)
		resp.Body.Close()
	}
}

func TestExportExcel(t *testing.T) {
	srv := newTestServer(t, "")

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/shifts/", "", AddShiftRequest{
		Date: "2026-09-01", StartTime: "09:00", EndTime: "18:00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/export/excel", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Disposition"), "tracker_report_")
	resp.Body.Close()
}
