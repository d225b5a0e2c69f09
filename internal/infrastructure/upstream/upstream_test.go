package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"testing"

	"github.com/mkamande/shopsphere-admin/internal/config"
	"github.com/mkamande/shopsphere-admin/internal/domain/enum"
	"github.com/mkamande/shopsphere-admin/internal/domain/gateway"
	"github.com/mkamande/shopsphere-admin/pkg/apperror"
)

func commerceClient(serverURL string) *CommerceClient {
	return NewCommerceClient(&config.CommerceConfig{
		BaseURL: serverURL,
		Timeout: 5 * time.Second,
	})
}

func TestListOrdersParsesLooseFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("status") != "processing" {
			t.Errorf("status filter not forwarded, query = %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"data": {
				"orders": [
					{
						"_id": "ord-1",
						"invoiceNo": "INV-001",
						"total": 499.5,
						"createdAt": "2026-06-10T08:30:00Z",
						"payment": {"method": "Credit-Card", "status": "PAID"},
						"customer": {"name": "Asha", "email": "asha@example.com"},
						"shippingAddress": {"city": "Pune"},
						"items": [{"productId": "p1", "title": "Mug", "quantity": 2, "unitPrice": 249.75}],
						"statusHistory": [
							{"status": "processing", "timestamp": "2026-06-10T08:30:00Z"},
							{"status": "ready-to-ship", "timestamp": "2026-06-11T10:00:00Z"}
						]
					},
					{"id": "ord-2", "payment": {}}
				],
				"pagination": {"total": 2, "page": 1, "limit": 20, "pages": 1}
			}
		}`))
	}))
	defer server.Close()

	page, err := commerceClient(server.URL).ListOrders(context.Background(), gateway.OrderFilter{
		PageFilter: gateway.PageFilter{Page: 1, Limit: 20},
		Status:     enum.OrderStatusProcessing,
	})
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if page.Total != 2 || len(page.Orders) != 2 {
		t.Fatalf("page = %+v", page)
	}

	first := page.Orders[0]
	if first.ID != "ord-1" || first.City != "Pune" {
		t.Errorf("first order = %+v", first)
	}
	if first.Payment.Method != enum.PaymentMethodCreditCard {
		t.Errorf("payment method = %q, want credit_card", first.Payment.Method)
	}
	if first.Payment.Status != enum.PaymentStatusPaid {
		t.Errorf("payment status = %q", first.Payment.Status)
	}
	if first.CurrentStatus() != enum.OrderStatusReadyToShip {
		t.Errorf("current status = %q", first.CurrentStatus())
	}
	if len(first.Items) != 1 || first.Items[0].Quantity != 2 {
		t.Errorf("items = %+v", first.Items)
	}

	// sparse record decodes with safe defaults
	second := page.Orders[1]
	if second.ID != "ord-2" {
		t.Errorf("second id = %q", second.ID)
	}
	if second.Payment.Method != enum.PaymentMethodOther {
		t.Errorf("empty method = %q, want other", second.Payment.Method)
	}
	if second.Payment.Status != enum.PaymentStatusPending {
		t.Errorf("empty status = %q, want pending", second.Payment.Status)
	}
	if second.CurrentStatus() != enum.OrderStatusProcessing {
		t.Errorf("empty history status = %q, want processing", second.CurrentStatus())
	}
	if second.Items == nil || second.StatusHistory == nil {
		t.Error("slices must default to empty, not nil")
	}
}

func TestListProductsInventoryFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"success": true,
			"data": {
				"products": [
					{"_id": "p1", "title": "New", "inventoryCount": 7},
					{"_id": "p2", "title": "Legacy", "stock": 3},
					{"_id": "p3", "title": "Bare"}
				],
				"pagination": {"total": 3}
			}
		}`))
	}))
	defer server.Close()

	page, err := commerceClient(server.URL).ListProducts(context.Background(), gateway.PageFilter{})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	counts := []int{7, 3, 0}
	for i, want := range counts {
		if got := page.Products[i].InventoryCount; got != want {
			t.Errorf("product %d inventory = %d, want %d", i, got, want)
		}
	}
	if page.Products[2].Images == nil {
		t.Error("images must default to empty slice")
	}
}

func TestStatusErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusNotFound, apperror.ErrNotFound},
		{http.StatusUnauthorized, apperror.ErrUnauthorized},
		{http.StatusForbidden, apperror.ErrForbidden},
	}
	for _, tc := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))
		_, err := commerceClient(server.URL).GetOrder(context.Background(), "missing")
		server.Close()
		if !errors.Is(err, tc.want) {
			t.Errorf("status %d mapped to %v, want %v", tc.status, err, tc.want)
		}
	}
}

func TestStatusErrorCarriesUpstreamMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success": false, "message": "invalid transition"}`))
	}))
	defer server.Close()

	err := commerceClient(server.URL).UpdateOrderStatus(context.Background(), "ord-1", enum.OrderStatusShipped)
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("err = %v, want *AppError", err)
	}
	if appErr.Code != http.StatusBadRequest || appErr.Message != "invalid transition" {
		t.Errorf("appErr = %+v", appErr)
	}
}

func TestServerErrorBecomesBadGateway(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := commerceClient(server.URL).ListCategories(context.Background())
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("err = %v, want *AppError", err)
	}
	if appErr.Code != http.StatusBadGateway {
		t.Errorf("code = %d, want 502", appErr.Code)
	}
}

func TestShiprocketOrderStatuses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/shiprocket/orders/status" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sr-token" {
			t.Errorf("authorization = %q", got)
		}
		w.Write([]byte(`{"data": [{"status": "DELIVERED"}, {"status": "In Transit"}, {}]}`))
	}))
	defer server.Close()

	client := NewShiprocketClient(&config.ShiprocketConfig{
		BaseURL: server.URL,
		Token:   "sr-token",
		Timeout: 5 * time.Second,
	})
	statuses, err := client.OrderStatuses(context.Background())
	if err != nil {
		t.Fatalf("OrderStatuses: %v", err)
	}
	want := []string{"DELIVERED", "In Transit", ""}
	if len(statuses) != len(want) {
		t.Fatalf("statuses = %v", statuses)
	}
	for i := range want {
		if statuses[i] != want[i] {
			t.Errorf("statuses[%d] = %q, want %q", i, statuses[i], want[i])
		}
	}
}

func TestGSTSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/gst-reports/summary" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"success": true,
			"data": {
				"totalGST": 18000,
				"taxableAmount": 100000,
				"cgst": 9000,
				"sgst": 9000,
				"monthlyReport": [{"month": "Jun", "taxableAmount": 50000, "gstCollected": 9000}]
			}
		}`))
	}))
	defer server.Close()

	client := NewGSTClient(&config.GSTConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
	summary, err := client.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.TotalGST != 18000 || summary.CGST != 9000 {
		t.Errorf("summary = %+v", summary)
	}
	if len(summary.MonthlyReport) != 1 || summary.MonthlyReport[0].Month != "Jun" {
		t.Errorf("monthly report = %+v", summary.MonthlyReport)
	}
}
