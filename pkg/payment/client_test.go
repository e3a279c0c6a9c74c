package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL:     srv.URL,
		ClientID:    "client-1",
		APIKey:      "api-key",
		ChecksumKey: "key",
		ReturnURL:   "https://cinema.example/return",
		Timeout:     time.Second,
	}, zap.NewNop())
}

func TestCreatePaymentLink(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/payment-requests", r.URL.Path)
		assert.Equal(t, "client-1", r.Header.Get("x-client-id"))
		assert.Equal(t, "api-key", r.Header.Get("x-api-key"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "CINEMABKQWERTY23", body["description"])
		assert.Equal(t, Sign("key", map[string]any{
			"amount":      int64(125000),
			"cancelUrl":   "https://cinema.example/return",
			"description": "CINEMABKQWERTY23",
			"orderCode":   int64(42),
			"returnUrl":   "https://cinema.example/return",
		}), body["signature"])

		_, _ = w.Write([]byte(`{"code":"00","desc":"success","data":{"checkoutUrl":"https://pay/c/42","qrCode":"0002010102","paymentLinkId":"pl-42"}}`))
	})

	link, err := client.CreatePaymentLink(context.Background(), LinkRequest{
		OrderCode:   42,
		Amount:      125000,
		Description: "CINEMABKQWERTY23",
		BuyerEmail:  "a@b.co",
		ExpiresAt:   time.Now().Add(15 * time.Minute),
	})

	require.NoError(t, err)
	assert.Equal(t, "0002010102", link.QRCode)
	assert.Equal(t, "pl-42", link.PaymentLinkID)
}

func TestGetPaymentStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/payment-requests/42", r.URL.Path)
		_, _ = w.Write([]byte(`{"code":"00","desc":"success","data":{"orderCode":42,"amount":125000,"amountPaid":125000,"status":"PAID"}}`))
	})

	status, err := client.GetPaymentStatus(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, StatusPaid, status.Status)
	assert.Equal(t, int64(125000), status.AmountPaid)
}

func TestClient_ProviderErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"error code", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"code":"231","desc":"order exists"}`))
		}},
		{"http status", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"code":"00"}`))
		}},
		{"not json", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)
			_, err := client.GetPaymentStatus(context.Background(), 42)
			assert.ErrorIs(t, err, ErrProvider)
		})
	}
}
