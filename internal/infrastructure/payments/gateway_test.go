package payments

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"paintmarket/internal/domain/entities"
	"paintmarket/internal/usecase/interfaces"
)

func TestSimulatorGateway_Charge(t *testing.T) {
	g := NewSimulatorGateway()
	g.now = func() time.Time { return time.UnixMilli(1700000000000) }

	id, status, err := g.Charge(context.Background(), interfaces.PaymentCharge{OrderNumber: "ORD-1-0001", Amount: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "approved" {
		t.Fatalf("expected approved, got %q", status)
	}
	if !strings.HasPrefix(id, "TXN-1700000000000-") || len(id) != len("TXN-1700000000000-")+8 {
		t.Fatalf("unexpected transaction id %q", id)
	}
}

func TestSimulatorGateway_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := NewSimulatorGateway().Charge(ctx, interfaces.PaymentCharge{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	if _, err := NewMercadoPagoGateway("  "); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, err := g.Charge(context.Background(), interfaces.PaymentCharge{}); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}

func TestBuildPaymentRequest(t *testing.T) {
	req, err := buildPaymentRequest(interfaces.PaymentCharge{
		OrderNumber: "ORD-1-0002",
		Amount:      108,
		PayerEmail:  "client@test.com",
		Card:        entities.CardDetails{Last4: "4242", Brand: "mastercard"},
		CardToken:   "tok",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := json.Marshal(req)
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["transaction_amount"] != 108.0 || got["external_reference"] != "ORD-1-0002" || got["payment_method_id"] != "master" || got["token"] != "tok" {
		t.Fatalf("unexpected request: %s", b)
	}
	payer, _ := got["payer"].(map[string]any)
	if payer["email"] != "client@test.com" {
		t.Fatalf("expected payer email, got %s", b)
	}
}

func TestClassifyProviderError(t *testing.T) {
	if err := classifyProviderError(errors.New(`{"status":401}`)); !errors.Is(err, ErrProviderUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if err := classifyProviderError(errors.New(`{"error":"bad_request"}`)); !errors.Is(err, ErrProviderBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
	boom := errors.New("boom")
	if err := classifyProviderError(boom); err != boom {
		t.Fatalf("expected passthrough, got %v", err)
	}
}
