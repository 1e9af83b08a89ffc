package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"paintmarket/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrProviderBadRequest              = errors.New("payment provider bad request")
	ErrProviderUnauthorized            = errors.New("payment provider unauthorized")
	ErrProviderRejected                = errors.New("payment provider rejected the charge")
)

// MercadoPagoGateway charges orders through Mercado Pago.
type MercadoPagoGateway struct {
	client payment.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if strings.TrimSpace(accessToken) == "" {
		zap.L().Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		zap.L().Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	zap.L().Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) Charge(ctx context.Context, charge interfaces.PaymentCharge) (string, string, error) {
	if g == nil || g.client == nil {
		return "", "", ErrMercadoPagoGatewayNotConfigured
	}
	log := zap.L().With(zap.String("order_number", charge.OrderNumber))
	log.Info("[payment][gateway] create start", zap.Float64("amount", charge.Amount))

	req, err := buildPaymentRequest(charge)
	if err != nil {
		log.Error("[payment][gateway] payload build failed", zap.Error(err))
		return "", "", err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Error("[payment][gateway] sdk create failed", zap.Error(err))
		return "", "", classifyProviderError(err)
	}
	providerID := fmt.Sprintf("%d", resp.ID)
	log.Info("[payment][gateway] create success", zap.String("provider_payment_id", providerID), zap.String("provider_status", resp.Status))

	if resp.Status == "rejected" || resp.Status == "cancelled" {
		return providerID, resp.Status, ErrProviderRejected
	}
	return providerID, resp.Status, nil
}

// buildPaymentRequest goes through JSON so the request follows the provider
// schema regardless of the SDK struct layout.
func buildPaymentRequest(charge interfaces.PaymentCharge) (payment.Request, error) {
	payload := map[string]any{
		"transaction_amount": charge.Amount,
		"description":        fmt.Sprintf("Order %s", charge.OrderNumber),
		"external_reference": charge.OrderNumber,
		"installments":       1,
		"payment_method_id":  providerMethodID(charge.Card.Brand),
	}
	if charge.CardToken != "" {
		payload["token"] = charge.CardToken
	}
	if charge.PayerEmail != "" {
		payload["payer"] = map[string]any{"email": charge.PayerEmail, "type": "customer"}
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return payment.Request{}, err
	}
	var req payment.Request
	if err := json.Unmarshal(b, &req); err != nil {
		return payment.Request{}, err
	}
	return req, nil
}

func providerMethodID(brand string) string {
	switch brand {
	case "mastercard":
		return "master"
	case "":
		return "visa"
	}
	return brand
}

func classifyProviderError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "\"error\":\"unauthorized\""), strings.Contains(msg, "\"status\":401"):
		return fmt.Errorf("%w: %v", ErrProviderUnauthorized, err)
	case strings.Contains(msg, "\"error\":\"bad_request\""), strings.Contains(msg, "\"status\":400"):
		return fmt.Errorf("%w: %v", ErrProviderBadRequest, err)
	}
	return err
}
