package payments

import (
	"context"
	"fmt"
	"strings"
	"time"

	"paintmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SimulatorGateway approves every charge without contacting a provider.
type SimulatorGateway struct {
	now func() time.Time
}

var _ interfaces.IPaymentGateway = (*SimulatorGateway)(nil)

func NewSimulatorGateway() *SimulatorGateway {
	return &SimulatorGateway{now: time.Now}
}

func (g *SimulatorGateway) Charge(ctx context.Context, charge interfaces.PaymentCharge) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	id := fmt.Sprintf("TXN-%d-%s", g.now().UnixMilli(), strings.ToUpper(uuid.NewString()[:8]))
	zap.L().Info("[payment][simulator] charge approved",
		zap.String("order_number", charge.OrderNumber),
		zap.String("transaction_id", id),
		zap.Float64("amount", charge.Amount))
	return id, "approved", nil
}
