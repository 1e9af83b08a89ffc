package routes

import (
	"context"

	"paintmarket/internal/adapter/http/handlers"
	"paintmarket/internal/adapter/persistence/repository"
	"paintmarket/internal/infrastructure/auth"
	"paintmarket/internal/infrastructure/cache"
	"paintmarket/internal/infrastructure/config"
	"paintmarket/internal/infrastructure/database"
	"paintmarket/internal/infrastructure/payments"
	"paintmarket/internal/usecase"
	"paintmarket/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type application struct {
	handlers Handlers
	tokens   *auth.TokenService
	close    func()
}

func build(ctx context.Context, cfg *config.Config) (*application, error) {
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return nil, err
	}

	estimateRepo := repository.NewEstimateDynamoRepository(ddb)
	discountRepo := repository.NewDiscountDynamoRepository(ddb)
	cartRepo := repository.NewCartDynamoRepository(ddb)
	orderRepo := repository.NewOrderDynamoRepository(ddb)
	sequenceRepo := repository.NewSequenceDynamoRepository(ddb)
	contractorRepo := repository.NewContractorDynamoRepository(ddb)
	budgetRepo := repository.NewBudgetDynamoRepository(ddb)

	closeFn := func() {}
	var discountCache interfaces.IDiscountCache
	if cfg.RedisURL != "" {
		rdb, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			zap.L().Warn("[cache][redis] unavailable, serving discounts uncached", zap.Error(err))
		} else {
			discountCache = cache.NewDiscountCache(rdb, cfg.DiscountCacheTTL)
			closeFn = closeRedis(rdb)
		}
	}

	timelineUseCase := usecase.NewTimelineUseCase(estimateRepo, contractorRepo, discountRepo, discountCache, cartRepo)
	discountUseCase := usecase.NewDiscountUseCase(discountRepo, discountCache, contractorRepo)
	cartUseCase := usecase.NewCartUseCase(cartRepo, estimateRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, cartRepo, sequenceRepo, contractorRepo, paymentGateway(cfg), usecase.OrderOptions{
		TaxRate:      cfg.TaxRate,
		PaymentDelay: cfg.PaymentDelay,
	})
	contractorUseCase := usecase.NewContractorUseCase(contractorRepo)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo)

	return &application{
		handlers: Handlers{
			Timeline:   handlers.NewTimelineHandler(timelineUseCase),
			Discount:   handlers.NewDiscountHandler(discountUseCase),
			Cart:       handlers.NewCartHandler(cartUseCase),
			Order:      handlers.NewOrderHandler(orderUseCase),
			Budget:     handlers.NewBudgetHandler(budgetUseCase),
			Contractor: handlers.NewContractorHandler(contractorUseCase),
		},
		tokens: auth.NewTokenService(cfg.JWTSecret),
		close:  closeFn,
	}, nil
}

// paymentGateway returns nil when Mercado Pago is selected but not
// configured; payments then fail with a 503.
func paymentGateway(cfg *config.Config) interfaces.IPaymentGateway {
	switch cfg.PaymentGateway {
	case "mercadopago":
		gw, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoToken)
		if err != nil {
			zap.L().Warn("[payment][gateway] mercado pago gateway not configured", zap.Error(err))
			return nil
		}
		zap.L().Info("[payment][gateway] using mercado pago")
		return gw
	default:
		zap.L().Info("[payment][gateway] using simulator")
		return payments.NewSimulatorGateway()
	}
}

func closeRedis(rdb *redis.Client) func() {
	return func() {
		if err := rdb.Close(); err != nil {
			zap.L().Warn("[cache][redis] close failed", zap.Error(err))
		}
	}
}
