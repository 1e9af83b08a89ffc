package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "paintmarket/docs"
	"paintmarket/internal/adapter/http/handlers"
	"paintmarket/internal/adapter/http/middleware"
	"paintmarket/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups the handlers mounted under /api.
type Handlers struct {
	Timeline   *handlers.TimelineHandler
	Discount   *handlers.DiscountHandler
	Cart       *handlers.CartHandler
	Order      *handlers.OrderHandler
	Budget     *handlers.BudgetHandler
	Contractor *handlers.ContractorHandler
}

// Run wires the application and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	app, err := build(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(app.handlers, app.tokens, cfg.ClientURL),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zap.L().Info("[http][server] listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		zap.L().Info("[http][server] shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// NewRouter builds the gin engine. Routes that need a caller are wrapped in
// middleware.RequireAuth.
func NewRouter(h Handlers, tokens middleware.TokenParser, clientURL string) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, clientURL)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	addPingRoutes(api)
	addMarketplaceRoutes(api, h, middleware.RequireAuth(tokens))
	return router
}

func setMiddlewares(router *gin.Engine, clientURL string) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		zap.L().Error("[http][server] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.CORS(clientURL))
}
