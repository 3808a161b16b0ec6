package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glambook/config"
	"glambook/database"
	"glambook/database/repository"
	"glambook/handlers"
	"glambook/middleware"
	"glambook/routes"
	"glambook/services/booking"
	"glambook/services/payment"
	"glambook/services/pricing"
	"glambook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// openStore selects the booking store backend named by STORE_BACKEND. The
// returned cleanup func releases the backend's connection.
func openStore(ctx context.Context, logger *zap.Logger) (database.Store, func(), error) {
	switch config.AppConfig.StoreBackend {
	case "memory":
		logger.Warn("main: using in-memory store; bookings are lost on restart")
		return database.NewMemoryStore(), func() {}, nil
	case "mongo":
		client, err := database.ConnectMongo(ctx, config.AppConfig.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		store := database.NewMongoStore(client.Database(config.AppConfig.DatabaseName))
		return store, func() { _ = client.Disconnect(context.Background()) }, nil
	default:
		client := utils.GetCacheClient()
		return database.NewRedisStore(client), func() { _ = client.Close() }, nil
	}
}

func newPaymentProvider(logger *zap.Logger) payment.Provider {
	if config.AppConfig.StripeKey == "" {
		logger.Warn("main: STRIPE_KEY not set; checkout is disabled")
		return payment.Unconfigured{}
	}
	p, err := payment.NewStripeProvider(config.AppConfig.StripeKey, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize stripe: %v", err)
	}
	return p
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	store, closeStore, err := openStore(rootCtx, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open %s store: %v", config.AppConfig.StoreBackend, err)
	}
	defer closeStore()

	health := utils.NewHealthMonitor(store, 30*time.Second)
	health.Start(rootCtx)

	engine := pricing.NewEngine(pricing.DefaultPriceBook, logger)
	bookingService := booking.NewBookingService(
		engine,
		repository.NewStoreBookingRepo(store),
		newPaymentProvider(logger),
		booking.CheckoutConfig{
			Currency:   config.AppConfig.Currency,
			SuccessURL: config.AppConfig.StripeSuccessURL,
			CancelURL:  config.AppConfig.StripeCancelURL,
		},
		logger,
	)
	bookingHandler := handlers.NewBookingHandler(bookingService, engine, logger)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlers.NewHandlerBundle(bookingHandler, health))

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s (store=%s, price book %s)...",
		srv.Addr, config.AppConfig.StoreBackend, engine.PriceBook().Version)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
