package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"grocery-be/internal/analytics"
	"grocery-be/internal/api"
	"grocery-be/internal/auth"
	"grocery-be/internal/cart"
	"grocery-be/internal/category"
	"grocery-be/internal/config"
	"grocery-be/internal/db"
	"grocery-be/internal/integration/courier"
	"grocery-be/internal/integration/fraudcheck"
	"grocery-be/internal/integration/whatsapp"
	"grocery-be/internal/logger"
	"grocery-be/internal/menu"
	"grocery-be/internal/metrics"
	"grocery-be/internal/middleware"
	"grocery-be/internal/module"
	"grocery-be/internal/order"
	"grocery-be/internal/product"
	"grocery-be/internal/review"
	"grocery-be/internal/settings"
	"grocery-be/internal/tracking"
	"grocery-be/internal/transaction"
	"grocery-be/internal/transport"
	"grocery-be/internal/upload"

	"go.uber.org/zap"
)

var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func main() {
	if err := run(); err != nil {
		logger.L().Error("server stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger.Init(cfg.AppEnv, cfg.LogLevel)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	// stops background work started by newServer once the server returns
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := newServer(ctx, cfg, database)

	logger.L().Info("server starting",
		zap.String("port", cfg.AppPort),
		zap.String("env", cfg.AppEnv),
	)
	return startServerFunc(":"+cfg.AppPort, srv)
}

// newServer wires every repository and service into the HTTP handler.
// Background goroutines it starts exit when ctx is done.
func newServer(ctx context.Context, cfg *config.Config, database *sql.DB) http.Handler {
	moduleSvc := module.NewService(module.NewRepository(database))
	settingsSvc := settings.NewService(settings.NewRepository(database))
	productSvc := product.NewService(product.NewRepository(database))
	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, productSvc)

	whatsappSvc := whatsapp.NewService(whatsapp.NewClient(cfg.WhatsAppBaseURL, settingsSvc), moduleSvc)
	fraudSvc := fraudcheck.NewService(fraudcheck.NewClient(cfg.FraudCheckBaseURL, settingsSvc), moduleSvc)

	orderSvc := order.NewService(
		order.NewRepository(database),
		productSvc,
		cartRepo,
		settingsSvc,
		order.Notifiers{whatsappSvc, fraudSvc},
	)
	courierSvc := courier.NewService(courier.NewClient(cfg.CourierBaseURL, settingsSvc), orderSvc, moduleSvc)

	h := &api.Handler{
		Auth:         auth.NewAuthenticator(cfg.AdminUsername, cfg.AdminPasswordHash, cfg.JWTSecret),
		Modules:      moduleSvc,
		Analytics:    analytics.NewService(analytics.NewRepository(database)),
		Categories:   category.NewService(category.NewRepository(database)),
		Products:     productSvc,
		Carts:        cartSvc,
		Orders:       orderSvc,
		Settings:     settingsSvc,
		Menus:        menu.NewService(menu.NewRepository(database)),
		Transactions: transaction.NewService(transaction.NewRepository(database)),
		Tracking:     tracking.NewService(tracking.NewRepository(database), moduleSvc),
		Reviews:      review.NewService(review.NewRepository(database)),
		Uploads:      upload.NewService(cfg.UploadDir, cfg.PublicBaseURL),
		Courier:      courierSvc,
		WhatsApp:     whatsappSvc,
		FraudCheck:   fraudSvc,

		CourierWebhook: courier.NewWebhookHandler(orderSvc, cfg.CourierWebhookToken),
		SecureCookies:  cfg.AppEnv == "production",
	}

	limiter := middleware.NewRateLimiter(cfg.InternalSecretKey)
	go limiter.RunCleanup(time.Minute, ctx.Done())

	return setupRouter(h.Routes(), cfg.UploadDir, limiter, cfg.CORSOrigin)
}

func setupRouter(apiRoutes http.Handler, uploadDir string, limiter *middleware.RateLimiter, corsOrigin string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		transport.WriteJSON(w, http.StatusOK, map[string]any{
			"status":  "OK",
			"metrics": metrics.Default.Snapshot(),
		})
	})
	mux.Handle("GET "+upload.PublicDir, http.StripPrefix(upload.PublicDir, http.FileServer(http.Dir(uploadDir))))
	mux.Handle("/api/", apiRoutes)

	return middleware.Chain(mux,
		logger.RequestIDMiddleware,
		middleware.LoggingMiddleware,
		middleware.CORS(corsOrigin),
		limiter.Middleware,
	)
}
