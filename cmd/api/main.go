package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	appanalytics "github.com/emiratefm/airtime-billing/internal/application/analytics"
	"github.com/emiratefm/airtime-billing/internal/application/auth"
	"github.com/emiratefm/airtime-billing/internal/application/billing"
	"github.com/emiratefm/airtime-billing/internal/application/usecase"
	infrapdf "github.com/emiratefm/airtime-billing/internal/infrastructure/pdf"
	"github.com/emiratefm/airtime-billing/internal/infrastructure/postgres"
	httpRouter "github.com/emiratefm/airtime-billing/internal/interfaces/http"
	"github.com/emiratefm/airtime-billing/pkg/config"
	"github.com/emiratefm/airtime-billing/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	defaultVATRate, err := decimal.NewFromString(cfg.Billing.DefaultVATRate)
	if err != nil {
		log.Fatal().Err(err).Str("value", cfg.Billing.DefaultVATRate).Msg("invalid BILLING_VAT_RATE")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	// Pool-scoped repositories; the billing writes get tx-scoped ones via TxRunner.
	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	rateRepo := postgres.NewRateRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	stationRepo := postgres.NewStationRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clientUC := usecase.NewClientUseCase(clientRepo)
	rateUC := usecase.NewRateUseCase(rateRepo)
	stationUC := usecase.NewStationUseCase(stationRepo)

	createInvoiceUC := billing.NewCreateInvoiceUseCase(txRunner, clientRepo, defaultVATRate)
	invoiceUC := billing.NewInvoiceUseCase(txRunner, invoiceRepo, paymentRepo, clientRepo)
	paymentUC := billing.NewPaymentUseCase(txRunner, invoiceRepo, paymentRepo, clientRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := billing.NewPDFUseCase(invoiceRepo, paymentRepo, clientRepo, stationRepo, pdfGenerator, pdfGenerator)

	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo, clientRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(fiberlogger.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Airtime Billing API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ClientUC:      clientUC,
		RateUC:        rateUC,
		StationUC:     stationUC,
		CreateInvoice: createInvoiceUC,
		InvoiceUC:     invoiceUC,
		PaymentUC:     paymentUC,
		PDFUC:         pdfUC,
		DashboardUC:   dashboardUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
