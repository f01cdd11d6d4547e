package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/emiratefm/airtime-billing/internal/application/analytics"
	"github.com/emiratefm/airtime-billing/internal/application/auth"
	"github.com/emiratefm/airtime-billing/internal/application/billing"
	"github.com/emiratefm/airtime-billing/internal/application/usecase"
	"github.com/emiratefm/airtime-billing/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	ClientUC      *usecase.ClientUseCase
	RateUC        *usecase.RateUseCase
	StationUC     *usecase.StationUseCase
	CreateInvoice *billing.CreateInvoiceUseCase
	InvoiceUC     *billing.InvoiceUseCase
	PaymentUC     *billing.PaymentUseCase
	PDFUC         *billing.PDFUseCase
	DashboardUC   *analytics.DashboardUseCase
	JWTSecret     string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login is public, /me requires a token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Protected routes (Bearer token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Rate card
	rates := protected.Group("/rates")
	rateHandler := NewRateHandler(deps.RateUC)
	rates.Post("/", rateHandler.Create)
	rates.Get("/", rateHandler.List)
	rates.Get("/:id", rateHandler.GetByID)
	rates.Put("/:id", rateHandler.Update)
	rates.Delete("/:id", rateHandler.Delete)

	// Invoices
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.InvoiceUC, deps.PDFUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Post("/:id/cancel", invoiceHandler.Cancel)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Payments
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC, deps.PDFUC)
	payments.Post("/", paymentHandler.Record)
	payments.Post("/preview", paymentHandler.Preview)
	payments.Get("/", paymentHandler.List)
	payments.Get("/:id", paymentHandler.GetByID)
	payments.Get("/:id/receipt", paymentHandler.DownloadReceiptPDF)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.GetStats)

	// Station settings (updates admin-only)
	station := protected.Group("/station")
	stationHandler := NewStationHandler(deps.StationUC)
	station.Get("/", stationHandler.Get)
	station.Put("/", RequireRole(entity.RoleAdmin), stationHandler.Update)
}
