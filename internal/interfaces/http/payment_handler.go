package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/emiratefm/airtime-billing/internal/application/billing"
	"github.com/emiratefm/airtime-billing/internal/application/dto"
)

// PaymentHandler handles HTTP requests for payments (protected).
type PaymentHandler struct {
	paymentUC *billing.PaymentUseCase
	pdfUC     *billing.PDFUseCase
}

// NewPaymentHandler builds the handler.
func NewPaymentHandler(paymentUC *billing.PaymentUseCase, pdfUC *billing.PDFUseCase) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC, pdfUC: pdfUC}
}

// Record godoc
// @Summary      Record payment
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentRequest  true  "Payment data"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Overpayment or cancelled invoice"
// @Router       /api/payments [post]
func (h *PaymentHandler) Record(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.paymentUC.Record(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Preview godoc
// @Summary      Preview a payment against an invoice
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PreviewPaymentRequest  true  "Invoice and amount"
// @Success      200   {object}  dto.PaymentPreviewResponse
// @Failure      409   {object}  dto.ErrorResponse  "Overpayment"
// @Router       /api/payments/preview [post]
func (h *PaymentHandler) Preview(c *fiber.Ctx) error {
	var in dto.PreviewPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.paymentUC.Preview(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get payment by ID
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Payment ID"
// @Success      200  {object}  dto.PaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payments/{id} [get]
func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.paymentUC.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List payments
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        invoice_id  query  string  false  "Filter by invoice"
// @Param        limit       query  int     false  "Limit"   default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200         {array}  dto.PaymentResponse
// @Router       /api/payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.paymentUC.List(c.Query("invoice_id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DownloadReceiptPDF godoc
// @Summary      Download receipt PDF
// @Tags         payments
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "Payment ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payments/{id}/receipt [get]
func (h *PaymentHandler) DownloadReceiptPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadReceiptPDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
