package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/emiratefm/airtime-billing/internal/application/dto"
	"github.com/emiratefm/airtime-billing/internal/application/usecase"
)

// RateHandler handles HTTP requests for the rate card (protected).
type RateHandler struct {
	uc *usecase.RateUseCase
}

// NewRateHandler builds the handler.
func NewRateHandler(uc *usecase.RateUseCase) *RateHandler {
	return &RateHandler{uc: uc}
}

// Create godoc
// @Summary      Create rate
// @Tags         rates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRateRequest  true  "Rate data"
// @Success      201   {object}  dto.RateResponse
// @Router       /api/rates [post]
func (h *RateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get rate by ID
// @Tags         rates
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Rate ID"
// @Success      200  {object}  dto.RateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rates/{id} [get]
func (h *RateHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List rates
// @Tags         rates
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "Filter by category"
// @Param        limit     query  int     false  "Limit"   default(20)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200       {array}  dto.RateResponse
// @Router       /api/rates [get]
func (h *RateHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.Query("category"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update rate
// @Tags         rates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Rate ID"
// @Param        body  body  dto.UpdateRateRequest  true  "Fields to update"
// @Success      200   {object}  dto.RateResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/rates/{id} [put]
func (h *RateHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete rate
// @Tags         rates
// @Security     Bearer
// @Param        id  path  string  true  "Rate ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rates/{id} [delete]
func (h *RateHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
