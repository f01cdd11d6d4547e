package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/emiratefm/airtime-billing/internal/application/dto"
	"github.com/emiratefm/airtime-billing/internal/application/usecase"
)

// StationHandler handles the station-settings endpoints (protected; updates
// are admin-only via RequireRole in the router).
type StationHandler struct {
	uc *usecase.StationUseCase
}

// NewStationHandler builds the handler.
func NewStationHandler(uc *usecase.StationUseCase) *StationHandler {
	return &StationHandler{uc: uc}
}

// Get godoc
// @Summary      Station settings
// @Tags         station
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/station [get]
func (h *StationHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update station settings
// @Tags         station
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateStationRequest  true  "Fields to update; counters are read-only"
// @Success      200   {object}  dto.StationResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/station [put]
func (h *StationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
