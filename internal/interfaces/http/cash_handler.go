package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/MiNegocio-api/internal/application/dto"
	"github.com/jhoicas/MiNegocio-api/internal/application/ledger"
)

// CashHandler dinero en caja (protegido).
type CashHandler struct {
	uc *ledger.CashUseCase
}

func NewCashHandler(uc *ledger.CashUseCase) *CashHandler {
	return &CashHandler{uc: uc}
}

// Balance godoc
// @Summary      Dinero en caja
// @Tags         cash
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CashResponse
// @Router       /api/cash [get]
func (h *CashHandler) Balance(c *fiber.Ctx) error {
	out, err := h.uc.Balance(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Ajuste manual de caja
// @Tags         cash
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CashAdjustmentRequest  true  "Monto con signo y concepto"
// @Success      200   {object}  dto.CashAdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/cash/adjustments [post]
func (h *CashHandler) Adjust(c *fiber.Ctx) error {
	var in dto.CashAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Adjust(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
