package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/MiNegocio-api/internal/application/dto"
	"github.com/jhoicas/MiNegocio-api/internal/application/ledger"
)

// ReinvestmentHandler compras de reabastecimiento (protegido).
type ReinvestmentHandler struct {
	uc *ledger.ReinvestmentUseCase
}

func NewReinvestmentHandler(uc *ledger.ReinvestmentUseCase) *ReinvestmentHandler {
	return &ReinvestmentHandler{uc: uc}
}

// List godoc
// @Summary      Listar reinversiones
// @Tags         reinvestments
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReinvestmentListResponse
// @Router       /api/reinvestments [get]
func (h *ReinvestmentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar reinversión
// @Tags         reinvestments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReinvestmentRequest  true  "Producto y cantidad comprada"
// @Success      201   {object}  dto.ReinvestmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/reinvestments [post]
func (h *ReinvestmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReinvestmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Record(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
