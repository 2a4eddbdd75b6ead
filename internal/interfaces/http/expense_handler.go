package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/MiNegocio-api/internal/application/dto"
	"github.com/jhoicas/MiNegocio-api/internal/application/ledger"
)

// ExpenseHandler gastos (protegido).
type ExpenseHandler struct {
	uc *ledger.ExpenseUseCase
}

func NewExpenseHandler(uc *ledger.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// List godoc
// @Summary      Listar gastos
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Filtro por concepto"
// @Success      200     {object}  dto.ExpenseListResponse
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("search"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar gasto
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseRequest  true  "Concepto y monto"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Record(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar gasto
// @Description  Requiere confirm=true. El monto regresa a la caja.
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        id       path   int   true  "ID del gasto"
// @Param        confirm  query  bool  true  "Confirmación explícita"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      428  {object}  dto.ErrorResponse
// @Router       /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.Context(), id, c.QueryBool("confirm", false)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "gasto eliminado"})
}
