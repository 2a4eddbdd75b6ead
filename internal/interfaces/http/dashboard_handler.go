package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/MiNegocio-api/internal/application/dashboard"
)

// DashboardHandler corte de caja, secciones y recarga de la vista.
type DashboardHandler struct {
	uc *dashboard.ViewUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.ViewUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// CashCut godoc
// @Summary      Corte de caja
// @Description  Ganancias, totales del día, más vendidos y stock bajo calculados sobre la última carga.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CashCutResponse
// @Router       /api/cash-cut [get]
func (h *DashboardHandler) CashCut(c *fiber.Ctx) error {
	out, err := h.uc.CashCut(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Section godoc
// @Summary      Datos de una sección del tablero
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        name  path  string  true  "inventario | ventas | gastos | reinversion | corte"
// @Success      200   {object}  dto.SectionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sections/{name} [get]
func (h *DashboardHandler) Section(c *fiber.Ctx) error {
	out, err := h.uc.Section(c.Context(), c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Reload godoc
// @Summary      Recargar datos desde el almacén
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReloadResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/reload [post]
func (h *DashboardHandler) Reload(c *fiber.Ctx) error {
	out, err := h.uc.Reload(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
