package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/MiNegocio-api/internal/application/report"
)

// ReportHandler descargas del corte de caja.
type ReportHandler struct {
	uc *report.ReportUseCase
}

func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// CashCutPDF godoc
// @Summary      Corte de caja en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/cash-cut.pdf [get]
func (h *ReportHandler) CashCutPDF(c *fiber.Ctx) error {
	r, err := h.uc.CashCutPDF(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return sendReport(c, r)
}

// CashCutWorkbook godoc
// @Summary      Corte de caja en Excel
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/reports/cash-cut.xlsx [get]
func (h *ReportHandler) CashCutWorkbook(c *fiber.Ctx) error {
	r, err := h.uc.CashCutWorkbook(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return sendReport(c, r)
}

func sendReport(c *fiber.Ctx, r *report.Report) error {
	c.Set(fiber.HeaderContentType, r.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, r.Filename))
	return c.Send(r.Body)
}
