package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/MiNegocio-api/internal/application/auth"
	"github.com/jhoicas/MiNegocio-api/internal/application/dashboard"
	"github.com/jhoicas/MiNegocio-api/internal/application/ledger"
	"github.com/jhoicas/MiNegocio-api/internal/application/report"
	"github.com/jhoicas/MiNegocio-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProductUC      *usecase.ProductUseCase
	SaleUC         *ledger.SaleUseCase
	ExpenseUC      *ledger.ExpenseUseCase
	ReinvestmentUC *ledger.ReinvestmentUseCase
	CashUC         *ledger.CashUseCase
	ViewUC         *dashboard.ViewUseCase
	ReportUC       *report.ReportUseCase
	LoginRate      string // formato ulule/limiter, ej. "10-M"
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) error {
	loginLimit, err := RateLimit(deps.LoginRate)
	if err != nil {
		return err
	}
	requireAuth := AuthMiddleware(deps.AuthUC)

	api := app.Group("/api")

	// Auth: login público con límite por IP; logout y sesión con token.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", loginLimit, authHandler.Login)
	authGroup.Post("/logout", requireAuth, authHandler.Logout)
	authGroup.Get("/session", requireAuth, authHandler.Session)

	// Rutas protegidas (requieren Bearer Token)
	products := api.Group("/products", requireAuth)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	sales := api.Group("/sales", requireAuth)
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Get("/sellable", saleHandler.Sellable)
	sales.Post("/", saleHandler.Create)
	sales.Post("/preview", saleHandler.Preview)

	expenses := api.Group("/expenses", requireAuth)
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Get("/", expenseHandler.List)
	expenses.Post("/", expenseHandler.Create)
	expenses.Delete("/:id", expenseHandler.Delete)

	reinvestments := api.Group("/reinvestments", requireAuth)
	reinvestmentHandler := NewReinvestmentHandler(deps.ReinvestmentUC)
	reinvestments.Get("/", reinvestmentHandler.List)
	reinvestments.Post("/", reinvestmentHandler.Create)

	// Sin middleware de grupo: el prefijo /api/cash también cubriría /api/cash-cut.
	cashHandler := NewCashHandler(deps.CashUC)
	api.Get("/cash", requireAuth, cashHandler.Balance)
	api.Post("/cash/adjustments", requireAuth, cashHandler.Adjust)

	dashboardHandler := NewDashboardHandler(deps.ViewUC)
	api.Get("/cash-cut", requireAuth, dashboardHandler.CashCut)
	api.Get("/sections/:name", requireAuth, dashboardHandler.Section)
	api.Post("/dashboard/reload", requireAuth, dashboardHandler.Reload)

	reports := api.Group("/reports", requireAuth)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/cash-cut.pdf", reportHandler.CashCutPDF)
	reports.Get("/cash-cut.xlsx", reportHandler.CashCutWorkbook)

	return nil
}
