// @title           Mi Negocio API
// @version         1.0
// @description     Tablero de una tienda: inventario, ventas, gastos, reinversiones, dinero en caja y corte de caja.
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in              header
// @name            Authorization
// @description     Escriba "Bearer" seguido de un espacio y el token JWT.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	_ "github.com/jhoicas/MiNegocio-api/docs"
	"github.com/jhoicas/MiNegocio-api/internal/application/auth"
	"github.com/jhoicas/MiNegocio-api/internal/application/dashboard"
	"github.com/jhoicas/MiNegocio-api/internal/application/ledger"
	"github.com/jhoicas/MiNegocio-api/internal/application/report"
	"github.com/jhoicas/MiNegocio-api/internal/application/usecase"
	"github.com/jhoicas/MiNegocio-api/internal/domain/repository"
	"github.com/jhoicas/MiNegocio-api/internal/infrastructure/excel"
	"github.com/jhoicas/MiNegocio-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/MiNegocio-api/internal/infrastructure/pdf"
	"github.com/jhoicas/MiNegocio-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/MiNegocio-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/MiNegocio-api/internal/interfaces/http"
	"github.com/jhoicas/MiNegocio-api/pkg/config"
	"github.com/jhoicas/MiNegocio-api/pkg/logger"
)

// backend repositorios de un driver de almacenamiento.
type backend struct {
	products      repository.ProductRepository
	sales         repository.SaleRepository
	expenses      repository.ExpenseRepository
	reinvestments repository.ReinvestmentRepository
	cash          repository.CashRepository
	users         repository.UserRepository
	tx            ledger.TxRunner
	close         func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	be, err := openBackend(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Store.Driver).Msg("abrir almacén")
	}
	defer be.close()

	sessions, closeSessions, err := openSessions(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer closeSessions()

	loc := cfg.Business.Location()
	now := func() time.Time { return time.Now().In(loc) }
	cashID := cfg.Business.CashBalanceID

	loader := dashboard.NewLoader(dashboard.Repositories{
		Products:      be.products,
		Sales:         be.sales,
		Expenses:      be.expenses,
		Reinvestments: be.reinvestments,
		Cash:          be.cash,
	}, cashID, now, log)
	// La primera carga puede fallar: la API arranca igual y se reintenta en la siguiente lectura.
	if err := loader.Reload(ctx); err != nil {
		log.Warn().Err(err).Msg("carga inicial del tablero")
	}

	viewUC := dashboard.NewViewUseCase(loader, dashboard.ViewOptions{
		LowStockThreshold: cfg.Business.LowStockThreshold,
		TopSellers:        cfg.Business.TopSellers,
		RecentSales:       cfg.Business.RecentSales,
	}, now)

	authUC := auth.NewAuthUseCase(be.users, sessions, auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.TTL(),
		Issuer: cfg.JWT.Issuer,
	}, log)
	if cfg.Store.Driver == config.StoreDriverMemory && cfg.Store.SeedAdminEmail != "" {
		if _, err := authUC.CreateUser(ctx, cfg.Store.SeedAdminEmail, cfg.Store.SeedAdminPassword, ""); err != nil {
			log.Fatal().Err(err).Msg("crear cuenta inicial")
		}
	}

	app, err := httpRouter.NewApp(cfg.App.Name, log, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      usecase.NewProductUseCase(be.products, loader, log),
		SaleUC:         ledger.NewSaleUseCase(be.tx, be.products, loader, cashID, log),
		ExpenseUC:      ledger.NewExpenseUseCase(be.tx, loader, cashID, log),
		ReinvestmentUC: ledger.NewReinvestmentUseCase(be.tx, loader, cashID, log),
		CashUC:         ledger.NewCashUseCase(be.tx, be.cash, loader, cashID, log),
		ViewUC:         viewUC,
		ReportUC:       report.NewReportUseCase(viewUC, infrapdf.NewMarotoPDFGenerator(), excel.NewWorkbookGenerator(), cfg.App.Name),
		LoginRate:      cfg.RateLimit.Login,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("configurar rutas")
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Mi Negocio API",
	}))

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func openBackend(ctx context.Context, cfg *config.Config, log *logger.Logger) (*backend, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		store := memory.NewStore(memory.WithCashBalance(cfg.Business.CashBalanceID, cfg.Business.SeedCash))
		log.Warn().Msg("driver memory: los datos se pierden al reiniciar")
		return &backend{
			products:      store.Products(),
			sales:         store.Sales(),
			expenses:      store.Expenses(),
			reinvestments: store.Reinvestments(),
			cash:          store.Cash(),
			users:         store.Users(),
			tx:            store,
			close:         func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return &backend{
		products:      postgres.NewProductRepository(pool),
		sales:         postgres.NewSaleRepository(pool),
		expenses:      postgres.NewExpenseRepository(pool),
		reinvestments: postgres.NewReinvestmentRepository(pool),
		cash:          postgres.NewCashRepository(pool),
		users:         postgres.NewUserRepository(pool),
		tx:            postgres.NewTxRunner(pool),
		close:         pool.Close,
	}, nil
}

// openSessions Redis si REDIS_ADDR está definido; si no, sesiones en memoria del proceso.
func openSessions(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.SessionStore, func(), error) {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("sesiones en memoria del proceso")
		return memory.NewSessionStore(), func() {}, nil
	}
	client, err := infraredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	return infraredis.NewSessionStore(client), func() { _ = client.Close() }, nil
}
