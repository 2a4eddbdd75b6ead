package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MiNegocio-api/internal/application/auth"
	"github.com/jhoicas/MiNegocio-api/internal/application/dashboard"
	"github.com/jhoicas/MiNegocio-api/internal/application/dto"
	"github.com/jhoicas/MiNegocio-api/internal/application/ledger"
	"github.com/jhoicas/MiNegocio-api/internal/application/report"
	"github.com/jhoicas/MiNegocio-api/internal/application/usecase"
	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
	"github.com/jhoicas/MiNegocio-api/internal/infrastructure/excel"
	"github.com/jhoicas/MiNegocio-api/internal/infrastructure/memory"
	"github.com/jhoicas/MiNegocio-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/MiNegocio-api/internal/interfaces/http"
	"github.com/jhoicas/MiNegocio-api/pkg/logger"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "mi-negocio-test"
	testEmail     = "duena@tienda.mx"
	testPassword  = "contraseña-segura"
)

// testEnv aplicación completa sobre el almacén en memoria.
type testEnv struct {
	app   *fiber.App
	store *memory.Store
}

func newTestEnv(t *testing.T, seedCash string, loginRate string) *testEnv {
	t.Helper()
	log := logger.Nop()
	store := memory.NewStore(memory.WithCashBalance(entity.DefaultCashBalanceID, decimal.RequireFromString(seedCash)))

	loader := dashboard.NewLoader(dashboard.Repositories{
		Products:      store.Products(),
		Sales:         store.Sales(),
		Expenses:      store.Expenses(),
		Reinvestments: store.Reinvestments(),
		Cash:          store.Cash(),
	}, entity.DefaultCashBalanceID, time.Now, log)
	view := dashboard.NewViewUseCase(loader, dashboard.ViewOptions{}, time.Now)

	authUC := auth.NewAuthUseCase(store.Users(), memory.NewSessionStore(), auth.JWTConfig{
		Secret: testJWTSecret, TTL: time.Hour, Issuer: testIssuer,
	}, log)
	_, err := authUC.CreateUser(context.Background(), testEmail, testPassword, "Dueña")
	require.NoError(t, err)

	if loginRate == "" {
		loginRate = "100-M"
	}
	app, err := apphttp.NewApp("mi-negocio-test", log, apphttp.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      usecase.NewProductUseCase(store.Products(), loader, log),
		SaleUC:         ledger.NewSaleUseCase(store, store.Products(), loader, entity.DefaultCashBalanceID, log),
		ExpenseUC:      ledger.NewExpenseUseCase(store, loader, entity.DefaultCashBalanceID, log),
		ReinvestmentUC: ledger.NewReinvestmentUseCase(store, loader, entity.DefaultCashBalanceID, log),
		CashUC:         ledger.NewCashUseCase(store, store.Cash(), loader, entity.DefaultCashBalanceID, log),
		ViewUC:         view,
		ReportUC:       report.NewReportUseCase(view, pdf.NewMarotoPDFGenerator(), excel.NewWorkbookGenerator(), "Mi Negocio"),
		LoginRate:      loginRate,
	})
	require.NoError(t, err)
	return &testEnv{app: app, store: store}
}

// do lanza la petición; body se serializa a JSON si no es nil.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: testEmail, Password: testPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	decode(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var out dto.ErrorResponse
	decode(t, resp, &out)
	return out.Code
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptrDec(s string) *decimal.Decimal { d := dec(s); return &d }

func ptrInt(n int) *int { return &n }

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
