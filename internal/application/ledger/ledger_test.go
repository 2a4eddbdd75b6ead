package ledger_test

import (
	"context"
	"errors"
	"sync"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MiNegocio-api/internal/application/dashboard"
	"github.com/jhoicas/MiNegocio-api/internal/application/dto"
	"github.com/jhoicas/MiNegocio-api/internal/application/ledger"
	"github.com/jhoicas/MiNegocio-api/internal/domain"
	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
	"github.com/jhoicas/MiNegocio-api/internal/infrastructure/memory"
	"github.com/jhoicas/MiNegocio-api/pkg/logger"
)

const cashID = entity.DefaultCashBalanceID

var errStore = errors.New("almacén no disponible")

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptrDec(s string) *decimal.Decimal { d := dec(s); return &d }

func newStore(t *testing.T, cash string) (*memory.Store, *dashboard.Loader) {
	t.Helper()
	store := memory.NewStore(memory.WithCashBalance(cashID, dec(cash)))
	loader := dashboard.NewLoader(dashboard.Repositories{
		Products:      store.Products(),
		Sales:         store.Sales(),
		Expenses:      store.Expenses(),
		Reinvestments: store.Reinvestments(),
		Cash:          store.Cash(),
	}, cashID, time.Now, logger.Nop())
	return store, loader
}

func addProduct(t *testing.T, store *memory.Store, name string, qty int, price, cost string) *entity.Product {
	t.Helper()
	p := &entity.Product{Name: name, Quantity: qty, SalePrice: dec(price), PurchaseCost: dec(cost)}
	require.NoError(t, store.Products().Create(context.Background(), p))
	return p
}

func cashAmount(t *testing.T, store *memory.Store) decimal.Decimal {
	t.Helper()
	c, err := store.Cash().Get(context.Background(), cashID)
	require.NoError(t, err)
	return c.Amount
}

func stock(t *testing.T, store *memory.Store, id int64) int {
	t.Helper()
	p, err := store.Products().GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Quantity
}

func countSales(t *testing.T, store *memory.Store) int {
	t.Helper()
	list, err := store.Sales().List(context.Background())
	require.NoError(t, err)
	return len(list)
}

// failingSource simula una recarga que falla después de una escritura confirmada.
type failingSource struct{ reloads int }

func (f *failingSource) Current(context.Context) (*dashboard.Snapshot, error) {
	return &dashboard.Snapshot{}, nil
}

func (f *failingSource) Reload(context.Context) error {
	f.reloads++
	return errStore
}

// ── Ventas ───────────────────────────────────────────────────────────────────

func TestSale_Record_ActualizaStockYCaja(t *testing.T) {
	store, loader := newStore(t, "100")
	p := addProduct(t, store, "Café", 10, "30", "18")
	uc := ledger.NewSaleUseCase(store, store.Products(), loader, cashID, logger.Nop())

	out, err := uc.Record(context.Background(), dto.CreateSaleRequest{ProductID: p.ID, Quantity: 4})
	require.NoError(t, err)

	assert.Equal(t, "Café", out.ProductName)
	assert.True(t, dec("30").Equal(out.UnitPrice))
	assert.True(t, dec("120").Equal(out.Total))
	assert.Equal(t, 6, stock(t, store, p.ID))
	assert.True(t, dec("220").Equal(cashAmount(t, store)))

	snap := loader.Loaded()
	require.NotNil(t, snap, "la escritura recarga la fotografía")
	assert.Len(t, snap.Sales, 1)
}

func TestSale_Record_StockInsuficienteNoEscribe(t *testing.T) {
	store, loader := newStore(t, "0")
	p := addProduct(t, store, "Pan", 2, "8", "5")
	uc := ledger.NewSaleUseCase(store, store.Products(), loader, cashID, logger.Nop())

	_, err := uc.Record(context.Background(), dto.CreateSaleRequest{ProductID: p.ID, Quantity: 3})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "disponibles 2")

	assert.Equal(t, 2, stock(t, store, p.ID))
	assert.Equal(t, 0, countSales(t, store))
	assert.True(t, cashAmount(t, store).IsZero())
}

func TestSale_Record_VenderTodoElStock(t *testing.T) {
	store, loader := newStore(t, "0")
	p := addProduct(t, store, "Pan", 2, "8", "5")
	uc := ledger.NewSaleUseCase(store, store.Products(), loader, cashID, logger.Nop())

	_, err := uc.Record(context.Background(), dto.CreateSaleRequest{ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 0, stock(t, store, p.ID))

	sellable, err := uc.SellableProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sellable.Items, "sin stock ya no se ofrece")
}

func TestSale_Record_FalloAlActualizarCajaRevierteTodo(t *testing.T) {
	store, loader := newStore(t, "50")
	p := addProduct(t, store, "Té", 5, "12", "7")
	uc := ledger.NewSaleUseCase(store, store.Products(), loader, cashID, logger.Nop())

	store.FailOn("dinero.cas", errStore)
	_, err := uc.Record(context.Background(), dto.CreateSaleRequest{ProductID: p.ID, Quantity: 1})
	require.ErrorIs(t, err, errStore)
	store.ClearFaults()

	assert.Equal(t, 5, stock(t, store, p.ID))
	assert.Equal(t, 0, countSales(t, store))
	assert.True(t, dec("50").Equal(cashAmount(t, store)))
}

func TestSale_Record_ValidaEntrada(t *testing.T) {
	store, loader := newStore(t, "0")
	uc := ledger.NewSaleUseCase(store, store.Products(), loader, cashID, logger.Nop())

	_, err := uc.Record(context.Background(), dto.CreateSaleRequest{ProductID: 0, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Record(context.Background(), dto.CreateSaleRequest{ProductID: 1, Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Record(context.Background(), dto.CreateSaleRequest{ProductID: 42, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSale_Record_RecargaFallidaNoAnulaLaVenta(t *testing.T) {
	store, _ := newStore(t, "0")
	p := addProduct(t, store, "Sal", 3, "10", "4")
	src := &failingSource{}
	uc := ledger.NewSaleUseCase(store, store.Products(), src, cashID, logger.Nop())

	_, err := uc.Record(context.Background(), dto.CreateSaleRequest{ProductID: p.ID, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, src.reloads)
	assert.Equal(t, 1, countSales(t, store))
}

func TestSale_Preview_NoEscribe(t *testing.T) {
	store, loader := newStore(t, "0")
	p := addProduct(t, store, "Café", 2, "30", "18")
	uc := ledger.NewSaleUseCase(store, store.Products(), loader, cashID, logger.Nop())

	out, err := uc.Preview(context.Background(), dto.CreateSaleRequest{ProductID: p.ID, Quantity: 5})
	require.NoError(t, err)
	assert.True(t, dec("150").Equal(out.Total))
	assert.False(t, out.Sufficient)
	assert.Equal(t, 2, out.Available)
	assert.Equal(t, 0, countSales(t, store))
}

// ── Gastos ───────────────────────────────────────────────────────────────────

func TestExpense_Record_DescuentaCaja(t *testing.T) {
	store, loader := newStore(t, "100")
	uc := ledger.NewExpenseUseCase(store, loader, cashID, logger.Nop())

	out, err := uc.Record(context.Background(), dto.CreateExpenseRequest{Concept: "  Luz ", Amount: ptrDec("35.50")})
	require.NoError(t, err)
	assert.Equal(t, "Luz", out.Concept)
	assert.True(t, dec("64.50").Equal(cashAmount(t, store)))
}

func TestExpense_Record_IgualAlSaldoSePermite(t *testing.T) {
	store, loader := newStore(t, "20")
	uc := ledger.NewExpenseUseCase(store, loader, cashID, logger.Nop())

	_, err := uc.Record(context.Background(), dto.CreateExpenseRequest{Concept: "Renta", Amount: ptrDec("20")})
	require.NoError(t, err)
	assert.True(t, cashAmount(t, store).IsZero())
}

func TestExpense_Record_FondosInsuficientesNoEscribe(t *testing.T) {
	store, loader := newStore(t, "20")
	uc := ledger.NewExpenseUseCase(store, loader, cashID, logger.Nop())

	_, err := uc.Record(context.Background(), dto.CreateExpenseRequest{Concept: "Renta", Amount: ptrDec("20.01")})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	list, err := store.Expenses().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.True(t, dec("20").Equal(cashAmount(t, store)))
}

func TestExpense_Record_ValidaEntrada(t *testing.T) {
	store, loader := newStore(t, "20")
	uc := ledger.NewExpenseUseCase(store, loader, cashID, logger.Nop())

	_, err := uc.Record(context.Background(), dto.CreateExpenseRequest{Concept: "", Amount: ptrDec("1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Record(context.Background(), dto.CreateExpenseRequest{Concept: "Agua"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Record(context.Background(), dto.CreateExpenseRequest{Concept: "Agua", Amount: ptrDec("0")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Record(context.Background(), dto.CreateExpenseRequest{Concept: strings.Repeat("x", 201), Amount: ptrDec("1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExpense_Record_MasDeDosDecimalesNoEscribe(t *testing.T) {
	store, loader := newStore(t, "100")
	uc := ledger.NewExpenseUseCase(store, loader, cashID, logger.Nop())

	_, err := uc.Record(context.Background(), dto.CreateExpenseRequest{Concept: "Luz", Amount: ptrDec("10.005")})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "amount")

	list, err := store.Expenses().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.True(t, dec("100").Equal(cashAmount(t, store)))

	// Ceros a la derecha no cuentan como decimales extra.
	_, err = uc.Record(context.Background(), dto.CreateExpenseRequest{Concept: "Luz", Amount: ptrDec("10.0100")})
	require.NoError(t, err)
	assert.True(t, dec("89.99").Equal(cashAmount(t, store)))
}

func TestExpense_Delete_ReembolsaYPideConfirmacion(t *testing.T) {
	store, loader := newStore(t, "100")
	uc := ledger.NewExpenseUseCase(store, loader, cashID, logger.Nop())
	out, err := uc.Record(context.Background(), dto.CreateExpenseRequest{Concept: "Gas", Amount: ptrDec("40")})
	require.NoError(t, err)

	err = uc.Delete(context.Background(), out.ID, false)
	require.ErrorIs(t, err, domain.ErrConfirmationRequired)
	assert.True(t, dec("60").Equal(cashAmount(t, store)))

	require.NoError(t, uc.Delete(context.Background(), out.ID, true))
	assert.True(t, dec("100").Equal(cashAmount(t, store)))

	assert.ErrorIs(t, uc.Delete(context.Background(), out.ID, true), domain.ErrNotFound)
}

func TestExpense_Delete_FalloRevierteElBorrado(t *testing.T) {
	store, loader := newStore(t, "100")
	uc := ledger.NewExpenseUseCase(store, loader, cashID, logger.Nop())
	out, err := uc.Record(context.Background(), dto.CreateExpenseRequest{Concept: "Gas", Amount: ptrDec("40")})
	require.NoError(t, err)

	store.FailOn("dinero.cas", errStore)
	require.ErrorIs(t, uc.Delete(context.Background(), out.ID, true), errStore)
	store.ClearFaults()

	e, err := store.Expenses().GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.NotNil(t, e, "el gasto sigue registrado")
	assert.True(t, dec("60").Equal(cashAmount(t, store)))
}

// ── Reinversiones ────────────────────────────────────────────────────────────

func TestReinvestment_Record_SumaStockYDescuentaCaja(t *testing.T) {
	store, loader := newStore(t, "100")
	p := addProduct(t, store, "Arroz", 3, "20", "12.50")
	uc := ledger.NewReinvestmentUseCase(store, loader, cashID, logger.Nop())

	out, err := uc.Record(context.Background(), dto.CreateReinvestmentRequest{ProductID: p.ID, Quantity: 4})
	require.NoError(t, err)
	assert.True(t, dec("50").Equal(out.TotalCost))
	assert.True(t, dec("12.50").Equal(out.UnitCost))
	assert.Equal(t, 7, stock(t, store, p.ID))
	assert.True(t, dec("50").Equal(cashAmount(t, store)))
}

func TestReinvestment_Record_FondosInsuficientesNoEscribe(t *testing.T) {
	store, loader := newStore(t, "10")
	p := addProduct(t, store, "Arroz", 3, "20", "12.50")
	uc := ledger.NewReinvestmentUseCase(store, loader, cashID, logger.Nop())

	_, err := uc.Record(context.Background(), dto.CreateReinvestmentRequest{ProductID: p.ID, Quantity: 1})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, 3, stock(t, store, p.ID))
	assert.True(t, dec("10").Equal(cashAmount(t, store)))
}

func TestReinvestment_Record_FalloAlInsertarRevierte(t *testing.T) {
	store, loader := newStore(t, "100")
	p := addProduct(t, store, "Arroz", 3, "20", "10")
	uc := ledger.NewReinvestmentUseCase(store, loader, cashID, logger.Nop())

	store.FailOn("productos.cas", errStore)
	_, err := uc.Record(context.Background(), dto.CreateReinvestmentRequest{ProductID: p.ID, Quantity: 2})
	require.ErrorIs(t, err, errStore)
	store.ClearFaults()

	list, err := store.Reinvestments().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.True(t, dec("100").Equal(cashAmount(t, store)))
}

// ── Caja ─────────────────────────────────────────────────────────────────────

func TestCash_Adjust(t *testing.T) {
	store, loader := newStore(t, "10")
	uc := ledger.NewCashUseCase(store, store.Cash(), loader, cashID, logger.Nop())

	_, err := uc.Adjust(context.Background(), dto.CashAdjustmentRequest{Amount: ptrDec("-10.01"), Concept: "Retiro"})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	_, err = uc.Adjust(context.Background(), dto.CashAdjustmentRequest{Amount: ptrDec("0"), Concept: "Nada"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Adjust(context.Background(), dto.CashAdjustmentRequest{Amount: ptrDec("5"), Concept: " "})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Adjust(context.Background(), dto.CashAdjustmentRequest{Amount: ptrDec("0.0001"), Concept: "Redondeo"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, dec("10").Equal(cashAmount(t, store)))

	out, err := uc.Adjust(context.Background(), dto.CashAdjustmentRequest{Amount: ptrDec("-10"), Concept: "Retiro"})
	require.NoError(t, err)
	assert.True(t, out.Balance.IsZero())

	bal, err := uc.Balance(context.Background())
	require.NoError(t, err)
	assert.True(t, bal.Amount.IsZero())
}

func TestCash_Balance_LeeElAlmacen(t *testing.T) {
	store, loader := newStore(t, "75.25")
	uc := ledger.NewCashUseCase(store, store.Cash(), loader, cashID, logger.Nop())

	out, err := uc.Balance(context.Background())
	require.NoError(t, err)
	assert.True(t, dec("75.25").Equal(out.Amount))

	store.FailOn("dinero.get", errStore)
	_, err = uc.Balance(context.Background())
	assert.ErrorIs(t, err, errStore)
}

// ── Concurrencia ─────────────────────────────────────────────────────────────

func TestSale_Record_ConcurrentesNoDejanStockNegativo(t *testing.T) {
	const buyers = 12
	store, loader := newStore(t, "100")
	p := addProduct(t, store, "Pan", 5, "8", "5")
	uc := ledger.NewSaleUseCase(store, store.Products(), loader, cashID, logger.Nop())

	errs := make([]error, buyers)
	var wg sync.WaitGroup
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Record(context.Background(), dto.CreateSaleRequest{ProductID: p.ID, Quantity: 1})
		}(i)
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	}
	assert.Equal(t, 5, ok)
	assert.Equal(t, 0, stock(t, store, p.ID))
	assert.Equal(t, 5, countSales(t, store))
	assert.True(t, dec("140").Equal(cashAmount(t, store)), "100 + 5*8, obtenido %s", cashAmount(t, store))
}

func TestLedger_OperacionesConcurrentesCuadranLaCaja(t *testing.T) {
	const rounds = 20
	ctx := context.Background()
	store, loader := newStore(t, "50")
	p := addProduct(t, store, "Leche", 3, "25", "20")
	sales := ledger.NewSaleUseCase(store, store.Products(), loader, cashID, logger.Nop())
	reinvestments := ledger.NewReinvestmentUseCase(store, loader, cashID, logger.Nop())
	expenses := ledger.NewExpenseUseCase(store, loader, cashID, logger.Nop())

	var wg sync.WaitGroup
	for i := 0; i < rounds; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_, _ = sales.Record(ctx, dto.CreateSaleRequest{ProductID: p.ID, Quantity: 2})
		}()
		go func() {
			defer wg.Done()
			_, _ = reinvestments.Record(ctx, dto.CreateReinvestmentRequest{ProductID: p.ID, Quantity: 1})
		}()
		go func() {
			defer wg.Done()
			_, _ = expenses.Record(ctx, dto.CreateExpenseRequest{Concept: "Bolsas", Amount: ptrDec("7.25")})
		}()
	}
	wg.Wait()

	saleList, err := store.Sales().List(ctx)
	require.NoError(t, err)
	reinvList, err := store.Reinvestments().List(ctx)
	require.NoError(t, err)
	expenseList, err := store.Expenses().List(ctx)
	require.NoError(t, err)

	want := dec("50")
	sold, bought := 0, 0
	for _, s := range saleList {
		want = want.Add(s.Total)
		sold += s.Quantity
	}
	for _, r := range reinvList {
		want = want.Sub(r.TotalCost)
		bought += r.QuantityPurchased
	}
	for _, e := range expenseList {
		want = want.Sub(e.Amount)
	}

	got := cashAmount(t, store)
	assert.True(t, want.Equal(got), "caja esperada %s, obtenida %s", want, got)
	assert.False(t, got.IsNegative())

	q := stock(t, store, p.ID)
	assert.GreaterOrEqual(t, q, 0)
	assert.Equal(t, 3-sold+bought, q)
}
