package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MiNegocio-api/internal/application/ledger"
	"github.com/jhoicas/MiNegocio-api/internal/domain"
	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
)

func TestStore_RunRestauraAnteError(t *testing.T) {
	s := NewStore(WithCashBalance(1, decimal.NewFromInt(10)))
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Run(ctx, func(repos ledger.Repos) error {
		require.NoError(t, repos.Products.Create(ctx, &entity.Product{Name: "A", Quantity: 1}))
		require.NoError(t, repos.Cash.CompareAndSet(ctx, 1, decimal.NewFromInt(10), decimal.NewFromInt(99)))
		return boom
	})
	require.ErrorIs(t, err, boom)

	list, err := s.Products().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	cash, err := s.Cash().Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(cash.Amount))
}

func TestStore_SetQuantityCompareAndSet(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	p := &entity.Product{Name: "A", Quantity: 5}
	require.NoError(t, s.Products().Create(ctx, p))

	assert.ErrorIs(t, s.Products().SetQuantity(ctx, p.ID, 4, 1), domain.ErrConflict)
	require.NoError(t, s.Products().SetQuantity(ctx, p.ID, 5, 1))
	assert.ErrorIs(t, s.Products().SetQuantity(ctx, 999, 0, 1), domain.ErrConflict)

	got, err := s.Products().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Quantity)
}

func TestStore_DevuelveCopias(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	p := &entity.Product{Name: "A", Quantity: 5}
	require.NoError(t, s.Products().Create(ctx, p))

	got, err := s.Products().GetByID(ctx, p.ID)
	require.NoError(t, err)
	got.Quantity = 100

	again, err := s.Products().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, again.Quantity)
}

func TestStore_VentasMasRecientesPrimero(t *testing.T) {
	clock := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	s := NewStore(WithClock(func() time.Time { return clock }))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Sales().Create(ctx, &entity.Sale{ProductName: string(rune('A' + i)), Quantity: 1}))
		clock = clock.Add(time.Minute)
	}
	list, err := s.Sales().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"C", "B", "A"}, []string{list[0].ProductName, list[1].ProductName, list[2].ProductName})
}

func TestStore_UpdateYDeleteInexistentes(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	assert.ErrorIs(t, s.Products().Update(ctx, &entity.Product{ID: 7, Name: "X"}), domain.ErrNotFound)
	assert.ErrorIs(t, s.Products().Delete(ctx, 7), domain.ErrNotFound)
	assert.ErrorIs(t, s.Expenses().Delete(ctx, 7), domain.ErrNotFound)
}

func TestStore_FallosInyectados(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	boom := errors.New("boom")
	s.FailOn("productos.list", boom)

	_, err := s.Products().List(ctx)
	assert.ErrorIs(t, err, boom)

	s.ClearFaults()
	_, err = s.Products().List(ctx)
	assert.NoError(t, err)
}

func TestSessionStore_Expira(t *testing.T) {
	now := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	s := NewSessionStore()
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "sid", "u-1", time.Hour))
	ok, err := s.Exists(ctx, "sid")
	require.NoError(t, err)
	assert.True(t, ok)

	now = now.Add(time.Hour)
	ok, err = s.Exists(ctx, "sid")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionStore_Delete(t *testing.T) {
	s := NewSessionStore()
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "sid", "u-1", time.Hour))
	require.NoError(t, s.Delete(ctx, "sid"))
	ok, err := s.Exists(ctx, "sid")
	require.NoError(t, err)
	assert.False(t, ok)
}
