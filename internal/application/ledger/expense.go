package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/MiNegocio-api/internal/application/dashboard"
	"github.com/jhoicas/MiNegocio-api/internal/application/dto"
	"github.com/jhoicas/MiNegocio-api/internal/domain"
	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
	"github.com/jhoicas/MiNegocio-api/pkg/logger"
)

// ExpenseUseCase registra y elimina gastos pagados con la caja.
type ExpenseUseCase struct {
	txRunner TxRunner
	source   dashboard.Source
	cashID   int64
	log      *logger.Logger
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(txRunner TxRunner, source dashboard.Source, cashID int64, log *logger.Logger) *ExpenseUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ExpenseUseCase{txRunner: txRunner, source: source, cashID: cashID, log: log.Component("ledger.expense")}
}

// Record concepto y monto obligatorios; el monto no puede superar el dinero en caja.
func (uc *ExpenseUseCase) Record(ctx context.Context, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	concept := strings.TrimSpace(in.Concept)
	if concept == "" {
		return nil, fmt.Errorf("%w: el concepto es obligatorio", domain.ErrInvalidInput)
	}
	if in.Amount == nil || !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: el monto debe ser mayor a 0", domain.ErrInvalidInput)
	}
	if err := dto.ValidateMoney("amount", *in.Amount); err != nil {
		return nil, err
	}

	expense := &entity.Expense{Concept: concept, Amount: *in.Amount}
	err := uc.txRunner.Run(ctx, func(repos Repos) error {
		cash, err := repos.Cash.GetForUpdate(ctx, uc.cashID)
		if err != nil {
			return err
		}
		if !cash.Covers(expense.Amount) {
			return fmt.Errorf("%w: en caja %s", domain.ErrInsufficientFunds, cash.Amount.StringFixed(2))
		}
		if err := repos.Expenses.Create(ctx, expense); err != nil {
			return err
		}
		return repos.Cash.CompareAndSet(ctx, uc.cashID, cash.Amount, cash.Amount.Sub(expense.Amount))
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int64("gasto_id", expense.ID).Str("monto", expense.Amount.StringFixed(2)).Msg("gasto registrado")
	dashboard.ReloadAfterWrite(ctx, uc.source, uc.log, "gasto")

	out := dto.NewExpenseResponse(expense)
	return &out, nil
}

// Delete requiere confirmación explícita. Borra el gasto y devuelve su monto a la caja.
func (uc *ExpenseUseCase) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	var refunded *entity.Expense
	err := uc.txRunner.Run(ctx, func(repos Repos) error {
		expense, err := repos.Expenses.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if expense == nil {
			return domain.ErrNotFound
		}
		cash, err := repos.Cash.GetForUpdate(ctx, uc.cashID)
		if err != nil {
			return err
		}
		if err := repos.Expenses.Delete(ctx, id); err != nil {
			return err
		}
		refunded = expense
		return repos.Cash.CompareAndSet(ctx, uc.cashID, cash.Amount, cash.Amount.Add(expense.Amount))
	})
	if err != nil {
		return err
	}

	uc.log.Info().Int64("gasto_id", id).Str("reembolso", refunded.Amount.StringFixed(2)).Msg("gasto eliminado")
	dashboard.ReloadAfterWrite(ctx, uc.source, uc.log, "eliminar gasto")
	return nil
}

// List gastos cargados cuyo concepto contiene search.
func (uc *ExpenseUseCase) List(ctx context.Context, search string) (*dto.ExpenseListResponse, error) {
	snap, err := uc.source.Current(ctx)
	if err != nil {
		return nil, err
	}
	out := dto.NewExpenseList(dashboard.FilterExpenses(snap.Expenses, search))
	return &out, nil
}
