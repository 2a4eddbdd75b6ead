package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/MiNegocio-api/internal/application/dashboard"
	"github.com/jhoicas/MiNegocio-api/internal/application/dto"
	"github.com/jhoicas/MiNegocio-api/internal/domain"
	"github.com/jhoicas/MiNegocio-api/internal/domain/repository"
	"github.com/jhoicas/MiNegocio-api/pkg/logger"
)

// CashUseCase consulta y ajustes manuales del dinero en caja.
type CashUseCase struct {
	txRunner TxRunner
	cashRepo repository.CashRepository
	source   dashboard.Source
	cashID   int64
	log      *logger.Logger
}

// NewCashUseCase construye el caso de uso.
func NewCashUseCase(txRunner TxRunner, cashRepo repository.CashRepository, source dashboard.Source, cashID int64, log *logger.Logger) *CashUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CashUseCase{txRunner: txRunner, cashRepo: cashRepo, source: source, cashID: cashID, log: log.Component("ledger.cash")}
}

// Balance saldo actual leído del almacén, no de la fotografía.
func (uc *CashUseCase) Balance(ctx context.Context) (*dto.CashResponse, error) {
	cash, err := uc.cashRepo.Get(ctx, uc.cashID)
	if err != nil {
		return nil, err
	}
	return &dto.CashResponse{Amount: cash.Amount}, nil
}

// Adjust suma un monto con signo al saldo. No se permite dejar la caja en negativo.
// El ajuste no tiene tabla propia: queda en el log con su concepto.
func (uc *CashUseCase) Adjust(ctx context.Context, in dto.CashAdjustmentRequest) (*dto.CashAdjustmentResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	concept := strings.TrimSpace(in.Concept)
	if concept == "" {
		return nil, fmt.Errorf("%w: el concepto es obligatorio", domain.ErrInvalidInput)
	}
	if in.Amount == nil || in.Amount.IsZero() {
		return nil, fmt.Errorf("%w: el monto no puede ser 0", domain.ErrInvalidInput)
	}
	if err := dto.ValidateMoney("amount", *in.Amount); err != nil {
		return nil, err
	}

	var previous, balance decimal.Decimal
	err := uc.txRunner.Run(ctx, func(repos Repos) error {
		cash, err := repos.Cash.GetForUpdate(ctx, uc.cashID)
		if err != nil {
			return err
		}
		next := cash.Amount.Add(*in.Amount)
		if next.IsNegative() {
			return fmt.Errorf("%w: en caja %s", domain.ErrInsufficientFunds, cash.Amount.StringFixed(2))
		}
		if err := repos.Cash.CompareAndSet(ctx, uc.cashID, cash.Amount, next); err != nil {
			return err
		}
		previous, balance = cash.Amount, next
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("concepto", concept).Str("monto", in.Amount.StringFixed(2)).
		Str("saldo", balance.StringFixed(2)).Msg("ajuste de caja")
	dashboard.ReloadAfterWrite(ctx, uc.source, uc.log, "ajuste de caja")

	return &dto.CashAdjustmentResponse{Concept: concept, Previous: previous, Amount: *in.Amount, Balance: balance}, nil
}
