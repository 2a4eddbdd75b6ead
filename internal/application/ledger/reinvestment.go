package ledger

import (
	"context"
	"fmt"

	"github.com/jhoicas/MiNegocio-api/internal/application/dashboard"
	"github.com/jhoicas/MiNegocio-api/internal/application/dto"
	"github.com/jhoicas/MiNegocio-api/internal/domain"
	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
	"github.com/jhoicas/MiNegocio-api/pkg/logger"
)

// ReinvestmentUseCase compras de reabastecimiento: suman stock y restan caja al precio de compra.
type ReinvestmentUseCase struct {
	txRunner TxRunner
	source   dashboard.Source
	cashID   int64
	log      *logger.Logger
}

// NewReinvestmentUseCase construye el caso de uso.
func NewReinvestmentUseCase(txRunner TxRunner, source dashboard.Source, cashID int64, log *logger.Logger) *ReinvestmentUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ReinvestmentUseCase{txRunner: txRunner, source: source, cashID: cashID, log: log.Component("ledger.reinvestment")}
}

// Record costo total = precio de compra * cantidad; se rechaza si supera el dinero en caja.
func (uc *ReinvestmentUseCase) Record(ctx context.Context, in dto.CreateReinvestmentRequest) (*dto.ReinvestmentResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}

	var reinv *entity.Reinvestment
	err := uc.txRunner.Run(ctx, func(repos Repos) error {
		product, err := repos.Products.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		cash, err := repos.Cash.GetForUpdate(ctx, uc.cashID)
		if err != nil {
			return err
		}
		reinv = entity.NewReinvestment(product, in.Quantity)
		if !cash.Covers(reinv.TotalCost) {
			return fmt.Errorf("%w: costo %s, en caja %s", domain.ErrInsufficientFunds,
				reinv.TotalCost.StringFixed(2), cash.Amount.StringFixed(2))
		}

		if err := repos.Reinvestments.Create(ctx, reinv); err != nil {
			return err
		}
		if err := repos.Products.SetQuantity(ctx, product.ID, product.Quantity, product.Quantity+in.Quantity); err != nil {
			return err
		}
		return repos.Cash.CompareAndSet(ctx, uc.cashID, cash.Amount, cash.Amount.Sub(reinv.TotalCost))
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int64("reinversion_id", reinv.ID).Int64("producto_id", in.ProductID).
		Int("cantidad", reinv.QuantityPurchased).Str("costo", reinv.TotalCost.StringFixed(2)).Msg("reinversión registrada")
	dashboard.ReloadAfterWrite(ctx, uc.source, uc.log, "reinversion")

	out := dto.NewReinvestmentResponse(reinv)
	return &out, nil
}

// List reinversiones cargadas, más recientes primero.
func (uc *ReinvestmentUseCase) List(ctx context.Context) (*dto.ReinvestmentListResponse, error) {
	snap, err := uc.source.Current(ctx)
	if err != nil {
		return nil, err
	}
	out := dto.NewReinvestmentList(snap.Reinvestments)
	return &out, nil
}
