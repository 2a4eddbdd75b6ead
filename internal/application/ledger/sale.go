package ledger

import (
	"context"
	"fmt"

	"github.com/jhoicas/MiNegocio-api/internal/application/dashboard"
	"github.com/jhoicas/MiNegocio-api/internal/application/dto"
	"github.com/jhoicas/MiNegocio-api/internal/domain"
	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
	"github.com/jhoicas/MiNegocio-api/internal/domain/repository"
	"github.com/jhoicas/MiNegocio-api/pkg/logger"
)

// SaleUseCase registra ventas: descuenta stock y suma el total a la caja.
type SaleUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	source      dashboard.Source
	cashID      int64
	log         *logger.Logger
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner TxRunner, productRepo repository.ProductRepository, source dashboard.Source, cashID int64, log *logger.Logger) *SaleUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SaleUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		source:      source,
		cashID:      cashID,
		log:         log.Component("ledger.sale"),
	}
}

// Record dentro de una transacción: bloquea el producto, valida stock, inserta la venta
// con la copia de nombre y precio, descuenta stock y suma el total a la caja.
func (uc *SaleUseCase) Record(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}

	var sale *entity.Sale
	err := uc.txRunner.Run(ctx, func(repos Repos) error {
		product, err := repos.Products.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if in.Quantity > product.Quantity {
			return fmt.Errorf("%w: disponibles %d", domain.ErrInsufficientStock, product.Quantity)
		}
		cash, err := repos.Cash.GetForUpdate(ctx, uc.cashID)
		if err != nil {
			return err
		}

		sale = entity.NewSale(product, in.Quantity)
		if err := repos.Sales.Create(ctx, sale); err != nil {
			return err
		}
		if err := repos.Products.SetQuantity(ctx, product.ID, product.Quantity, product.Quantity-in.Quantity); err != nil {
			return err
		}
		return repos.Cash.CompareAndSet(ctx, uc.cashID, cash.Amount, cash.Amount.Add(sale.Total))
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int64("venta_id", sale.ID).Int64("producto_id", sale.ProductID).
		Int("cantidad", sale.Quantity).Str("total", sale.Total.StringFixed(2)).Msg("venta registrada")
	dashboard.ReloadAfterWrite(ctx, uc.source, uc.log, "venta")

	out := dto.NewSaleResponse(sale)
	return &out, nil
}

// Preview calcula el total de la línea con el precio vigente sin escribir nada.
func (uc *SaleUseCase) Preview(ctx context.Context, in dto.CreateSaleRequest) (*dto.SalePreviewResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	line := entity.NewSale(product, in.Quantity)
	return &dto.SalePreviewResponse{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    in.Quantity,
		UnitPrice:   line.UnitPrice,
		Total:       line.Total,
		Available:   product.Quantity,
		Sufficient:  in.Quantity <= product.Quantity,
	}, nil
}

// SellableProducts productos con stock, los únicos que ofrece el formulario de venta.
func (uc *SaleUseCase) SellableProducts(ctx context.Context) (*dto.ProductListResponse, error) {
	snap, err := uc.source.Current(ctx)
	if err != nil {
		return nil, err
	}
	out := dto.NewProductList(dashboard.Sellable(snap.Products))
	return &out, nil
}

// List todas las ventas cargadas, más recientes primero.
func (uc *SaleUseCase) List(ctx context.Context) (*dto.SaleListResponse, error) {
	snap, err := uc.source.Current(ctx)
	if err != nil {
		return nil, err
	}
	out := dto.NewSaleList(snap.Sales)
	return &out, nil
}
