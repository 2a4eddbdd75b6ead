package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/MiNegocio-api/internal/application/dashboard"
	"github.com/jhoicas/MiNegocio-api/internal/application/dto"
	"github.com/jhoicas/MiNegocio-api/internal/domain"
	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
	"github.com/jhoicas/MiNegocio-api/internal/domain/repository"
	"github.com/jhoicas/MiNegocio-api/pkg/logger"
)

// ProductUseCase alta, edición, baja y búsqueda de productos del inventario.
type ProductUseCase struct {
	repo   repository.ProductRepository
	source dashboard.Source
	log    *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, source dashboard.Source, log *logger.Logger) *ProductUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{repo: repo, source: source, log: log.Component("usecase.product")}
}

// Upsert con existingID edita ese producto (404 si no existe); sin él crea uno nuevo.
// Los cuatro campos son obligatorios en ambos casos.
func (uc *ProductUseCase) Upsert(ctx context.Context, in dto.ProductRequest, existingID *int64) (*dto.ProductResponse, error) {
	product, err := productFromRequest(in)
	if err != nil {
		return nil, err
	}

	if existingID != nil {
		product.ID = *existingID
		if err := uc.repo.Update(ctx, product); err != nil {
			return nil, err
		}
	} else if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	uc.log.Info().Int64("producto_id", product.ID).Bool("edicion", existingID != nil).Msg("producto guardado")
	dashboard.ReloadAfterWrite(ctx, uc.source, uc.log, "producto")

	out := dto.NewProductResponse(product)
	return &out, nil
}

func productFromRequest(in dto.ProductRequest) (*entity.Product, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	case in.Quantity == nil:
		return nil, fmt.Errorf("%w: la cantidad es obligatoria", domain.ErrInvalidInput)
	case in.SalePrice == nil:
		return nil, fmt.Errorf("%w: el precio de venta es obligatorio", domain.ErrInvalidInput)
	case in.PurchaseCost == nil:
		return nil, fmt.Errorf("%w: el precio de compra es obligatorio", domain.ErrInvalidInput)
	case *in.Quantity < 0:
		return nil, fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput)
	case in.SalePrice.IsNegative() || in.PurchaseCost.IsNegative():
		return nil, fmt.Errorf("%w: los precios no pueden ser negativos", domain.ErrInvalidInput)
	}
	if err := dto.ValidateMoney("sale_price", *in.SalePrice); err != nil {
		return nil, err
	}
	if err := dto.ValidateMoney("purchase_cost", *in.PurchaseCost); err != nil {
		return nil, err
	}
	return &entity.Product{
		Name:         name,
		Quantity:     *in.Quantity,
		SalePrice:    *in.SalePrice,
		PurchaseCost: *in.PurchaseCost,
	}, nil
}

// Delete requiere confirmación explícita. No borra ventas ni reinversiones: conservan su copia.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Int64("producto_id", id).Msg("producto eliminado")
	dashboard.ReloadAfterWrite(ctx, uc.source, uc.log, "eliminar producto")
	return nil
}

// List productos cargados cuyo nombre contiene search, por nombre ascendente.
func (uc *ProductUseCase) List(ctx context.Context, search string) (*dto.ProductListResponse, error) {
	snap, err := uc.source.Current(ctx)
	if err != nil {
		return nil, err
	}
	out := dto.NewProductList(dashboard.FilterProducts(snap.Products, search))
	return &out, nil
}
