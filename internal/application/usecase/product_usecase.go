package usecase

import (
	"fmt"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para el catálogo. El stock solo se fija al
// crear; después lo mutan ventas y ajustes, nunca el CRUD.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create da de alta un producto con su stock inicial.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: nombre de producto vacío", domain.ErrInvalidInput)
	}
	if in.PurchasePrice.IsNegative() || in.SellingPrice.IsNegative() {
		return nil, fmt.Errorf("%w: precio negativo", domain.ErrInvalidInput)
	}
	if in.InitialStock < 0 {
		return nil, fmt.Errorf("%w: stock inicial negativo", domain.ErrInvalidInput)
	}
	product := &entity.Product{
		Name:            in.Name,
		PurchasePrice:   in.PurchasePrice,
		SellingPrice:    in.SellingPrice,
		Barcode:         in.Barcode,
		QuantityInStock: in.InitialStock,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update edita los datos de catálogo de un producto. No toca el stock.
func (uc *ProductUseCase) Update(in dto.UpdateProductRequest) (*entity.Product, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: nombre de producto vacío", domain.ErrInvalidInput)
	}
	product, err := uc.repo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = in.Name
	product.PurchasePrice = in.PurchasePrice
	product.SellingPrice = in.SellingPrice
	product.Barcode = in.Barcode
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto. ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List devuelve el catálogo, más recientes primero.
func (uc *ProductUseCase) List() ([]*entity.Product, error) {
	return uc.repo.List()
}

// Delete elimina un producto del catálogo. El kardex y las ventas que lo
// referencian se conservan: sus snapshots de nombre y precio siguen siendo
// válidos.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
