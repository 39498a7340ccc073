// Package sales implementa el ciclo de vida de las ventas: creación con
// descuento de stock, transiciones de estado con su efecto de inventario y
// generación de pedidos en lote.
package sales

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/application/ports"
	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/domain/repository"
	"github.com/jhoicas/pos-ventas/pkg/logger"
)

// SaleUseCase orquesta venta + stock + kardex de forma transaccional.
type SaleUseCase struct {
	txRunner     ports.TxRunner
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	employeeRepo repository.EmployeeRepository
	log          *logger.Logger
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner ports.TxRunner,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	employeeRepo repository.EmployeeRepository,
	log *logger.Logger,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:     txRunner,
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		log:          log,
	}
}

// CreateSale registra una venta y, en la misma transacción, descuenta stock y
// agrega una entrada SALE al kardex por cada item cuyo producto exista. Un
// item de producto ya eliminado se conserva en la venta pero no toca
// inventario.
//
// TotalAmount y FinalAmount se recalculan siempre: total = Σ precio×cantidad,
// final = total - descuento. No se verifica suficiencia de stock: la venta en
// mostrador manda y el stock puede quedar negativo hasta el próximo conteo.
func (uc *SaleUseCase) CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*entity.Sale, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: la venta no tiene items", domain.ErrInvalidInput)
	}
	for _, it := range req.Items {
		if it.ProductID == "" || it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item con producto vacío o cantidad no positiva", domain.ErrInvalidInput)
		}
		if it.Price.IsNegative() {
			return nil, fmt.Errorf("%w: precio negativo", domain.ErrInvalidInput)
		}
	}
	if req.Discount.IsNegative() {
		return nil, fmt.Errorf("%w: descuento negativo", domain.ErrInvalidInput)
	}
	status := req.Status
	if status == "" {
		status = entity.SaleStatusPending
	}
	if !entity.ValidSaleStatus(status) {
		return nil, fmt.Errorf("%w: estado de venta desconocido %q", domain.ErrInvalidInput, req.Status)
	}

	items := make([]entity.SaleItem, 0, len(req.Items))
	total := decimal.Zero
	for _, it := range req.Items {
		item := entity.SaleItem{
			ProductID:     it.ProductID,
			ProductName:   it.ProductName,
			Quantity:      it.Quantity,
			Price:         it.Price,
			PurchasePrice: it.PurchasePrice,
		}
		items = append(items, item)
		total = total.Add(item.Subtotal())
	}

	sale := &entity.Sale{
		Items:        items,
		TotalAmount:  total,
		Discount:     req.Discount,
		FinalAmount:  total.Sub(req.Discount),
		Status:       status,
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Notes:        req.Notes,
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		logRepo repository.InventoryLogRepository,
	) error {
		if err := saleRepo.Create(sale); err != nil {
			return fmt.Errorf("crear venta: %w", err)
		}
		for _, item := range sale.Items {
			product, err := productRepo.GetByID(item.ProductID)
			if err != nil {
				return fmt.Errorf("consultar producto %s: %w", item.ProductID, err)
			}
			if product == nil {
				// Producto eliminado del catálogo: el item queda en la venta
				// pero no genera movimiento de inventario.
				uc.log.Warn().
					Str("sale_id", sale.ID).
					Str("product_id", item.ProductID).
					Msg("item de venta sin producto en catálogo, se omite el descuento de stock")
				continue
			}
			newQuantity := product.QuantityInStock - item.Quantity
			if _, err := productRepo.SetStock(product.ID, newQuantity); err != nil {
				return fmt.Errorf("descontar stock de %s: %w", product.ID, err)
			}
			entry := &entity.InventoryLog{
				ProductID:      product.ID,
				ProductName:    item.ProductName,
				QuantityChange: -item.Quantity,
				NewQuantity:    newQuantity,
				Type:           entity.LogTypeSale,
				SaleID:         sale.ID,
			}
			if err := logRepo.Append(entry); err != nil {
				return fmt.Errorf("registrar kardex de %s: %w", product.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("sale_id", sale.ID).
		Int("items", len(sale.Items)).
		Str("final_amount", sale.FinalAmount.String()).
		Msg("venta registrada")
	return sale, nil
}

// UpdateSaleStatus cambia el estado de una venta aplicando el efecto de
// inventario de la transición: entrar a RETURNED reingresa cada item (entradas
// RETURN), salir de RETURNED los vuelve a descontar (entradas ADJUSTMENT) y
// Pending↔Completed no toca stock. Cambiar al estado actual es no-op y
// devuelve la venta sin modificar. Todo dentro de una sola transacción.
func (uc *SaleUseCase) UpdateSaleStatus(ctx context.Context, saleID, newStatus string) (*entity.Sale, error) {
	if !entity.ValidSaleStatus(newStatus) {
		return nil, fmt.Errorf("%w: estado de venta desconocido %q", domain.ErrInvalidInput, newStatus)
	}

	var updated *entity.Sale
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		logRepo repository.InventoryLogRepository,
	) error {
		sale, err := saleRepo.GetByID(saleID)
		if err != nil {
			return fmt.Errorf("consultar venta %s: %w", saleID, err)
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if sale.Status == newStatus {
			updated = sale
			return nil
		}

		switch entity.TransitionEffect(sale.Status, newStatus) {
		case entity.StockEffectRestock:
			if err := uc.applyItems(productRepo, logRepo, sale, +1, entity.LogTypeReturn); err != nil {
				return err
			}
		case entity.StockEffectRededuct:
			if err := uc.applyItems(productRepo, logRepo, sale, -1, entity.LogTypeAdjustment); err != nil {
				return err
			}
		}

		updated, err = saleRepo.UpdateStatus(saleID, newStatus)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("sale_id", saleID).
		Str("status", updated.Status).
		Msg("estado de venta actualizado")
	return updated, nil
}

// applyItems muta stock y kardex por cada item de la venta cuyo producto
// siga en catálogo. sign es +1 para reingreso y -1 para re-descuento.
func (uc *SaleUseCase) applyItems(
	productRepo repository.ProductRepository,
	logRepo repository.InventoryLogRepository,
	sale *entity.Sale,
	sign int,
	logType string,
) error {
	for _, item := range sale.Items {
		product, err := productRepo.GetByID(item.ProductID)
		if err != nil {
			return fmt.Errorf("consultar producto %s: %w", item.ProductID, err)
		}
		if product == nil {
			uc.log.Warn().
				Str("sale_id", sale.ID).
				Str("product_id", item.ProductID).
				Msg("item de venta sin producto en catálogo, se omite el movimiento de stock")
			continue
		}
		change := sign * item.Quantity
		newQuantity := product.QuantityInStock + change
		if _, err := productRepo.SetStock(product.ID, newQuantity); err != nil {
			return fmt.Errorf("actualizar stock de %s: %w", product.ID, err)
		}
		entry := &entity.InventoryLog{
			ProductID:      product.ID,
			ProductName:    item.ProductName,
			QuantityChange: change,
			NewQuantity:    newQuantity,
			Type:           logType,
			SaleID:         sale.ID,
		}
		if err := logRepo.Append(entry); err != nil {
			return fmt.Errorf("registrar kardex de %s: %w", product.ID, err)
		}
	}
	return nil
}

// GetSale devuelve una venta por ID. ErrNotFound si no existe.
func (uc *SaleUseCase) GetSale(_ context.Context, saleID string) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return sale, nil
}

// ListSales devuelve todas las ventas, más recientes primero.
func (uc *SaleUseCase) ListSales(_ context.Context) ([]*entity.Sale, error) {
	return uc.saleRepo.List()
}
