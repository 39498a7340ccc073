// Package inventory implementa los ajustes manuales de inventario: entradas
// de mercancía y conteos físicos, siempre en pareja stock + kardex.
package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/application/ports"
	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/domain/repository"
	"github.com/jhoicas/pos-ventas/pkg/logger"
)

// AdjustUseCase registra ajustes de inventario de forma transaccional.
type AdjustUseCase struct {
	txRunner ports.TxRunner
	logRepo  repository.InventoryLogRepository
	log      *logger.Logger
}

// NewAdjustUseCase construye el caso de uso.
func NewAdjustUseCase(txRunner ports.TxRunner, logRepo repository.InventoryLogRepository, log *logger.Logger) *AdjustUseCase {
	return &AdjustUseCase{txRunner: txRunner, logRepo: logRepo, log: log}
}

// Adjust aplica un ajuste manual sobre un producto y devuelve el producto con
// su stock resultante.
//
// stock-in: la cantidad son unidades que entran; nuevo stock = actual + q.
// El signo de q es del caller: una cantidad negativa resta.
// stock-take: la cantidad es el stock contado (valor absoluto); el cambio
// registrado en el kardex es q - actual, positivo o negativo según el conteo
// encuentre más o menos mercancía que el sistema.
//
// La mutación de stock y su entrada STOCK_IN/STOCK_TAKE aterrizan en la misma
// transacción. ErrNotFound si el producto no existe.
func (uc *AdjustUseCase) Adjust(ctx context.Context, req dto.AdjustInventoryRequest) (*entity.Product, error) {
	if req.ProductID == "" {
		return nil, fmt.Errorf("%w: producto vacío", domain.ErrInvalidInput)
	}
	if req.Kind != dto.AdjustmentStockIn && req.Kind != dto.AdjustmentStockTake {
		return nil, fmt.Errorf("%w: tipo de ajuste desconocido %q", domain.ErrInvalidInput, req.Kind)
	}

	var adjusted *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.SaleRepository,
		logRepo repository.InventoryLogRepository,
	) error {
		product, err := productRepo.GetByID(req.ProductID)
		if err != nil {
			return fmt.Errorf("consultar producto %s: %w", req.ProductID, err)
		}
		if product == nil {
			return domain.ErrNotFound
		}

		var newQuantity, change int
		var logType string
		if req.Kind == dto.AdjustmentStockIn {
			newQuantity = product.QuantityInStock + req.Quantity
			change = req.Quantity
			logType = entity.LogTypeStockIn
		} else {
			newQuantity = req.Quantity
			change = newQuantity - product.QuantityInStock
			logType = entity.LogTypeStockTake
		}

		name := req.ProductName
		if name == "" {
			name = product.Name
		}
		entry := &entity.InventoryLog{
			ProductID:      product.ID,
			ProductName:    name,
			QuantityChange: change,
			NewQuantity:    newQuantity,
			Type:           logType,
		}
		if err := logRepo.Append(entry); err != nil {
			return fmt.Errorf("registrar kardex de %s: %w", product.ID, err)
		}
		adjusted, err = productRepo.SetStock(product.ID, newQuantity)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("product_id", adjusted.ID).
		Str("kind", req.Kind).
		Int("new_quantity", adjusted.QuantityInStock).
		Msg("ajuste de inventario aplicado")
	return adjusted, nil
}

// History devuelve el kardex completo, más recientes primero.
func (uc *AdjustUseCase) History(_ context.Context) ([]*entity.InventoryLog, error) {
	return uc.logRepo.List()
}

// HistoryByProduct devuelve el kardex de un producto, más recientes primero.
func (uc *AdjustUseCase) HistoryByProduct(_ context.Context, productID string) ([]*entity.InventoryLog, error) {
	return uc.logRepo.ListByProduct(productID)
}
