package sales

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
)

// CreateBulkOrders genera una venta PENDING idéntica por cada cliente de las
// listas emparejadas nombre/teléfono: un item del producto indicado al precio
// de catálogo actual, con la cantidad y el descuento por pedido dados.
//
// Pre-chequeos antes de crear nada: listas del mismo largo y no vacías,
// empleado y producto existentes, y stock suficiente para el total solicitado
// (cantidad × clientes); si no alcanza devuelve ErrInsufficientStock. Un
// cliente cuyo teléfono ya está registrado se reutiliza; de lo contrario la
// venta lleva solo el nombre capturado, sin crear el cliente.
func (uc *SaleUseCase) CreateBulkOrders(ctx context.Context, req dto.BulkOrderRequest) ([]*entity.Sale, error) {
	names := trimNonEmpty(req.CustomerNames)
	phones := trimNonEmpty(req.CustomerPhones)
	if len(names) == 0 || len(names) != len(phones) {
		return nil, fmt.Errorf("%w: listas de clientes vacías o de largo distinto", domain.ErrInvalidInput)
	}
	if req.QuantityPerOrder <= 0 {
		return nil, fmt.Errorf("%w: cantidad por pedido no positiva", domain.ErrInvalidInput)
	}
	if req.DiscountPerOrder.IsNegative() {
		return nil, fmt.Errorf("%w: descuento negativo", domain.ErrInvalidInput)
	}

	employee, err := uc.employeeRepo.GetByID(req.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("consultar empleado: %w", err)
	}
	if employee == nil {
		return nil, fmt.Errorf("%w: empleado %s", domain.ErrNotFound, req.EmployeeID)
	}

	product, err := uc.productRepo.GetByID(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("consultar producto: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, req.ProductID)
	}

	totalNeeded := req.QuantityPerOrder * len(names)
	if totalNeeded > product.QuantityInStock {
		return nil, fmt.Errorf("%w: se necesitan %d unidades y hay %d",
			domain.ErrInsufficientStock, totalNeeded, product.QuantityInStock)
	}

	sales := make([]*entity.Sale, 0, len(names))
	for i, name := range names {
		customerID, customerName := "", name
		customer, err := uc.customerRepo.GetByPhone(phones[i])
		if err != nil {
			return nil, fmt.Errorf("buscar cliente por teléfono: %w", err)
		}
		if customer != nil {
			customerID, customerName = customer.ID, customer.Name
		}

		sale, err := uc.CreateSale(ctx, dto.CreateSaleRequest{
			Items: []dto.SaleItemInput{{
				ProductID:     product.ID,
				ProductName:   product.Name,
				Quantity:      req.QuantityPerOrder,
				Price:         product.SellingPrice,
				PurchasePrice: product.PurchasePrice,
			}},
			Discount:     req.DiscountPerOrder,
			Status:       entity.SaleStatusPending,
			CustomerID:   customerID,
			CustomerName: customerName,
			EmployeeID:   employee.ID,
			EmployeeName: employee.Name,
		})
		if err != nil {
			return sales, fmt.Errorf("crear pedido %d de %d: %w", i+1, len(names), err)
		}
		sales = append(sales, sale)
	}

	uc.log.Info().
		Str("product_id", product.ID).
		Int("orders", len(sales)).
		Msg("pedidos en lote generados")
	return sales, nil
}

func trimNonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
