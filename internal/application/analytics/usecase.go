// Package analytics implementa el lado de lectura: reporte de ventas por
// rango de fechas y resumen del dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/domain/repository"
)

// LowStockThreshold stock a partir del cual un producto aparece como "por
// agotarse" en el dashboard.
const LowStockThreshold = 5

// ReportUseCase calcula reportes sobre ventas, gastos y catálogo.
type ReportUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	expenseRepo repository.ExpenseRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	expenseRepo repository.ExpenseRepository,
) *ReportUseCase {
	return &ReportUseCase{saleRepo: saleRepo, productRepo: productRepo, expenseRepo: expenseRepo}
}

// SalesReport calcula el reporte de un rango de fechas (inclusive en ambos
// extremos). Solo las ventas COMPLETED suman ingresos y utilidad:
// utilidad bruta = ingresos - Σ precioCompra×cantidad de sus items.
func (uc *ReportUseCase) SalesReport(_ context.Context, req dto.SalesReportRequest) (*dto.SalesReportDTO, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: el rango de fechas está invertido", domain.ErrInvalidInput)
	}
	sales, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}

	report := &dto.SalesReportDTO{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Revenue:     decimal.Zero,
		COGS:        decimal.Zero,
		GrossProfit: decimal.Zero,
		Sales:       make([]*entity.Sale, 0),
	}
	for _, sale := range sales {
		if sale.CreatedAt.Before(req.StartDate) || sale.CreatedAt.After(req.EndDate) {
			continue
		}
		report.Sales = append(report.Sales, sale)
		if sale.Status != entity.SaleStatusCompleted {
			continue
		}
		report.SalesCount++
		report.Revenue = report.Revenue.Add(sale.FinalAmount)
		for _, item := range sale.Items {
			cost := item.PurchasePrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
			report.COGS = report.COGS.Add(cost)
		}
	}
	report.GrossProfit = report.Revenue.Sub(report.COGS)
	return report, nil
}

// Dashboard arma el resumen operativo: ingresos de hoy y del mes en curso,
// gastos del mes, ventas pendientes y productos por agotarse.
func (uc *ReportUseCase) Dashboard(_ context.Context, now time.Time) (*dto.DashboardDTO, error) {
	sales, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenseRepo.List()
	if err != nil {
		return nil, err
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	out := &dto.DashboardDTO{
		TodayRevenue:  decimal.Zero,
		MonthRevenue:  decimal.Zero,
		MonthExpenses: decimal.Zero,
		LowStock:      make([]*entity.Product, 0),
	}
	for _, sale := range sales {
		if sale.Status == entity.SaleStatusPending {
			out.PendingSales++
		}
		if sale.Status != entity.SaleStatusCompleted {
			continue
		}
		if !sale.CreatedAt.Before(startOfMonth) {
			out.MonthRevenue = out.MonthRevenue.Add(sale.FinalAmount)
		}
		if !sale.CreatedAt.Before(startOfDay) {
			out.TodayRevenue = out.TodayRevenue.Add(sale.FinalAmount)
			out.TodaySalesCount++
		}
	}
	for _, expense := range expenses {
		if !expense.CreatedAt.Before(startOfMonth) {
			out.MonthExpenses = out.MonthExpenses.Add(expense.Amount)
		}
	}
	for _, product := range products {
		if product.QuantityInStock <= LowStockThreshold {
			out.LowStock = append(out.LowStock, product)
		}
	}
	return out, nil
}
