package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ventas/internal/domain/entity"
)

// ── Reportes ──────────────────────────────────────────────────────────────────

// SalesReportRequest rango de fechas del reporte de ventas (inclusive).
type SalesReportRequest struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// SalesReportDTO reporte de ventas de un período. Solo las ventas COMPLETED
// cuentan para ingresos y utilidad.
type SalesReportDTO struct {
	StartDate   time.Time       `json:"startDate"`
	EndDate     time.Time       `json:"endDate"`
	SalesCount  int             `json:"salesCount"`
	Revenue     decimal.Decimal `json:"revenue"`     // suma de FinalAmount
	COGS        decimal.Decimal `json:"cogs"`        // suma de purchasePrice × qty
	GrossProfit decimal.Decimal `json:"grossProfit"` // Revenue - COGS
	Sales       []*entity.Sale  `json:"sales"`
}

// DashboardDTO resumen operativo para la pantalla principal.
type DashboardDTO struct {
	TodayRevenue    decimal.Decimal   `json:"todayRevenue"`
	TodaySalesCount int               `json:"todaySalesCount"`
	MonthRevenue    decimal.Decimal   `json:"monthRevenue"`
	MonthExpenses   decimal.Decimal   `json:"monthExpenses"`
	PendingSales    int               `json:"pendingSales"`
	LowStock        []*entity.Product `json:"lowStock"` // stock bajo el umbral
}
