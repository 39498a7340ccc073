package sales

import "github.com/jhoicas/pos-ventas/internal/domain/entity"

// ReceiptPDFGenerator genera la representación gráfica (PDF) de un recibo de
// venta. Implementado en infrastructure/pdf con Maroto v2.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(sale *entity.Sale) ([]byte, error)
}
