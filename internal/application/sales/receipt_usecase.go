package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/repository"
)

// ReceiptUseCase genera el PDF del recibo de una venta.
type ReceiptUseCase struct {
	saleRepo  repository.SaleRepository
	generator ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(saleRepo repository.SaleRepository, generator ReceiptPDFGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{saleRepo: saleRepo, generator: generator}
}

// DownloadReceiptPDF carga la venta y genera su recibo.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la venta no existe.
func (uc *ReceiptUseCase) DownloadReceiptPDF(_ context.Context, saleID string) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err = uc.generator.GenerateReceiptPDF(sale)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generar PDF: %w", err)
	}
	return pdfBytes, fmt.Sprintf("recibo-%s.pdf", sale.ID), nil
}
