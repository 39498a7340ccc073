// Package backup exporta e importa el contenido completo del store como un
// único documento JSON, el mismo formato de respaldo de siempre.
package backup

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/pkg/logger"
)

// Snapshotter es el puerto del store para respaldos: cada colección como un
// arreglo JSON, clavada por su nombre. Implementado en infrastructure/bolt.
type Snapshotter interface {
	ExportAll() (map[string]json.RawMessage, error)
	ImportAll(doc map[string]json.RawMessage) error
}

// BackupUseCase serializa y restaura el store completo.
type BackupUseCase struct {
	store Snapshotter
	log   *logger.Logger
}

// NewBackupUseCase construye el caso de uso.
func NewBackupUseCase(store Snapshotter, log *logger.Logger) *BackupUseCase {
	return &BackupUseCase{store: store, log: log}
}

// Export devuelve el respaldo como JSON indentado, listo para guardar en un
// archivo.
func (uc *BackupUseCase) Export(_ context.Context) ([]byte, error) {
	doc, err := uc.store.ExportAll()
	if err != nil {
		return nil, fmt.Errorf("exportar respaldo: %w", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializar respaldo: %w", err)
	}
	uc.log.Info().Int("bytes", len(data)).Msg("respaldo exportado")
	return data, nil
}

// Import reemplaza las colecciones presentes en el documento, todas en una
// sola transacción del store. Un documento malformado no escribe nada.
func (uc *BackupUseCase) Import(_ context.Context, data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: respaldo malformado: %v", domain.ErrInvalidInput, err)
	}
	if err := uc.store.ImportAll(doc); err != nil {
		return fmt.Errorf("importar respaldo: %w", err)
	}
	uc.log.Info().Int("collections", len(doc)).Msg("respaldo importado")
	return nil
}
