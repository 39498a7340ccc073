package backup_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ventas/internal/application/backup"
	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/infrastructure/bolt"
	"github.com/jhoicas/pos-ventas/pkg/logger"
)

func newStore(t *testing.T) *bolt.Store {
	t.Helper()
	store, err := bolt.Open(filepath.Join(t.TempDir(), "backup-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestBackupUseCase_ExportImportRoundTrip(t *testing.T) {
	src := newStore(t)
	require.NoError(t, bolt.NewProductRepository(src).Create(&entity.Product{
		Name:            "Monitor 4K",
		PurchasePrice:   decimal.NewFromInt(950_000),
		SellingPrice:    decimal.NewFromInt(1_350_000),
		QuantityInStock: 15,
	}))

	data, err := backup.NewBackupUseCase(src, logger.Nop()).Export(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	dst := newStore(t)
	require.NoError(t, backup.NewBackupUseCase(dst, logger.Nop()).Import(context.Background(), data))

	products, err := bolt.NewProductRepository(dst).List()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Monitor 4K", products[0].Name)
	assert.Equal(t, 15, products[0].QuantityInStock)
}

func TestBackupUseCase_ImportMalformado(t *testing.T) {
	store := newStore(t)
	uc := backup.NewBackupUseCase(store, logger.Nop())

	err := uc.Import(context.Background(), []byte("esto no es JSON"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
