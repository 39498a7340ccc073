// Package bolt implementa el Entity Store sobre bbolt: un único archivo
// local clave-valor con un bucket por colección y registros JSON. Las
// operaciones multi-paso del núcleo (venta, transición de estado, ajuste)
// corren dentro de una sola transacción de escritura vía TxRunner.
package bolt

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

// Nombres de bucket. Coinciden con las claves de colección del documento de
// exportación, por lo que un export/import es un volcado literal del store.
const (
	BucketProducts          = "products"
	BucketSales             = "sales"
	BucketCustomers         = "customers"
	BucketEmployees         = "employees"
	BucketExpenseCategories = "expenseCategories"
	BucketIncomeCategories  = "incomeCategories"
	BucketExpenses          = "expenses"
	BucketIncomes           = "incomes"
	BucketInventoryLogs     = "inventoryLogs"
)

// Buckets enumera todas las colecciones conocidas (orden estable para export).
var Buckets = []string{
	BucketProducts,
	BucketSales,
	BucketCustomers,
	BucketEmployees,
	BucketExpenseCategories,
	BucketIncomeCategories,
	BucketExpenses,
	BucketIncomes,
	BucketInventoryLogs,
}

var errReadOnlyTx = errors.New("bolt: escritura sobre transacción de solo lectura")

// Querier abstrae "dónde corre la operación": un *Store ejecuta cada llamada
// en su propia transacción; una tx compartida (TxRunner) ejecuta todas las
// llamadas dentro de la misma. Equivalente al Querier pool-o-tx del adaptador
// de PostgreSQL.
type Querier interface {
	View(fn func(tx *bolt.Tx) error) error
	Update(fn func(tx *bolt.Tx) error) error
}

// Store es el handle del archivo bbolt.
type Store struct {
	db *bolt.DB
}

var _ Querier = (*Store)(nil)

// Open abre (o crea) el archivo y garantiza que existan todos los buckets.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("abrir store %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range Buckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("crear bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close cierra el archivo.
func (s *Store) Close() error { return s.db.Close() }

// View ejecuta fn en una transacción de solo lectura.
func (s *Store) View(fn func(tx *bolt.Tx) error) error { return s.db.View(fn) }

// Update ejecuta fn en una transacción de escritura propia.
func (s *Store) Update(fn func(tx *bolt.Tx) error) error { return s.db.Update(fn) }

// sharedTx adapta una transacción ya abierta al contrato Querier, para que
// los repositorios construidos por TxRunner escriban todos en la misma tx.
type sharedTx struct {
	tx *bolt.Tx
}

var _ Querier = sharedTx{}

func (t sharedTx) View(fn func(tx *bolt.Tx) error) error { return fn(t.tx) }

func (t sharedTx) Update(fn func(tx *bolt.Tx) error) error {
	if !t.tx.Writable() {
		return errReadOnlyTx
	}
	return fn(t.tx)
}

// ── Primitivas genéricas de colección ────────────────────────────────────────
// get/put/list/delete sobre registros JSON identificados por id. Todos los
// repositorios concretos son envoltorios tipados de estas cuatro operaciones.

func newID() string { return uuid.New().String() }

func putJSON[T any](b *bolt.Bucket, id string, rec *T) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("serializar registro %s: %w", id, err)
	}
	if err := b.Put([]byte(id), raw); err != nil {
		return fmt.Errorf("escribir registro %s: %w", id, err)
	}
	return nil
}

// getJSON devuelve (nil, nil) si el id no existe en el bucket.
func getJSON[T any](b *bolt.Bucket, id string) (*T, error) {
	raw := b.Get([]byte(id))
	if raw == nil {
		return nil, nil
	}
	var rec T
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("deserializar registro %s: %w", id, err)
	}
	return &rec, nil
}

func listJSON[T any](b *bolt.Bucket) ([]*T, error) {
	var list []*T
	err := b.ForEach(func(_, raw []byte) error {
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			return fmt.Errorf("deserializar registro: %w", err)
		}
		list = append(list, &rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func deleteRecord(b *bolt.Bucket, id string) error {
	if err := b.Delete([]byte(id)); err != nil {
		return fmt.Errorf("borrar registro %s: %w", id, err)
	}
	return nil
}

// sortByCreatedAtDesc ordena in-place, más recientes primero.
func sortByCreatedAtDesc[T any](list []*T, createdAt func(*T) time.Time) {
	sort.SliceStable(list, func(i, j int) bool {
		return createdAt(list[i]).After(createdAt(list[j]))
	})
}
