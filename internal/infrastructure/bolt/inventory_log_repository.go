package bolt

import (
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/domain/repository"
)

var _ repository.InventoryLogRepository = (*InventoryLogRepo)(nil)

// InventoryLogRepo implementación append-only del kardex sobre bbolt.
// Seq usa la secuencia del bucket, lo que da un orden total de creación
// incluso cuando varias entradas comparten timestamp (ventas multi-item).
type InventoryLogRepo struct {
	q Querier
}

// NewInventoryLogRepository construye el adaptador. Pasar store o tx (Querier).
func NewInventoryLogRepository(q Querier) *InventoryLogRepo {
	return &InventoryLogRepo{q: q}
}

// Append persiste una entrada del kardex; asigna ID, Seq y CreatedAt.
// No valida reglas de negocio: esa responsabilidad es del caller.
func (r *InventoryLogRepo) Append(log *entity.InventoryLog) error {
	return r.q.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketInventoryLogs))
		if log.ID == "" {
			log.ID = newID()
		}
		if log.CreatedAt.IsZero() {
			log.CreatedAt = time.Now()
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		log.Seq = seq
		return putJSON(b, log.ID, log)
	})
}

// List devuelve el kardex completo, más recientes primero (Seq desc).
func (r *InventoryLogRepo) List() ([]*entity.InventoryLog, error) {
	var list []*entity.InventoryLog
	err := r.q.View(func(tx *bolt.Tx) error {
		var err error
		list, err = listJSON[entity.InventoryLog](tx.Bucket([]byte(BucketInventoryLogs)))
		return err
	})
	if err != nil {
		return nil, err
	}
	sortBySeqDesc(list)
	return list, nil
}

// ListByProduct devuelve las entradas de un producto, más recientes primero.
func (r *InventoryLogRepo) ListByProduct(productID string) ([]*entity.InventoryLog, error) {
	all, err := r.List()
	if err != nil {
		return nil, err
	}
	list := all[:0:0]
	for _, l := range all {
		if l.ProductID == productID {
			list = append(list, l)
		}
	}
	return list, nil
}

func sortBySeqDesc(list []*entity.InventoryLog) {
	sort.Slice(list, func(i, j int) bool { return list[i].Seq > list[j].Seq })
}
