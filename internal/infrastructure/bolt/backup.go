package bolt

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

// ExportAll vuelca cada colección como un arreglo JSON, clavada por el nombre
// del bucket. El documento resultante es el formato de respaldo de la
// aplicación.
func (s *Store) ExportAll() (map[string]json.RawMessage, error) {
	doc := make(map[string]json.RawMessage, len(Buckets))
	err := s.db.View(func(tx *bolt.Tx) error {
		for _, name := range Buckets {
			b := tx.Bucket([]byte(name))
			records := make([]json.RawMessage, 0, b.Stats().KeyN)
			if err := b.ForEach(func(_, raw []byte) error {
				cp := make(json.RawMessage, len(raw))
				copy(cp, raw)
				records = append(records, cp)
				return nil
			}); err != nil {
				return err
			}
			arr, err := json.Marshal(records)
			if err != nil {
				return fmt.Errorf("exportar colección %s: %w", name, err)
			}
			doc[name] = arr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// recordKey son los campos mínimos que todo registro almacenado trae y que el
// import necesita para re-clavar y restaurar la secuencia del kardex.
type recordKey struct {
	ID  string `json:"id"`
	Seq uint64 `json:"seq"`
}

// ImportAll reemplaza las colecciones presentes en doc, todas dentro de una
// sola transacción. Las colecciones ausentes del documento quedan intactas;
// las claves desconocidas se ignoran. La secuencia del kardex se restaura al
// Seq máximo importado para que nuevas entradas sigan siendo monotónicas.
func (s *Store) ImportAll(doc map[string]json.RawMessage) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range Buckets {
			arr, ok := doc[name]
			if !ok {
				continue
			}
			var records []json.RawMessage
			if err := json.Unmarshal(arr, &records); err != nil {
				return fmt.Errorf("importar colección %s: %w", name, err)
			}
			if err := tx.DeleteBucket([]byte(name)); err != nil {
				return fmt.Errorf("vaciar colección %s: %w", name, err)
			}
			b, err := tx.CreateBucket([]byte(name))
			if err != nil {
				return fmt.Errorf("recrear colección %s: %w", name, err)
			}
			var maxSeq uint64
			for _, raw := range records {
				var key recordKey
				if err := json.Unmarshal(raw, &key); err != nil || key.ID == "" {
					return fmt.Errorf("importar colección %s: registro sin id", name)
				}
				if err := b.Put([]byte(key.ID), raw); err != nil {
					return fmt.Errorf("importar registro %s/%s: %w", name, key.ID, err)
				}
				if key.Seq > maxSeq {
					maxSeq = key.Seq
				}
			}
			if name == BucketInventoryLogs {
				if err := b.SetSequence(maxSeq); err != nil {
					return fmt.Errorf("restaurar secuencia del kardex: %w", err)
				}
			}
		}
		return nil
	})
}
