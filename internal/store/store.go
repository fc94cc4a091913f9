// Package store implements the record store: durable, queryable, typed
// tables over a flat bbolt key space. It provides identity-column
// assignment, unique-column enforcement and predicate queries so the
// adapters above it can treat the file like a small relational table set.
package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/zatekoja/symptom-triage/internal/infrastructure/clients/bolt"
	apperrors "github.com/zatekoja/symptom-triage/pkg/errors"
	bbolt "go.etcd.io/bbolt"
)

// Predicate selects rows. A nil Predicate matches every row.
type Predicate func(Row) bool

// OrderBy sorts query results on one column. Ties keep insertion order.
type OrderBy struct {
	Column string
	Desc   bool
}

// Schema declares a table. Identity, when set, names a store-assigned
// integer column (max existing value + 1, starting at 1). Unique columns
// are enforced on insert and update.
type Schema struct {
	Name     string
	Identity string
	Unique   []string
}

// Store is the table engine over one bbolt file. All mutating calls run
// inside a single write transaction and are committed before returning,
// so identity assignment stays race-free under concurrent callers.
type Store struct {
	client *bolt.Client

	mu      sync.RWMutex
	schemas map[string]Schema
	closed  bool
}

// New creates a store over an open bolt client
func New(client *bolt.Client) *Store {
	return &Store{
		client:  client,
		schemas: make(map[string]Schema),
	}
}

// Close marks the store unusable. The underlying client is closed by
// its owner.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// EnsureTable creates the table and its unique-index buckets if absent.
// Idempotent; an existing table is never altered.
func (s *Store) EnsureTable(schema Schema) error {
	if err := s.ready(); err != nil {
		return err
	}
	if schema.Name == "" {
		return apperrors.NewValidationError("table name is required")
	}

	err := s.client.DB().Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(schema.Name)); err != nil {
			return err
		}
		for _, col := range schema.Unique {
			if _, err := tx.CreateBucketIfNotExists(indexBucket(schema.Name, col)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("failed to ensure table %s", schema.Name), err)
	}

	s.mu.Lock()
	if _, ok := s.schemas[schema.Name]; !ok {
		s.schemas[schema.Name] = schema
	}
	s.mu.Unlock()
	return nil
}

// Insert appends a row. When the table declares an identity column the
// store assigns max(existing)+1 (1 on an empty table), writes it into
// the row and returns it. A unique-column collision fails with a
// conflict error and writes nothing.
func (s *Store) Insert(table string, row Row) (int64, error) {
	schema, err := s.schema(table)
	if err != nil {
		return 0, err
	}

	var id int64
	err = s.client.DB().Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(table))
		if b == nil {
			return apperrors.NewUnavailableError(fmt.Sprintf("table %s missing from store file", table))
		}

		for _, col := range schema.Unique {
			v, ok := row[col]
			if !ok {
				continue
			}
			idx := tx.Bucket(indexBucket(table, col))
			if idx != nil && idx.Get(indexValue(v)) != nil {
				return apperrors.NewDuplicateKeyError(fmt.Sprintf("%s.%s already contains %v", table, col, v))
			}
		}

		stored := row.clone()
		if schema.Identity != "" {
			id = maxIdentity(b, schema.Identity) + 1
			stored[schema.Identity] = id
		}

		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		key := rowKey(seq)

		buf, err := json.Marshal(stored)
		if err != nil {
			return err
		}
		if err := b.Put(key, buf); err != nil {
			return err
		}

		for _, col := range schema.Unique {
			v, ok := stored[col]
			if !ok {
				continue
			}
			if err := tx.Bucket(indexBucket(table, col)).Put(indexValue(v), key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if _, ok := err.(*apperrors.AppError); ok {
			return 0, err
		}
		return 0, apperrors.NewInternalError(fmt.Sprintf("failed to insert into %s", table), err)
	}

	if schema.Identity != "" {
		row[schema.Identity] = id
	}
	return id, nil
}

// Update applies patch to every row matching pred and returns the match
// count. Zero matches is a no-op, not an error.
func (s *Store) Update(table string, pred Predicate, patch Row) (int, error) {
	schema, err := s.schema(table)
	if err != nil {
		return 0, err
	}

	matched := 0
	err = s.client.DB().Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(table))
		if b == nil {
			return apperrors.NewUnavailableError(fmt.Sprintf("table %s missing from store file", table))
		}

		type change struct {
			key    []byte
			before Row
			after  Row
		}
		var changes []change

		cur := b.Cursor()
		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			var row Row
			if err := json.Unmarshal(v, &row); err != nil {
				return err
			}
			if pred != nil && !pred(row) {
				continue
			}
			patched := row.clone()
			for col, val := range patch {
				patched[col] = val
			}
			changes = append(changes, change{key: append([]byte(nil), k...), before: row, after: patched})
		}

		for _, c := range changes {
			for _, col := range schema.Unique {
				oldV, newV := c.before[col], c.after[col]
				if fmt.Sprint(oldV) == fmt.Sprint(newV) {
					continue
				}
				idx := tx.Bucket(indexBucket(table, col))
				if idx.Get(indexValue(newV)) != nil {
					return apperrors.NewDuplicateKeyError(fmt.Sprintf("%s.%s already contains %v", table, col, newV))
				}
				if err := idx.Delete(indexValue(oldV)); err != nil {
					return err
				}
				if err := idx.Put(indexValue(newV), c.key); err != nil {
					return err
				}
			}
			buf, err := json.Marshal(c.after)
			if err != nil {
				return err
			}
			if err := b.Put(c.key, buf); err != nil {
				return err
			}
		}
		matched = len(changes)
		return nil
	})
	if err != nil {
		if _, ok := err.(*apperrors.AppError); ok {
			return 0, err
		}
		return 0, apperrors.NewInternalError(fmt.Sprintf("failed to update %s", table), err)
	}
	return matched, nil
}

// Query returns a snapshot of the rows matching pred, in insertion order.
// With orderBy set the rows are sorted on that column, ties keeping
// insertion order.
func (s *Store) Query(table string, pred Predicate, orderBy *OrderBy) ([]Row, error) {
	if _, err := s.schema(table); err != nil {
		return nil, err
	}

	var rows []Row
	err := s.client.DB().View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(table))
		if b == nil {
			return apperrors.NewUnavailableError(fmt.Sprintf("table %s missing from store file", table))
		}
		cur := b.Cursor()
		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			var row Row
			if err := json.Unmarshal(v, &row); err != nil {
				return err
			}
			if pred == nil || pred(row) {
				rows = append(rows, row)
			}
		}
		return nil
	})
	if err != nil {
		if _, ok := err.(*apperrors.AppError); ok {
			return nil, err
		}
		return nil, apperrors.NewInternalError(fmt.Sprintf("failed to query %s", table), err)
	}

	if orderBy != nil {
		sort.SliceStable(rows, func(i, j int) bool {
			if orderBy.Desc {
				return columnLess(rows[j][orderBy.Column], rows[i][orderBy.Column])
			}
			return columnLess(rows[i][orderBy.Column], rows[j][orderBy.Column])
		})
	}
	return rows, nil
}

// DeleteWhere removes every row matching pred and returns the count.
// Reserved for the seeding procedure's stale-fixture cleanup.
func (s *Store) DeleteWhere(table string, pred Predicate) (int, error) {
	schema, err := s.schema(table)
	if err != nil {
		return 0, err
	}

	deleted := 0
	err = s.client.DB().Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(table))
		if b == nil {
			return apperrors.NewUnavailableError(fmt.Sprintf("table %s missing from store file", table))
		}

		var keys [][]byte
		var rows []Row
		cur := b.Cursor()
		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			var row Row
			if err := json.Unmarshal(v, &row); err != nil {
				return err
			}
			if pred == nil || pred(row) {
				keys = append(keys, append([]byte(nil), k...))
				rows = append(rows, row)
			}
		}

		for i, k := range keys {
			for _, col := range schema.Unique {
				if v, ok := rows[i][col]; ok {
					if err := tx.Bucket(indexBucket(table, col)).Delete(indexValue(v)); err != nil {
						return err
					}
				}
			}
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		deleted = len(keys)
		return nil
	})
	if err != nil {
		if _, ok := err.(*apperrors.AppError); ok {
			return 0, err
		}
		return 0, apperrors.NewInternalError(fmt.Sprintf("failed to delete from %s", table), err)
	}
	return deleted, nil
}

func (s *Store) ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.client == nil || s.closed {
		return apperrors.NewUnavailableError("record store is not open")
	}
	return nil
}

func (s *Store) schema(table string) (Schema, error) {
	if err := s.ready(); err != nil {
		return Schema{}, err
	}
	s.mu.RLock()
	schema, ok := s.schemas[table]
	s.mu.RUnlock()
	if !ok {
		return Schema{}, apperrors.NewUnavailableError(fmt.Sprintf("table %s was never ensured", table))
	}
	return schema, nil
}

func maxIdentity(b *bbolt.Bucket, col string) int64 {
	var max int64
	cur := b.Cursor()
	for k, v := cur.First(); k != nil; k, v = cur.Next() {
		var row Row
		if err := json.Unmarshal(v, &row); err != nil {
			continue
		}
		if id := row.Int(col); id > max {
			max = id
		}
	}
	return max
}

func rowKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

func indexBucket(table, col string) []byte {
	return []byte("idx:" + table + ":" + col)
}

func indexValue(v any) []byte {
	return []byte(fmt.Sprint(v))
}

func columnLess(a, b any) bool {
	af, aNum := asNumber(a)
	bf, bNum := asNumber(b)
	if aNum && bNum {
		return af < bf
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}
