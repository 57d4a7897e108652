package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrStorage marks any persistence read/write failure. Callers treat it as
// fatal for the current request.
var ErrStorage = errors.New("storage failure")

// Collection names one persisted set of records. Each collection is a single
// JSON document under the data directory, loaded and rewritten as a unit.
// There are no partial writes and no cross-collection transactions.
type Collection string

const (
	Orders          Collection = "orders"
	Expenses        Collection = "expenses"
	DeletedOrders   Collection = "deleted_orders"
	DeletedExpenses Collection = "deleted_expenses"
	Capital         Collection = "capital"
	Cars            Collection = "cars"
	Reservations    Collection = "reservations"
	Partners        Collection = "partners"
	Users           Collection = "users"
	ChatHistory     Collection = "chat_history"
	AuditLog        Collection = "audit_log"
	PhotoLog        Collection = "photo_log"
)

var collections = []Collection{
	Orders, Expenses, DeletedOrders, DeletedExpenses, Capital, Cars,
	Reservations, Partners, Users, ChatHistory, AuditLog, PhotoLog,
}

// Store is the file-backed record store. A per-collection mutex serializes
// file access; services additionally serialize their own read-modify-write
// cycles, which together close the lost-update race of the naive
// whole-file-overwrite scheme.
type Store struct {
	dir   string
	locks map[Collection]*sync.Mutex
}

// New creates the data directory if needed and returns a ready store.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating data dir: %v", ErrStorage, err)
	}

	locks := make(map[Collection]*sync.Mutex, len(collections))
	for _, c := range collections {
		locks[c] = &sync.Mutex{}
	}

	return &Store{dir: dir, locks: locks}, nil
}

// Dir returns the data directory, used by the backup shipper.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(c Collection) string {
	return filepath.Join(s.dir, string(c)+".json")
}

// read loads one collection document. A missing or empty file is an empty
// collection, not an error: data files appear on first write.
func read[T any](s *Store, c Collection) ([]T, error) {
	s.locks[c].Lock()
	defer s.locks[c].Unlock()

	data, err := os.ReadFile(s.path(c))
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", ErrStorage, c, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrStorage, c, err)
	}
	return items, nil
}

// write rewrites the whole collection document. The temp-file-plus-rename
// dance keeps readers from ever seeing a half-written document.
func write[T any](s *Store, c Collection, items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", ErrStorage, c, err)
	}

	s.locks[c].Lock()
	defer s.locks[c].Unlock()
	return s.replaceFile(c, data)
}

func (s *Store) replaceFile(c Collection, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, string(c)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating temp file for %s: %v", ErrStorage, c, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: writing %s: %v", ErrStorage, c, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: closing %s: %v", ErrStorage, c, err)
	}

	if err := os.Rename(tmp.Name(), s.path(c)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: replacing %s: %v", ErrStorage, c, err)
	}
	return nil
}

// readDoc loads a singleton document (currently only the capital). Missing or
// empty file yields the zero value and found=false.
func readDoc[T any](s *Store, c Collection) (T, bool, error) {
	var doc T

	s.locks[c].Lock()
	defer s.locks[c].Unlock()

	data, err := os.ReadFile(s.path(c))
	if err != nil {
		if os.IsNotExist(err) {
			return doc, false, nil
		}
		return doc, false, fmt.Errorf("%w: reading %s: %v", ErrStorage, c, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, false, nil
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, false, fmt.Errorf("%w: decoding %s: %v", ErrStorage, c, err)
	}
	return doc, true, nil
}

func writeDoc[T any](s *Store, c Collection, doc T) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", ErrStorage, c, err)
	}

	s.locks[c].Lock()
	defer s.locks[c].Unlock()
	return s.replaceFile(c, data)
}
