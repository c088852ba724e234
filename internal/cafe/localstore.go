package cafe

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// LocalStore is the secondary storage collaborator: a single JSON file holding
// every record, rewritten on each change. It exists so a write that fails
// against the primary store is not lost.
type LocalStore struct {
	path string
}

func NewLocalStore(path string) *LocalStore {
	return &LocalStore{path: path}
}

type localDB struct {
	Cafes []*Cafe `json:"cafes"`
}

func (s *LocalStore) load() localDB {
	var db localDB
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return db
	}
	// A corrupt file degrades to an empty store.
	_ = json.Unmarshal(raw, &db)
	return db
}

func (s *LocalStore) save(db localDB) error {
	raw, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, raw, 0o644)
}

// Upsert inserts the record or replaces the stored copy with the same id.
func (s *LocalStore) Upsert(cafe *Cafe) error {
	db := s.load()
	for i, c := range db.Cafes {
		if c.ID == cafe.ID {
			db.Cafes[i] = cafe
			return s.save(db)
		}
	}
	db.Cafes = append(db.Cafes, cafe)
	return s.save(db)
}

// Delete removes the record with the given id, if present.
func (s *LocalStore) Delete(id string) error {
	db := s.load()
	kept := db.Cafes[:0]
	for _, c := range db.Cafes {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	db.Cafes = kept
	return s.save(db)
}

// Cafes returns every locally stored record.
func (s *LocalStore) Cafes() []*Cafe {
	return s.load().Cafes
}
