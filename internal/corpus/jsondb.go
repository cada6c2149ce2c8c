package corpus

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// TranslationExample is one bilingual usage example.
type TranslationExample struct {
	En string `json:"en"`
	Ru string `json:"ru"`
}

// Translation is one dictionary entry of the en-ru corpus.
type Translation struct {
	Key         string               `json:"key"`
	Description string               `json:"description"`
	Examples    []TranslationExample `json:"examples"`
}

// JSONFileDB is a read-only dictionary loaded fully into memory from a
// pre-built JSON file mapping key to entry.
type JSONFileDB struct {
	path    string
	entries map[string]Translation
}

func OpenJSONFileDB(path string) (*JSONFileDB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file %s: %w", path, err)
	}

	entries := make(map[string]Translation)
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse corpus file %s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"path": path,
		"keys": len(entries),
	}).Info("corpus json db connected")
	return &JSONFileDB{path: path, entries: entries}, nil
}

func (db *JSONFileDB) Has(key string) bool {
	_, ok := db.entries[key]
	return ok
}

// Read returns the entry stored under key or ErrKeyNotFound.
func (db *JSONFileDB) Read(key string) (*Translation, error) {
	entry, ok := db.entries[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return &entry, nil
}

func (db *JSONFileDB) Len() int {
	return len(db.entries)
}

func (db *JSONFileDB) Close() error {
	db.entries = nil
	return nil
}
