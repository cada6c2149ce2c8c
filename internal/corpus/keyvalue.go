package corpus

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var ErrKeyNotFound = errors.New("key not found")

// KeyValueDB is a read-only lookup over a pre-built flat file of
// length-prefixed records:
//
//	[uint32 key length][key bytes][uint32 value length][value bytes]...
//
// The whole key index is built once at Open; values are read on demand
// with ReadAt, which is safe under concurrent requests.
type KeyValueDB struct {
	path  string
	file  *os.File
	index map[string]valueRef
}

type valueRef struct {
	offset int64
	size   uint32
}

func OpenKeyValueDB(path string) (*KeyValueDB, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file %s: %w", path, err)
	}

	db := &KeyValueDB{
		path:  path,
		file:  file,
		index: make(map[string]valueRef),
	}
	if err := db.buildIndex(); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to index corpus file %s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"path": path,
		"keys": len(db.index),
	}).Info("corpus key-value db connected")
	return db, nil
}

func (db *KeyValueDB) buildIndex() error {
	var offset int64
	var lenBuf [4]byte

	for {
		if _, err := db.file.ReadAt(lenBuf[:], offset); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		keyLen := binary.BigEndian.Uint32(lenBuf[:])
		offset += 4

		key := make([]byte, keyLen)
		if _, err := db.file.ReadAt(key, offset); err != nil {
			return err
		}
		offset += int64(keyLen)

		if _, err := db.file.ReadAt(lenBuf[:], offset); err != nil {
			return err
		}
		valLen := binary.BigEndian.Uint32(lenBuf[:])
		offset += 4

		db.index[string(key)] = valueRef{offset: offset, size: valLen}
		offset += int64(valLen)
	}
}

func (db *KeyValueDB) Has(key string) bool {
	_, ok := db.index[key]
	return ok
}

// Read returns the value stored under key or ErrKeyNotFound.
func (db *KeyValueDB) Read(key string) ([]byte, error) {
	ref, ok := db.index[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	value := make([]byte, ref.size)
	if _, err := db.file.ReadAt(value, ref.offset); err != nil {
		return nil, fmt.Errorf("failed to read corpus value for %q: %w", key, err)
	}
	return value, nil
}

func (db *KeyValueDB) Len() int {
	return len(db.index)
}

func (db *KeyValueDB) Close() error {
	if db.file == nil {
		return nil
	}
	err := db.file.Close()
	db.file = nil
	return err
}

// WriteKeyValueFile serializes records into the flat-file format read
// by OpenKeyValueDB. Used by the offline corpus build tooling.
func WriteKeyValueFile(path string, records map[string][]byte) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var lenBuf [4]byte
	for key, value := range records {
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(key)))
		if _, err := file.Write(lenBuf[:]); err != nil {
			return err
		}
		if _, err := file.Write([]byte(key)); err != nil {
			return err
		}
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(value)))
		if _, err := file.Write(lenBuf[:]); err != nil {
			return err
		}
		if _, err := file.Write(value); err != nil {
			return err
		}
	}
	return nil
}
