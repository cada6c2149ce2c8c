package store

import (
	"errors"
	"reflect"

	"github.com/Dittner/DerTutor/internal/apperr"

	"gorm.io/gorm"
)

// Store is a generic repository over one entity type. It is the single
// place where storage-engine errors are classified into the service
// error taxonomy; callers never see raw gorm errors.
//
// All mutating operations run inside a transaction and roll back fully
// on failure.
type Store[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db}
}

// Filter is a set of exact-equality conditions over named columns.
type Filter map[string]interface{}

// Fields is a partial set of column values for an update.
type Fields map[string]interface{}

func (s *Store[T]) modelName() string {
	var zero T
	return reflect.TypeOf(zero).Name()
}

func (s *Store[T]) classify(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(s.modelName())
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Conflict(s.modelName() + " already exists")
	default:
		return apperr.Internal(err)
	}
}

// Create inserts the entity and assigns its id. A uniqueness violation
// yields Conflict; any other constraint violation is internal.
func (s *Store[T]) Create(entity *T) (*T, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(entity).Error
	})
	if err != nil {
		return nil, s.classify(err)
	}
	return entity, nil
}

// FindOne returns the single row matching the filter or NotFound.
func (s *Store[T]) FindOne(filter Filter) (*T, error) {
	entity := new(T)
	if err := s.db.Where(map[string]interface{}(filter)).First(entity).Error; err != nil {
		return nil, s.classify(err)
	}
	return entity, nil
}

// FindOneOrNone returns nil without error when no row matches.
func (s *Store[T]) FindOneOrNone(filter Filter) (*T, error) {
	entity := new(T)
	err := s.db.Where(map[string]interface{}(filter)).First(entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, s.classify(err)
	}
	return entity, nil
}

// FindAll returns every row matching the filter, optionally ordered.
func (s *Store[T]) FindAll(filter Filter, order ...string) ([]T, error) {
	var entities []T
	query := s.db.Where(map[string]interface{}(filter))
	for _, o := range order {
		query = query.Order(o)
	}
	if err := query.Find(&entities).Error; err != nil {
		return nil, s.classify(err)
	}
	return entities, nil
}

// UpdateOne overwrites only the supplied fields of the row with the
// given id, leaving others untouched. NotFound when the id is absent.
func (s *Store[T]) UpdateOne(id uint, fields Fields) (*T, error) {
	entity := new(T)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(entity).Error; err != nil {
			return err
		}
		if err := tx.Model(entity).Updates(map[string]interface{}(fields)).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).First(entity).Error
	})
	if err != nil {
		return nil, s.classify(err)
	}
	return entity, nil
}

// DeleteOne removes the single row matching the filter and returns its
// prior state, which callers like the media lifecycle need to act on.
func (s *Store[T]) DeleteOne(filter Filter) (*T, error) {
	entity := new(T)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(map[string]interface{}(filter)).First(entity).Error; err != nil {
			return err
		}
		return tx.Delete(entity).Error
	})
	if err != nil {
		return nil, s.classify(err)
	}
	return entity, nil
}
