// Package repository provides the generic ownership-scoped persistence
// layer. Every operation conjoins an owner filter, so a record that
// belongs to another user is indistinguishable from one that does not
// exist.
package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a record is missing or owned by someone
// else. Callers must not distinguish the two cases in responses.
var ErrNotFound = gorm.ErrRecordNotFound

// Owned is implemented by every entity persisted through the repository.
type Owned interface {
	// Stamp assigns the generated identifier and the caller's identity.
	// Any ownership present in the payload is discarded.
	Stamp(id string, owner uint)
}

// Scope narrows a query, e.g. by category or date range.
type Scope func(*gorm.DB) *gorm.DB

// Where returns a scope for a single column equality filter.
func Where(column string, value interface{}) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}

// Repository is an ownership-scoped store for one entity kind, backed by
// an explicitly injected database handle.
type Repository[T any, P interface {
	*T
	Owned
}] struct {
	db      *gorm.DB
	dateCol string
}

// New builds a repository over db. dateColumn is the entity's primary
// date field used for the default descending sort.
func New[T any, P interface {
	*T
	Owned
}](db *gorm.DB, dateColumn string) *Repository[T, P] {
	return &Repository[T, P]{db: db, dateCol: dateColumn}
}

// List returns the owner's entities matching the scopes. order defaults
// to descending by the primary date column.
func (r *Repository[T, P]) List(owner uint, order string, scopes ...Scope) ([]T, error) {
	if order == "" {
		order = r.dateCol + " DESC"
	}
	q := r.db.Model(new(T)).Where("owner_id = ?", owner)
	for _, s := range scopes {
		q = s(q)
	}
	var out []T
	if err := q.Order(order).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns the owner's entity, or ErrNotFound when the id does not
// exist or belongs to a different owner.
func (r *Repository[T, P]) GetByID(owner uint, id string) (*T, error) {
	var e T
	err := r.db.Where("id = ? AND owner_id = ?", id, owner).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Create stamps identity and ownership onto entity and inserts it. The
// stored entity, including its generated identifier, is left in entity.
func (r *Repository[T, P]) Create(owner uint, entity *T) error {
	P(entity).Stamp(uuid.NewString(), owner)
	return r.db.Create(entity).Error
}

// Update persists an entity previously resolved through GetByID. The
// updated-at column, where the entity has one, is refreshed by the store.
func (r *Repository[T, P]) Update(entity *T) error {
	return r.db.Save(entity).Error
}

// Delete removes the owner's entity, or returns ErrNotFound under the
// same rules as GetByID.
func (r *Repository[T, P]) Delete(owner uint, id string) error {
	e, err := r.GetByID(owner, id)
	if err != nil {
		return err
	}
	return r.db.Delete(e).Error
}

// Count counts the owner's entities matching the scopes.
func (r *Repository[T, P]) Count(owner uint, scopes ...Scope) (int64, error) {
	q := r.db.Model(new(T)).Where("owner_id = ?", owner)
	for _, s := range scopes {
		q = s(q)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
