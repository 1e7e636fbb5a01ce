package modulesdk

import (
	"context"

	"github.com/aeshevdaniyar/medusa/internal/domain/shared"
)

// PrimaryKey identifies an entity either by a plain id or by a composite key object
type PrimaryKey struct {
	ID        string
	Composite map[string]any
}

// ID returns a plain id key
func ID(id string) PrimaryKey {
	return PrimaryKey{ID: id}
}

// IDs returns plain id keys
func IDs(ids ...string) []PrimaryKey {
	keys := make([]PrimaryKey, len(ids))
	for i, id := range ids {
		keys[i] = ID(id)
	}
	return keys
}

// CompositeKey returns a key made of several columns
func CompositeKey(values map[string]any) PrimaryKey {
	return PrimaryKey{Composite: values}
}

// IsComposite reports whether k is a composite key
func (k PrimaryKey) IsComposite() bool {
	return k.Composite != nil
}

// Columns returns the key as column/value pairs
func (k PrimaryKey) Columns() map[string]any {
	if k.IsComposite() {
		return k.Composite
	}
	return map[string]any{"id": k.ID}
}

// eventData is the payload of a deleted event: {"id": ...} for plain keys,
// the key object itself for composite keys
func (k PrimaryKey) eventData() any {
	return k.Columns()
}

// CascadeMap groups the records touched by a soft delete or restore by entity name,
// e.g. {"Product": [...], "ProductVariant": [...]}
type CascadeMap map[string][]map[string]any

// Merge appends the records of other into m
func (m CascadeMap) Merge(other CascadeMap) {
	for name, records := range other {
		m[name] = append(m[name], records...)
	}
}

// EntityService is the per-entity service a module delegates to. It is
// registered in the container under ModelConfig.RegistrationName and works on
// ORM entities of type T.
type EntityService[T any] interface {
	Retrieve(ctx context.Context, id string, cfg *shared.FindConfig, sc *Context) (*T, error)
	List(ctx context.Context, filters shared.Filters, cfg *shared.FindConfig, sc *Context) ([]T, error)
	ListAndCount(ctx context.Context, filters shared.Filters, cfg *shared.FindConfig, sc *Context) ([]T, int64, error)
	Delete(ctx context.Context, keys []PrimaryKey, sc *Context) error
	// SoftDelete returns the soft-deleted entities and every record the
	// operation touched, cascades included
	SoftDelete(ctx context.Context, keys []PrimaryKey, sc *Context) ([]T, CascadeMap, error)
	// Restore mirrors SoftDelete
	Restore(ctx context.Context, keys []PrimaryKey, sc *Context) ([]T, CascadeMap, error)
}
