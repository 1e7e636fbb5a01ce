package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"strings"

	"github.com/aeshevdaniyar/medusa/internal/application/modulesdk"
	"github.com/goccy/go-json"
	"gorm.io/gorm"
)

// BaseRepository is the module-wide repository registered under
// modulesdk.BaseRepositoryKey. It hands out connections, owns transactions
// and turns models into their serialized form.
type BaseRepository struct {
	db *gorm.DB
}

// NewBaseRepository creates a new BaseRepository
func NewBaseRepository(db *gorm.DB) *BaseRepository {
	return &BaseRepository{db: db}
}

var _ modulesdk.RepositoryService = (*BaseRepository)(nil)

// GetFreshManager returns a session with no conditions and no transaction
func (r *BaseRepository) GetFreshManager(ctx context.Context) *gorm.DB {
	return r.db.Session(&gorm.Session{NewDB: true, Context: ctx})
}

// Transaction runs fn in a transaction. An open transaction in opts is joined,
// or wrapped in a savepoint when nested transactions are enabled.
func (r *BaseRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error, opts modulesdk.TransactionOptions) error {
	if opts.Transaction != nil {
		if opts.EnableNestedTransactions {
			return opts.Transaction.WithContext(ctx).Transaction(fn)
		}
		return fn(opts.Transaction)
	}

	var txOpts []*sql.TxOptions
	if opts.IsolationLevel != sql.LevelDefault {
		txOpts = append(txOpts, &sql.TxOptions{Isolation: opts.IsolationLevel})
	}
	return r.db.WithContext(ctx).Transaction(fn, txOpts...)
}

// Serialize converts data into out through its JSON form. Relations are
// dropped unless opts.Populate is set.
func (r *BaseRepository) Serialize(data any, out any, opts modulesdk.SerializeOptions) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialize: %w", err)
	}

	if !opts.Populate {
		if keys := r.relationKeys(data); len(keys) > 0 {
			raw, err = stripKeys(raw, keys)
			if err != nil {
				return err
			}
		}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to serialize: %w", err)
	}
	return nil
}

// relationKeys returns the JSON names of the relation fields of data's model
func (r *BaseRepository) relationKeys(data any) []string {
	t := reflect.TypeOf(data)
	for t != nil && (t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice || t.Kind() == reflect.Array) {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	stmt := &gorm.Statement{DB: r.db}
	if err := stmt.Parse(reflect.New(t).Interface()); err != nil {
		return nil
	}

	keys := make([]string, 0, len(stmt.Schema.Relationships.Relations))
	for _, rel := range stmt.Schema.Relationships.Relations {
		name, _, _ := strings.Cut(rel.Field.Tag.Get("json"), ",")
		if name == "" {
			name = rel.Field.Name
		}
		if name != "-" {
			keys = append(keys, name)
		}
	}
	return keys
}

func stripKeys(raw []byte, keys []string) ([]byte, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("failed to serialize: %w", err)
	}

	strip := func(m map[string]any) {
		for _, k := range keys {
			delete(m, k)
		}
	}
	switch val := v.(type) {
	case map[string]any:
		strip(val)
	case []any:
		for _, item := range val {
			if m, ok := item.(map[string]any); ok {
				strip(m)
			}
		}
	}
	return json.Marshal(v)
}
