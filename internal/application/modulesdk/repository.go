package modulesdk

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// TransactionOptions controls how RepositoryService.Transaction opens a transaction
type TransactionOptions struct {
	// Transaction is an already open transaction to join or nest into
	Transaction *gorm.DB
	// IsolationLevel of a newly started transaction
	IsolationLevel sql.IsolationLevel
	// EnableNestedTransactions opens a savepoint inside Transaction
	EnableNestedTransactions bool
}

// SerializeOptions controls RepositoryService.Serialize
type SerializeOptions struct {
	// Populate keeps loaded relations in the output
	Populate bool
}

// RepositoryService is the module's base repository, registered in the
// container under BaseRepositoryKey
type RepositoryService interface {
	// GetFreshManager returns a connection that is not bound to any transaction
	GetFreshManager(ctx context.Context) *gorm.DB
	// Transaction runs fn inside a transaction
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error, opts TransactionOptions) error
	// Serialize converts ORM entities (a single value or a slice) into out
	Serialize(data any, out any, opts SerializeOptions) error
}

// Serialize converts data into a new V through repo
func Serialize[V any](repo RepositoryService, data any, opts SerializeOptions) (V, error) {
	var out V
	if err := repo.Serialize(data, &out, opts); err != nil {
		return out, err
	}
	return out, nil
}
