package modulesdk

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Context is the shared execution context threaded through every module
// operation down to the entity services. A nil *Context is valid everywhere
// and behaves like an empty one.
type Context struct {
	// Manager is the connection used by read operations
	Manager *gorm.DB
	// TransactionManager is the open transaction used by mutating operations
	TransactionManager *gorm.DB
	// IsolationLevel applies when a new transaction is started
	IsolationLevel sql.IsolationLevel
	// EnableNestedTransactions opens a savepoint instead of joining TransactionManager
	EnableNestedTransactions bool
}

// ActiveManager returns the transaction when one is open, the manager otherwise
func (c *Context) ActiveManager() *gorm.DB {
	if c == nil {
		return nil
	}
	if c.TransactionManager != nil {
		return c.TransactionManager
	}
	return c.Manager
}

func (c *Context) clone() *Context {
	if c == nil {
		return &Context{}
	}
	cp := *c
	return &cp
}

// WithManager returns a copy of sc whose Manager is set, taking a fresh one
// from repo when the caller did not provide it. The caller's Context is not
// modified.
func WithManager(ctx context.Context, repo RepositoryService, sc *Context) *Context {
	scoped := sc.clone()
	if scoped.Manager == nil {
		scoped.Manager = repo.GetFreshManager(ctx)
	}
	return scoped
}

// WithTransaction runs fn inside a transaction owned by repo.
// When sc already carries a transaction it is joined as is, unless nested
// transactions are enabled, in which case a savepoint is opened inside it.
func WithTransaction(ctx context.Context, repo RepositoryService, sc *Context, fn func(sc *Context) error) error {
	if sc != nil && sc.TransactionManager != nil && !sc.EnableNestedTransactions {
		return fn(sc)
	}

	opts := TransactionOptions{}
	if sc != nil {
		opts.Transaction = sc.TransactionManager
		opts.IsolationLevel = sc.IsolationLevel
		opts.EnableNestedTransactions = sc.EnableNestedTransactions
	}

	return repo.Transaction(ctx, func(tx *gorm.DB) error {
		scoped := sc.clone()
		scoped.TransactionManager = tx
		return fn(scoped)
	}, opts)
}
