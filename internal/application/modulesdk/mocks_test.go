package modulesdk

import (
	"context"
	"sync"

	"github.com/aeshevdaniyar/medusa/internal/domain/shared"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type widget struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Parts []part `json:"parts,omitempty"`
}

type widgetDTO struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Parts []partDTO `json:"parts,omitempty"`
}

type part struct {
	ID       string `json:"id"`
	WidgetID string `json:"widget_id"`
}

type partDTO struct {
	ID       string `json:"id"`
	WidgetID string `json:"widget_id"`
}

// MockEntityService is a mock implementation of EntityService
type MockEntityService[T any] struct {
	mock.Mock
}

func (m *MockEntityService[T]) Retrieve(ctx context.Context, id string, cfg *shared.FindConfig, sc *Context) (*T, error) {
	args := m.Called(ctx, id, cfg, sc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockEntityService[T]) List(ctx context.Context, filters shared.Filters, cfg *shared.FindConfig, sc *Context) ([]T, error) {
	args := m.Called(ctx, filters, cfg, sc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockEntityService[T]) ListAndCount(ctx context.Context, filters shared.Filters, cfg *shared.FindConfig, sc *Context) ([]T, int64, error) {
	args := m.Called(ctx, filters, cfg, sc)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]T), args.Get(1).(int64), args.Error(2)
}

func (m *MockEntityService[T]) Delete(ctx context.Context, keys []PrimaryKey, sc *Context) error {
	args := m.Called(ctx, keys, sc)
	return args.Error(0)
}

func (m *MockEntityService[T]) SoftDelete(ctx context.Context, keys []PrimaryKey, sc *Context) ([]T, CascadeMap, error) {
	args := m.Called(ctx, keys, sc)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]T), args.Get(1).(CascadeMap), args.Error(2)
}

func (m *MockEntityService[T]) Restore(ctx context.Context, keys []PrimaryKey, sc *Context) ([]T, CascadeMap, error) {
	args := m.Called(ctx, keys, sc)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]T), args.Get(1).(CascadeMap), args.Error(2)
}

// fakeRepository serializes through JSON and runs transactions on a fixed handle
type fakeRepository struct {
	fresh *gorm.DB
	tx    *gorm.DB

	transactions   int
	lastTxOptions  TransactionOptions
	serializeCalls []SerializeOptions
	serializeErr   error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		fresh: &gorm.DB{},
		tx:    &gorm.DB{},
	}
}

func (r *fakeRepository) GetFreshManager(ctx context.Context) *gorm.DB {
	return r.fresh
}

func (r *fakeRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error, opts TransactionOptions) error {
	r.transactions++
	r.lastTxOptions = opts
	return fn(r.tx)
}

func (r *fakeRepository) Serialize(data any, out any, opts SerializeOptions) error {
	r.serializeCalls = append(r.serializeCalls, opts)
	if r.serializeErr != nil {
		return r.serializeErr
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// recordingBus collects emitted messages
type recordingBus struct {
	mu       sync.Mutex
	messages []shared.EventMessage
	err      error
}

func (b *recordingBus) Emit(ctx context.Context, messages ...shared.EventMessage) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.messages = append(b.messages, messages...)
	return nil
}

func (b *recordingBus) Messages() []shared.EventMessage {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]shared.EventMessage(nil), b.messages...)
}
