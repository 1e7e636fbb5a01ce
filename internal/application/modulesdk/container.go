package modulesdk

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/aeshevdaniyar/medusa/internal/domain/shared"
)

// Well-known container keys
const (
	BaseRepositoryKey        = "baseRepository"
	EventBusModuleServiceKey = "eventBusModuleService"
)

// Container is a string-keyed dependency registry shared by the services of a module.
// Module services borrow it for their whole lifetime.
type Container struct {
	mu    sync.RWMutex
	items map[string]any
}

// NewContainer creates an empty container
func NewContainer() *Container {
	return &Container{items: make(map[string]any)}
}

// Register stores value under key, replacing any previous value, and returns
// the container for chaining
func (c *Container) Register(key string, value any) *Container {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return c
}

// Get returns the value registered under key
func (c *Container) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[key]
	return v, ok
}

// Has reports whether key is registered
func (c *Container) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Keys returns the registered keys in sorted order
func (c *Container) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Resolve returns the value registered under key as a T.
// It fails with NOT_FOUND when key is absent and UNEXPECTED_STATE when the
// registered value is not a T.
func Resolve[T any](c *Container, key string) (T, error) {
	var zero T
	if c == nil {
		return zero, shared.NewNotFoundError("container is not set, cannot resolve %q", key)
	}
	v, ok := c.Get(key)
	if !ok {
		return zero, shared.NewNotFoundError("%q is not registered in the container", key)
	}
	typed, ok := v.(T)
	if !ok {
		return zero, shared.NewUnexpectedStateError("%q is registered as %T, expected %v", key, v, reflect.TypeFor[T]())
	}
	return typed, nil
}

// MustResolve is Resolve for wiring code where a missing dependency is a programming error
func MustResolve[T any](c *Container, key string) T {
	v, err := Resolve[T](c, key)
	if err != nil {
		panic(fmt.Errorf("modulesdk: %w", err))
	}
	return v
}
