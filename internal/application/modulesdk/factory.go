package modulesdk

import (
	"sort"

	"github.com/aeshevdaniyar/medusa/internal/domain/shared"
	"go.uber.org/zap"
)

// Registration binds a secondary entity to its ORM and DTO types
type Registration interface {
	Model() ModelConfig
	bind(deps Dependencies, linkable MapToConfig) (methods any, table map[string]any)
}

type registration[T any, DTO any] struct {
	model ModelConfig
}

// Entity registers a secondary entity of a module
func Entity[T any, DTO any](model ModelConfig) Registration {
	return registration[T, DTO]{model: model}
}

func (r registration[T, DTO]) Model() ModelConfig {
	return r.model
}

func (r registration[T, DTO]) bind(deps Dependencies, linkable MapToConfig) (any, map[string]any) {
	methods := NewEntityMethods[T, DTO](r.model, deps, linkable)
	return methods, methodTable(methods, MethodNames(r.model, true))
}

func methodTable[T any, DTO any](m *EntityMethods[T, DTO], names map[Operation]string) map[string]any {
	return map[string]any{
		names[OpRetrieve]:     RetrieveFunc[DTO](m.Retrieve),
		names[OpList]:         ListFunc[DTO](m.List),
		names[OpListAndCount]: ListAndCountFunc[DTO](m.ListAndCount),
		names[OpDelete]:       DeleteFunc(m.Delete),
		names[OpSoftDelete]:   SoftDeleteFunc(m.SoftDelete),
		names[OpRestore]:      RestoreFunc(m.Restore),
	}
}

// Option configures a Factory
type Option func(*factoryOptions)

type factoryOptions struct {
	logger   *zap.Logger
	recorder OperationRecorder
}

// WithLogger sets the logger of the built services
func WithLogger(logger *zap.Logger) Option {
	return func(o *factoryOptions) {
		o.logger = logger
	}
}

// WithRecorder sets the operation recorder of the built services
func WithRecorder(recorder OperationRecorder) Option {
	return func(o *factoryOptions) {
		o.recorder = recorder
	}
}

// Factory builds module services for a main entity of type T (serialized as
// DTO) and a set of secondary entities
type Factory[T any, DTO any] struct {
	main     ModelConfig
	others   []Registration
	linkable MapToConfig
	opts     factoryOptions
}

// NewFactory creates a Factory. The main entity gets the unsuffixed method
// names; every secondary entity gets suffixed ones.
func NewFactory[T any, DTO any](main ModelConfig, others []Registration, linkable MapToConfig, opts ...Option) *Factory[T, DTO] {
	f := &Factory[T, DTO]{
		main:     main,
		others:   others,
		linkable: linkable,
	}
	for _, opt := range opts {
		opt(&f.opts)
	}
	if f.opts.logger == nil {
		f.opts.logger = zap.NewNop()
	}
	return f
}

// MethodNames returns every public method name a built service exposes
func (f *Factory[T, DTO]) MethodNames() []string {
	seen := make(map[string]struct{})
	for _, name := range MethodNames(f.main, false) {
		seen[name] = struct{}{}
	}
	for _, r := range f.others {
		for _, name := range MethodNames(r.Model(), true) {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds a module service bound to container. Only the base repository
// and the optional event bus are read here; entity services are resolved
// when an operation runs. A secondary entity whose method names collide with
// an earlier one overrides it.
func (f *Factory[T, DTO]) New(container *Container) (*AbstractModuleService[T, DTO], error) {
	repo, err := Resolve[RepositoryService](container, BaseRepositoryKey)
	if err != nil {
		return nil, err
	}

	var bus shared.EventBusModuleService
	if container.Has(EventBusModuleServiceKey) {
		bus, err = Resolve[shared.EventBusModuleService](container, EventBusModuleServiceKey)
		if err != nil {
			return nil, err
		}
	}

	deps := Dependencies{
		Container:      container,
		BaseRepository: repo,
		EventBus:       bus,
		Logger:         f.opts.logger,
		Recorder:       f.opts.recorder,
	}

	mainMethods := NewEntityMethods[T, DTO](f.main, deps, f.linkable)
	svc := &AbstractModuleService[T, DTO]{
		EntityMethods: mainMethods,
		deps:          deps,
		methods:       methodTable(mainMethods, MethodNames(f.main, false)),
		entities:      map[string]any{f.main.Name: mainMethods},
	}

	for _, r := range f.others {
		methods, table := r.bind(deps, f.linkable)
		for name, fn := range table {
			if _, exists := svc.methods[name]; exists {
				f.opts.logger.Warn("module method overridden",
					zap.String("method", name),
					zap.String("entity", r.Model().Name),
				)
			}
			svc.methods[name] = fn
		}
		svc.entities[r.Model().Name] = methods
	}

	return svc, nil
}

// AbstractModuleService exposes the base operations of a module. The main
// entity operations are promoted from the embedded EntityMethods; secondary
// entity operations live in the method table and are usually reached through
// typed wrappers.
type AbstractModuleService[T any, DTO any] struct {
	*EntityMethods[T, DTO]

	deps     Dependencies
	methods  map[string]any
	entities map[string]any
}

// Container returns the container the service was built with
func (s *AbstractModuleService[T, DTO]) Container() *Container {
	return s.deps.Container
}

// BaseRepository returns the module's base repository
func (s *AbstractModuleService[T, DTO]) BaseRepository() RepositoryService {
	return s.deps.BaseRepository
}

// EventBus returns the event bus, nil when none was registered
func (s *AbstractModuleService[T, DTO]) EventBus() shared.EventBusModuleService {
	return s.deps.EventBus
}

// Method returns the method registered under name
func (s *AbstractModuleService[T, DTO]) Method(name string) (any, bool) {
	fn, ok := s.methods[name]
	return fn, ok
}

// MethodNames returns the names in the method table in sorted order
func (s *AbstractModuleService[T, DTO]) MethodNames() []string {
	names := make([]string, 0, len(s.methods))
	for name := range s.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entity returns the operations registered for the entity name
func (s *AbstractModuleService[T, DTO]) Entity(name string) (any, bool) {
	m, ok := s.entities[name]
	return m, ok
}

// MethodLookup is implemented by module services
type MethodLookup interface {
	Method(name string) (any, bool)
}

// EntityLookup is implemented by module services
type EntityLookup interface {
	Entity(name string) (any, bool)
}

// MethodAs returns the method registered under name as an F, e.g.
// MethodAs[modulesdk.ListFunc[VariantDTO]](svc, "listVariants")
func MethodAs[F any](svc MethodLookup, name string) (F, error) {
	var zero F
	fn, ok := svc.Method(name)
	if !ok {
		return zero, shared.NewNotFoundError("method %q is not defined", name)
	}
	typed, ok := fn.(F)
	if !ok {
		return zero, shared.NewUnexpectedStateError("method %q is %T, expected %T", name, fn, zero)
	}
	return typed, nil
}

// EntityOf returns the typed operations registered for the entity name
func EntityOf[T any, DTO any](svc EntityLookup, name string) (*EntityMethods[T, DTO], error) {
	m, ok := svc.Entity(name)
	if !ok {
		return nil, shared.NewNotFoundError("entity %q is not registered", name)
	}
	typed, ok := m.(*EntityMethods[T, DTO])
	if !ok {
		return nil, shared.NewUnexpectedStateError("entity %q is registered as %T", name, m)
	}
	return typed, nil
}
