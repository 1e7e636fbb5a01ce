package modulesdk

import (
	"context"
	"time"

	"github.com/aeshevdaniyar/medusa/internal/domain/shared"
	"github.com/aeshevdaniyar/medusa/internal/infrastructure/telemetry"
	"github.com/spf13/cast"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// OperationRecorder receives the outcome of every module operation
type OperationRecorder interface {
	RecordOperation(ctx context.Context, entity, operation string, d time.Duration, err error)
}

// Dependencies are the collaborators shared by every entity of a module service
type Dependencies struct {
	Container      *Container
	BaseRepository RepositoryService
	// EventBus is optional; without it no events are emitted
	EventBus shared.EventBusModuleService
	Logger   *zap.Logger
	Recorder OperationRecorder
}

// Method signatures stored in the module method table
type (
	RetrieveFunc[DTO any]     func(ctx context.Context, id string, cfg *shared.FindConfig, sc *Context) (*DTO, error)
	ListFunc[DTO any]         func(ctx context.Context, filters shared.Filters, cfg *shared.FindConfig, sc *Context) ([]DTO, error)
	ListAndCountFunc[DTO any] func(ctx context.Context, filters shared.Filters, cfg *shared.FindConfig, sc *Context) ([]DTO, int64, error)
	DeleteFunc                func(ctx context.Context, keys []PrimaryKey, sc *Context) error
	SoftDeleteFunc            func(ctx context.Context, keys []PrimaryKey, cfg *SoftDeleteConfig, sc *Context) (map[string][]string, error)
	RestoreFunc               func(ctx context.Context, keys []PrimaryKey, cfg *SoftDeleteConfig, sc *Context) (map[string][]string, error)
)

// EntityMethods implements the base operations of one entity. T is the ORM
// entity handled by the container-registered EntityService, DTO is the
// serialized form returned to callers.
type EntityMethods[T any, DTO any] struct {
	model    ModelConfig
	deps     Dependencies
	linkable MapToConfig
}

// NewEntityMethods creates the operations of model
func NewEntityMethods[T any, DTO any](model ModelConfig, deps Dependencies, linkable MapToConfig) *EntityMethods[T, DTO] {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &EntityMethods[T, DTO]{
		model:    model,
		deps:     deps,
		linkable: linkable,
	}
}

// Model returns the entity configuration
func (m *EntityMethods[T, DTO]) Model() ModelConfig {
	return m.model
}

// Retrieve loads one entity by id and serializes it with its relations
func (m *EntityMethods[T, DTO]) Retrieve(ctx context.Context, id string, cfg *shared.FindConfig, sc *Context) (result *DTO, err error) {
	ctx, done := m.observe(ctx, OpRetrieve)
	defer func() { done(err) }()

	sc = WithManager(ctx, m.deps.BaseRepository, sc)
	svc, err := m.entityService()
	if err != nil {
		return nil, err
	}

	entity, err := svc.Retrieve(ctx, id, cfg, sc)
	if err != nil {
		return nil, err
	}

	out, err := Serialize[DTO](m.deps.BaseRepository, entity, SerializeOptions{Populate: true})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List loads the entities matching filters
func (m *EntityMethods[T, DTO]) List(ctx context.Context, filters shared.Filters, cfg *shared.FindConfig, sc *Context) (result []DTO, err error) {
	ctx, done := m.observe(ctx, OpList)
	defer func() { done(err) }()

	sc = WithManager(ctx, m.deps.BaseRepository, sc)
	svc, err := m.entityService()
	if err != nil {
		return nil, err
	}

	entities, err := svc.List(ctx, filters, cfg, sc)
	if err != nil {
		return nil, err
	}
	return m.serializeList(entities)
}

// ListAndCount loads the entities matching filters together with the total
// number of matches, ignoring pagination
func (m *EntityMethods[T, DTO]) ListAndCount(ctx context.Context, filters shared.Filters, cfg *shared.FindConfig, sc *Context) (result []DTO, count int64, err error) {
	ctx, done := m.observe(ctx, OpListAndCount)
	defer func() { done(err) }()

	sc = WithManager(ctx, m.deps.BaseRepository, sc)
	svc, err := m.entityService()
	if err != nil {
		return nil, 0, err
	}

	entities, count, err := svc.ListAndCount(ctx, filters, cfg, sc)
	if err != nil {
		return nil, 0, err
	}

	result, err = m.serializeList(entities)
	if err != nil {
		return nil, 0, err
	}
	return result, count, nil
}

// Delete hard deletes the entities identified by keys and emits one deleted
// event per key
func (m *EntityMethods[T, DTO]) Delete(ctx context.Context, keys []PrimaryKey, sc *Context) (err error) {
	ctx, done := m.observe(ctx, OpDelete)
	defer func() { done(err) }()

	return WithTransaction(ctx, m.deps.BaseRepository, sc, func(sc *Context) error {
		svc, err := m.entityService()
		if err != nil {
			return err
		}
		if err := svc.Delete(ctx, keys, sc); err != nil {
			return err
		}

		messages := make([]shared.EventMessage, 0, len(keys))
		for _, key := range keys {
			messages = append(messages, shared.EventMessage{
				EventName: m.model.DeletedEventName(),
				Data:      key.eventData(),
			})
		}
		return m.emit(ctx, messages)
	})
}

// SoftDelete soft deletes the entities identified by keys, cascades included,
// and emits one deleted event per soft-deleted entity. When cfg requests
// linkable keys, the keys of every touched record are returned; otherwise the
// result is nil.
func (m *EntityMethods[T, DTO]) SoftDelete(ctx context.Context, keys []PrimaryKey, cfg *SoftDeleteConfig, sc *Context) (result map[string][]string, err error) {
	ctx, done := m.observe(ctx, OpSoftDelete)
	defer func() { done(err) }()

	err = WithTransaction(ctx, m.deps.BaseRepository, sc, func(sc *Context) error {
		svc, err := m.entityService()
		if err != nil {
			return err
		}

		entities, cascaded, err := svc.SoftDelete(ctx, keys, sc)
		if err != nil {
			return err
		}

		records, err := Serialize[[]map[string]any](m.deps.BaseRepository, entities, SerializeOptions{Populate: true})
		if err != nil {
			return err
		}

		messages := make([]shared.EventMessage, 0, len(records))
		for _, record := range records {
			messages = append(messages, shared.EventMessage{
				EventName: m.model.DeletedEventName(),
				Data:      map[string]any{"id": cast.ToString(record["id"])},
			})
		}
		if err := m.emit(ctx, messages); err != nil {
			return err
		}

		result = m.linkableKeys(cascaded, cfg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Restore reverses SoftDelete. It emits no events.
func (m *EntityMethods[T, DTO]) Restore(ctx context.Context, keys []PrimaryKey, cfg *SoftDeleteConfig, sc *Context) (result map[string][]string, err error) {
	ctx, done := m.observe(ctx, OpRestore)
	defer func() { done(err) }()

	err = WithTransaction(ctx, m.deps.BaseRepository, sc, func(sc *Context) error {
		svc, err := m.entityService()
		if err != nil {
			return err
		}

		_, restored, err := svc.Restore(ctx, keys, sc)
		if err != nil {
			return err
		}

		result = m.linkableKeys(restored, cfg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// entityService resolves the entity service on every call so that a
// re-registered service is picked up
func (m *EntityMethods[T, DTO]) entityService() (EntityService[T], error) {
	return Resolve[EntityService[T]](m.deps.Container, m.model.RegistrationName())
}

func (m *EntityMethods[T, DTO]) serializeList(entities []T) ([]DTO, error) {
	out, err := Serialize[[]DTO](m.deps.BaseRepository, entities, SerializeOptions{Populate: true})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []DTO{}
	}
	return out, nil
}

func (m *EntityMethods[T, DTO]) linkableKeys(cascaded CascadeMap, cfg *SoftDeleteConfig) map[string][]string {
	if cfg == nil || cfg.ReturnLinkableKeys == nil {
		return nil
	}
	return MapObjectTo(cascaded, m.linkable, cfg.ReturnLinkableKeys)
}

func (m *EntityMethods[T, DTO]) emit(ctx context.Context, messages []shared.EventMessage) error {
	if len(messages) == 0 {
		return nil
	}
	if m.deps.EventBus == nil {
		m.deps.Logger.Debug("no event bus registered, skipping events",
			zap.String("entity", m.model.Name),
			zap.Int("count", len(messages)),
		)
		return nil
	}

	ctx, span := telemetry.StartSpan(ctx, m.model.DeletedEventName(),
		telemetry.WithSpanKind(trace.SpanKindProducer),
		telemetry.WithAttribute(telemetry.SpanAttrEventName, m.model.DeletedEventName()),
		telemetry.WithAttribute(telemetry.SpanAttrCount, len(messages)),
	)
	defer span.End()

	if err := m.deps.EventBus.Emit(ctx, messages...); err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	return nil
}

// observe opens a span for op and returns a function that closes it
func (m *EntityMethods[T, DTO]) observe(ctx context.Context, op Operation) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := telemetry.StartServiceSpan(ctx, KebabCase(m.model.Name), string(op),
		telemetry.WithAttribute(telemetry.SpanAttrEntity, m.model.Name),
		telemetry.WithAttribute(telemetry.SpanAttrOperation, string(op)),
	)

	return ctx, func(err error) {
		if err != nil {
			telemetry.RecordError(span, err)
			m.deps.Logger.Debug("module operation failed",
				zap.String("entity", m.model.Name),
				zap.String("operation", string(op)),
				zap.Error(err),
			)
		}
		if m.deps.Recorder != nil {
			m.deps.Recorder.RecordOperation(ctx, m.model.Name, string(op), time.Since(start), err)
		}
		span.End()
	}
}
