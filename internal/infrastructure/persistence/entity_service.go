package persistence

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aeshevdaniyar/medusa/internal/application/modulesdk"
	"github.com/aeshevdaniyar/medusa/internal/domain/shared"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// Cascade describes child records that follow their parent on delete,
// soft delete and restore
type Cascade struct {
	// Entity is the child's entity name, used as its CascadeMap key
	Entity string
	// Model is a pointer to a zero value of the child model
	Model any
	// ForeignKey is the child column referencing the parent id
	ForeignKey string
}

// EntityConfig configures an EntityService
type EntityConfig struct {
	// Name is the entity name, e.g. "ProductVariant"
	Name     string
	Cascades []Cascade
}

// EntityService is the GORM implementation of modulesdk.EntityService for model T
type EntityService[T any] struct {
	db       *gorm.DB
	cfg      EntityConfig
	validate *validator.Validate
	logger   *zap.Logger
}

// NewEntityService creates a new EntityService
func NewEntityService[T any](db *gorm.DB, cfg EntityConfig, logger *zap.Logger) *EntityService[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EntityService[T]{
		db:       db,
		cfg:      cfg,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.With(zap.String("entity", cfg.Name)),
	}
}

// Name returns the entity name
func (s *EntityService[T]) Name() string {
	return s.cfg.Name
}

// Retrieve finds a single record by id
func (s *EntityService[T]) Retrieve(ctx context.Context, id string, cfg *shared.FindConfig, sc *modulesdk.Context) (*T, error) {
	if id == "" {
		return nil, shared.NewInvalidDataError("%q must be defined", modulesdk.LowerFirst(s.cfg.Name)+"Id")
	}

	retrieveCfg := shared.FindConfig{}
	if cfg != nil {
		retrieveCfg = *cfg
	}
	retrieveCfg.Skip, retrieveCfg.Take = 0, 1

	q, err := s.query(s.conn(ctx, sc), shared.Filters{"id": id}, &retrieveCfg)
	if err != nil {
		return nil, err
	}

	var entity T
	if err := q.First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("%s with id: %s was not found", s.cfg.Name, id)
		}
		return nil, err
	}
	return &entity, nil
}

// List finds every record matching filters
func (s *EntityService[T]) List(ctx context.Context, filters shared.Filters, cfg *shared.FindConfig, sc *modulesdk.Context) ([]T, error) {
	q, err := s.query(s.conn(ctx, sc), filters, cfg)
	if err != nil {
		return nil, err
	}

	var entities []T
	if err := q.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// ListAndCount returns a page of records and the number of records matching filters
func (s *EntityService[T]) ListAndCount(ctx context.Context, filters shared.Filters, cfg *shared.FindConfig, sc *modulesdk.Context) ([]T, int64, error) {
	entities, err := s.List(ctx, filters, cfg, sc)
	if err != nil {
		return nil, 0, err
	}

	sch, err := s.schema()
	if err != nil {
		return nil, 0, err
	}
	q := s.conn(ctx, sc).Model(new(T))
	if cfg != nil && cfg.WithDeleted {
		q = q.Unscoped()
	}
	q, err = applyFilters(q, sch, filters)
	if err != nil {
		return nil, 0, err
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	return entities, count, nil
}

// Create inserts entities after validating them
func (s *EntityService[T]) Create(ctx context.Context, entities []T, sc *modulesdk.Context) ([]T, error) {
	if len(entities) == 0 {
		return entities, nil
	}
	for i := range entities {
		if err := s.validate.Struct(&entities[i]); err != nil {
			return nil, shared.NewInvalidDataError("invalid %s: %v", s.cfg.Name, err)
		}
	}
	if err := s.conn(ctx, sc).Create(&entities).Error; err != nil {
		return nil, s.translateWriteError(err)
	}
	return entities, nil
}

// translateWriteError maps constraint violations reported by gorm's
// TranslateError to domain errors
func (s *EntityService[T]) translateWriteError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.NewDomainError(shared.CodeDuplicate, fmt.Sprintf("%s already exists", s.cfg.Name))
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return shared.NewDomainError(shared.CodeNotAllowed, fmt.Sprintf("%s references a record that does not exist", s.cfg.Name))
	}
	return err
}

// Delete permanently removes the records identified by keys and their cascades
func (s *EntityService[T]) Delete(ctx context.Context, keys []modulesdk.PrimaryKey, sc *modulesdk.Context) error {
	if len(keys) == 0 {
		return nil
	}

	db := s.conn(ctx, sc).Unscoped()
	where, err := s.keyConditions(keys)
	if err != nil {
		return err
	}

	var ids []string
	if err := db.Model(new(T)).Where(where).Pluck("id", &ids).Error; err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	for _, c := range s.cfg.Cascades {
		if err := db.Where(clause.IN{Column: clause.Column{Name: c.ForeignKey}, Values: toValues(ids)}).Delete(c.Model).Error; err != nil {
			return fmt.Errorf("failed to delete %s: %w", c.Entity, err)
		}
	}

	if err := db.Where("id IN ?", ids).Delete(new(T)).Error; err != nil {
		return err
	}
	s.logger.Debug("records deleted", zap.Int("count", len(ids)))
	return nil
}

// SoftDelete marks the records identified by keys and their cascades as deleted
func (s *EntityService[T]) SoftDelete(ctx context.Context, keys []modulesdk.PrimaryKey, sc *modulesdk.Context) ([]T, modulesdk.CascadeMap, error) {
	return s.toggle(ctx, keys, sc, true)
}

// Restore clears the deleted mark of the records identified by keys and their cascades
func (s *EntityService[T]) Restore(ctx context.Context, keys []modulesdk.PrimaryKey, sc *modulesdk.Context) ([]T, modulesdk.CascadeMap, error) {
	return s.toggle(ctx, keys, sc, false)
}

func (s *EntityService[T]) toggle(ctx context.Context, keys []modulesdk.PrimaryKey, sc *modulesdk.Context, deleted bool) ([]T, modulesdk.CascadeMap, error) {
	touched := modulesdk.CascadeMap{s.cfg.Name: {}}
	if len(keys) == 0 {
		return []T{}, touched, nil
	}

	where, err := s.keyConditions(keys)
	if err != nil {
		return nil, nil, err
	}

	db := s.conn(ctx, sc)
	ids, err := mark(db, new(T), db.Unscoped().Model(new(T)).Where(where), deleted)
	if err != nil {
		return nil, nil, err
	}
	if len(ids) == 0 {
		return []T{}, touched, nil
	}

	var entities []T
	if err := db.Unscoped().Where("id IN ?", ids).Find(&entities).Error; err != nil {
		return nil, nil, err
	}
	if touched[s.cfg.Name], err = records(db, new(T), ids); err != nil {
		return nil, nil, err
	}

	for _, c := range s.cfg.Cascades {
		children := db.Unscoped().Model(c.Model).
			Where(clause.IN{Column: clause.Column{Name: c.ForeignKey}, Values: toValues(ids)})
		childIDs, err := mark(db, c.Model, children, deleted)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to cascade to %s: %w", c.Entity, err)
		}
		childRecords, err := records(db, c.Model, childIDs)
		if err != nil {
			return nil, nil, err
		}
		touched.Merge(modulesdk.CascadeMap{c.Entity: childRecords})
	}

	s.logger.Debug("records toggled", zap.Bool("deleted", deleted), zap.Int("count", len(ids)))
	return entities, touched, nil
}

// mark flips deleted_at on the records selected by scope that are not
// already in the requested state and returns their ids
func mark(db *gorm.DB, model any, scope *gorm.DB, deleted bool) ([]string, error) {
	if deleted {
		scope = scope.Where("deleted_at IS NULL")
	} else {
		scope = scope.Where("deleted_at IS NOT NULL")
	}

	var ids []string
	if err := scope.Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return ids, nil
	}

	if deleted {
		return ids, db.Where("id IN ?", ids).Delete(model).Error
	}
	return ids, db.Unscoped().Model(model).Where("id IN ?", ids).Update("deleted_at", nil).Error
}

// records loads the rows with the given ids as column maps
func records(db *gorm.DB, model any, ids []string) ([]map[string]any, error) {
	out := []map[string]any{}
	if len(ids) == 0 {
		return out, nil
	}
	if err := db.Unscoped().Model(model).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *EntityService[T]) conn(ctx context.Context, sc *modulesdk.Context) *gorm.DB {
	db := sc.ActiveManager()
	if db == nil {
		db = s.db
	}
	return db.WithContext(ctx)
}

func (s *EntityService[T]) schema() (*schema.Schema, error) {
	stmt := &gorm.Statement{DB: s.db}
	if err := stmt.Parse(new(T)); err != nil {
		return nil, fmt.Errorf("failed to parse %s model: %w", s.cfg.Name, err)
	}
	return stmt.Schema, nil
}

// keyConditions turns keys into a single OR-ed condition
func (s *EntityService[T]) keyConditions(keys []modulesdk.PrimaryKey) (clause.Expression, error) {
	sch, err := s.schema()
	if err != nil {
		return nil, err
	}

	var ids []any
	var ors []clause.Expression
	for _, key := range keys {
		if !key.IsComposite() {
			ids = append(ids, key.ID)
			continue
		}

		if len(key.Composite) == 0 {
			return nil, shared.NewInvalidDataError("empty composite key for %s", s.cfg.Name)
		}

		var ands []clause.Expression
		for _, col := range sortedKeys(key.Composite) {
			field := sch.LookUpField(col)
			if field == nil || field.DBName == "" {
				return nil, shared.NewInvalidDataError("unknown key column %q for %s", col, s.cfg.Name)
			}
			ands = append(ands, clause.Eq{Column: clause.Column{Name: field.DBName}, Value: key.Composite[col]})
		}
		ors = append(ors, clause.And(ands...))
	}
	if len(ids) > 0 {
		ors = append(ors, clause.IN{Column: clause.Column{Name: "id"}, Values: ids})
	}
	return clause.Or(ors...), nil
}

// query builds a find query from filters and cfg
func (s *EntityService[T]) query(db *gorm.DB, filters shared.Filters, cfg *shared.FindConfig) (*gorm.DB, error) {
	if cfg == nil {
		cfg = &shared.FindConfig{}
	}
	if err := s.validate.Struct(cfg); err != nil {
		return nil, shared.NewInvalidDataError("invalid find config: %v", err)
	}

	sch, err := s.schema()
	if err != nil {
		return nil, err
	}

	q := db.Model(new(T))
	if cfg.WithDeleted {
		q = q.Unscoped()
	}

	if len(cfg.Select) > 0 {
		columns := []string{"id"}
		for _, name := range cfg.Select {
			field := sch.LookUpField(name)
			if field == nil || field.DBName == "" {
				return nil, shared.NewInvalidDataError("unknown field %q for %s", name, s.cfg.Name)
			}
			if field.DBName != "id" {
				columns = append(columns, field.DBName)
			}
		}
		q = q.Select(columns)
	}

	for _, relation := range cfg.Relations {
		path, err := relationPath(sch, relation)
		if err != nil {
			return nil, shared.NewInvalidDataError("%s for %s", err.Error(), s.cfg.Name)
		}
		q = q.Preload(path)
	}

	q, err = applyFilters(q, sch, filters)
	if err != nil {
		return nil, err
	}

	for _, name := range sortedKeys(cfg.Order) {
		field := sch.LookUpField(name)
		if field == nil || field.DBName == "" {
			return nil, shared.NewInvalidDataError("unknown order field %q for %s", name, s.cfg.Name)
		}
		q = q.Order(clause.OrderByColumn{
			Column: clause.Column{Table: sch.Table, Name: field.DBName},
			Desc:   strings.EqualFold(string(cfg.Order[name]), string(shared.OrderDesc)),
		})
	}

	if cfg.Take > 0 {
		q = q.Limit(cfg.Take)
	}
	if cfg.Skip > 0 {
		q = q.Offset(cfg.Skip)
	}
	return q, nil
}

func applyFilters(q *gorm.DB, sch *schema.Schema, filters shared.Filters) (*gorm.DB, error) {
	for _, name := range sortedKeys(filters) {
		field := sch.LookUpField(name)
		if field == nil || field.DBName == "" {
			return nil, shared.NewInvalidDataError("unknown filter field %q", name)
		}
		q = q.Where(map[string]any{sch.Table + "." + field.DBName: filters[name]})
	}
	return q, nil
}

// relationPath resolves a relation such as "variants" or "variants.product"
// to its GORM preload path, e.g. "Variants.Product"
func relationPath(sch *schema.Schema, relation string) (string, error) {
	var parts []string
	current := sch
	for _, segment := range strings.Split(relation, ".") {
		rel := findRelation(current, segment)
		if rel == nil {
			return "", fmt.Errorf("unknown relation %q", relation)
		}
		parts = append(parts, rel.Name)
		current = rel.FieldSchema
	}
	return strings.Join(parts, "."), nil
}

func findRelation(sch *schema.Schema, name string) *schema.Relationship {
	if rel, ok := sch.Relationships.Relations[name]; ok {
		return rel
	}
	want := normalizeName(name)
	for relName, rel := range sch.Relationships.Relations {
		if normalizeName(relName) == want {
			return rel
		}
	}
	return nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", ""))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func toValues(ids []string) []any {
	values := make([]any, len(ids))
	for i, id := range ids {
		values[i] = id
	}
	return values
}
