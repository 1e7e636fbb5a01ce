package product

import (
	"context"
	"sync"
	"testing"

	"github.com/aeshevdaniyar/medusa/internal/application/modulesdk"
	"github.com/aeshevdaniyar/medusa/internal/domain/shared"
	"github.com/aeshevdaniyar/medusa/internal/infrastructure/event"
	"github.com/aeshevdaniyar/medusa/internal/infrastructure/persistence"
	"github.com/aeshevdaniyar/medusa/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// eventRecorder collects every emitted event
type eventRecorder struct {
	mu       sync.Mutex
	messages []shared.EventMessage
}

func (r *eventRecorder) Handle(ctx context.Context, msg shared.EventMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
	return nil
}

func (r *eventRecorder) named(name string) []shared.EventMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []shared.EventMessage
	for _, m := range r.messages {
		if m.EventName == name {
			out = append(out, m)
		}
	}
	return out
}

func newTestDB(t *testing.T) *gorm.DB {
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func newTestService(t *testing.T) (*Service, *eventRecorder, *gorm.DB) {
	db := newTestDB(t)

	bus := event.NewLocalEventBus(zap.NewNop())
	recorder := &eventRecorder{}
	bus.Subscribe(shared.WildcardEvent, "test", recorder)

	container := modulesdk.NewContainer()
	persistence.RegisterProductModule(container, db, zap.NewNop())
	container.Register(modulesdk.EventBusModuleServiceKey, shared.EventBusModuleService(bus))

	svc, err := NewService(container, zap.NewNop())
	require.NoError(t, err)
	return svc, recorder, db
}

func strPtr(s string) *string {
	return &s
}

func createShirt(t *testing.T, svc *Service) ProductDTO {
	created, err := svc.Create(context.Background(), []CreateProductDTO{{
		Title:   "Blue Shirt",
		Status:  "published",
		Options: []CreateProductOptionDTO{{Title: "Size"}},
		Variants: []CreateProductVariantDTO{
			{Title: "S", SKU: strPtr("SHIRT-S")},
			{Title: "M", SKU: strPtr("SHIRT-M"), VariantRank: 1},
		},
	}}, nil)
	require.NoError(t, err)
	require.Len(t, created, 1)
	return created[0]
}

func TestNewService_MethodTable(t *testing.T) {
	svc, _, _ := newTestService(t)

	names := svc.MethodNames()
	for _, name := range []string{
		"retrieve", "list", "listAndCount", "delete", "softDelete", "restore",
		"retrieveVariant", "listVariants", "listAndCountVariants", "deleteVariants", "softDeleteVariants", "restoreVariants",
		"retrieveOption", "listOptions",
		"retrieveProductTag", "listProductTags", "restoreProductTags",
		"retrieveProductType", "listAndCountProductTypes",
		"retrieveCollection", "softDeleteCollections",
		"retrieveCategory", "listCategories", "deleteCategories",
	} {
		assert.Contains(t, names, name)
	}
	assert.Len(t, names, 7*len(modulesdk.Operations))
	assert.Equal(t, NewFactory().MethodNames(), names)
}

func TestNewService_RequiresBaseRepository(t *testing.T) {
	_, err := NewService(modulesdk.NewContainer(), nil)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestService_Create(t *testing.T) {
	svc, events, _ := newTestService(t)

	shirt := createShirt(t, svc)

	assert.Contains(t, shirt.ID, "prod_")
	assert.Equal(t, "blue-shirt", shirt.Handle)
	assert.Equal(t, "published", shirt.Status)
	require.Len(t, shirt.Variants, 2)
	assert.True(t, shirt.Variants[0].ManageInventory)
	assert.Equal(t, shirt.ID, shirt.Variants[0].ProductID)

	created := events.named("product.created")
	require.Len(t, created, 1)
	assert.Equal(t, map[string]any{"id": shirt.ID}, created[0].Data)

	none, err := svc.Create(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestService_RetrieveAndList(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)
	shirt := createShirt(t, svc)

	got, err := svc.Retrieve(ctx, shirt.ID, &shared.FindConfig{Relations: []string{"variants", "options"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Blue Shirt", got.Title)
	assert.Len(t, got.Variants, 2)
	assert.Len(t, got.Options, 1)

	_, err = svc.Retrieve(ctx, "prod_missing", nil, nil)
	require.ErrorIs(t, err, shared.ErrNotFound)
	assert.Equal(t, "Product with id: prod_missing was not found", err.Error())

	variants, count, err := svc.ListAndCountVariants(ctx, shared.Filters{"product_id": shirt.ID}, &shared.FindConfig{
		Order: map[string]shared.OrderDirection{"variant_rank": shared.OrderDesc},
		Take:  1,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	require.Len(t, variants, 1)
	assert.Equal(t, "M", variants[0].Title)

	variant, err := svc.RetrieveVariant(ctx, variants[0].ID, &shared.FindConfig{Relations: []string{"product"}}, nil)
	require.NoError(t, err)
	require.NotNil(t, variant.Product)
	assert.Equal(t, shirt.ID, variant.Product.ID)

	categories, err := svc.ListCategories(ctx, nil, nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestService_SoftDeleteAndRestore(t *testing.T) {
	ctx := context.Background()
	svc, events, _ := newTestService(t)
	shirt := createShirt(t, svc)

	keys, err := svc.SoftDelete(ctx, modulesdk.IDs(shirt.ID), modulesdk.ReturnKeys(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{shirt.ID}, keys["product_id"])
	assert.ElementsMatch(t, []string{shirt.Variants[0].ID, shirt.Variants[1].ID}, keys["variant_id"])
	assert.Len(t, keys["product_option_id"], 1)

	deleted := events.named("product.deleted")
	require.Len(t, deleted, 1)
	assert.Equal(t, map[string]any{"id": shirt.ID}, deleted[0].Data)

	products, err := svc.List(ctx, nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, products)

	variants, err := svc.ListVariants(ctx, nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, variants)

	restored, err := svc.Restore(ctx, modulesdk.IDs(shirt.ID), modulesdk.ReturnKeys("variant_id"), nil)
	require.NoError(t, err)
	assert.Len(t, restored, 1)
	assert.Len(t, restored["variant_id"], 2)
	assert.Len(t, events.named("product.deleted"), 1)

	variants, err = svc.ListVariants(ctx, shared.Filters{"product_id": shirt.ID}, nil, nil)
	require.NoError(t, err)
	assert.Len(t, variants, 2)

	t.Run("without linkable keys requested", func(t *testing.T) {
		keys, err := svc.SoftDelete(ctx, modulesdk.IDs(shirt.ID), nil, nil)
		require.NoError(t, err)
		assert.Nil(t, keys)
	})
}

func TestService_DeleteVariants(t *testing.T) {
	ctx := context.Background()
	svc, events, db := newTestService(t)
	shirt := createShirt(t, svc)

	require.NoError(t, svc.DeleteVariants(ctx, modulesdk.IDs(shirt.Variants[0].ID), nil))

	var count int64
	require.NoError(t, db.Unscoped().Model(&models.ProductVariant{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	deleted := events.named("product-variant.deleted")
	require.Len(t, deleted, 1)
	assert.Equal(t, map[string]any{"id": shirt.Variants[0].ID}, deleted[0].Data)
}

func TestService_SecondaryEntities(t *testing.T) {
	ctx := context.Background()
	svc, events, db := newTestService(t)

	require.NoError(t, db.Create(&models.ProductTag{Value: "summer"}).Error)
	require.NoError(t, db.Create(&models.ProductCollection{Title: "Spring", Handle: "spring"}).Error)

	tags, err := svc.ListProductTags(ctx, shared.Filters{"value": "summer"}, nil, nil)
	require.NoError(t, err)
	require.Len(t, tags, 1)

	keys, err := svc.SoftDeleteProductTags(ctx, modulesdk.IDs(tags[0].ID), modulesdk.ReturnKeys(), nil)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"product_tag_id": {tags[0].ID}}, keys)
	assert.Len(t, events.named("product-tag.deleted"), 1)

	_, err = svc.RestoreProductTags(ctx, modulesdk.IDs(tags[0].ID), nil, nil)
	require.NoError(t, err)

	collections, count, err := svc.ListAndCountCollections(ctx, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	collection, err := svc.RetrieveCollection(ctx, collections[0].ID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "spring", collection.Handle)
}

func TestService_CategoryCascade(t *testing.T) {
	ctx := context.Background()
	svc, _, db := newTestService(t)

	parent := models.ProductCategory{Name: "Clothing", Handle: "clothing"}
	require.NoError(t, db.Create(&parent).Error)
	child := models.ProductCategory{Name: "Shirts", Handle: "shirts", ParentCategoryID: &parent.ID}
	require.NoError(t, db.Create(&child).Error)

	keys, err := svc.SoftDeleteCategories(ctx, modulesdk.IDs(parent.ID), modulesdk.ReturnKeys(), nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{parent.ID, child.ID}, keys["product_category_id"])

	remaining, err := svc.ListCategories(ctx, nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestService_SharedTransaction(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)
	shirt := createShirt(t, svc)

	err := modulesdk.WithTransaction(ctx, svc.BaseRepository(), nil, func(sc *modulesdk.Context) error {
		if _, err := svc.SoftDeleteVariants(ctx, modulesdk.IDs(shirt.Variants[0].ID), nil, sc); err != nil {
			return err
		}
		if _, err := svc.SoftDeleteOptions(ctx, modulesdk.IDs(shirt.Options[0].ID), nil, sc); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	variants, err := svc.ListVariants(ctx, nil, nil, nil)
	require.NoError(t, err)
	assert.Len(t, variants, 2)

	options, err := svc.ListOptions(ctx, nil, nil, nil)
	require.NoError(t, err)
	assert.Len(t, options, 1)
}
