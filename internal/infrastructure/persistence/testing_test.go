package persistence

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aeshevdaniyar/medusa/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB creates a postgres GORM connection backed by sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

// newSQLiteDB creates a migrated in-memory database private to the test
func newSQLiteDB(t *testing.T) *gorm.DB {
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

func newProductEntityService(db *gorm.DB) *EntityService[models.Product] {
	return NewEntityService[models.Product](db, EntityConfig{
		Name: "Product",
		Cascades: []Cascade{
			{Entity: "ProductVariant", Model: &models.ProductVariant{}, ForeignKey: "product_id"},
			{Entity: "ProductOption", Model: &models.ProductOption{}, ForeignKey: "product_id"},
		},
	}, nil)
}

func strPtr(s string) *string {
	return &s
}

// seedProducts creates two products, the first with two variants and an option
func seedProducts(t *testing.T, db *gorm.DB) []models.Product {
	products := []models.Product{
		{
			Title:  "Shirt",
			Handle: "shirt",
			Status: models.ProductStatusPublished,
			Variants: []models.ProductVariant{
				{Title: "S", SKU: strPtr("SHIRT-S")},
				{Title: "M", SKU: strPtr("SHIRT-M"), VariantRank: 1},
			},
			Options: []models.ProductOption{{Title: "Size"}},
		},
		{Title: "Hat", Handle: "hat"},
	}
	require.NoError(t, db.Create(&products).Error)
	return products
}
