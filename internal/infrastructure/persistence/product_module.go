package persistence

import (
	"github.com/aeshevdaniyar/medusa/internal/application/modulesdk"
	"github.com/aeshevdaniyar/medusa/internal/infrastructure/persistence/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RegisterProductModule registers the base repository and the entity
// services of the product module in c
func RegisterProductModule(c *modulesdk.Container, db *gorm.DB, logger *zap.Logger) *modulesdk.Container {
	if logger == nil {
		logger = zap.NewNop()
	}

	c.Register(modulesdk.BaseRepositoryKey, NewBaseRepository(db))

	register := func(name string, svc any) {
		c.Register(modulesdk.Model(name).RegistrationName(), svc)
	}

	register("Product", NewEntityService[models.Product](db, EntityConfig{
		Name: "Product",
		Cascades: []Cascade{
			{Entity: "ProductVariant", Model: &models.ProductVariant{}, ForeignKey: "product_id"},
			{Entity: "ProductOption", Model: &models.ProductOption{}, ForeignKey: "product_id"},
		},
	}, logger))
	register("ProductVariant", NewEntityService[models.ProductVariant](db, EntityConfig{Name: "ProductVariant"}, logger))
	register("ProductOption", NewEntityService[models.ProductOption](db, EntityConfig{Name: "ProductOption"}, logger))
	register("ProductTag", NewEntityService[models.ProductTag](db, EntityConfig{Name: "ProductTag"}, logger))
	register("ProductType", NewEntityService[models.ProductType](db, EntityConfig{Name: "ProductType"}, logger))
	register("ProductCollection", NewEntityService[models.ProductCollection](db, EntityConfig{Name: "ProductCollection"}, logger))
	register("ProductCategory", NewEntityService[models.ProductCategory](db, EntityConfig{
		Name: "ProductCategory",
		Cascades: []Cascade{
			{Entity: "ProductCategory", Model: &models.ProductCategory{}, ForeignKey: "parent_category_id"},
		},
	}, logger))

	return c
}
