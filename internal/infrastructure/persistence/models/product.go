package models

import (
	"gorm.io/gorm"
)

// ID prefixes
const (
	ProductIDPrefix           = "prod"
	ProductVariantIDPrefix    = "variant"
	ProductOptionIDPrefix     = "opt"
	ProductTagIDPrefix        = "ptag"
	ProductTypeIDPrefix       = "ptyp"
	ProductCollectionIDPrefix = "pcol"
	ProductCategoryIDPrefix   = "pcat"
)

// ProductStatus is the publication state of a product
type ProductStatus string

const (
	ProductStatusDraft     ProductStatus = "draft"
	ProductStatusProposed  ProductStatus = "proposed"
	ProductStatusPublished ProductStatus = "published"
	ProductStatusRejected  ProductStatus = "rejected"
)

// Product is the main entity of the product module
type Product struct {
	BaseModel
	Title        string             `gorm:"type:varchar(255);not null" json:"title" validate:"required,max=255"`
	Handle       string             `gorm:"type:varchar(255);uniqueIndex" json:"handle" validate:"omitempty,max=255"`
	Subtitle     *string            `gorm:"type:varchar(255)" json:"subtitle"`
	Description  *string            `gorm:"type:text" json:"description"`
	Status       ProductStatus      `gorm:"type:varchar(20);not null;default:'draft'" json:"status" validate:"omitempty,oneof=draft proposed published rejected"`
	IsGiftcard   bool               `gorm:"not null;default:false" json:"is_giftcard"`
	Thumbnail    *string            `gorm:"type:text" json:"thumbnail"`
	TypeID       *string            `gorm:"type:varchar(64);index" json:"type_id"`
	Type         *ProductType       `gorm:"foreignKey:TypeID" json:"type,omitempty"`
	CollectionID *string            `gorm:"type:varchar(64);index" json:"collection_id"`
	Collection   *ProductCollection `gorm:"foreignKey:CollectionID" json:"collection,omitempty"`
	Variants     []ProductVariant   `gorm:"foreignKey:ProductID" json:"variants,omitempty" validate:"dive"`
	Options      []ProductOption    `gorm:"foreignKey:ProductID" json:"options,omitempty" validate:"dive"`
	Tags         []ProductTag       `gorm:"many2many:product_tags;joinForeignKey:ProductID;joinReferences:ProductTagID" json:"tags,omitempty"`
	Categories   []ProductCategory  `gorm:"many2many:product_category_product;joinForeignKey:ProductID;joinReferences:ProductCategoryID" json:"categories,omitempty"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "product"
}

// BeforeCreate assigns the product id
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	p.ensureID(ProductIDPrefix)
	if p.Status == "" {
		p.Status = ProductStatusDraft
	}
	return nil
}

// ProductVariant is a purchasable variation of a product
type ProductVariant struct {
	BaseModel
	Title           string   `gorm:"type:varchar(255);not null" json:"title" validate:"required,max=255"`
	SKU             *string  `gorm:"type:varchar(255);uniqueIndex" json:"sku"`
	Barcode         *string  `gorm:"type:varchar(255)" json:"barcode"`
	ManageInventory bool     `gorm:"not null" json:"manage_inventory"`
	AllowBackorder  bool     `gorm:"not null;default:false" json:"allow_backorder"`
	VariantRank     int      `gorm:"not null;default:0" json:"variant_rank"`
	ProductID       string   `gorm:"type:varchar(64);index" json:"product_id"`
	Product         *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName returns the table name for GORM
func (ProductVariant) TableName() string {
	return "product_variant"
}

// BeforeCreate assigns the variant id
func (v *ProductVariant) BeforeCreate(tx *gorm.DB) error {
	v.ensureID(ProductVariantIDPrefix)
	return nil
}

// ProductOption is a configurable dimension of a product, e.g. "Size"
type ProductOption struct {
	BaseModel
	Title     string   `gorm:"type:varchar(255);not null" json:"title" validate:"required,max=255"`
	ProductID string   `gorm:"type:varchar(64);index" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName returns the table name for GORM
func (ProductOption) TableName() string {
	return "product_option"
}

// BeforeCreate assigns the option id
func (o *ProductOption) BeforeCreate(tx *gorm.DB) error {
	o.ensureID(ProductOptionIDPrefix)
	return nil
}

// ProductTag labels products
type ProductTag struct {
	BaseModel
	Value string `gorm:"type:varchar(255);not null" json:"value" validate:"required"`
}

// TableName returns the table name for GORM
func (ProductTag) TableName() string {
	return "product_tag"
}

// BeforeCreate assigns the tag id
func (t *ProductTag) BeforeCreate(tx *gorm.DB) error {
	t.ensureID(ProductTagIDPrefix)
	return nil
}

// ProductType classifies products
type ProductType struct {
	BaseModel
	Value string `gorm:"type:varchar(255);not null" json:"value" validate:"required"`
}

// TableName returns the table name for GORM
func (ProductType) TableName() string {
	return "product_type"
}

// BeforeCreate assigns the type id
func (t *ProductType) BeforeCreate(tx *gorm.DB) error {
	t.ensureID(ProductTypeIDPrefix)
	return nil
}

// ProductCollection groups products for merchandising
type ProductCollection struct {
	BaseModel
	Title    string    `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Handle   string    `gorm:"type:varchar(255);uniqueIndex" json:"handle"`
	Products []Product `gorm:"foreignKey:CollectionID" json:"products,omitempty"`
}

// TableName returns the table name for GORM
func (ProductCollection) TableName() string {
	return "product_collection"
}

// BeforeCreate assigns the collection id
func (c *ProductCollection) BeforeCreate(tx *gorm.DB) error {
	c.ensureID(ProductCollectionIDPrefix)
	return nil
}

// ProductCategory is a node of the category tree
type ProductCategory struct {
	BaseModel
	Name             string            `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Handle           string            `gorm:"type:varchar(255);uniqueIndex" json:"handle"`
	Description      string            `gorm:"type:text;not null;default:''" json:"description"`
	IsActive         bool              `gorm:"not null;default:false" json:"is_active"`
	IsInternal       bool              `gorm:"not null;default:false" json:"is_internal"`
	Rank             int               `gorm:"not null;default:0" json:"rank"`
	ParentCategoryID *string           `gorm:"type:varchar(64);index" json:"parent_category_id"`
	ParentCategory   *ProductCategory  `gorm:"foreignKey:ParentCategoryID" json:"parent_category,omitempty"`
	CategoryChildren []ProductCategory `gorm:"foreignKey:ParentCategoryID" json:"category_children,omitempty"`
	Products         []Product         `gorm:"many2many:product_category_product;joinForeignKey:ProductCategoryID;joinReferences:ProductID" json:"products,omitempty"`
}

// TableName returns the table name for GORM
func (ProductCategory) TableName() string {
	return "product_category"
}

// BeforeCreate assigns the category id
func (c *ProductCategory) BeforeCreate(tx *gorm.DB) error {
	c.ensureID(ProductCategoryIDPrefix)
	return nil
}

// All returns every model of the product module, in dependency order
func All() []any {
	return []any{
		&ProductType{},
		&ProductCollection{},
		&ProductCategory{},
		&ProductTag{},
		&Product{},
		&ProductOption{},
		&ProductVariant{},
	}
}
