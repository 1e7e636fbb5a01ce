package product

import (
	"time"
)

// ProductDTO is the serialized form of a product
type ProductDTO struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Handle       string                `json:"handle"`
	Subtitle     *string               `json:"subtitle"`
	Description  *string               `json:"description"`
	Status       string                `json:"status"`
	IsGiftcard   bool                  `json:"is_giftcard"`
	Thumbnail    *string               `json:"thumbnail"`
	TypeID       *string               `json:"type_id"`
	Type         *ProductTypeDTO       `json:"type,omitempty"`
	CollectionID *string               `json:"collection_id"`
	Collection   *ProductCollectionDTO `json:"collection,omitempty"`
	Variants     []ProductVariantDTO   `json:"variants,omitempty"`
	Options      []ProductOptionDTO    `json:"options,omitempty"`
	Tags         []ProductTagDTO       `json:"tags,omitempty"`
	Categories   []ProductCategoryDTO  `json:"categories,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	DeletedAt    *time.Time            `json:"deleted_at"`
}

// ProductVariantDTO is the serialized form of a product variant
type ProductVariantDTO struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	SKU             *string     `json:"sku"`
	Barcode         *string     `json:"barcode"`
	ManageInventory bool        `json:"manage_inventory"`
	AllowBackorder  bool        `json:"allow_backorder"`
	VariantRank     int         `json:"variant_rank"`
	ProductID       string      `json:"product_id"`
	Product         *ProductDTO `json:"product,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	DeletedAt       *time.Time  `json:"deleted_at"`
}

// ProductOptionDTO is the serialized form of a product option
type ProductOptionDTO struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	ProductID string      `json:"product_id"`
	Product   *ProductDTO `json:"product,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	DeletedAt *time.Time  `json:"deleted_at"`
}

// ProductTagDTO is the serialized form of a product tag
type ProductTagDTO struct {
	ID        string     `json:"id"`
	Value     string     `json:"value"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

// ProductTypeDTO is the serialized form of a product type
type ProductTypeDTO struct {
	ID        string     `json:"id"`
	Value     string     `json:"value"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

// ProductCollectionDTO is the serialized form of a product collection
type ProductCollectionDTO struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Handle    string       `json:"handle"`
	Products  []ProductDTO `json:"products,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	DeletedAt *time.Time   `json:"deleted_at"`
}

// ProductCategoryDTO is the serialized form of a product category
type ProductCategoryDTO struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Handle           string               `json:"handle"`
	Description      string               `json:"description"`
	IsActive         bool                 `json:"is_active"`
	IsInternal       bool                 `json:"is_internal"`
	Rank             int                  `json:"rank"`
	ParentCategoryID *string              `json:"parent_category_id"`
	ParentCategory   *ProductCategoryDTO  `json:"parent_category,omitempty"`
	CategoryChildren []ProductCategoryDTO `json:"category_children,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
	DeletedAt        *time.Time           `json:"deleted_at"`
}

// CreateProductDTO is the input of Service.Create
type CreateProductDTO struct {
	Title        string                    `json:"title" binding:"required,max=255"`
	Handle       string                    `json:"handle" binding:"omitempty,max=255"`
	Subtitle     *string                   `json:"subtitle"`
	Description  *string                   `json:"description"`
	Status       string                    `json:"status" binding:"omitempty,oneof=draft proposed published rejected"`
	IsGiftcard   bool                      `json:"is_giftcard"`
	Thumbnail    *string                   `json:"thumbnail"`
	TypeID       *string                   `json:"type_id"`
	CollectionID *string                   `json:"collection_id"`
	Options      []CreateProductOptionDTO  `json:"options" binding:"dive"`
	Variants     []CreateProductVariantDTO `json:"variants" binding:"dive"`
}

// CreateProductOptionDTO describes an option created with its product
type CreateProductOptionDTO struct {
	Title string `json:"title" binding:"required"`
}

// CreateProductVariantDTO describes a variant created with its product
type CreateProductVariantDTO struct {
	Title           string  `json:"title" binding:"required"`
	SKU             *string `json:"sku"`
	Barcode         *string `json:"barcode"`
	ManageInventory *bool   `json:"manage_inventory"`
	AllowBackorder  bool    `json:"allow_backorder"`
	VariantRank     int     `json:"variant_rank"`
}
