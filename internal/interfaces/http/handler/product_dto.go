package handler

import "github.com/aeshevdaniyar/medusa/internal/domain/shared"

// ProductFilters are the filter parameters of GET /admin/products
type ProductFilters struct {
	ID           []string `form:"id"`
	Handle       string   `form:"handle"`
	Status       []string `form:"status" binding:"dive,oneof=draft proposed published rejected"`
	CollectionID string   `form:"collection_id"`
	TypeID       string   `form:"type_id"`
	IsGiftcard   *bool    `form:"is_giftcard"`
}

// Filters converts the set parameters into service filters
func (f ProductFilters) Filters() shared.Filters {
	filters := shared.Filters{}
	if len(f.ID) > 0 {
		filters["id"] = f.ID
	}
	if f.Handle != "" {
		filters["handle"] = f.Handle
	}
	if len(f.Status) > 0 {
		filters["status"] = f.Status
	}
	if f.CollectionID != "" {
		filters["collection_id"] = f.CollectionID
	}
	if f.TypeID != "" {
		filters["type_id"] = f.TypeID
	}
	if f.IsGiftcard != nil {
		filters["is_giftcard"] = *f.IsGiftcard
	}
	return filters
}

// VariantFilters are the filter parameters of GET /admin/products/:id/variants
type VariantFilters struct {
	ID  []string `form:"id"`
	SKU string   `form:"sku"`
}

// Filters converts the set parameters into service filters scoped to productID
func (f VariantFilters) Filters(productID string) shared.Filters {
	filters := shared.Filters{"product_id": productID}
	if len(f.ID) > 0 {
		filters["id"] = f.ID
	}
	if f.SKU != "" {
		filters["sku"] = f.SKU
	}
	return filters
}
