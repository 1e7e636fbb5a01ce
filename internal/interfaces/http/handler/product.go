package handler

import (
	"context"

	"github.com/aeshevdaniyar/medusa/internal/application/modulesdk"
	"github.com/aeshevdaniyar/medusa/internal/application/product"
	"github.com/aeshevdaniyar/medusa/internal/domain/shared"
	"github.com/aeshevdaniyar/medusa/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ProductService is the part of the product module the admin API uses
type ProductService interface {
	Create(ctx context.Context, data []product.CreateProductDTO, sc *modulesdk.Context) ([]product.ProductDTO, error)
	Retrieve(ctx context.Context, id string, cfg *shared.FindConfig, sc *modulesdk.Context) (*product.ProductDTO, error)
	ListAndCount(ctx context.Context, filters shared.Filters, cfg *shared.FindConfig, sc *modulesdk.Context) ([]product.ProductDTO, int64, error)
	Delete(ctx context.Context, keys []modulesdk.PrimaryKey, sc *modulesdk.Context) error
	SoftDelete(ctx context.Context, keys []modulesdk.PrimaryKey, cfg *modulesdk.SoftDeleteConfig, sc *modulesdk.Context) (map[string][]string, error)
	Restore(ctx context.Context, keys []modulesdk.PrimaryKey, cfg *modulesdk.SoftDeleteConfig, sc *modulesdk.Context) (map[string][]string, error)

	RetrieveVariant(ctx context.Context, id string, cfg *shared.FindConfig, sc *modulesdk.Context) (*product.ProductVariantDTO, error)
	ListAndCountVariants(ctx context.Context, filters shared.Filters, cfg *shared.FindConfig, sc *modulesdk.Context) ([]product.ProductVariantDTO, int64, error)
	DeleteVariants(ctx context.Context, keys []modulesdk.PrimaryKey, sc *modulesdk.Context) error
	SoftDeleteVariants(ctx context.Context, keys []modulesdk.PrimaryKey, cfg *modulesdk.SoftDeleteConfig, sc *modulesdk.Context) (map[string][]string, error)
	RestoreVariants(ctx context.Context, keys []modulesdk.PrimaryKey, cfg *modulesdk.SoftDeleteConfig, sc *modulesdk.Context) (map[string][]string, error)
}

// Object names reported by delete responses
const (
	objectProduct = "product"
	objectVariant = "product_variant"
)

// ProductHandler serves the product admin routes
type ProductHandler struct {
	BaseHandler
	service ProductService
}

// NewProductHandler creates a ProductHandler
func NewProductHandler(service ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// RegisterRoutes registers the product routes on rg
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	products.GET("", h.List)
	products.POST("", h.Create)
	products.DELETE("", h.DeleteBatch)
	products.GET("/:id", h.Get)
	products.DELETE("/:id", h.SoftDelete)
	products.POST("/:id/restore", h.Restore)
	products.GET("/:id/variants", h.ListVariants)

	variants := rg.Group("/variants")
	variants.GET("/:id", h.GetVariant)
	variants.DELETE("/:id", h.DeleteVariant)
	variants.POST("/:id/archive", h.SoftDeleteVariant)
	variants.POST("/:id/restore", h.RestoreVariant)
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindError(c, err)
		return
	}
	var filters ProductFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		h.BindError(c, err)
		return
	}

	cfg := query.FindConfig()
	products, count, err := h.service.ListAndCount(c.Request.Context(), filters.Filters(), cfg, nil)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.BaseHandler.List(c, products, count, cfg)
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req product.CreateProductDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), []product.CreateProductDTO{req}, nil)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created[0])
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	var query dto.RetrieveQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindError(c, err)
		return
	}

	p, err := h.service.Retrieve(c.Request.Context(), c.Param("id"), query.FindConfig(), nil)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// DeleteBatch handles DELETE /products, permanently deleting the listed products
func (h *ProductHandler) DeleteBatch(c *gin.Context) {
	var req dto.IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), modulesdk.IDs(req.IDs...), nil); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.DeleteResponse{IDs: req.IDs, Object: objectProduct, Deleted: true})
}

// SoftDelete handles DELETE /products/:id
func (h *ProductHandler) SoftDelete(c *gin.Context) {
	h.toggle(c, objectProduct, true, h.service.SoftDelete)
}

// Restore handles POST /products/:id/restore
func (h *ProductHandler) Restore(c *gin.Context) {
	h.toggle(c, objectProduct, false, h.service.Restore)
}

// ListVariants handles GET /products/:id/variants
func (h *ProductHandler) ListVariants(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindError(c, err)
		return
	}
	var filters VariantFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		h.BindError(c, err)
		return
	}

	cfg := query.FindConfig()
	variants, count, err := h.service.ListAndCountVariants(c.Request.Context(), filters.Filters(c.Param("id")), cfg, nil)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.BaseHandler.List(c, variants, count, cfg)
}

// GetVariant handles GET /variants/:id
func (h *ProductHandler) GetVariant(c *gin.Context) {
	var query dto.RetrieveQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindError(c, err)
		return
	}

	v, err := h.service.RetrieveVariant(c.Request.Context(), c.Param("id"), query.FindConfig(), nil)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, v)
}

// DeleteVariant handles DELETE /variants/:id
func (h *ProductHandler) DeleteVariant(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteVariants(c.Request.Context(), modulesdk.IDs(id), nil); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.DeleteResponse{IDs: []string{id}, Object: objectVariant, Deleted: true})
}

// SoftDeleteVariant handles POST /variants/:id/archive
func (h *ProductHandler) SoftDeleteVariant(c *gin.Context) {
	h.toggle(c, objectVariant, true, h.service.SoftDeleteVariants)
}

// RestoreVariant handles POST /variants/:id/restore
func (h *ProductHandler) RestoreVariant(c *gin.Context) {
	h.toggle(c, objectVariant, false, h.service.RestoreVariants)
}

type toggleFunc func(ctx context.Context, keys []modulesdk.PrimaryKey, cfg *modulesdk.SoftDeleteConfig, sc *modulesdk.Context) (map[string][]string, error)

// toggle runs a soft delete or restore of the :id record
func (h *ProductHandler) toggle(c *gin.Context, object string, deleted bool, fn toggleFunc) {
	var query dto.SoftDeleteQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindError(c, err)
		return
	}

	var cfg *modulesdk.SoftDeleteConfig
	if keys := query.Keys(); keys != nil {
		cfg = &modulesdk.SoftDeleteConfig{ReturnLinkableKeys: keys}
	}

	id := c.Param("id")
	linkable, err := fn(c.Request.Context(), modulesdk.IDs(id), cfg, nil)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.DeleteResponse{
		IDs:          []string{id},
		Object:       object,
		Deleted:      deleted,
		LinkableKeys: linkable,
	})
}
