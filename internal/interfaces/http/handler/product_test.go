package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aeshevdaniyar/medusa/internal/application/modulesdk"
	"github.com/aeshevdaniyar/medusa/internal/application/product"
	"github.com/aeshevdaniyar/medusa/internal/domain/shared"
	"github.com/aeshevdaniyar/medusa/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductService implements ProductService for testing
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Create(ctx context.Context, data []product.CreateProductDTO, sc *modulesdk.Context) ([]product.ProductDTO, error) {
	args := m.Called(ctx, data, sc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.ProductDTO), args.Error(1)
}

func (m *MockProductService) Retrieve(ctx context.Context, id string, cfg *shared.FindConfig, sc *modulesdk.Context) (*product.ProductDTO, error) {
	args := m.Called(ctx, id, cfg, sc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.ProductDTO), args.Error(1)
}

func (m *MockProductService) ListAndCount(ctx context.Context, filters shared.Filters, cfg *shared.FindConfig, sc *modulesdk.Context) ([]product.ProductDTO, int64, error) {
	args := m.Called(ctx, filters, cfg, sc)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]product.ProductDTO), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductService) Delete(ctx context.Context, keys []modulesdk.PrimaryKey, sc *modulesdk.Context) error {
	return m.Called(ctx, keys, sc).Error(0)
}

func (m *MockProductService) SoftDelete(ctx context.Context, keys []modulesdk.PrimaryKey, cfg *modulesdk.SoftDeleteConfig, sc *modulesdk.Context) (map[string][]string, error) {
	args := m.Called(ctx, keys, cfg, sc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]string), args.Error(1)
}

func (m *MockProductService) Restore(ctx context.Context, keys []modulesdk.PrimaryKey, cfg *modulesdk.SoftDeleteConfig, sc *modulesdk.Context) (map[string][]string, error) {
	args := m.Called(ctx, keys, cfg, sc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]string), args.Error(1)
}

func (m *MockProductService) RetrieveVariant(ctx context.Context, id string, cfg *shared.FindConfig, sc *modulesdk.Context) (*product.ProductVariantDTO, error) {
	args := m.Called(ctx, id, cfg, sc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.ProductVariantDTO), args.Error(1)
}

func (m *MockProductService) ListAndCountVariants(ctx context.Context, filters shared.Filters, cfg *shared.FindConfig, sc *modulesdk.Context) ([]product.ProductVariantDTO, int64, error) {
	args := m.Called(ctx, filters, cfg, sc)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]product.ProductVariantDTO), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductService) DeleteVariants(ctx context.Context, keys []modulesdk.PrimaryKey, sc *modulesdk.Context) error {
	return m.Called(ctx, keys, sc).Error(0)
}

func (m *MockProductService) SoftDeleteVariants(ctx context.Context, keys []modulesdk.PrimaryKey, cfg *modulesdk.SoftDeleteConfig, sc *modulesdk.Context) (map[string][]string, error) {
	args := m.Called(ctx, keys, cfg, sc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]string), args.Error(1)
}

func (m *MockProductService) RestoreVariants(ctx context.Context, keys []modulesdk.PrimaryKey, cfg *modulesdk.SoftDeleteConfig, sc *modulesdk.Context) (map[string][]string, error) {
	args := m.Called(ctx, keys, cfg, sc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]string), args.Error(1)
}

var noContext = (*modulesdk.Context)(nil)

func setupProductRouter(svc ProductService) *gin.Engine {
	r := setupTestRouter()
	NewProductHandler(svc).RegisterRoutes(r.Group("/admin"))
	return r
}

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProductHandler_List(t *testing.T) {
	svc := new(MockProductService)
	r := setupProductRouter(svc)

	wantFilters := shared.Filters{"id": []string{"prod_1", "prod_2"}, "status": []string{"draft"}}
	wantCfg := &shared.FindConfig{
		Skip:  5,
		Take:  10,
		Order: map[string]shared.OrderDirection{"created_at": shared.OrderDesc},
	}
	svc.On("ListAndCount", mock.Anything, wantFilters, wantCfg, noContext).
		Return([]product.ProductDTO{{ID: "prod_1"}, {ID: "prod_2"}}, int64(12), nil)

	w := serve(r, http.MethodGet, "/admin/products?id=prod_1&id=prod_2&status=draft&offset=5&limit=10&order=-created_at", "")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, &dto.Meta{Count: 12, Offset: 5, Limit: 10}, resp.Meta)
	assert.Len(t, resp.Data, 2)
	svc.AssertExpectations(t)
}

func TestProductHandler_List_InvalidStatus(t *testing.T) {
	svc := new(MockProductService)
	r := setupProductRouter(svc)

	w := serve(r, http.MethodGet, "/admin/products?status=archived", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	svc.AssertNotCalled(t, "ListAndCount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProductHandler_Create(t *testing.T) {
	svc := new(MockProductService)
	r := setupProductRouter(svc)

	svc.On("Create", mock.Anything, []product.CreateProductDTO{{Title: "Shirt"}}, noContext).
		Return([]product.ProductDTO{{ID: "prod_1", Title: "Shirt", Handle: "shirt"}}, nil)

	w := serve(r, http.MethodPost, "/admin/products", `{"title":"Shirt"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"handle":"shirt"`)
	svc.AssertExpectations(t)
}

func TestProductHandler_Create_Invalid(t *testing.T) {
	svc := new(MockProductService)
	r := setupProductRouter(svc)

	t.Run("malformed json", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/admin/products", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeBadRequest, decodeResponse(t, w).Error.Code)
	})

	t.Run("missing title", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/admin/products", `{"handle":"shirt"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		assert.NotEmpty(t, resp.Error.Details)
	})

	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductHandler_Get(t *testing.T) {
	svc := new(MockProductService)
	r := setupProductRouter(svc)

	svc.On("Retrieve", mock.Anything, "prod_1", &shared.FindConfig{Relations: []string{"variants"}}, noContext).
		Return(&product.ProductDTO{ID: "prod_1"}, nil)
	svc.On("Retrieve", mock.Anything, "prod_404", mock.Anything, noContext).
		Return(nil, shared.NewNotFoundError("Product with id: prod_404 was not found"))

	w := serve(r, http.MethodGet, "/admin/products/prod_1?expand=variants", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodGet, "/admin/products/prod_404", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product with id: prod_404 was not found", decodeResponse(t, w).Error.Message)

	svc.AssertExpectations(t)
}

func TestProductHandler_SoftDelete(t *testing.T) {
	t.Run("every linkable key", func(t *testing.T) {
		svc := new(MockProductService)
		r := setupProductRouter(svc)

		everyKey := mock.MatchedBy(func(cfg *modulesdk.SoftDeleteConfig) bool {
			return cfg != nil && cfg.ReturnLinkableKeys != nil && len(cfg.ReturnLinkableKeys) == 0
		})
		svc.On("SoftDelete", mock.Anything, modulesdk.IDs("prod_1"), everyKey, noContext).
			Return(map[string][]string{"product_id": {"prod_1"}, "variant_id": {"variant_1"}}, nil)

		w := serve(r, http.MethodDelete, "/admin/products/prod_1?return_linkable_keys=*", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"linkable_keys":{"product_id":["prod_1"],"variant_id":["variant_1"]}`)
		assert.Contains(t, w.Body.String(), `"deleted":true`)
		svc.AssertExpectations(t)
	})

	t.Run("no linkable keys requested", func(t *testing.T) {
		svc := new(MockProductService)
		r := setupProductRouter(svc)

		svc.On("SoftDelete", mock.Anything, modulesdk.IDs("prod_1"), (*modulesdk.SoftDeleteConfig)(nil), noContext).
			Return(nil, nil)

		w := serve(r, http.MethodDelete, "/admin/products/prod_1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "linkable_keys")
		svc.AssertExpectations(t)
	})
}

func TestProductHandler_Restore(t *testing.T) {
	svc := new(MockProductService)
	r := setupProductRouter(svc)

	svc.On("Restore", mock.Anything, modulesdk.IDs("prod_1"), modulesdk.ReturnKeys("product_id"), noContext).
		Return(map[string][]string{"product_id": {"prod_1"}}, nil)

	w := serve(r, http.MethodPost, "/admin/products/prod_1/restore?return_linkable_keys=product_id", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":false`)
	svc.AssertExpectations(t)
}

func TestProductHandler_DeleteBatch(t *testing.T) {
	svc := new(MockProductService)
	r := setupProductRouter(svc)

	svc.On("Delete", mock.Anything, modulesdk.IDs("prod_1", "prod_2"), noContext).Return(nil)

	w := serve(r, http.MethodDelete, "/admin/products", `{"ids":["prod_1","prod_2"]}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodDelete, "/admin/products", `{"ids":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.AssertExpectations(t)
	svc.AssertNumberOfCalls(t, "Delete", 1)
}

func TestProductHandler_Variants(t *testing.T) {
	svc := new(MockProductService)
	r := setupProductRouter(svc)

	svc.On("ListAndCountVariants", mock.Anything, shared.Filters{"product_id": "prod_1", "sku": "SHIRT-S"}, mock.Anything, noContext).
		Return([]product.ProductVariantDTO{{ID: "variant_1", ProductID: "prod_1"}}, int64(1), nil)
	svc.On("RetrieveVariant", mock.Anything, "variant_1", mock.Anything, noContext).
		Return(&product.ProductVariantDTO{ID: "variant_1"}, nil)
	svc.On("DeleteVariants", mock.Anything, modulesdk.IDs("variant_1"), noContext).Return(nil)
	svc.On("SoftDeleteVariants", mock.Anything, modulesdk.IDs("variant_1"), (*modulesdk.SoftDeleteConfig)(nil), noContext).
		Return(nil, nil)
	svc.On("RestoreVariants", mock.Anything, modulesdk.IDs("variant_1"), (*modulesdk.SoftDeleteConfig)(nil), noContext).
		Return(nil, nil)

	w := serve(r, http.MethodGet, "/admin/products/prod_1/variants?sku=SHIRT-S", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), decodeResponse(t, w).Meta.Count)

	w = serve(r, http.MethodGet, "/admin/variants/variant_1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodPost, "/admin/variants/variant_1/archive", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodPost, "/admin/variants/variant_1/restore", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodDelete, "/admin/variants/variant_1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"object":"product_variant"`)

	svc.AssertExpectations(t)
}
