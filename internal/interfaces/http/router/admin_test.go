package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aeshevdaniyar/medusa/internal/application/modulesdk"
	"github.com/aeshevdaniyar/medusa/internal/application/product"
	"github.com/aeshevdaniyar/medusa/internal/infrastructure/persistence"
	"github.com/aeshevdaniyar/medusa/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    *struct {
		Count int64 `json:"count"`
	} `json:"meta"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newAdminEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	database := &persistence.Database{DB: db}
	require.NoError(t, database.AutoMigrate())

	container := persistence.RegisterProductModule(modulesdk.NewContainer(), db, zap.NewNop())
	svc, err := product.NewService(container, zap.NewNop())
	require.NoError(t, err)

	return New(DefaultConfig(), zap.NewNop()).
		RegisterRoot(handler.NewHealthHandler(database)).
		Register(handler.NewProductHandler(svc)).
		Engine()
}

func call(t *testing.T, engine *gin.Engine, method, target, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func TestAdminAPI_ProductLifecycle(t *testing.T) {
	engine := newAdminEngine(t)

	status, env := call(t, engine, http.MethodGet, "/ready", "")
	require.Equal(t, http.StatusOK, status)

	status, env = call(t, engine, http.MethodPost, "/admin/products",
		`{"title":"Linen Shirt","variants":[{"title":"S","sku":"LS-S"},{"title":"M","sku":"LS-M"}]}`)
	require.Equal(t, http.StatusCreated, status)

	var created product.ProductDTO
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "linen-shirt", created.Handle)
	require.Len(t, created.Variants, 2)

	status, env = call(t, engine, http.MethodPost, "/admin/products", `{"title":"Linen Shirt"}`)
	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "ERR_DUPLICATE", env.Error.Code)

	status, env = call(t, engine, http.MethodGet, "/admin/products?handle=linen-shirt", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(1), env.Meta.Count)

	status, env = call(t, engine, http.MethodDelete, "/admin/products/"+created.ID+"?return_linkable_keys=*", "")
	require.Equal(t, http.StatusOK, status)
	var deleted struct {
		LinkableKeys map[string][]string `json:"linkable_keys"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &deleted))
	assert.Equal(t, []string{created.ID}, deleted.LinkableKeys["product_id"])
	assert.ElementsMatch(t, []string{created.Variants[0].ID, created.Variants[1].ID}, deleted.LinkableKeys["variant_id"])

	status, env = call(t, engine, http.MethodGet, "/admin/products/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "ERR_NOT_FOUND", env.Error.Code)

	status, _ = call(t, engine, http.MethodPost, "/admin/products/"+created.ID+"/restore", "")
	require.Equal(t, http.StatusOK, status)

	status, env = call(t, engine, http.MethodGet, "/admin/products/"+created.ID+"/variants", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(2), env.Meta.Count)

	status, _ = call(t, engine, http.MethodDelete, "/admin/variants/"+created.Variants[0].ID, "")
	require.Equal(t, http.StatusOK, status)

	status, env = call(t, engine, http.MethodGet, "/admin/products/"+created.ID+"/variants", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(1), env.Meta.Count)

	status, _ = call(t, engine, http.MethodDelete, "/admin/products", `{"ids":["`+created.ID+`"]}`)
	require.Equal(t, http.StatusOK, status)

	status, _ = call(t, engine, http.MethodGet, "/admin/products/"+created.ID+"?with_deleted=true", "")
	assert.Equal(t, http.StatusNotFound, status)
}
