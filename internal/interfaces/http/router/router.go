// Package router assembles the gin engine of the admin API.
package router

import (
	"github.com/aeshevdaniyar/medusa/internal/infrastructure/logger"
	"github.com/aeshevdaniyar/medusa/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouteRegistrar registers routes on a group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Config holds the middleware settings of the engine
type Config struct {
	Prefix       string
	MaxBodyBytes int64
	CORS         middleware.CORSConfig
	Tracing      middleware.TracingConfig
	// Auth guards the API routes when set
	Auth middleware.TokenValidator
}

// DefaultConfig serves the API under /admin with a 1 MiB body limit
func DefaultConfig() Config {
	return Config{
		Prefix:       "/admin",
		MaxBodyBytes: 1 << 20,
		CORS:         middleware.DefaultCORSConfig(),
	}
}

// Router collects route registrars and builds the engine
type Router struct {
	cfg    Config
	logger *zap.Logger
	root   []RouteRegistrar
	api    []RouteRegistrar
}

// New creates a Router
func New(cfg Config, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{cfg: cfg, logger: logger}
}

// Register adds registrars served under the API prefix
func (r *Router) Register(registrars ...RouteRegistrar) *Router {
	r.api = append(r.api, registrars...)
	return r
}

// RegisterRoot adds registrars served outside the API prefix, e.g. probes
func (r *Router) RegisterRoot(registrars ...RouteRegistrar) *Router {
	r.root = append(r.root, registrars...)
	return r
}

// Engine builds the gin engine with the middleware chain and every route
func (r *Router) Engine() *gin.Engine {
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(logger.Recovery(r.logger))
	engine.Use(logger.GinMiddleware(r.logger))
	engine.Use(middleware.Tracing(r.cfg.Tracing)...)
	engine.Use(middleware.CORS(r.cfg.CORS))

	for _, registrar := range r.root {
		registrar.RegisterRoutes(&engine.RouterGroup)
	}

	api := engine.Group(r.cfg.Prefix)
	if r.cfg.MaxBodyBytes > 0 {
		api.Use(middleware.BodyLimit(r.cfg.MaxBodyBytes))
	}
	if r.cfg.Auth != nil {
		api.Use(middleware.AdminAuth(r.cfg.Auth))
	}
	for _, registrar := range r.api {
		registrar.RegisterRoutes(api)
	}
	return engine
}
