package server

import (
	"context"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sfltools/price-data/internal/config"
	"github.com/sfltools/price-data/internal/model"
)

// Store is the read-only view of the price history the handlers need.
type Store interface {
	ListItems(ctx context.Context) ([]string, error)
	PriceHistory(ctx context.Context, item string, from, to time.Time) ([]model.PriceObservation, error)
}

// Server serves the query API and the static chart page.
type Server struct {
	engine *gin.Engine
	store  Store
	logger *slog.Logger
}

// New creates the server and registers all routes.
func New(cfg config.ServerConfig, store Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), accessLog(logger))

	// The chart page may be hosted separately from the API.
	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	engine.Use(cors.New(corsCfg))

	s := &Server{
		engine: engine,
		store:  store,
		logger: logger,
	}

	api := engine.Group("/api")
	api.GET("/items", s.handleItems)
	api.GET("/price_history", s.handlePriceHistory)

	engine.StaticFile("/", filepath.Join(cfg.StaticDir, "index.html"))
	engine.Static("/images", filepath.Join(cfg.StaticDir, "images"))

	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// requestID attaches a request id to every request for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// accessLog logs one line per request.
func accessLog(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"request_id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
