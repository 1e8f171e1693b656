package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/wheelibin/ringlight/internal/constants"
	"github.com/wheelibin/ringlight/internal/models"
)

type commander interface {
	Submit(ctx context.Context, entityID string, action string) error
}

type stateReader interface {
	States() []models.EntityState
	State(id string) (models.EntityState, bool)
}

type historyReader interface {
	GetHistory(uniqueID string, limit int) ([]models.StateRecord, error)
}

// NewRouter creates the http api, events is the handler serving the state stream.
func NewRouter(logger *log.Logger, debug bool, hub commander, states stateReader, history historyReader, events http.Handler) *gin.Engine {
	if debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggingMiddleware(logger))

	h := &handlers{logger: logger, hub: hub, states: states, history: history}

	router.GET("/health", h.Health)
	router.GET("/events", StreamHandler(events))

	lights := router.Group("/api/lights")
	{
		lights.GET("", h.ListLights)
		lights.GET("/:id", h.GetLight)
		lights.GET("/:id/history", h.GetLightHistory)
		lights.POST("/:id/:action", h.LightAction)
		lights.DELETE("/:id", h.RemoveLight)
	}

	return router
}

func LoggingMiddleware(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// the event stream stays open, log it when it closes like any other request
		logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// StreamHandler serves the sse state stream, defaulting the stream name so
// plain clients can subscribe to /events.
func StreamHandler(events http.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Request.URL.Query()
		if q.Get("stream") == "" {
			q.Set("stream", constants.StateStreamName)
			c.Request.URL.RawQuery = q.Encode()
		}
		events.ServeHTTP(c.Writer, c.Request)
	}
}
