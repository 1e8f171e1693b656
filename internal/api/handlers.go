package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/wheelibin/ringlight/internal/constants"
	"github.com/wheelibin/ringlight/internal/hub"
)

type handlers struct {
	logger  *log.Logger
	hub     commander
	states  stateReader
	history historyReader
}

func (h *handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (h *handlers) ListLights(c *gin.Context) {
	c.JSON(http.StatusOK, h.states.States())
}

func (h *handlers) GetLight(c *gin.Context) {
	state, found := h.states.State(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "light not found"})
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *handlers) GetLightHistory(c *gin.Context) {
	state, found := h.states.State(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "light not found"})
		return
	}

	limit := constants.DefaultHistoryLimit
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive number"})
			return
		}
		limit = parsed
	}

	records, err := h.history.GetHistory(state.UniqueID, limit)
	if err != nil {
		h.logger.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error reading history"})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *handlers) LightAction(c *gin.Context) {
	id := c.Param("id")
	action := c.Param("action")

	if err := h.hub.Submit(c.Request.Context(), id, action); err != nil {
		h.respondError(c, err)
		return
	}

	state, found := h.states.State(id)
	if !found {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *handlers) RemoveLight(c *gin.Context) {
	if err := h.hub.Submit(c.Request.Context(), c.Param("id"), constants.ActionRemove); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, hub.ErrUnknownEntity):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, hub.ErrUnknownAction):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("light action failed", "path", c.Request.URL.Path, "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}
