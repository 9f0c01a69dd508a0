package handlers

import (
	"net/http"

	"medcard/catalog"

	"github.com/gin-gonic/gin"
)

// StateHandler serves the static state catalog.
type StateHandler struct {
	Catalog *catalog.Catalog
}

// NewStateHandler creates a new StateHandler.
func NewStateHandler(cat *catalog.Catalog) *StateHandler {
	return &StateHandler{Catalog: cat}
}

// ListHandler returns every state in the catalog.
func (sh *StateHandler) ListHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"states": sh.Catalog.List()})
}

// GetBySlugHandler returns one state by its slug.
func (sh *StateHandler) GetBySlugHandler(c *gin.Context) {
	slug := c.Param("slug")
	state, ok := sh.Catalog.Find(slug)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "State not found"})
		return
	}
	c.JSON(http.StatusOK, state)
}
