package configurator

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ankurdhir/laddu/internal/catalog"
)

type Handler struct {
	engine *Engine
	cat    *catalog.Catalog
}

func NewHandler(engine *Engine, cat *catalog.Catalog) *Handler {
	return &Handler{engine: engine, cat: cat}
}

// state renders everything the configurator surfaces derive from: the raw
// selection, price, highlights and breakdown, always mutually consistent.
func (h *Handler) state() gin.H {
	return gin.H{
		"state":          h.engine.Snapshot(),
		"unitPrice":      h.engine.Price(),
		"totalPrice":     h.engine.TotalPrice(),
		"highlights":     h.engine.Highlights(),
		"breakdown":      h.engine.Breakdown(),
		"selectionValid": h.engine.ValidateSelection(),
	}
}

func (h *Handler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.state())
}

func (h *Handler) Select(c *gin.Context) {
	var req struct {
		Group string `json:"group"`
		ID    string `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.engine.Select(Group(req.Group), req.ID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.state())
}

func (h *Handler) Toggle(c *gin.Context) {
	var req struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	selected := h.engine.ToggleIngredient(req.ID)
	resp := h.state()
	resp["selected"] = selected
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ApplyGoal(c *gin.Context) {
	var req struct {
		Goal string `json:"goal"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.engine.ApplyGoalStarterKit(req.Goal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.state())
}

func (h *Handler) AdjustQuantity(c *gin.Context) {
	var req struct {
		DeltaKg float64 `json:"deltaKg"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	h.engine.AdjustQuantity(req.DeltaKg)
	c.JSON(http.StatusOK, h.state())
}

// LoadPreset imports a preset's config into the live configurator.
func (h *Handler) LoadPreset(c *gin.Context) {
	preset, ok := h.cat.FindPreset(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "preset not found"})
		return
	}

	h.engine.LoadFromPreset(preset.Config)
	c.JSON(http.StatusOK, h.state())
}
