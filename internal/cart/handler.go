package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ankurdhir/laddu/internal/catalog"
	"github.com/ankurdhir/laddu/internal/configurator"
)

type Handler struct {
	cart   *Cart
	cat    *catalog.Catalog
	engine *configurator.Engine
}

func NewHandler(c *Cart, cat *catalog.Catalog, engine *configurator.Engine) *Handler {
	return &Handler{cart: c, cat: cat, engine: engine}
}

func (h *Handler) GetSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, h.cart.Snapshot())
}

func (h *Handler) AddPreset(c *gin.Context) {
	var req struct {
		PresetID string  `json:"presetId"`
		QtyKg    float64 `json:"qtyKg"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	preset, ok := h.cat.FindPreset(req.PresetID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "preset not found"})
		return
	}

	if req.QtyKg == 0 {
		req.QtyKg = 1
	}
	id := h.cart.AddPreset(preset, req.QtyKg)
	c.JSON(http.StatusCreated, gin.H{"itemId": id, "cart": h.cart.Snapshot()})
}

// AddCustom snapshots the live configurator into a new cart line.
func (h *Handler) AddCustom(c *gin.Context) {
	var req struct {
		QtyKg float64 `json:"qtyKg"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	state := h.engine.Snapshot()
	highlights := h.engine.Highlights()
	if req.QtyKg == 0 {
		req.QtyKg = state.QuantityKg
	}

	id := h.cart.AddCustom(CustomSnapshot{
		Name:      "Custom Mix",
		UnitPrice: h.engine.Price(),
		Meta: Meta{
			Goal:        state.Goal,
			Base:        state.Base,
			Fat:         state.Fat,
			Sweetener:   state.Sweetener,
			SelectedIDs: state.Selected,
		},
		Highlights: &highlights,
	}, req.QtyKg)
	c.JSON(http.StatusCreated, gin.H{"itemId": id, "cart": h.cart.Snapshot()})
}

func (h *Handler) UpdateQty(c *gin.Context) {
	var req struct {
		QtyKg float64 `json:"qtyKg"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	h.cart.UpdateQty(c.Param("id"), req.QtyKg)
	c.JSON(http.StatusOK, h.cart.Snapshot())
}

func (h *Handler) RemoveItem(c *gin.Context) {
	h.cart.RemoveItem(c.Param("id"))
	c.JSON(http.StatusOK, h.cart.Snapshot())
}

func (h *Handler) Clear(c *gin.Context) {
	h.cart.Clear()
	c.JSON(http.StatusOK, h.cart.Snapshot())
}
