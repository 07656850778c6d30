package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	cat *Catalog
}

func NewHandler(cat *Catalog) *Handler {
	return &Handler{cat: cat}
}

func (h *Handler) ListIngredients(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"nuts":       h.cat.ByRole(RoleNut),
		"seeds":      h.cat.ByRole(RoleSeed),
		"bases":      h.cat.ByRole(RoleBase),
		"fats":       h.cat.ByRole(RoleFat),
		"sweeteners": h.cat.ByRole(RoleSweetener),
		"boosters":   h.cat.ByRole(RoleBooster),
	})
}

func (h *Handler) ListPresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": h.cat.Presets()})
}

func (h *Handler) GetPreset(c *gin.Context) {
	preset, ok := h.cat.FindPreset(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "preset not found"})
		return
	}
	c.JSON(http.StatusOK, preset)
}

func (h *Handler) ListGoals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"goals": Goals})
}

// Search filters the pickable pool; ?goal= floats goal-matching items first.
func (h *Handler) Search(c *gin.Context) {
	items := h.cat.SearchPickables(c.Query("q"), c.Query("goal"))
	c.JSON(http.StatusOK, gin.H{"ingredients": items})
}
