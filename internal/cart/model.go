package cart

import (
	"math"

	"github.com/ankurdhir/laddu/internal/configurator"
)

// ItemType distinguishes preset references from custom-mix snapshots.
type ItemType string

const (
	TypePreset ItemType = "preset"
	TypeCustom ItemType = "custom"
)

// Meta is the per-item detail bag: preset identity for preset lines, the
// configuration snapshot for custom lines.
type Meta struct {
	PresetID    string   `json:"presetId,omitempty"`
	Tagline     string   `json:"tagline,omitempty"`
	Goal        string   `json:"goal,omitempty"`
	Base        string   `json:"base,omitempty"`
	Fat         string   `json:"fat,omitempty"`
	Sweetener   string   `json:"sweetener,omitempty"`
	SelectedIDs []string `json:"selectedIds,omitempty"`
}

// Item is one order line. Immutable once created except QtyKg/TotalPrice,
// which the owning cart updates in place.
type Item struct {
	ID         string                   `json:"id"`
	Type       ItemType                 `json:"type"`
	Name       string                   `json:"name"`
	QtyKg      float64                  `json:"qtyKg"`
	UnitPrice  int                      `json:"unitPrice"`
	TotalPrice int                      `json:"totalPrice"`
	Meta       Meta                     `json:"meta"`
	Highlights *configurator.Highlights `json:"highlights,omitempty"`
}

// CustomSnapshot captures the live configurator output for AddCustom.
type CustomSnapshot struct {
	Name       string
	UnitPrice  int
	Meta       Meta
	Highlights *configurator.Highlights
}

// Totals summarizes the cart.
type Totals struct {
	Count      int     `json:"count"`
	TotalKg    float64 `json:"totalKg"`
	TotalPrice int     `json:"totalPrice"`
}

// Snapshot is the payload of every cart-updated notification.
type Snapshot struct {
	Items  []Item `json:"items"`
	Totals Totals `json:"totals"`
}

// ClampQtyKg applies the shared quantity rule: round to the nearest 0.5,
// clamp to [0.5, 10]; non-numeric input defaults to 1.
func ClampQtyKg(q float64) float64 {
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 1
	}
	stepped := math.Round(q*2) / 2
	if stepped < configurator.MinQuantityKg {
		return configurator.MinQuantityKg
	}
	if stepped > configurator.MaxQuantityKg {
		return configurator.MaxQuantityKg
	}
	return stepped
}
