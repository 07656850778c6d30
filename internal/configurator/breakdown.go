package configurator

import "github.com/ankurdhir/laddu/internal/catalog"

// Segment is one slice of the proportional mix breakdown.
type Segment struct {
	ID      string       `json:"id"`
	Role    catalog.Role `json:"role"`
	Percent float64      `json:"percent"`
}

// Breakdown derives the proportional composition of the current mix: the
// 60% mix portion split evenly across selected ingredients, the remainder
// split 50/25/25 across base, fat and sweetener. With nothing selected the
// binder covers the full 100%. Percentages always sum to 100.
func (e *Engine) Breakdown() []Segment {
	e.mu.Lock()
	defer e.mu.Unlock()

	var segments []Segment
	used := 0.0

	if n := len(e.selected); n > 0 {
		each := mixPortion * 100 / float64(n)
		for _, id := range e.selected {
			role := catalog.RoleBase
			if ing, ok := e.cat.ByID(id); ok {
				role = ing.Role
			}
			segments = append(segments, Segment{ID: id, Role: role, Percent: each})
			used += each
		}
	}

	if remaining := 100 - used; remaining > 0 {
		segments = append(segments,
			Segment{ID: e.base, Role: catalog.RoleBase, Percent: remaining * baseRatio},
			Segment{ID: e.fat, Role: catalog.RoleFat, Percent: remaining * fatRatio},
			Segment{ID: e.sweetener, Role: catalog.RoleSweetener, Percent: remaining * sweetenerRatio},
		)
	}
	return segments
}
