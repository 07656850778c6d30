package configurator

import (
	"math"
	"sync"

	"github.com/ankurdhir/laddu/internal/catalog"
)

// Group names the single-valued selection slots.
type Group string

const (
	GroupBase      Group = "base"
	GroupFat       Group = "fat"
	GroupSweetener Group = "sweetener"
)

// Quantity bounds, shared with the cart.
const (
	MinQuantityKg = 0.5
	MaxQuantityKg = 10
	MinSelection  = 2 // advisory only; pricing and ordering never block on it
)

// Pricing model constants: 300/kg preparation fee, 60% of a 100g portion
// split evenly across selected ingredients, remaining 40% split 50/25/25
// across base/fat/sweetener.
const (
	prepFeePerKg   = 300
	mixPortion     = 0.60
	binderPortion  = 0.40
	baseRatio      = 0.5
	fatRatio       = 0.25
	sweetenerRatio = 0.25
)

// Snapshot is a copy of engine state safe to hand to listeners.
type Snapshot struct {
	Goal       string   `json:"goal,omitempty"`
	Base       string   `json:"base"`
	Fat        string   `json:"fat"`
	Sweetener  string   `json:"sweetener"`
	Selected   []string `json:"selected"`
	QuantityKg float64  `json:"quantityKg"`
}

// Highlights is the derived nutrition summary of the current selection.
type Highlights struct {
	RichIn        []string `json:"richIn"`
	GoodFor       []string `json:"goodFor"`
	SelectedNames []string `json:"selectedNames"`
	SelectedIDs   []string `json:"selectedIds"`
}

// Engine holds the live configuration state and derives price, highlights
// and breakdown from the catalog. One instance per session, owned by the
// application context and passed explicitly to collaborators.
type Engine struct {
	mu        sync.Mutex
	cat       *catalog.Catalog
	goal      string
	base      string
	fat       string
	sweetener string
	selected  []string // insertion order; mirrors selectedSet
	selSet    map[string]bool
	quantity  float64

	listeners []func(Snapshot)
}

func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{
		cat:       cat,
		base:      "besan",
		fat:       "ghee",
		sweetener: "jaggery",
		selSet:    make(map[string]bool),
		quantity:  1,
	}
}

// Subscribe registers a listener invoked with a state snapshot after every
// mutation. Listeners run synchronously on the mutating call.
func (e *Engine) Subscribe(fn func(Snapshot)) {
	e.mu.Lock()
	e.listeners = append(e.listeners, fn)
	e.mu.Unlock()
}

// notifyLocked snapshots under the lock, then fans out after releasing it so
// listeners may call back into the engine.
func (e *Engine) notifyLocked() func() {
	snap := e.snapshotLocked()
	listeners := make([]func(Snapshot), len(e.listeners))
	copy(listeners, e.listeners)
	return func() {
		for _, fn := range listeners {
			fn(snap)
		}
	}
}

// Select sets one of the single-valued slots. Unknown ids fail with
// ErrInvalidIngredient and leave state untouched.
func (e *Engine) Select(group Group, id string) error {
	var role catalog.Role
	switch group {
	case GroupBase:
		role = catalog.RoleBase
	case GroupFat:
		role = catalog.RoleFat
	case GroupSweetener:
		role = catalog.RoleSweetener
	default:
		return ErrInvalidIngredient
	}
	if !e.cat.HasInRole(role, id) {
		return ErrInvalidIngredient
	}

	e.mu.Lock()
	switch group {
	case GroupBase:
		e.base = id
	case GroupFat:
		e.fat = id
	case GroupSweetener:
		e.sweetener = id
	}
	notify := e.notifyLocked()
	e.mu.Unlock()
	notify()
	return nil
}

// ToggleIngredient flips membership of id in the selected set. Ids outside
// the nuts+seeds+boosters pool are ignored so stale references never crash
// a session. Returns whether the id is selected after the call.
func (e *Engine) ToggleIngredient(id string) bool {
	if !e.cat.IsPickable(id) {
		e.mu.Lock()
		selected := e.selSet[id]
		e.mu.Unlock()
		return selected
	}

	e.mu.Lock()
	if e.selSet[id] {
		delete(e.selSet, id)
		for i, s := range e.selected {
			if s == id {
				e.selected = append(e.selected[:i], e.selected[i+1:]...)
				break
			}
		}
	} else {
		e.selSet[id] = true
		e.selected = append(e.selected, id)
	}
	selected := e.selSet[id]
	notify := e.notifyLocked()
	e.mu.Unlock()
	notify()
	return selected
}

// ApplyGoalStarterKit replaces the selection wholesale with the goal's kit
// and overwrites base/fat/sweetener where the kit specifies them. An unknown
// goal is a no-op for callers that ignore the error.
func (e *Engine) ApplyGoalStarterKit(goal string) error {
	if !e.cat.IsGoal(goal) {
		return ErrInvalidGoal
	}

	e.mu.Lock()
	e.goal = goal
	if kit, ok := e.cat.StarterKit(goal); ok {
		e.selected = nil
		e.selSet = make(map[string]bool)
		for _, id := range kit.Selected {
			if e.cat.IsPickable(id) && !e.selSet[id] {
				e.selSet[id] = true
				e.selected = append(e.selected, id)
			}
		}
		if kit.Base != "" && e.cat.HasInRole(catalog.RoleBase, kit.Base) {
			e.base = kit.Base
		}
		if kit.Fat != "" && e.cat.HasInRole(catalog.RoleFat, kit.Fat) {
			e.fat = kit.Fat
		}
		if kit.Sweetener != "" && e.cat.HasInRole(catalog.RoleSweetener, kit.Sweetener) {
			e.sweetener = kit.Sweetener
		}
	}
	notify := e.notifyLocked()
	e.mu.Unlock()
	notify()
	return nil
}

// AdjustQuantity adds deltaKg (±0.5 typical) and clamps to [0.5, 10].
func (e *Engine) AdjustQuantity(deltaKg float64) float64 {
	e.mu.Lock()
	q := e.quantity + deltaKg
	if q < MinQuantityKg {
		q = MinQuantityKg
	}
	if q > MaxQuantityKg {
		q = MaxQuantityKg
	}
	e.quantity = q
	notify := e.notifyLocked()
	e.mu.Unlock()
	notify()
	return q
}

// LoadFromPreset imports a preset config: base/fat/sweetener are taken when
// present, and any ingredient with a historical percentage > 0 becomes
// selected. The percentage values themselves are discarded; pricing treats
// selection as binary.
func (e *Engine) LoadFromPreset(cfg catalog.PresetConfig) {
	e.mu.Lock()
	if cfg.Base != "" && e.cat.HasInRole(catalog.RoleBase, cfg.Base) {
		e.base = cfg.Base
	}
	if cfg.Fat != "" && e.cat.HasInRole(catalog.RoleFat, cfg.Fat) {
		e.fat = cfg.Fat
	}
	if cfg.Sweetener != "" && e.cat.HasInRole(catalog.RoleSweetener, cfg.Sweetener) {
		e.sweetener = cfg.Sweetener
	}

	e.selected = nil
	e.selSet = make(map[string]bool)
	// Walk the pickable pool in catalog order so the imported selection has a
	// stable sequence regardless of map iteration.
	for _, ing := range e.cat.Pickables() {
		if cfg.Ingredients[ing.ID] > 0 {
			e.selSet[ing.ID] = true
			e.selected = append(e.selected, ing.ID)
		}
	}
	notify := e.notifyLocked()
	e.mu.Unlock()
	notify()
}

// ValidateSelection flags selections below the advisory minimum. A false
// result is a warning state only; it never blocks pricing or ordering.
func (e *Engine) ValidateSelection() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.selected) >= MinSelection
}

// Price returns the unit price per kilogram, rounded to a whole rupee.
func (e *Engine) Price() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.priceLocked()
}

func (e *Engine) priceLocked() int {
	var costPer100g float64

	if n := len(e.selected); n > 0 {
		each := mixPortion * 100 / float64(n) // grams per 100g per ingredient
		for _, id := range e.selected {
			ing, ok := e.cat.ByID(id)
			if !ok {
				continue
			}
			costPer100g += float64(ing.PricePer100g) * each / 100
		}
	}

	for _, slot := range []struct {
		id    string
		ratio float64
	}{
		{e.base, baseRatio},
		{e.fat, fatRatio},
		{e.sweetener, sweetenerRatio},
	} {
		ing, ok := e.cat.ByID(slot.id)
		if !ok {
			continue
		}
		grams := binderPortion * 100 * slot.ratio
		costPer100g += float64(ing.PricePer100g) * grams / 100
	}

	// ×10 converts the per-100g cost basis to per-kg before the flat fee.
	return int(math.Round(costPer100g*10 + prepFeePerKg))
}

// TotalPrice is the unit price times the current quantity, rounded.
func (e *Engine) TotalPrice() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return int(math.Round(float64(e.priceLocked()) * e.quantity))
}

// Highlights derives the nutrition summary: top vitamin/mineral and fitness
// tags by occurrence across the selection, capped at 6 each, ties broken by
// first-seen order.
func (e *Engine) Highlights() Highlights {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.highlightsLocked()
}

func (e *Engine) highlightsLocked() Highlights {
	h := Highlights{
		RichIn:        []string{},
		GoodFor:       []string{},
		SelectedNames: make([]string, 0, len(e.selected)),
		SelectedIDs:   append([]string{}, e.selected...),
	}

	vitCounts := newTagCounter()
	tagCounts := newTagCounter()
	for _, id := range e.selected {
		ing, ok := e.cat.ByID(id)
		if !ok {
			h.SelectedNames = append(h.SelectedNames, id)
			continue
		}
		h.SelectedNames = append(h.SelectedNames, ing.Name)
		for _, v := range ing.VitaminsMinerals {
			vitCounts.add(v)
		}
		for _, t := range ing.FitnessTags {
			tagCounts.add(t)
		}
	}

	h.RichIn = vitCounts.top(6)
	h.GoodFor = tagCounts.top(6)
	return h
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Goal:       e.goal,
		Base:       e.base,
		Fat:        e.fat,
		Sweetener:  e.sweetener,
		Selected:   append([]string{}, e.selected...),
		QuantityKg: e.quantity,
	}
}
