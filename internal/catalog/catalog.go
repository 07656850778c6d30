package catalog

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrPresetNotFound     = errors.New("preset not found")
)

// Catalog holds the immutable reference data: ingredients grouped by role,
// presets and goal starter kits. Loaded once at startup, never mutated.
type Catalog struct {
	ingredients []Ingredient
	byID        map[string]Ingredient
	presets     []Preset
	presetByID  map[string]Preset
	kits        map[string]StarterKit
}

// Load builds the catalog from the built-in seed data.
func Load() *Catalog {
	return New(seedIngredients, seedPresets, seedStarterKits)
}

func New(ingredients []Ingredient, presets []Preset, kits map[string]StarterKit) *Catalog {
	c := &Catalog{
		ingredients: ingredients,
		byID:        make(map[string]Ingredient, len(ingredients)),
		presets:     presets,
		presetByID:  make(map[string]Preset, len(presets)),
		kits:        kits,
	}
	for _, ing := range ingredients {
		c.byID[ing.ID] = ing
	}
	for _, p := range presets {
		c.presetByID[p.ID] = p
	}
	return c
}

// ByID looks up any ingredient regardless of role.
func (c *Catalog) ByID(id string) (Ingredient, bool) {
	ing, ok := c.byID[id]
	return ing, ok
}

// ByRole returns all ingredients of one role, in seed order.
func (c *Catalog) ByRole(role Role) []Ingredient {
	var out []Ingredient
	for _, ing := range c.ingredients {
		if ing.Role == role {
			out = append(out, ing)
		}
	}
	return out
}

// Pickables is the nuts+seeds+boosters pool the configurator selects from.
// Bases, fats and sweeteners are single-valued and excluded.
func (c *Catalog) Pickables() []Ingredient {
	var out []Ingredient
	for _, role := range []Role{RoleNut, RoleSeed, RoleBooster} {
		out = append(out, c.ByRole(role)...)
	}
	return out
}

// IsPickable reports whether id resolves in the nuts+seeds+boosters pool.
func (c *Catalog) IsPickable(id string) bool {
	ing, ok := c.byID[id]
	if !ok {
		return false
	}
	return ing.Role == RoleNut || ing.Role == RoleSeed || ing.Role == RoleBooster
}

// HasInRole reports whether id resolves to an ingredient of the given role.
func (c *Catalog) HasInRole(role Role, id string) bool {
	ing, ok := c.byID[id]
	return ok && ing.Role == role
}

func (c *Catalog) Presets() []Preset {
	return c.presets
}

func (c *Catalog) FindPreset(id string) (Preset, bool) {
	p, ok := c.presetByID[id]
	return p, ok
}

// StarterKit returns the curated selection for a goal.
func (c *Catalog) StarterKit(goal string) (StarterKit, bool) {
	kit, ok := c.kits[goal]
	return kit, ok
}

// IsGoal reports whether goal belongs to the fixed goal set.
func (c *Catalog) IsGoal(goal string) bool {
	for _, g := range Goals {
		if g == goal {
			return true
		}
	}
	return false
}

// SearchPickables filters the pickable pool by a free-text query over name,
// benefit, vitamin/mineral and fitness tags. When goal is non-empty,
// goal-matching items sort first; selected lookups are the caller's concern.
func (c *Catalog) SearchPickables(query, goal string) []Ingredient {
	items := c.Pickables()

	if goal != "" {
		g := strings.ToLower(goal)
		sort.SliceStable(items, func(i, j int) bool {
			return tagHit(items[i], g) && !tagHit(items[j], g)
		})
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	var out []Ingredient
	for _, ing := range items {
		hay := strings.ToLower(strings.Join(append(append([]string{ing.Name, ing.Benefit},
			ing.VitaminsMinerals...), ing.FitnessTags...), " "))
		if strings.Contains(hay, q) {
			out = append(out, ing)
		}
	}
	return out
}

func tagHit(ing Ingredient, goal string) bool {
	for _, t := range ing.FitnessTags {
		if strings.ToLower(t) == goal {
			return true
		}
	}
	return false
}
