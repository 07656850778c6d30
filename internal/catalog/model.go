package catalog

// Role classifies an ingredient within a recipe.
type Role string

const (
	RoleNut       Role = "nut"
	RoleSeed      Role = "seed"
	RoleBase      Role = "base"
	RoleFat       Role = "fat"
	RoleSweetener Role = "sweetener"
	RoleBooster   Role = "booster"
)

// Ingredient is immutable reference data.
type Ingredient struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Benefit          string   `json:"benefit"`
	VitaminsMinerals []string `json:"vitaminsMinerals"`
	FitnessTags      []string `json:"fitnessTags"`
	Allergens        []string `json:"allergens"`
	PricePer100g     int      `json:"pricePer100g"`
	Role             Role     `json:"role"`
}

// PresetConfig mirrors configurator state. The ingredient percentages are
// historical/display-only: pricing treats selection as binary, so only
// presence (>0) matters when a preset is loaded into the configurator.
type PresetConfig struct {
	Base        string         `json:"base"`
	Fat         string         `json:"fat"`
	Sweetener   string         `json:"sweetener"`
	Ingredients map[string]int `json:"ingredients"`
}

// Preset is a named, fixed-recipe, fixed-price product offering.
type Preset struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Tagline           string       `json:"tagline"`
	Description       string       `json:"description"`
	PrimaryIngredient string       `json:"primaryIngredient"`
	KeyIngredients    []string     `json:"keyIngredients"`
	Tags              []string     `json:"tags"`
	PricePerKg        int          `json:"price"`
	Image             string       `json:"image,omitempty"`
	Config            PresetConfig `json:"config"`
}

// StarterKit is a curated default selection for a fitness goal.
type StarterKit struct {
	Selected  []string `json:"selected"`
	Base      string   `json:"base,omitempty"`
	Fat       string   `json:"fat,omitempty"`
	Sweetener string   `json:"sweetener,omitempty"`
}
