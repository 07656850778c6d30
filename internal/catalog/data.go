package catalog

// Seed data for the laddoo storefront. Prices are per 100g in whole rupees.

var seedIngredients = []Ingredient{
	// Nuts
	{
		ID:               "badam",
		Name:             "Badam (Almonds)",
		Benefit:          "Steady energy and antioxidant support",
		VitaminsMinerals: []string{"Vitamin E", "Magnesium"},
		FitnessTags:      []string{"Brain", "Recovery", "Skin"},
		Allergens:        []string{"Tree nuts"},
		PricePer100g:     120,
		Role:             RoleNut,
	},
	{
		ID:               "kaju",
		Name:             "Kaju (Cashews)",
		Benefit:          "Supports muscle function and recovery",
		VitaminsMinerals: []string{"Magnesium", "Iron", "Zinc"},
		FitnessTags:      []string{"Muscle", "Recovery"},
		Allergens:        []string{"Tree nuts"},
		PricePer100g:     140,
		Role:             RoleNut,
	},
	{
		ID:               "akhrot",
		Name:             "Akhrot (Walnuts)",
		Benefit:          "Healthy fats for brain and recovery",
		VitaminsMinerals: []string{"Omega-3 (ALA)", "Copper"},
		FitnessTags:      []string{"Brain", "Joints", "Recovery"},
		Allergens:        []string{"Tree nuts"},
		PricePer100g:     160,
		Role:             RoleNut,
	},
	{
		ID:               "kishmish",
		Name:             "Kishmish (Raisins)",
		Benefit:          "Quick energy for workouts",
		VitaminsMinerals: []string{"Iron", "Potassium"},
		FitnessTags:      []string{"Energy", "Endurance"},
		Allergens:        []string{},
		PricePer100g:     60,
		Role:             RoleNut,
	},
	{
		ID:               "gond",
		Name:             "Goond (Edible Gum)",
		Benefit:          "Traditional warmth and joint support",
		VitaminsMinerals: []string{"Trace minerals"},
		FitnessTags:      []string{"Joints", "Recovery", "Energy"},
		Allergens:        []string{},
		PricePer100g:     150,
		Role:             RoleNut,
	},
	// Seeds
	{
		ID:               "makhana",
		Name:             "Makhana (Fox Nuts)",
		Benefit:          "Clean, light energy",
		VitaminsMinerals: []string{"Magnesium", "Potassium"},
		FitnessTags:      []string{"Energy", "Low Fat"},
		Allergens:        []string{},
		PricePer100g:     80,
		Role:             RoleSeed,
	},
	{
		ID:               "flax",
		Name:             "Flax Seeds (Alsi)",
		Benefit:          "Recovery-friendly fats + fiber",
		VitaminsMinerals: []string{"Omega-3 (ALA)", "Magnesium", "Fiber"},
		FitnessTags:      []string{"Omega", "Recovery", "Gut", "Joints"},
		Allergens:        []string{},
		PricePer100g:     40,
		Role:             RoleSeed,
	},
	{
		ID:               "chia",
		Name:             "Chia Seeds",
		Benefit:          "Fiber for endurance and digestion support",
		VitaminsMinerals: []string{"Omega-3 (ALA)", "Calcium", "Fiber"},
		FitnessTags:      []string{"Endurance", "Gut", "Bone"},
		Allergens:        []string{},
		PricePer100g:     120,
		Role:             RoleSeed,
	},
	{
		ID:               "pumpkin",
		Name:             "Pumpkin Seeds",
		Benefit:          "Minerals that support strength",
		VitaminsMinerals: []string{"Magnesium", "Zinc", "Iron"},
		FitnessTags:      []string{"Muscle", "Bone"},
		Allergens:        []string{},
		PricePer100g:     90,
		Role:             RoleSeed,
	},
	{
		ID:               "muskmelon",
		Name:             "Kharbuja Beej (Muskmelon Seeds)",
		Benefit:          "Plant protein + minerals for recovery",
		VitaminsMinerals: []string{"Magnesium", "Zinc", "Iron"},
		FitnessTags:      []string{"Muscle", "Recovery"},
		Allergens:        []string{},
		PricePer100g:     110,
		Role:             RoleSeed,
	},
	// Bases
	{
		ID:               "besan",
		Name:             "Besan (Gram Flour)",
		Benefit:          "Great binding with plant protein",
		VitaminsMinerals: []string{"B-vitamins", "Iron"},
		FitnessTags:      []string{"Muscle"},
		Allergens:        []string{},
		PricePer100g:     20,
		Role:             RoleBase,
	},
	{
		ID:               "aata",
		Name:             "Aata (Whole Wheat)",
		Benefit:          "Sustained energy with fiber",
		VitaminsMinerals: []string{"B-vitamins", "Fiber"},
		FitnessTags:      []string{"Energy", "Endurance"},
		Allergens:        []string{"Gluten"},
		PricePer100g:     10,
		Role:             RoleBase,
	},
	// Sweeteners
	{
		ID:               "honey",
		Name:             "Honey",
		Benefit:          "Natural sweetness with quick energy",
		VitaminsMinerals: []string{"Antioxidants (trace)"},
		FitnessTags:      []string{"Energy"},
		Allergens:        []string{},
		PricePer100g:     60,
		Role:             RoleSweetener,
	},
	{
		ID:               "jaggery",
		Name:             "Jaggery (Gud)",
		Benefit:          "Unrefined sweetness with trace minerals",
		VitaminsMinerals: []string{"Iron (trace)", "Potassium (trace)"},
		FitnessTags:      []string{"Energy"},
		Allergens:        []string{},
		PricePer100g:     15,
		Role:             RoleSweetener,
	},
	{
		ID:               "sugar",
		Name:             "Shakkar (Sugar)",
		Benefit:          "Quick sweetness",
		VitaminsMinerals: []string{},
		FitnessTags:      []string{},
		Allergens:        []string{},
		PricePer100g:     5,
		Role:             RoleSweetener,
	},
	{
		ID:               "sugarfree",
		Name:             "Sugar-Free Sweetener",
		Benefit:          "Low-sugar option",
		VitaminsMinerals: []string{},
		FitnessTags:      []string{"Low Sugar"},
		Allergens:        []string{},
		PricePer100g:     100,
		Role:             RoleSweetener,
	},
	// Fats
	{
		ID:               "ghee",
		Name:             "Desi Ghee",
		Benefit:          "Rich mouthfeel and satiety",
		VitaminsMinerals: []string{"Vitamins A/E/K (trace)"},
		FitnessTags:      []string{"Recovery"},
		Allergens:        []string{"Dairy"},
		PricePer100g:     60,
		Role:             RoleFat,
	},
	{
		ID:               "oil",
		Name:             "Neutral Oil",
		Benefit:          "Dairy-free fat source",
		VitaminsMinerals: []string{"Varies by oil"},
		FitnessTags:      []string{"Low Sugar"},
		Allergens:        []string{},
		PricePer100g:     20,
		Role:             RoleFat,
	},
	// Boosters
	{
		ID:               "whey",
		Name:             "Whey Protein",
		Benefit:          "High-quality protein boost",
		VitaminsMinerals: []string{"BCAAs (varies)", "Calcium (varies)"},
		FitnessTags:      []string{"Muscle", "Recovery", "High Protein"},
		Allergens:        []string{"Dairy"},
		PricePer100g:     300,
		Role:             RoleBooster,
	},
}

// Goals is the fixed set of fitness goals, in display order.
var Goals = []string{"Muscle", "Recovery", "Endurance", "Energy", "Brain", "Joints", "Skin", "Low Sugar"}

var seedStarterKits = map[string]StarterKit{
	"Muscle":    {Selected: []string{"whey", "pumpkin", "muskmelon", "kaju"}, Base: "besan", Fat: "ghee", Sweetener: "jaggery"},
	"Recovery":  {Selected: []string{"kaju", "badam", "flax", "akhrot"}, Base: "besan", Fat: "ghee", Sweetener: "jaggery"},
	"Endurance": {Selected: []string{"chia", "flax", "pumpkin", "kishmish"}, Base: "aata", Fat: "oil", Sweetener: "jaggery"},
	"Energy":    {Selected: []string{"makhana", "kishmish", "honey", "badam"}, Base: "aata", Fat: "oil", Sweetener: "honey"},
	"Brain":     {Selected: []string{"akhrot", "badam", "flax"}, Base: "aata", Fat: "ghee", Sweetener: "honey"},
	"Joints":    {Selected: []string{"gond", "akhrot", "flax"}, Base: "gond", Fat: "ghee", Sweetener: "jaggery"},
	"Skin":      {Selected: []string{"badam", "akhrot", "honey"}, Base: "aata", Fat: "ghee", Sweetener: "honey"},
	"Low Sugar": {Selected: []string{"makhana", "pumpkin", "flax"}, Base: "aata", Fat: "oil", Sweetener: "sugarfree"},
}

var seedPresets = []Preset{
	{
		ID:                "mix-dry-fruit",
		Name:              "Mix Dry Fruit Laddoo",
		Tagline:           "Everyday Strength",
		Description:       "Balanced nutrition for the whole family.",
		PrimaryIngredient: "Mixed Dry Fruits",
		KeyIngredients:    []string{"Badam", "Kaju", "Akhrot", "Kishmish", "Flax", "Pumpkin seeds"},
		Tags:              []string{"Protein", "Energy", "Family", "Joints", "Skin"},
		PricePerKg:        850,
		Image:             "assets/images/preset-mix-dryfruit.png",
		Config: PresetConfig{
			Base: "aata", Fat: "ghee", Sweetener: "jaggery",
			Ingredients: map[string]int{"badam": 20, "kaju": 20, "akhrot": 10, "makhana": 0, "flax": 5, "pumpkin": 5, "whey": 0},
		},
	},
	{
		ID:                "badam-energy",
		Name:              "Badam Energy Laddoo",
		Tagline:           "Mind & Focus",
		Description:       "Almond-rich for brain power and steady energy.",
		PrimaryIngredient: "Badam (Almond)",
		KeyIngredients:    []string{"Badam", "Kaju", "Akhrot"},
		Tags:              []string{"Vitamin E", "Brain", "Focus", "Skin"},
		PricePerKg:        1100,
		Image:             "assets/images/preset-badam.png",
		Config: PresetConfig{
			Base: "aata", Fat: "ghee", Sweetener: "jaggery",
			Ingredients: map[string]int{"badam": 50, "kaju": 5, "akhrot": 5, "makhana": 0, "flax": 0, "pumpkin": 0, "whey": 0},
		},
	},
	{
		ID:                "protein-power",
		Name:              "Gym Fuel Laddoo",
		Tagline:           "High Protein",
		Description:       "Whey protein infused for serious muscle recovery.",
		PrimaryIngredient: "Whey (Optimum Nutrition)",
		KeyIngredients:    []string{"Whey", "Badam", "Kaju", "Flax", "Pumpkin seeds"},
		Tags:              []string{"High Protein", "Muscle", "Recovery", "Energy"},
		PricePerKg:        1400,
		Image:             "assets/images/preset-protein.png",
		Config: PresetConfig{
			Base: "aata", Fat: "ghee", Sweetener: "jaggery",
			Ingredients: map[string]int{"badam": 10, "kaju": 10, "akhrot": 0, "makhana": 0, "flax": 10, "pumpkin": 10, "whey": 35},
		},
	},
	{
		ID:                "kaju-recovery",
		Name:              "Kaju-Dominant Laddoo",
		Tagline:           "Muscle & Recovery",
		Description:       "Cashew-dominant laddoo for calorie-dense recovery fuel.",
		PrimaryIngredient: "Kaju (Cashew)",
		KeyIngredients:    []string{"Kaju", "Badam", "Kishmish"},
		Tags:              []string{"Muscle", "Recovery", "Energy"},
		PricePerKg:        1150,
		Image:             "assets/images/preset-kaju.png",
		Config: PresetConfig{
			Base: "aata", Fat: "ghee", Sweetener: "jaggery",
			Ingredients: map[string]int{"badam": 5, "kaju": 50, "akhrot": 0, "kishmish": 5, "makhana": 0, "flax": 0, "pumpkin": 0, "chia": 0, "muskmelon": 0, "whey": 0},
		},
	},
	{
		ID:                "gond-joints",
		Name:              "Gond Laddoo",
		Tagline:           "Joint & Warmth",
		Description:       "Traditional gond laddoo with a warm, comforting profile.",
		PrimaryIngredient: "Goond (Edible Gum)",
		KeyIngredients:    []string{"Goond", "Badam", "Kaju", "Akhrot", "Kishmish"},
		Tags:              []string{"Joints", "Energy", "Recovery"},
		PricePerKg:        1200,
		Config: PresetConfig{
			Base: "aata", Fat: "ghee", Sweetener: "jaggery",
			Ingredients: map[string]int{"gond": 25, "badam": 15, "kaju": 10, "akhrot": 5, "kishmish": 5, "makhana": 0, "flax": 0, "pumpkin": 0, "chia": 0, "muskmelon": 0, "whey": 0},
		},
	},
	{
		ID:                "omega-recovery",
		Name:              "Omega Recovery Laddoo",
		Tagline:           "Omega-3 Focus",
		Description:       "Walnut + flax + chia focused for recovery-friendly fats.",
		PrimaryIngredient: "Akhrot (Walnut)",
		KeyIngredients:    []string{"Akhrot", "Flax", "Chia"},
		Tags:              []string{"Omega", "Recovery", "Brain", "Joints"},
		PricePerKg:        1350,
		Image:             "assets/images/preset-omega.png",
		Config: PresetConfig{
			Base: "aata", Fat: "ghee", Sweetener: "jaggery",
			Ingredients: map[string]int{"badam": 5, "kaju": 0, "akhrot": 30, "kishmish": 0, "makhana": 0, "flax": 15, "pumpkin": 0, "chia": 10, "muskmelon": 0, "whey": 0},
		},
	},
	{
		ID:                "endurance-seed",
		Name:              "Endurance Seed Laddoo",
		Tagline:           "Fiber & Slow Energy",
		Description:       "Seed-forward laddoo designed for sustained energy.",
		PrimaryIngredient: "Seeds Blend",
		KeyIngredients:    []string{"Chia", "Flax", "Pumpkin seeds", "Muskmelon seeds", "Kishmish"},
		Tags:              []string{"Endurance", "Energy", "Gut"},
		PricePerKg:        1250,
		Image:             "assets/images/preset-endurance.png",
		Config: PresetConfig{
			Base: "aata", Fat: "ghee", Sweetener: "jaggery",
			Ingredients: map[string]int{"badam": 0, "kaju": 0, "akhrot": 0, "kishmish": 10, "makhana": 0, "flax": 15, "pumpkin": 15, "chia": 15, "muskmelon": 5, "whey": 0},
		},
	},
	{
		ID:                "makhana-light",
		Name:              "Light Energy Makhana Laddoo",
		Tagline:           "Low-Fat",
		Description:       "Makhana-dominant laddoo for light, clean energy.",
		PrimaryIngredient: "Makhana (Fox Nuts)",
		KeyIngredients:    []string{"Makhana", "Badam"},
		Tags:              []string{"Energy", "Low Fat", "Low Sugar"},
		PricePerKg:        950,
		Image:             "assets/images/preset-makhana.png",
		Config: PresetConfig{
			Base: "aata", Fat: "ghee", Sweetener: "jaggery",
			Ingredients: map[string]int{"badam": 5, "kaju": 0, "akhrot": 0, "kishmish": 0, "makhana": 45, "flax": 0, "pumpkin": 0, "chia": 0, "muskmelon": 0, "whey": 0},
		},
	},
}
