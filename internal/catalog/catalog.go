// Package catalog holds the static game-content tables: purchasable items,
// sellable dishes, and the recipes that connect them. The core never embeds
// this data; it queries it by id through the lookups below.
package catalog

import "github.com/example/rush/internal/core/kitchen"

// Item is a purchasable ingredient (or pre-made dish) with a shelf life.
type Item struct {
	ID          string
	Name        string
	Cost        int64
	ShelfLifeMs int64
}

// Dish is a menu entry with a sell price.
type Dish struct {
	ID    string
	Name  string
	Price int64
}

// PrepStep turns one raw input into one intermediate item at a zone.
type PrepStep struct {
	Zone        kitchen.ZoneKind
	Input       string
	Output      string
	DurationMs  int64
	Interaction kitchen.Interaction
}

// Recipe is everything a dish needs: zone work for each intermediate plus
// raw garnish consumed directly at assembly. A recipe with no steps is a
// pre-made dish served straight from stock.
type Recipe struct {
	DishID  string
	Steps   []PrepStep
	Garnish []string
}

var items = []Item{
	{ID: "tomato", Name: "Tomato", Cost: 2, ShelfLifeMs: 120_000},
	{ID: "lettuce", Name: "Lettuce", Cost: 1, ShelfLifeMs: 60_000},
	{ID: "beef_raw", Name: "Raw Beef Patty", Cost: 5, ShelfLifeMs: 90_000},
	{ID: "bun_dough", Name: "Bun Dough", Cost: 2, ShelfLifeMs: 180_000},
	{ID: "potato", Name: "Potato", Cost: 1, ShelfLifeMs: 240_000},
	{ID: "lemonade", Name: "Bottled Lemonade", Cost: 2, ShelfLifeMs: 600_000},
}

var dishes = []Dish{
	{ID: "burger", Name: "Classic Burger", Price: 18},
	{ID: "fries", Name: "Crispy Fries", Price: 6},
	{ID: "salad", Name: "Garden Salad", Price: 8},
	{ID: "baked_potato", Name: "Baked Potato", Price: 7},
	{ID: "lemonade", Name: "Bottled Lemonade", Price: 4},
}

var recipes = []Recipe{
	{
		DishID: "burger",
		Steps: []PrepStep{
			{Zone: kitchen.ZoneCuttingBoard, Input: "tomato", Output: "tomato_sliced", DurationMs: 3_000, Interaction: kitchen.InteractionHold},
			{Zone: kitchen.ZoneStove, Input: "beef_raw", Output: "patty_grilled", DurationMs: 10_000, Interaction: kitchen.InteractionFlip},
			{Zone: kitchen.ZoneOven, Input: "bun_dough", Output: "bun_toasted", DurationMs: 8_000, Interaction: kitchen.InteractionAuto},
		},
		Garnish: []string{"lettuce"},
	},
	{
		DishID: "fries",
		Steps: []PrepStep{
			{Zone: kitchen.ZoneStove, Input: "potato", Output: "fries_crisp", DurationMs: 6_000, Interaction: kitchen.InteractionFlip},
		},
	},
	{
		DishID: "salad",
		Steps: []PrepStep{
			{Zone: kitchen.ZoneCuttingBoard, Input: "tomato", Output: "tomato_sliced", DurationMs: 3_000, Interaction: kitchen.InteractionHold},
		},
		Garnish: []string{"lettuce"},
	},
	{
		DishID: "baked_potato",
		Steps: []PrepStep{
			{Zone: kitchen.ZoneOven, Input: "potato", Output: "potato_baked", DurationMs: 9_000, Interaction: kitchen.InteractionAuto},
		},
	},
	{
		// Pre-made: served straight from stock.
		DishID:  "lemonade",
		Garnish: []string{"lemonade"},
	},
}

// Items returns all purchasable items.
func Items() []Item {
	return append([]Item(nil), items...)
}

// Dishes returns the full menu.
func Dishes() []Dish {
	return append([]Dish(nil), dishes...)
}

// ItemByID looks up a purchasable item.
func ItemByID(id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// DishByID looks up a menu entry.
func DishByID(id string) (Dish, bool) {
	for _, d := range dishes {
		if d.ID == id {
			return d, true
		}
	}
	return Dish{}, false
}

// RecipeFor looks up the recipe for a dish.
func RecipeFor(dishID string) (Recipe, bool) {
	for _, r := range recipes {
		if r.DishID == dishID {
			return cloneRecipe(r), true
		}
	}
	return Recipe{}, false
}

// RequirementsFor translates a recipe into what assembly consumes: each
// step's output from the ready pool, plus the garnish from raw inventory.
func RequirementsFor(dishID string) (kitchen.Requirements, bool) {
	r, ok := RecipeFor(dishID)
	if !ok {
		return kitchen.Requirements{}, false
	}
	req := kitchen.Requirements{}
	for _, step := range r.Steps {
		req.ReadyItems = append(req.ReadyItems, step.Output)
	}
	req.RawItems = append(req.RawItems, r.Garnish...)
	return req, true
}

// StepFor finds the prep step that consumes the raw input at the given zone.
// The (input, zone) pair is unique across the catalog.
func StepFor(input string, zone kitchen.ZoneKind) (PrepStep, bool) {
	for _, r := range recipes {
		for _, step := range r.Steps {
			if step.Input == input && step.Zone == zone {
				return step, true
			}
		}
	}
	return PrepStep{}, false
}

// ShelfLife returns the shelf life of an item id, for spoilage sweeps.
func ShelfLife(itemID string) (int64, bool) {
	it, ok := ItemByID(itemID)
	if !ok {
		return 0, false
	}
	return it.ShelfLifeMs, true
}

func cloneRecipe(r Recipe) Recipe {
	out := r
	out.Steps = append([]PrepStep(nil), r.Steps...)
	out.Garnish = append([]string(nil), r.Garnish...)
	return out
}
