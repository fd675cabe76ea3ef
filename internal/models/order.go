package models

// KitchenOrder is a request for one dish, created when a table sends its order
// to the kitchen and destroyed when the assembled dish is picked up.
type KitchenOrder struct {
	ID         string
	CustomerID string
	DishID     string
}

// Player location constants. The service phase tracks where the player is so
// the rendering layer can scope the available actions.
const (
	LocationDiningRoom = "dining_room"
	LocationKitchen    = "kitchen"
)
