package kitchen

import "github.com/example/rush/internal/models"

// Requirements lists what assembling one dish consumes: intermediate items
// from the ready pool and raw items from the external inventory.
type Requirements struct {
	ReadyItems []string
	RawItems   []string
}

// ItemStore is the slice of the external inventory the kitchen needs.
// RemoveSet must be atomic: it removes every listed item or nothing.
type ItemStore interface {
	Count(itemID string) int
	RemoveSet(itemIDs []string) bool
}

// AddOrder appends a kitchen order to the pending queue.
func AddOrder(s State, order models.KitchenOrder) State {
	out := s.clone()
	out.PendingOrders = append(out.PendingOrders, order)
	return out
}

// AssembleOrder moves a pending order to order-up, consuming its required
// intermediates from the ready pool and its raw items from store. The
// operation is all-or-nothing: if the order is not pending or any component
// is missing, it returns ok=false and neither the kitchen nor the store is
// modified.
func AssembleOrder(s State, store ItemStore, req Requirements, orderID string) (State, bool) {
	idx := findOrder(s.PendingOrders, orderID)
	if idx < 0 {
		return s, false
	}

	needReady := tally(req.ReadyItems)
	for id, n := range needReady {
		if s.Ready[id] < n {
			return s, false
		}
	}
	needRaw := tally(req.RawItems)
	for id, n := range needRaw {
		if store.Count(id) < n {
			return s, false
		}
	}

	out := s.clone()
	for id, n := range needReady {
		out.Ready[id] -= n
		if out.Ready[id] == 0 {
			delete(out.Ready, id)
		}
	}
	if len(req.RawItems) > 0 && !store.RemoveSet(req.RawItems) {
		// Counts were verified above; a failing store contradicts its own
		// Count and the safe answer is to change nothing.
		return s, false
	}

	order := out.PendingOrders[idx]
	out.PendingOrders = append(out.PendingOrders[:idx], out.PendingOrders[idx+1:]...)
	out.OrderUp = append(out.OrderUp, order)
	return out, true
}

// Pickup removes a completed order from order-up once the dining room has
// consumed it. Returns ok=false if no such order is waiting.
func Pickup(s State, orderID string) (State, bool) {
	idx := findOrder(s.OrderUp, orderID)
	if idx < 0 {
		return s, false
	}
	out := s.clone()
	out.OrderUp = append(out.OrderUp[:idx], out.OrderUp[idx+1:]...)
	return out, true
}

// PendingOrder returns the pending order with the given id.
func PendingOrder(s State, orderID string) (models.KitchenOrder, bool) {
	idx := findOrder(s.PendingOrders, orderID)
	if idx < 0 {
		return models.KitchenOrder{}, false
	}
	return s.PendingOrders[idx], true
}

func findOrder(orders []models.KitchenOrder, orderID string) int {
	for i, o := range orders {
		if o.ID == orderID {
			return i
		}
	}
	return -1
}

func tally(ids []string) map[string]int {
	counts := make(map[string]int, len(ids))
	for _, id := range ids {
		counts[id]++
	}
	return counts
}
