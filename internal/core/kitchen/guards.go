package kitchen

import "fmt"

// Guards are pure functions that evaluate preconditions without side effects.
// The transitions themselves no-op on invalid input; guards exist so the
// driving layer can surface the refusal reason to the player.

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanPlaceItem evaluates whether the zone can accept another item.
// Rules:
// - The zone must have at least one empty slot
func CanPlaceItem(s State, zone ZoneKind) GuardResult {
	if !ZoneHasCapacity(s, zone) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s is full", zone),
		}
	}
	return GuardResult{Allowed: true}
}

// CanAssembleOrder evaluates whether an order can be assembled.
// Rules:
// - The order must be pending
// - Every required intermediate must be in the ready pool
// - Every required raw item must be in the store
func CanAssembleOrder(s State, store ItemStore, req Requirements, orderID string) GuardResult {
	if _, ok := PendingOrder(s, orderID); !ok {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("order %s is not pending", orderID),
		}
	}
	for id, n := range tally(req.ReadyItems) {
		if s.Ready[id] < n {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("missing %s from the ready pool", id),
			}
		}
	}
	for id, n := range tally(req.RawItems) {
		if store.Count(id) < n {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("missing %s from inventory", id),
			}
		}
	}
	return GuardResult{Allowed: true}
}

// CanFlipStove evaluates whether a stove slot can be flipped.
// Rules:
// - The slot must be waiting at its flip gate
func CanFlipStove(s State, slotIndex int) GuardResult {
	if slotIndex < 0 || slotIndex >= len(s.Stove) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("no stove slot %d", slotIndex),
		}
	}
	if s.Stove[slotIndex].Status != SlotNeedsFlip {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("stove slot %d does not need a flip", slotIndex),
		}
	}
	return GuardResult{Allowed: true}
}
