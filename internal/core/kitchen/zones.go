// Package kitchen contains the pure back-of-house state for one dinner
// service: the cooking-zone pipeline, the pending/finished order queues, and
// order assembly. Every operation is a value-in/value-out transformation;
// guarded transitions return their input unchanged when the precondition does
// not hold, and fallible operations report failure without partial updates.
package kitchen

import "github.com/example/rush/internal/models"

// ZoneKind identifies a cooking station.
type ZoneKind string

const (
	ZoneCuttingBoard ZoneKind = "cutting_board"
	ZoneStove        ZoneKind = "stove"
	ZoneOven         ZoneKind = "oven"
)

// Interaction describes how a working slot makes progress.
type Interaction string

const (
	// InteractionHold advances only while the player holds the slot active.
	InteractionHold Interaction = "hold"
	// InteractionFlip advances on its own but halts at the flip gate until
	// the slot is flipped, then advances on its own to completion.
	InteractionFlip Interaction = "flip"
	// InteractionAuto advances unconditionally.
	InteractionAuto Interaction = "auto"
)

// SlotStatus identifies the state of one unit of zone capacity.
type SlotStatus string

const (
	SlotEmpty     SlotStatus = "empty"
	SlotWorking   SlotStatus = "working"
	SlotNeedsFlip SlotStatus = "needs_flip"
)

// FlipGateFraction is the progress fraction at which a flip-interaction slot
// halts and waits for a flip. A slot crosses the gate at most once per
// lifecycle: once flipped it resumes working past the gate and never returns.
const FlipGateFraction = 0.5

// ZoneConfig fixes the slot capacity of each station kind.
type ZoneConfig struct {
	CuttingBoardSlots int
	StoveSlots        int
	OvenSlots         int
}

// DefaultZoneConfig returns the standard station capacities.
func DefaultZoneConfig() ZoneConfig {
	return ZoneConfig{
		CuttingBoardSlots: 1,
		StoveSlots:        3,
		OvenSlots:         2,
	}
}

// Slot is one unit of zone capacity, independently progressing a single item.
type Slot struct {
	Status       SlotStatus
	OutputItemID string
	ProgressMs   int64
	DurationMs   int64
	Interaction  Interaction
	Active       bool
}

// flipGateMs returns the progress at which this slot's flip gate sits.
func (s Slot) flipGateMs() int64 {
	return int64(float64(s.DurationMs) * FlipGateFraction)
}

// State aggregates the zone pipeline and the order queues for one service.
type State struct {
	PendingOrders []models.KitchenOrder
	CuttingBoard  []Slot
	Stove         []Slot
	Oven          []Slot
	// Ready is the multiset of completed intermediate items awaiting
	// assembly, keyed by item id.
	Ready   map[string]int
	OrderUp []models.KitchenOrder
}

// NewState creates an idle kitchen with the given station capacities.
func NewState(cfg ZoneConfig) State {
	return State{
		CuttingBoard: make([]Slot, cfg.CuttingBoardSlots),
		Stove:        make([]Slot, cfg.StoveSlots),
		Oven:         make([]Slot, cfg.OvenSlots),
		Ready:        map[string]int{},
	}
}

// clone returns a deep copy so operations never alias their input.
func (s State) clone() State {
	out := s
	out.PendingOrders = append([]models.KitchenOrder(nil), s.PendingOrders...)
	out.CuttingBoard = append([]Slot(nil), s.CuttingBoard...)
	out.Stove = append([]Slot(nil), s.Stove...)
	out.Oven = append([]Slot(nil), s.Oven...)
	out.OrderUp = append([]models.KitchenOrder(nil), s.OrderUp...)
	out.Ready = make(map[string]int, len(s.Ready))
	for id, n := range s.Ready {
		out.Ready[id] = n
	}
	return out
}

// zoneSlots returns the slot array for a zone kind. The returned slice
// belongs to the receiver; callers that mutate must clone first.
func (s *State) zoneSlots(zone ZoneKind) []Slot {
	switch zone {
	case ZoneCuttingBoard:
		return s.CuttingBoard
	case ZoneStove:
		return s.Stove
	case ZoneOven:
		return s.Oven
	}
	return nil
}

// PlaceItem starts work on an item in the first empty slot of the zone.
// Returns ok=false without modifying anything when the zone is saturated, so
// callers can check capacity before committing ingredient consumption.
func PlaceItem(s State, zone ZoneKind, outputItemID string, durationMs int64, interaction Interaction) (State, bool) {
	idx := firstEmptySlot(s.zoneSlots(zone))
	if idx < 0 {
		return s, false
	}
	out := s.clone()
	out.zoneSlots(zone)[idx] = Slot{
		Status:       SlotWorking,
		OutputItemID: outputItemID,
		ProgressMs:   0,
		DurationMs:   durationMs,
		Interaction:  interaction,
	}
	return out, true
}

func firstEmptySlot(slots []Slot) int {
	for i, slot := range slots {
		if slot.Status == SlotEmpty || slot.Status == "" {
			return i
		}
	}
	return -1
}

// TickZones advances every working slot by elapsedMs, subject to its
// interaction discipline. Slots that reach their full duration deposit their
// output into the ready pool and reset to empty in the same tick.
func TickZones(s State, elapsedMs int64) State {
	if elapsedMs <= 0 {
		return s
	}
	out := s.clone()
	for _, zone := range []ZoneKind{ZoneCuttingBoard, ZoneStove, ZoneOven} {
		slots := out.zoneSlots(zone)
		for i := range slots {
			slots[i] = advanceSlot(slots[i], elapsedMs, out.Ready)
		}
	}
	return out
}

// advanceSlot applies one tick to a single slot, harvesting into ready on
// completion.
func advanceSlot(slot Slot, elapsedMs int64, ready map[string]int) Slot {
	if slot.Status != SlotWorking {
		return slot
	}

	switch slot.Interaction {
	case InteractionHold:
		if !slot.Active {
			return slot
		}
		slot.ProgressMs += elapsedMs
	case InteractionFlip:
		gate := slot.flipGateMs()
		if slot.ProgressMs < gate {
			slot.ProgressMs += elapsedMs
			if slot.ProgressMs >= gate {
				// Halt at the gate; the overshoot is discarded so the
				// flip always resumes from exactly the midpoint.
				slot.ProgressMs = gate
				slot.Status = SlotNeedsFlip
				return slot
			}
		} else {
			slot.ProgressMs += elapsedMs
		}
	case InteractionAuto:
		slot.ProgressMs += elapsedMs
	default:
		return slot
	}

	if slot.ProgressMs >= slot.DurationMs {
		ready[slot.OutputItemID]++
		return Slot{Status: SlotEmpty}
	}
	return slot
}

// ActivateCuttingBoard sets the hold signal on one cutting-board slot.
// No-op unless the slot is working with a hold interaction.
func ActivateCuttingBoard(s State, slotIndex int, active bool) State {
	if slotIndex < 0 || slotIndex >= len(s.CuttingBoard) {
		return s
	}
	slot := s.CuttingBoard[slotIndex]
	if slot.Status != SlotWorking || slot.Interaction != InteractionHold {
		return s
	}
	out := s.clone()
	out.CuttingBoard[slotIndex].Active = active
	return out
}

// FlipStove clears the flip gate on one stove slot, resuming its progress.
// No-op unless the slot is waiting at the gate.
func FlipStove(s State, slotIndex int) State {
	if slotIndex < 0 || slotIndex >= len(s.Stove) {
		return s
	}
	if s.Stove[slotIndex].Status != SlotNeedsFlip {
		return s
	}
	out := s.clone()
	out.Stove[slotIndex].Status = SlotWorking
	return out
}

// ZoneHasCapacity reports whether the zone has at least one empty slot.
func ZoneHasCapacity(s State, zone ZoneKind) bool {
	return firstEmptySlot(s.zoneSlots(zone)) >= 0
}

// IsIdle reports whether nothing is in flight: no pending orders, all slots
// empty, nothing in the ready pool, and nothing awaiting pickup.
func IsIdle(s State) bool {
	if len(s.PendingOrders) > 0 || len(s.OrderUp) > 0 {
		return false
	}
	for _, n := range s.Ready {
		if n > 0 {
			return false
		}
	}
	for _, zone := range []ZoneKind{ZoneCuttingBoard, ZoneStove, ZoneOven} {
		for _, slot := range s.zoneSlots(zone) {
			if slot.Status != SlotEmpty && slot.Status != "" {
				return false
			}
		}
	}
	return true
}
