package kitchen

import (
	"testing"

	"github.com/example/rush/internal/models"
)

// fakeStore is a minimal in-memory ItemStore for assembly tests.
type fakeStore struct {
	counts map[string]int
	// removeCalls records every RemoveSet invocation.
	removeCalls [][]string
}

func newFakeStore(counts map[string]int) *fakeStore {
	c := make(map[string]int, len(counts))
	for k, v := range counts {
		c[k] = v
	}
	return &fakeStore{counts: c}
}

func (f *fakeStore) Count(itemID string) int {
	return f.counts[itemID]
}

func (f *fakeStore) RemoveSet(itemIDs []string) bool {
	need := map[string]int{}
	for _, id := range itemIDs {
		need[id]++
	}
	for id, n := range need {
		if f.counts[id] < n {
			return false
		}
	}
	for id, n := range need {
		f.counts[id] -= n
	}
	f.removeCalls = append(f.removeCalls, itemIDs)
	return true
}

func burgerOrder() models.KitchenOrder {
	return models.KitchenOrder{ID: "ord-1", CustomerID: "c1", DishID: "burger"}
}

func burgerRequirements() Requirements {
	return Requirements{
		ReadyItems: []string{"tomato_sliced", "patty_grilled", "bun_toasted"},
		RawItems:   []string{"lettuce"},
	}
}

func kitchenWithReady(ready map[string]int) State {
	s := NewState(DefaultZoneConfig())
	s = AddOrder(s, burgerOrder())
	for id, n := range ready {
		s.Ready[id] = n
	}
	return s
}

func TestAddOrder(t *testing.T) {
	s := NewState(DefaultZoneConfig())

	s = AddOrder(s, burgerOrder())

	if len(s.PendingOrders) != 1 || s.PendingOrders[0].ID != "ord-1" {
		t.Errorf("expected pending ord-1, got %+v", s.PendingOrders)
	}
	if _, ok := PendingOrder(s, "ord-1"); !ok {
		t.Error("expected PendingOrder lookup to find ord-1")
	}
}

func TestAssembleOrder(t *testing.T) {
	s := kitchenWithReady(map[string]int{
		"tomato_sliced": 1,
		"patty_grilled": 1,
		"bun_toasted":   2,
	})
	store := newFakeStore(map[string]int{"lettuce": 1})

	got, ok := AssembleOrder(s, store, burgerRequirements(), "ord-1")

	if !ok {
		t.Fatal("expected assembly to succeed")
	}
	if len(got.PendingOrders) != 0 {
		t.Errorf("expected pending cleared, got %d", len(got.PendingOrders))
	}
	if len(got.OrderUp) != 1 || got.OrderUp[0].ID != "ord-1" {
		t.Errorf("expected ord-1 on order-up, got %+v", got.OrderUp)
	}
	if got.Ready["tomato_sliced"] != 0 || got.Ready["patty_grilled"] != 0 {
		t.Errorf("expected consumed intermediates, got %v", got.Ready)
	}
	if got.Ready["bun_toasted"] != 1 {
		t.Errorf("expected one spare bun left, got %d", got.Ready["bun_toasted"])
	}
	if store.Count("lettuce") != 0 {
		t.Errorf("expected lettuce consumed, got %d", store.Count("lettuce"))
	}
}

func TestAssembleOrderAtomicFailure(t *testing.T) {
	tests := []struct {
		name  string
		ready map[string]int
		store map[string]int
	}{
		{
			name:  "missing intermediate",
			ready: map[string]int{"tomato_sliced": 1, "bun_toasted": 1},
			store: map[string]int{"lettuce": 1},
		},
		{
			name:  "missing raw garnish",
			ready: map[string]int{"tomato_sliced": 1, "patty_grilled": 1, "bun_toasted": 1},
			store: map[string]int{},
		},
		{
			name:  "missing everything",
			ready: map[string]int{},
			store: map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := kitchenWithReady(tt.ready)
			store := newFakeStore(tt.store)

			got, ok := AssembleOrder(s, store, burgerRequirements(), "ord-1")

			if ok {
				t.Fatal("expected assembly to fail")
			}
			// No partial consumption anywhere: kitchen unchanged, store
			// never touched.
			if len(got.PendingOrders) != 1 || len(got.OrderUp) != 0 {
				t.Errorf("expected order queues unchanged, got pending=%d orderUp=%d", len(got.PendingOrders), len(got.OrderUp))
			}
			for id, n := range tt.ready {
				if got.Ready[id] != n {
					t.Errorf("ready pool %s: expected %d, got %d", id, n, got.Ready[id])
				}
			}
			if len(store.removeCalls) != 0 {
				t.Errorf("expected no RemoveSet calls, got %v", store.removeCalls)
			}
		})
	}
}

func TestAssembleOrderUnknownOrder(t *testing.T) {
	s := kitchenWithReady(map[string]int{"tomato_sliced": 1})
	store := newFakeStore(map[string]int{"lettuce": 1})

	_, ok := AssembleOrder(s, store, burgerRequirements(), "ord-nope")

	if ok {
		t.Error("expected assembly of an unknown order to fail")
	}
}

func TestAssembleOrderWithoutRawItems(t *testing.T) {
	s := NewState(DefaultZoneConfig())
	s = AddOrder(s, models.KitchenOrder{ID: "ord-2", CustomerID: "c2", DishID: "fries"})
	s.Ready["fries_crisp"] = 1
	store := newFakeStore(nil)

	got, ok := AssembleOrder(s, store, Requirements{ReadyItems: []string{"fries_crisp"}}, "ord-2")

	if !ok {
		t.Fatal("expected assembly to succeed")
	}
	if len(store.removeCalls) != 0 {
		t.Error("expected the store untouched for a garnish-free recipe")
	}
	if len(got.OrderUp) != 1 {
		t.Errorf("expected 1 order up, got %d", len(got.OrderUp))
	}
}

func TestPickup(t *testing.T) {
	s := NewState(DefaultZoneConfig())
	s.OrderUp = append(s.OrderUp, burgerOrder())

	got, ok := Pickup(s, "ord-1")
	if !ok {
		t.Fatal("expected pickup to succeed")
	}
	if len(got.OrderUp) != 0 {
		t.Errorf("expected order-up cleared, got %d", len(got.OrderUp))
	}

	if _, ok := Pickup(got, "ord-1"); ok {
		t.Error("expected second pickup to fail")
	}
}

func TestGuards(t *testing.T) {
	full := NewState(ZoneConfig{CuttingBoardSlots: 1, StoveSlots: 1, OvenSlots: 1})
	full, _ = PlaceItem(full, ZoneCuttingBoard, "x", 1_000, InteractionHold)

	if g := CanPlaceItem(full, ZoneCuttingBoard); g.Allowed {
		t.Error("expected full zone to refuse placement")
	} else if g.Error() == nil {
		t.Error("expected a reason error for refusal")
	}
	if g := CanPlaceItem(full, ZoneStove); !g.Allowed {
		t.Errorf("expected stove to accept, got %q", g.Reason)
	}

	s := kitchenWithReady(map[string]int{"tomato_sliced": 1})
	store := newFakeStore(nil)
	if g := CanAssembleOrder(s, store, burgerRequirements(), "ord-1"); g.Allowed {
		t.Error("expected missing components to refuse assembly")
	}
	if g := CanFlipStove(s, 0); g.Allowed {
		t.Error("expected flip of an empty slot to be refused")
	}
}
