package app

import (
	"fmt"
	"testing"

	"github.com/example/rush/internal/config"
	"github.com/example/rush/internal/core/daycycle"
	"github.com/example/rush/internal/core/dining"
	"github.com/example/rush/internal/core/kitchen"
)

// testSession returns a session with sequential order ids.
func testSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(config.DefaultConfig())
	next := 0
	s.newOrderID = func() string {
		next++
		return fmt.Sprintf("ORD-%03d", next)
	}
	return s
}

// serviceSession advances a fresh session into the service phase.
func serviceSession(t *testing.T, buys map[string]int) *Session {
	t.Helper()
	s := testSession(t)
	for itemID, qty := range buys {
		if err := s.BuyItem(itemID, qty); err != nil {
			t.Fatalf("BuyItem(%s, %d) failed: %v", itemID, qty, err)
		}
	}
	s.AdvancePhase()
	s.AdvancePhase()
	if s.PhaseKind() != daycycle.PhaseService {
		t.Fatalf("expected service phase, got %s", s.PhaseKind())
	}
	return s
}

func TestNewSessionStartsDayOneGrocery(t *testing.T) {
	s := testSession(t)
	if s.Day() != 1 {
		t.Errorf("expected day 1, got %d", s.Day())
	}
	if s.PhaseKind() != daycycle.PhaseGrocery {
		t.Errorf("expected grocery phase, got %s", s.PhaseKind())
	}
	if s.Coins() != 50 {
		t.Errorf("expected starting coins 50, got %d", s.Coins())
	}
}

func TestBuyItem(t *testing.T) {
	tests := []struct {
		name      string
		itemID    string
		qty       int
		wantErr   bool
		wantCoins int64
		wantStock int
	}{
		{name: "buys and debits", itemID: "tomato", qty: 3, wantCoins: 44, wantStock: 3},
		{name: "unknown item", itemID: "caviar", qty: 1, wantErr: true, wantCoins: 50},
		{name: "zero quantity", itemID: "tomato", qty: 0, wantErr: true, wantCoins: 50},
		{name: "unaffordable", itemID: "beef_raw", qty: 11, wantErr: true, wantCoins: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSession(t)
			err := s.BuyItem(tt.itemID, tt.qty)
			if (err != nil) != tt.wantErr {
				t.Fatalf("BuyItem error = %v, wantErr %v", err, tt.wantErr)
			}
			if s.Coins() != tt.wantCoins {
				t.Errorf("expected %d coins, got %d", tt.wantCoins, s.Coins())
			}
			if got := s.StockCounts()[tt.itemID]; got != tt.wantStock {
				t.Errorf("expected %d in stock, got %d", tt.wantStock, got)
			}
		})
	}
}

func TestBuyItemOnlyDuringGrocery(t *testing.T) {
	s := testSession(t)
	s.AdvancePhase()
	if err := s.BuyItem("tomato", 1); err == nil {
		t.Error("expected buying outside the grocery phase to fail")
	}
}

func TestAdvancePhaseWalksTheDay(t *testing.T) {
	s := testSession(t)
	want := []daycycle.PhaseKind{
		daycycle.PhaseKitchenPrep,
		daycycle.PhaseService,
		daycycle.PhaseDayEnd,
	}
	for _, kind := range want {
		s.AdvancePhase()
		if s.PhaseKind() != kind {
			t.Fatalf("expected %s, got %s", kind, s.PhaseKind())
		}
	}
	s.AdvancePhase()
	if s.Day() != 2 || s.PhaseKind() != daycycle.PhaseGrocery {
		t.Errorf("expected day 2 grocery, got day %d %s", s.Day(), s.PhaseKind())
	}
}

func TestSpawnCustomerSeatsAtTable(t *testing.T) {
	s := serviceSession(t, nil)
	if err := s.SpawnCustomer("salad"); err != nil {
		t.Fatalf("SpawnCustomer failed: %v", err)
	}
	svc, ok := s.Service()
	if !ok {
		t.Fatal("expected live service state")
	}
	if svc.Tables[0].Status != dining.TableCustomerWaiting {
		t.Errorf("expected customer at table 0, got %s", svc.Tables[0].Status)
	}
	if svc.Tables[0].Customer.DishID != "salad" {
		t.Errorf("expected salad order, got %s", svc.Tables[0].Customer.DishID)
	}
}

func TestSpawnCustomerRejectsUnknownDish(t *testing.T) {
	s := serviceSession(t, nil)
	if err := s.SpawnCustomer("sushi"); err == nil {
		t.Error("expected unknown dish to fail")
	}
}

func TestSaladEndToEnd(t *testing.T) {
	s := serviceSession(t, map[string]int{"tomato": 1, "lettuce": 1})
	coinsAfterShopping := s.Coins()

	if err := s.SpawnCustomer("salad"); err != nil {
		t.Fatalf("SpawnCustomer failed: %v", err)
	}
	if err := s.TakeOrder(0); err != nil {
		t.Fatalf("TakeOrder failed: %v", err)
	}
	orderID, err := s.SendOrder(0)
	if err != nil {
		t.Fatalf("SendOrder failed: %v", err)
	}

	if err := s.PlaceIngredient("tomato", kitchen.ZoneCuttingBoard); err != nil {
		t.Fatalf("PlaceIngredient failed: %v", err)
	}
	if err := s.HoldCuttingBoard(0, true); err != nil {
		t.Fatalf("HoldCuttingBoard failed: %v", err)
	}
	s.Tick(3_000)

	if err := s.AssembleOrder(orderID); err != nil {
		t.Fatalf("AssembleOrder failed: %v", err)
	}
	svc, _ := s.Service()
	if svc.Tables[0].Status != dining.TableReadyToServe {
		t.Fatalf("expected ready_to_serve, got %s", svc.Tables[0].Status)
	}

	if err := s.Serve(0); err != nil {
		t.Fatalf("Serve failed: %v", err)
	}
	svc, _ = s.Service()
	if svc.CustomersServed != 1 {
		t.Errorf("expected 1 served, got %d", svc.CustomersServed)
	}
	if s.Coins() != coinsAfterShopping+8 {
		t.Errorf("expected salad sale to credit 8 coins, got balance %d", s.Coins())
	}
	if got := s.StockCounts()["lettuce"]; got != 0 {
		t.Errorf("expected garnish consumed, %d lettuce left", got)
	}
}

func TestPlaceIngredientChecksZoneBeforeStock(t *testing.T) {
	s := serviceSession(t, map[string]int{"tomato": 2})

	if err := s.PlaceIngredient("tomato", kitchen.ZoneCuttingBoard); err != nil {
		t.Fatalf("first placement failed: %v", err)
	}
	// The default cutting board has one slot; the second placement must
	// fail on capacity without consuming the second tomato.
	if err := s.PlaceIngredient("tomato", kitchen.ZoneCuttingBoard); err == nil {
		t.Fatal("expected second placement to fail on a full zone")
	}
	if got := s.StockCounts()["tomato"]; got != 1 {
		t.Errorf("full zone consumed stock: expected 1 tomato left, got %d", got)
	}
}

func TestPlaceIngredientRequiresStock(t *testing.T) {
	s := serviceSession(t, nil)
	if err := s.PlaceIngredient("tomato", kitchen.ZoneCuttingBoard); err == nil {
		t.Fatal("expected placement without stock to fail")
	}
	svc, _ := s.Service()
	if svc.Kitchen.CuttingBoard[0].Status == kitchen.SlotWorking {
		t.Error("expected the cutting board to stay empty")
	}
}

func TestPlaceIngredientRejectsWrongZone(t *testing.T) {
	s := serviceSession(t, map[string]int{"tomato": 1})
	if err := s.PlaceIngredient("tomato", kitchen.ZoneOven); err == nil {
		t.Error("expected no recipe step for tomato in the oven")
	}
}

func TestFlipLifecycleThroughSession(t *testing.T) {
	s := serviceSession(t, map[string]int{"beef_raw": 1})
	if err := s.PlaceIngredient("beef_raw", kitchen.ZoneStove); err != nil {
		t.Fatalf("PlaceIngredient failed: %v", err)
	}

	s.Tick(5_000)
	svc, _ := s.Service()
	if svc.Kitchen.Stove[0].Status != kitchen.SlotNeedsFlip {
		t.Fatalf("expected needs_flip at the gate, got %s", svc.Kitchen.Stove[0].Status)
	}

	if err := s.FlipStoveSlot(0); err != nil {
		t.Fatalf("FlipStoveSlot failed: %v", err)
	}
	s.Tick(5_000)
	svc, _ = s.Service()
	if svc.Kitchen.Ready["patty_grilled"] != 1 {
		t.Errorf("expected a grilled patty in the ready pool, got %v", svc.Kitchen.Ready)
	}
}

func TestFlipStoveSlotRequiresGate(t *testing.T) {
	s := serviceSession(t, map[string]int{"beef_raw": 1})
	if err := s.FlipStoveSlot(0); err == nil {
		t.Error("expected flipping an empty slot to fail")
	}
}

func TestHoldCuttingBoardRequiresWork(t *testing.T) {
	s := serviceSession(t, nil)
	if err := s.HoldCuttingBoard(0, true); err == nil {
		t.Error("expected holding an empty slot to fail")
	}
}

func TestServeFromStock(t *testing.T) {
	s := serviceSession(t, map[string]int{"lemonade": 1})
	coinsBefore := s.Coins()

	if err := s.SpawnCustomer("lemonade"); err != nil {
		t.Fatalf("SpawnCustomer failed: %v", err)
	}
	if err := s.ServeFromStock(0); err != nil {
		t.Fatalf("ServeFromStock failed: %v", err)
	}

	svc, _ := s.Service()
	if svc.CustomersServed != 1 {
		t.Errorf("expected 1 served, got %d", svc.CustomersServed)
	}
	if s.Coins() != coinsBefore+4 {
		t.Errorf("expected lemonade sale to credit 4 coins, got balance %d", s.Coins())
	}
	if got := s.StockCounts()["lemonade"]; got != 0 {
		t.Errorf("expected stock consumed, %d lemonade left", got)
	}
}

func TestServeFromStockRejectsCookedDishes(t *testing.T) {
	s := serviceSession(t, map[string]int{"tomato": 1, "lettuce": 1})
	if err := s.SpawnCustomer("salad"); err != nil {
		t.Fatalf("SpawnCustomer failed: %v", err)
	}
	if err := s.ServeFromStock(0); err == nil {
		t.Error("expected serving a cooked dish from stock to fail")
	}
}

func TestServeFromStockRejectsEmptyStock(t *testing.T) {
	s := serviceSession(t, nil)
	if err := s.SpawnCustomer("lemonade"); err != nil {
		t.Fatalf("SpawnCustomer failed: %v", err)
	}
	if err := s.ServeFromStock(0); err == nil {
		t.Error("expected serving without stock to fail")
	}
}

func TestAssembleOrderReportsMissingParts(t *testing.T) {
	s := serviceSession(t, nil)
	if err := s.SpawnCustomer("salad"); err != nil {
		t.Fatalf("SpawnCustomer failed: %v", err)
	}
	if err := s.TakeOrder(0); err != nil {
		t.Fatalf("TakeOrder failed: %v", err)
	}
	orderID, err := s.SendOrder(0)
	if err != nil {
		t.Fatalf("SendOrder failed: %v", err)
	}
	if err := s.AssembleOrder(orderID); err == nil {
		t.Error("expected assembly without parts to fail")
	}
	if err := s.AssembleOrder("ORD-999"); err == nil {
		t.Error("expected assembling an unknown order to fail")
	}
}

func TestTickSpoilsExpiredStock(t *testing.T) {
	s := testSession(t)
	if err := s.BuyItem("lettuce", 2); err != nil {
		t.Fatalf("BuyItem failed: %v", err)
	}

	spoiled := s.Tick(60_000)
	if len(spoiled) != 2 {
		t.Fatalf("expected 2 spoiled items, got %v", spoiled)
	}
	if s.ItemsSpoiled() != 2 {
		t.Errorf("expected spoiled counter 2, got %d", s.ItemsSpoiled())
	}
	if got := s.StockCounts()["lettuce"]; got != 0 {
		t.Errorf("expected spoiled stock removed, %d left", got)
	}
}

func TestTickCountsDownPhaseTimer(t *testing.T) {
	s := testSession(t)
	s.Tick(59_000)
	if s.PhaseExpired() {
		t.Error("phase should not be expired yet")
	}
	s.Tick(2_000)
	if !s.PhaseExpired() {
		t.Error("expected phase timer to expire")
	}
	if s.PhaseRemainingMs() != 0 {
		t.Errorf("expected timer floored at zero, got %d", s.PhaseRemainingMs())
	}
}

func TestMoveTo(t *testing.T) {
	s := serviceSession(t, nil)
	if err := s.MoveTo("kitchen"); err != nil {
		t.Fatalf("MoveTo failed: %v", err)
	}
	svc, _ := s.Service()
	if svc.PlayerLocation != "kitchen" {
		t.Errorf("expected player in the kitchen, got %s", svc.PlayerLocation)
	}
	if err := s.MoveTo("garden"); err == nil {
		t.Error("expected unknown location to fail")
	}
}

func TestServiceIntentsFailOutsideService(t *testing.T) {
	s := testSession(t)
	if err := s.SpawnCustomer("salad"); err == nil {
		t.Error("expected SpawnCustomer to fail in grocery")
	}
	if err := s.TakeOrder(0); err == nil {
		t.Error("expected TakeOrder to fail in grocery")
	}
	if _, err := s.SendOrder(0); err == nil {
		t.Error("expected SendOrder to fail in grocery")
	}
}

func TestSummaryOnlyAtDayEnd(t *testing.T) {
	s := serviceSession(t, map[string]int{"lemonade": 1})
	if _, ok := s.Summary(); ok {
		t.Error("expected no summary during service")
	}

	if err := s.SpawnCustomer("lemonade"); err != nil {
		t.Fatalf("SpawnCustomer failed: %v", err)
	}
	if err := s.ServeFromStock(0); err != nil {
		t.Fatalf("ServeFromStock failed: %v", err)
	}
	s.AdvancePhase()

	summary, ok := s.Summary()
	if !ok {
		t.Fatal("expected a day-end summary")
	}
	if summary.CustomersServed != 1 || summary.Earnings != 4 {
		t.Errorf("unexpected summary: %+v", summary)
	}
}
