// Package app binds the pure core to the mutable collaborators (wallet,
// inventory, catalog) and exposes player intents. Services in this package
// validate with the core guards, surface refusal reasons as errors, and
// write the transformed state back.
package app

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/example/rush/internal/catalog"
	"github.com/example/rush/internal/config"
	"github.com/example/rush/internal/core/daycycle"
	"github.com/example/rush/internal/core/dining"
	"github.com/example/rush/internal/core/kitchen"
	"github.com/example/rush/internal/inventory"
	"github.com/example/rush/internal/models"
	"github.com/example/rush/internal/wallet"
)

// Session is one run-through of restaurant days: the day-cycle state machine
// plus the coin balance and ingredient stock that persist across days.
type Session struct {
	cfg     *config.Config
	cycle   daycycle.DayCycle
	wallet  *wallet.Wallet
	stock   *inventory.Stock
	clockMs int64

	itemsSpoiled int

	// newOrderID is swappable so tests get deterministic order ids.
	newOrderID func() string
}

// NewSession starts a session on day 1 in the grocery phase.
func NewSession(cfg *config.Config) *Session {
	return &Session{
		cfg:        cfg,
		cycle:      daycycle.New(phaseDurations(cfg)),
		wallet:     wallet.New(cfg.StartingCoins),
		stock:      inventory.New(),
		newOrderID: uuid.NewString,
	}
}

func phaseDurations(cfg *config.Config) daycycle.PhaseDurations {
	return daycycle.PhaseDurations{
		GroceryMs:     cfg.GroceryMs,
		KitchenPrepMs: cfg.KitchenPrepMs,
		ServiceMs:     cfg.ServiceMs,
	}
}

func zoneConfig(cfg *config.Config) kitchen.ZoneConfig {
	return kitchen.ZoneConfig{
		CuttingBoardSlots: cfg.CuttingBoardSlots,
		StoveSlots:        cfg.StoveSlots,
		OvenSlots:         cfg.OvenSlots,
	}
}

// Day returns the current day number.
func (s *Session) Day() int {
	return s.cycle.Day
}

// PhaseKind returns the current phase.
func (s *Session) PhaseKind() daycycle.PhaseKind {
	return s.cycle.Phase.Kind
}

// PhaseExpired reports whether the current timed phase has run out.
func (s *Session) PhaseExpired() bool {
	return daycycle.IsPhaseTimerExpired(s.cycle)
}

// PhaseRemainingMs returns the milliseconds left on the phase timer.
func (s *Session) PhaseRemainingMs() int64 {
	return s.cycle.Phase.RemainingMs
}

// Coins returns the current balance.
func (s *Session) Coins() int64 {
	return s.wallet.Coins
}

// StockCounts returns a snapshot of the ingredient stock.
func (s *Session) StockCounts() map[string]int {
	return s.stock.Counts()
}

// ItemsSpoiled returns the cumulative count of spoiled items this session.
func (s *Session) ItemsSpoiled() int {
	return s.itemsSpoiled
}

// Service returns a snapshot of the live service state. ok is false outside
// the service phase.
func (s *Session) Service() (dining.ServiceState, bool) {
	if s.cycle.Phase.Kind != daycycle.PhaseService || s.cycle.Phase.Service == nil {
		return dining.ServiceState{}, false
	}
	return *s.cycle.Phase.Service, true
}

// Summary returns the day-end snapshot. ok is false outside day_end.
func (s *Session) Summary() (daycycle.DaySummary, bool) {
	if s.cycle.Phase.Kind != daycycle.PhaseDayEnd {
		return daycycle.DaySummary{}, false
	}
	return s.cycle.Phase.Summary, true
}

// service returns the live service state for mutation, or an error outside
// the service phase.
func (s *Session) service() (*dining.ServiceState, error) {
	if s.cycle.Phase.Kind != daycycle.PhaseService || s.cycle.Phase.Service == nil {
		return nil, fmt.Errorf("not in the service phase")
	}
	return s.cycle.Phase.Service, nil
}

// BuyItem purchases qty units of an item during the grocery phase, debiting
// the wallet and adding the units to stock.
func (s *Session) BuyItem(itemID string, qty int) error {
	if s.cycle.Phase.Kind != daycycle.PhaseGrocery {
		return fmt.Errorf("can only buy during the grocery phase")
	}
	if qty <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	item, ok := catalog.ItemByID(itemID)
	if !ok {
		return fmt.Errorf("unknown item %s", itemID)
	}
	cost := item.Cost * int64(qty)
	if !s.wallet.Debit(cost) {
		return fmt.Errorf("cannot afford %d x %s (%d coins, have %d)", qty, itemID, cost, s.wallet.Coins)
	}
	for i := 0; i < qty; i++ {
		s.stock.Add(itemID, s.clockMs)
	}
	return nil
}

// AdvancePhase moves the day cycle to its next phase. From day_end this
// starts the next day.
func (s *Session) AdvancePhase() {
	switch s.cycle.Phase.Kind {
	case daycycle.PhaseGrocery:
		s.cycle = daycycle.AdvanceToKitchenPrep(s.cycle, s.cfg.KitchenPrepMs)
	case daycycle.PhaseKitchenPrep:
		s.cycle = daycycle.AdvanceToService(s.cycle, s.cfg.ServiceMs, s.cfg.TableCount, zoneConfig(s.cfg))
	case daycycle.PhaseService:
		s.cycle = daycycle.AdvanceToDayEnd(s.cycle)
	case daycycle.PhaseDayEnd:
		s.cycle = daycycle.AdvanceToNextDay(s.cycle, s.cfg.GroceryMs)
	}
}

// SpawnCustomer brings a new customer wanting dishID into the dining room,
// seating them or queueing them.
func (s *Session) SpawnCustomer(dishID string) error {
	svc, err := s.service()
	if err != nil {
		return err
	}
	if _, ok := catalog.DishByID(dishID); !ok {
		return fmt.Errorf("unknown dish %s", dishID)
	}
	c := models.NewCustomer(uuid.NewString(), dishID, s.cfg.CustomerPatienceMs)
	*svc = dining.EnqueueCustomer(*svc, c)
	return nil
}

// PlaceIngredient starts prep work on one unit of a raw item at a zone.
// Zone capacity is checked before the ingredient leaves stock, so a full
// zone never costs an ingredient.
func (s *Session) PlaceIngredient(itemID string, zone kitchen.ZoneKind) error {
	svc, err := s.service()
	if err != nil {
		return err
	}
	step, ok := catalog.StepFor(itemID, zone)
	if !ok {
		return fmt.Errorf("no prep for %s at the %s", itemID, zone)
	}
	if err := kitchen.CanPlaceItem(svc.Kitchen, zone).Error(); err != nil {
		return err
	}
	if s.stock.Count(itemID) == 0 {
		return fmt.Errorf("no %s in stock", itemID)
	}
	k, ok := kitchen.PlaceItem(svc.Kitchen, zone, step.Output, step.DurationMs, step.Interaction)
	if !ok {
		return fmt.Errorf("%s is full", zone)
	}
	if !s.stock.RemoveSet([]string{itemID}) {
		return fmt.Errorf("no %s in stock", itemID)
	}
	svc.Kitchen = k
	return nil
}

// HoldCuttingBoard sets the hold signal on a cutting-board slot. Progress
// only accrues while the hold is active.
func (s *Session) HoldCuttingBoard(slotIndex int, active bool) error {
	svc, err := s.service()
	if err != nil {
		return err
	}
	if slotIndex < 0 || slotIndex >= len(svc.Kitchen.CuttingBoard) {
		return fmt.Errorf("no cutting board slot %d", slotIndex)
	}
	slot := svc.Kitchen.CuttingBoard[slotIndex]
	if slot.Status != kitchen.SlotWorking || slot.Interaction != kitchen.InteractionHold {
		return fmt.Errorf("cutting board slot %d is not being worked", slotIndex)
	}
	svc.Kitchen = kitchen.ActivateCuttingBoard(svc.Kitchen, slotIndex, active)
	return nil
}

// FlipStoveSlot clears the flip gate on a stove slot.
func (s *Session) FlipStoveSlot(slotIndex int) error {
	svc, err := s.service()
	if err != nil {
		return err
	}
	if err := kitchen.CanFlipStove(svc.Kitchen, slotIndex).Error(); err != nil {
		return err
	}
	svc.Kitchen = kitchen.FlipStove(svc.Kitchen, slotIndex)
	return nil
}

// TakeOrder takes the order at a table with a waiting customer.
func (s *Session) TakeOrder(tableID int) error {
	svc, err := s.service()
	if err != nil {
		return err
	}
	if err := dining.CanTakeOrder(*svc, tableID).Error(); err != nil {
		return err
	}
	*svc = dining.TakeOrder(*svc, tableID)
	return nil
}

// SendOrder sends a table's pending order to the kitchen and returns the new
// order id.
func (s *Session) SendOrder(tableID int) (string, error) {
	svc, err := s.service()
	if err != nil {
		return "", err
	}
	if err := dining.CanSendOrder(*svc, tableID).Error(); err != nil {
		return "", err
	}
	orderID := s.newOrderID()
	*svc = dining.SendOrderToKitchen(*svc, tableID, orderID)
	return orderID, nil
}

// AssembleOrder assembles a pending kitchen order from the ready pool and
// stock, then marks the table's dish ready to serve. All-or-nothing.
func (s *Session) AssembleOrder(orderID string) error {
	svc, err := s.service()
	if err != nil {
		return err
	}
	order, ok := kitchen.PendingOrder(svc.Kitchen, orderID)
	if !ok {
		return fmt.Errorf("order %s is not pending", orderID)
	}
	req, ok := catalog.RequirementsFor(order.DishID)
	if !ok {
		return fmt.Errorf("no recipe for %s", order.DishID)
	}
	if err := kitchen.CanAssembleOrder(svc.Kitchen, s.stock, req, orderID).Error(); err != nil {
		return err
	}
	k, ok := kitchen.AssembleOrder(svc.Kitchen, s.stock, req, orderID)
	if !ok {
		return fmt.Errorf("could not assemble order %s", orderID)
	}
	svc.Kitchen = k
	*svc = dining.NotifyOrderReady(*svc, orderID)
	return nil
}

// Serve delivers a ready dish to its table, crediting the sale.
func (s *Session) Serve(tableID int) error {
	svc, err := s.service()
	if err != nil {
		return err
	}
	if err := dining.CanServe(*svc, tableID).Error(); err != nil {
		return err
	}
	dish, ok := catalog.DishByID(svc.Tables[tableID].Customer.DishID)
	if !ok {
		return fmt.Errorf("unknown dish %s", svc.Tables[tableID].Customer.DishID)
	}
	*svc = dining.ServeOrder(*svc, tableID, dish.Price)
	s.wallet.Credit(dish.Price)
	return nil
}

// ServeFromStock serves a pre-made dish straight from stock, skipping the
// kitchen. Only dishes with no prep steps qualify.
func (s *Session) ServeFromStock(tableID int) error {
	svc, err := s.service()
	if err != nil {
		return err
	}
	if err := dining.CanServeFromStock(*svc, tableID).Error(); err != nil {
		return err
	}
	dishID := svc.Tables[tableID].Customer.DishID
	dish, ok := catalog.DishByID(dishID)
	if !ok {
		return fmt.Errorf("unknown dish %s", dishID)
	}
	recipe, ok := catalog.RecipeFor(dishID)
	if !ok || len(recipe.Steps) > 0 {
		return fmt.Errorf("%s is not a pre-made dish", dishID)
	}
	if !s.stock.RemoveSet(recipe.Garnish) {
		return fmt.Errorf("missing stock for %s", dishID)
	}
	*svc = dining.ServeFromStock(*svc, tableID, dish.Price)
	s.wallet.Credit(dish.Price)
	return nil
}

// MoveTo records where the player is.
func (s *Session) MoveTo(location string) error {
	svc, err := s.service()
	if err != nil {
		return err
	}
	if location != models.LocationDiningRoom && location != models.LocationKitchen {
		return fmt.Errorf("unknown location %s", location)
	}
	*svc = dining.SetPlayerLocation(*svc, location)
	return nil
}

// Tick advances simulated time: the phase timer counts down, the live
// service (if any) advances, and stock past its shelf life spoils. Returns
// the ids of items that spoiled this tick.
func (s *Session) Tick(elapsedMs int64) []string {
	if elapsedMs <= 0 {
		return nil
	}
	s.clockMs += elapsedMs
	s.cycle = daycycle.TickTimer(s.cycle, elapsedMs)
	if svc, err := s.service(); err == nil {
		*svc = dining.Tick(*svc, elapsedMs)
	}
	spoiled := s.stock.RemoveExpired(s.clockMs, catalog.ShelfLife)
	s.itemsSpoiled += len(spoiled)
	return spoiled
}
