package app

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/example/rush/internal/catalog"
	"github.com/example/rush/internal/config"
	"github.com/example/rush/internal/core/dining"
	"github.com/example/rush/internal/core/kitchen"
	"github.com/example/rush/internal/ports/primary"
	"github.com/example/rush/internal/ports/secondary"
)

const (
	defaultTickMs = 500

	// Arrival cadence starts here on day 1 and tightens each day.
	baseArrivalEveryMs = 6_000
	arrivalStepMs      = 1_000
	minArrivalEveryMs  = 2_500

	// Patience shrinks each day, floored so late days stay winnable.
	patienceStepMs = 3_000
	minPatienceMs  = 15_000
)

// SimulationServiceImpl runs seeded automated service days and records the
// results. The same seed always produces the same day results.
type SimulationServiceImpl struct {
	runRepo secondary.RunRepository
	cfg     *config.Config
}

// NewSimulationService creates a new SimulationService with injected
// dependencies.
func NewSimulationService(runRepo secondary.RunRepository, cfg *config.Config) *SimulationServiceImpl {
	return &SimulationServiceImpl{runRepo: runRepo, cfg: cfg}
}

// Simulate plays req.Days automated days and persists the run.
func (s *SimulationServiceImpl) Simulate(ctx context.Context, req primary.SimulateRequest) (*primary.SimulateResponse, error) {
	if req.Days <= 0 {
		return nil, fmt.Errorf("days must be positive")
	}
	tickMs := req.TickMs
	if tickMs <= 0 {
		tickMs = defaultTickMs
	}

	// The session gets its own config copy: the autoplayer tightens
	// patience day by day and must not touch the caller's settings.
	cfg := *s.cfg
	if req.Tables > 0 {
		cfg.TableCount = req.Tables
	}
	basePatienceMs := cfg.CustomerPatienceMs

	runID := uuid.NewString()
	if err := s.runRepo.CreateRun(ctx, &secondary.RunRecord{
		ID:     runID,
		Seed:   req.Seed,
		Days:   req.Days,
		Tables: cfg.TableCount,
	}); err != nil {
		return nil, fmt.Errorf("failed to record run: %w", err)
	}

	rng := rand.New(rand.NewSource(req.Seed))
	session := NewSession(&cfg)
	resp := &primary.SimulateResponse{RunID: runID, Seed: req.Seed}
	spoiledBefore := 0

	for day := 1; day <= req.Days; day++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		arrivalEveryMs := difficultyFloor(baseArrivalEveryMs-int64(day-1)*arrivalStepMs, minArrivalEveryMs)
		cfg.CustomerPatienceMs = difficultyFloor(basePatienceMs-int64(day-1)*patienceStepMs, minPatienceMs)

		s.playGrocery(rng, session, arrivalEveryMs)
		session.AdvancePhase() // kitchen prep
		session.AdvancePhase() // service
		s.playService(rng, session, tickMs, arrivalEveryMs)
		session.AdvancePhase() // day end

		summary, ok := session.Summary()
		if !ok {
			return nil, fmt.Errorf("day %d did not reach day end", day)
		}
		result := primary.DayResult{
			Day:             day,
			CustomersServed: summary.CustomersServed,
			CustomersLost:   summary.CustomersLost,
			Earnings:        summary.Earnings,
			ItemsSpoiled:    session.ItemsSpoiled() - spoiledBefore,
			CoinsEnd:        session.Coins(),
		}
		spoiledBefore = session.ItemsSpoiled()
		resp.Days = append(resp.Days, result)
		resp.TotalServed += result.CustomersServed
		resp.TotalLost += result.CustomersLost
		resp.TotalEarnings += result.Earnings

		if err := s.runRepo.AddDayResult(ctx, &secondary.DayResultRecord{
			RunID:           runID,
			Day:             day,
			CustomersServed: result.CustomersServed,
			CustomersLost:   result.CustomersLost,
			Earnings:        result.Earnings,
			ItemsSpoiled:    result.ItemsSpoiled,
		}); err != nil {
			return nil, fmt.Errorf("failed to record day %d: %w", day, err)
		}

		session.AdvancePhase() // next day
	}

	if err := s.runRepo.FinishRun(ctx, runID, resp.TotalServed, resp.TotalLost, resp.TotalEarnings); err != nil {
		return nil, fmt.Errorf("failed to finish run: %w", err)
	}
	return resp, nil
}

// playGrocery buys one ingredient kit per expected customer, while coins
// last.
func (s *SimulationServiceImpl) playGrocery(rng *rand.Rand, session *Session, arrivalEveryMs int64) {
	expected := int(s.cfg.ServiceMs/arrivalEveryMs) + 1
	for i := 0; i < expected; i++ {
		dishID := chooseDish(rng)
		recipe, ok := catalog.RecipeFor(dishID)
		if !ok {
			continue
		}
		for _, step := range recipe.Steps {
			if session.BuyItem(step.Input, 1) != nil {
				return
			}
		}
		for _, garnish := range recipe.Garnish {
			if session.BuyItem(garnish, 1) != nil {
				return
			}
		}
	}
}

// playService runs the service phase tick by tick with a greedy policy:
// spawn on cadence, take and send orders immediately, keep every zone fed,
// hold and flip as soon as allowed, assemble and serve the moment the parts
// exist.
func (s *SimulationServiceImpl) playService(rng *rand.Rand, session *Session, tickMs, arrivalEveryMs int64) {
	var sinceArrival int64
	for !session.PhaseExpired() {
		sinceArrival += tickMs
		if sinceArrival >= arrivalEveryMs {
			sinceArrival -= arrivalEveryMs
			_ = session.SpawnCustomer(chooseDish(rng))
		}

		svc, ok := session.Service()
		if !ok {
			return
		}
		playTables(session, svc)
		if svc, ok = session.Service(); ok {
			playKitchen(session, svc)
		}

		session.Tick(tickMs)
	}
}

// playTables advances every table that has a legal action.
func playTables(session *Session, svc dining.ServiceState) {
	for i, t := range svc.Tables {
		switch t.Status {
		case dining.TableCustomerWaiting:
			if isPreMade(t.Customer.DishID) {
				_ = session.ServeFromStock(i)
			} else {
				_ = session.TakeOrder(i)
			}
		case dining.TableOrderPending:
			_, _ = session.SendOrder(i)
		case dining.TableReadyToServe:
			_ = session.Serve(i)
		}
	}
}

// playKitchen feeds the zones toward the pending orders, works the slots,
// and assembles whatever is complete.
func playKitchen(session *Session, svc dining.ServiceState) {
	needed := neededOutputs(svc.Kitchen)
	for _, order := range svc.Kitchen.PendingOrders {
		recipe, ok := catalog.RecipeFor(order.DishID)
		if !ok {
			continue
		}
		for _, step := range recipe.Steps {
			if needed[step.Output] <= 0 {
				continue
			}
			if session.PlaceIngredient(step.Input, step.Zone) == nil {
				needed[step.Output]--
			}
		}
	}

	svc, ok := session.Service()
	if !ok {
		return
	}
	for i, slot := range svc.Kitchen.CuttingBoard {
		if slot.Status == kitchen.SlotWorking && slot.Interaction == kitchen.InteractionHold && !slot.Active {
			_ = session.HoldCuttingBoard(i, true)
		}
	}
	for i, slot := range svc.Kitchen.Stove {
		if slot.Status == kitchen.SlotNeedsFlip {
			_ = session.FlipStoveSlot(i)
		}
	}

	if svc, ok = session.Service(); ok {
		for _, order := range svc.Kitchen.PendingOrders {
			_ = session.AssembleOrder(order.ID)
		}
	}
}

// neededOutputs counts, per intermediate item, how many more units the
// pending orders need beyond what is ready or already cooking.
func neededOutputs(k kitchen.State) map[string]int {
	needed := map[string]int{}
	for _, order := range k.PendingOrders {
		recipe, ok := catalog.RecipeFor(order.DishID)
		if !ok {
			continue
		}
		for _, step := range recipe.Steps {
			needed[step.Output]++
		}
	}
	for id, n := range k.Ready {
		needed[id] -= n
	}
	for _, slots := range [][]kitchen.Slot{k.CuttingBoard, k.Stove, k.Oven} {
		for _, slot := range slots {
			if slot.Status == kitchen.SlotWorking || slot.Status == kitchen.SlotNeedsFlip {
				needed[slot.OutputItemID]--
			}
		}
	}
	return needed
}

func difficultyFloor(v, min int64) int64 {
	if v < min {
		return min
	}
	return v
}

func isPreMade(dishID string) bool {
	recipe, ok := catalog.RecipeFor(dishID)
	return ok && len(recipe.Steps) == 0
}

// chooseDish draws from a fixed weighted menu mix.
func chooseDish(rng *rand.Rand) string {
	switch roll := rng.Intn(10); {
	case roll < 3:
		return "burger"
	case roll < 5:
		return "fries"
	case roll < 7:
		return "salad"
	case roll < 9:
		return "baked_potato"
	default:
		return "lemonade"
	}
}

var _ primary.SimulationService = (*SimulationServiceImpl)(nil)
