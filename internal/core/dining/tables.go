// Package dining contains the pure front-of-house state for one dinner
// service: a fixed dining room of per-table state machines, an overflow queue
// for customers who cannot be seated, and the per-frame tick that drives
// patience decay and abandonment. The service state also owns the kitchen
// state so that one tick advances both sides in lockstep.
package dining

import (
	"github.com/example/rush/internal/core/kitchen"
	"github.com/example/rush/internal/models"
)

// TableStatus identifies where a table is in its lifecycle.
type TableStatus string

const (
	TableEmpty           TableStatus = "empty"
	TableCustomerWaiting TableStatus = "customer_waiting"
	TableOrderPending    TableStatus = "order_pending"
	TableInKitchen       TableStatus = "in_kitchen"
	TableReadyToServe    TableStatus = "ready_to_serve"
)

// Table is one dining-room slot. A table holds at most one customer; the
// order id is assigned at the order_pending -> in_kitchen transition and is
// stable until the serve.
type Table struct {
	Status   TableStatus
	Customer models.Customer
	OrderID  string
}

// holdsWaitingCustomer reports whether the table's customer is still waiting
// and therefore subject to patience decay. Ready-to-serve tables are exempt:
// the dish is plated and the customer is moments from being served.
func (t Table) holdsWaitingCustomer() bool {
	switch t.Status {
	case TableCustomerWaiting, TableOrderPending, TableInKitchen:
		return true
	}
	return false
}

// ServiceState is the aggregate root for one dinner-service session.
type ServiceState struct {
	Tables          []Table
	Queue           []models.Customer
	Kitchen         kitchen.State
	CustomersServed int
	CustomersLost   int
	Earnings        int64
	PlayerLocation  string
}

// NewServiceState creates an empty dining room and an idle kitchen.
func NewServiceState(tableCount int, zones kitchen.ZoneConfig) ServiceState {
	tables := make([]Table, tableCount)
	for i := range tables {
		tables[i].Status = TableEmpty
	}
	return ServiceState{
		Tables:         tables,
		Kitchen:        kitchen.NewState(zones),
		PlayerLocation: models.LocationDiningRoom,
	}
}

// clone copies the FOH slices so operations never alias their input. The
// kitchen state is value-semantic on its own and is cloned by its own
// operations.
func (s ServiceState) clone() ServiceState {
	out := s
	out.Tables = append([]Table(nil), s.Tables...)
	out.Queue = append([]models.Customer(nil), s.Queue...)
	return out
}

// EnqueueCustomer seats the customer at the first empty table, or appends to
// the overflow queue when the dining room is full. Always succeeds.
func EnqueueCustomer(s ServiceState, c models.Customer) ServiceState {
	out := s.clone()
	for i := range out.Tables {
		if out.Tables[i].Status == TableEmpty {
			out.Tables[i] = Table{Status: TableCustomerWaiting, Customer: c}
			return out
		}
	}
	out.Queue = append(out.Queue, c)
	return out
}

// TakeOrder moves a table from customer_waiting to order_pending. No-op if
// the table is in any other state.
func TakeOrder(s ServiceState, tableID int) ServiceState {
	if !tableInStatus(s, tableID, TableCustomerWaiting) {
		return s
	}
	out := s.clone()
	out.Tables[tableID].Status = TableOrderPending
	return out
}

// SendOrderToKitchen moves a table from order_pending to in_kitchen and
// atomically queues a kitchen order for its customer's dish. No-op if the
// table is not order_pending.
func SendOrderToKitchen(s ServiceState, tableID int, orderID string) ServiceState {
	if !tableInStatus(s, tableID, TableOrderPending) {
		return s
	}
	out := s.clone()
	t := &out.Tables[tableID]
	t.Status = TableInKitchen
	t.OrderID = orderID
	out.Kitchen = kitchen.AddOrder(out.Kitchen, models.KitchenOrder{
		ID:         orderID,
		CustomerID: t.Customer.ID,
		DishID:     t.Customer.DishID,
	})
	return out
}

// NotifyOrderReady moves the in_kitchen table carrying orderID to
// ready_to_serve. This is how the kitchen pipeline signals completion back to
// the dining room without holding a table reference. No-op if no table
// carries the order.
func NotifyOrderReady(s ServiceState, orderID string) ServiceState {
	idx := findTableByOrder(s, orderID)
	if idx < 0 {
		return s
	}
	out := s.clone()
	out.Tables[idx].Status = TableReadyToServe
	return out
}

// ServeOrder completes a ready_to_serve table: the customer leaves, the
// served counter and earnings advance, the assembled dish is picked up from
// order-up, and the head of the overflow queue (if any) takes the freed
// table. No-op if the table is not ready_to_serve.
func ServeOrder(s ServiceState, tableID int, price int64) ServiceState {
	if !tableInStatus(s, tableID, TableReadyToServe) {
		return s
	}
	out := s.clone()
	out.Kitchen, _ = kitchen.Pickup(out.Kitchen, out.Tables[tableID].OrderID)
	out.completeTable(tableID, price)
	return out
}

// ServeFromStock serves a pre-made dish straight from inventory, skipping the
// kitchen round-trip. Valid while the customer is waiting or their order is
// still pending; no-op otherwise. The caller is responsible for having
// consumed the dish from stock.
func ServeFromStock(s ServiceState, tableID int, price int64) ServiceState {
	if !tableInStatus(s, tableID, TableCustomerWaiting) &&
		!tableInStatus(s, tableID, TableOrderPending) {
		return s
	}
	out := s.clone()
	out.completeTable(tableID, price)
	return out
}

// completeTable empties a table after a successful serve and re-seats the
// queue head. Mutates the receiver; callers clone first.
func (s *ServiceState) completeTable(tableID int, price int64) {
	s.Tables[tableID] = Table{Status: TableEmpty}
	s.CustomersServed++
	s.Earnings += price
	s.reseatFromQueue(tableID)
}

// reseatFromQueue moves the overflow-queue head onto an empty table.
func (s *ServiceState) reseatFromQueue(tableID int) {
	if len(s.Queue) == 0 || s.Tables[tableID].Status != TableEmpty {
		return
	}
	s.Tables[tableID] = Table{Status: TableCustomerWaiting, Customer: s.Queue[0]}
	s.Queue = append([]models.Customer(nil), s.Queue[1:]...)
}

// Tick advances one frame of service time: patience decays for every waiting
// customer (seated in a waiting state, or queued), the kitchen zones advance
// by the same delta, and then customers whose patience hit zero abandon.
// Decay is computed from the pre-tick snapshot; a same-tick serve can never
// race an expiry.
func Tick(s ServiceState, elapsedMs int64) ServiceState {
	if elapsedMs <= 0 {
		return s
	}
	out := s.clone()

	for i := range out.Tables {
		if out.Tables[i].holdsWaitingCustomer() {
			out.Tables[i].Customer.PatienceMs = floorZero(out.Tables[i].Customer.PatienceMs - elapsedMs)
		}
	}
	for i := range out.Queue {
		out.Queue[i].PatienceMs = floorZero(out.Queue[i].PatienceMs - elapsedMs)
	}

	out.Kitchen = kitchen.TickZones(out.Kitchen, elapsedMs)

	// Expire queued customers first so a freed table never re-seats a
	// customer who gave up on the same tick.
	kept := out.Queue[:0]
	for _, c := range out.Queue {
		if c.Expired() {
			out.CustomersLost++
			continue
		}
		kept = append(kept, c)
	}
	out.Queue = kept

	for i := range out.Tables {
		if out.Tables[i].holdsWaitingCustomer() && out.Tables[i].Customer.Expired() {
			out.Tables[i] = Table{Status: TableEmpty}
			out.CustomersLost++
			out.reseatFromQueue(i)
		}
	}
	return out
}

// SetPlayerLocation records where the player currently is.
func SetPlayerLocation(s ServiceState, location string) ServiceState {
	out := s.clone()
	out.PlayerLocation = location
	return out
}

// OccupiedTables counts tables currently holding a customer.
func OccupiedTables(s ServiceState) int {
	n := 0
	for _, t := range s.Tables {
		if t.Status != TableEmpty {
			n++
		}
	}
	return n
}

// TableByOrder returns the index of the in_kitchen table carrying orderID,
// or -1.
func TableByOrder(s ServiceState, orderID string) int {
	return findTableByOrder(s, orderID)
}

func findTableByOrder(s ServiceState, orderID string) int {
	for i, t := range s.Tables {
		if t.Status == TableInKitchen && t.OrderID == orderID {
			return i
		}
	}
	return -1
}

func tableInStatus(s ServiceState, tableID int, status TableStatus) bool {
	return tableID >= 0 && tableID < len(s.Tables) && s.Tables[tableID].Status == status
}

func floorZero(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
