package dining

import "fmt"

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

// CanTakeOrder evaluates whether an order can be taken at a table.
// Rules:
// - The table must have a waiting customer
func CanTakeOrder(s ServiceState, tableID int) GuardResult {
	if tableID < 0 || tableID >= len(s.Tables) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("no table %d", tableID),
		}
	}
	if s.Tables[tableID].Status != TableCustomerWaiting {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("table %d has no customer waiting to order (status: %s)", tableID, s.Tables[tableID].Status),
		}
	}
	return GuardResult{Allowed: true}
}

// CanSendOrder evaluates whether a table's order can go to the kitchen.
// Rules:
// - The table's order must be pending
func CanSendOrder(s ServiceState, tableID int) GuardResult {
	if tableID < 0 || tableID >= len(s.Tables) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("no table %d", tableID),
		}
	}
	if s.Tables[tableID].Status != TableOrderPending {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("table %d has no pending order (status: %s)", tableID, s.Tables[tableID].Status),
		}
	}
	return GuardResult{Allowed: true}
}

// CanServe evaluates whether a table can be served from order-up.
// Rules:
// - The table's dish must be ready to serve
func CanServe(s ServiceState, tableID int) GuardResult {
	if tableID < 0 || tableID >= len(s.Tables) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("no table %d", tableID),
		}
	}
	if s.Tables[tableID].Status != TableReadyToServe {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("table %d is not ready to serve (status: %s)", tableID, s.Tables[tableID].Status),
		}
	}
	return GuardResult{Allowed: true}
}

// CanServeFromStock evaluates whether a table can be served a pre-made dish.
// Rules:
// - The customer must be seated and not already waiting on the kitchen
func CanServeFromStock(s ServiceState, tableID int) GuardResult {
	if tableID < 0 || tableID >= len(s.Tables) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("no table %d", tableID),
		}
	}
	switch s.Tables[tableID].Status {
	case TableCustomerWaiting, TableOrderPending:
		return GuardResult{Allowed: true}
	}
	return GuardResult{
		Allowed: false,
		Reason:  fmt.Sprintf("table %d cannot be served from stock (status: %s)", tableID, s.Tables[tableID].Status),
	}
}
