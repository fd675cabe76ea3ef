// Package wallet is the coin balance. Trivial arithmetic; kept separate so
// the grocery and serving flows have one place to debit and credit.
package wallet

// Wallet holds the player's coins.
type Wallet struct {
	Coins int64
}

// New returns a wallet with a starting balance.
func New(coins int64) *Wallet {
	return &Wallet{Coins: coins}
}

// CanAfford reports whether the balance covers the amount.
func (w *Wallet) CanAfford(amount int64) bool {
	return amount >= 0 && w.Coins >= amount
}

// Debit removes coins. Returns false (and changes nothing) when the balance
// does not cover the amount.
func (w *Wallet) Debit(amount int64) bool {
	if !w.CanAfford(amount) {
		return false
	}
	w.Coins -= amount
	return true
}

// Credit adds coins. Negative amounts are ignored.
func (w *Wallet) Credit(amount int64) {
	if amount > 0 {
		w.Coins += amount
	}
}
