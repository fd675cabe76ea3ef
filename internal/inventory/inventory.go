// Package inventory is the perishable item multiset the kitchen draws raw
// ingredients from. Entries remember when they were added (in simulated
// milliseconds) so a spoilage sweep can drop anything past its shelf life.
package inventory

// Entry is one physical item instance.
type Entry struct {
	ItemID    string
	AddedAtMs int64
}

// Stock is a multiset of perishable items. The zero value is empty and
// usable. Unlike the core state types, Stock is a plain mutable container;
// it sits outside the pure engine and its operations are trivial bookkeeping.
type Stock struct {
	entries []Entry
}

// New returns an empty stock.
func New() *Stock {
	return &Stock{}
}

// Add inserts one instance of an item, stamped with the current sim time.
func (s *Stock) Add(itemID string, atMs int64) {
	s.entries = append(s.entries, Entry{ItemID: itemID, AddedAtMs: atMs})
}

// Count returns how many instances of an item are held.
func (s *Stock) Count(itemID string) int {
	n := 0
	for _, e := range s.entries {
		if e.ItemID == itemID {
			n++
		}
	}
	return n
}

// Len returns the total number of items held.
func (s *Stock) Len() int {
	return len(s.entries)
}

// Counts returns a snapshot of item counts keyed by id.
func (s *Stock) Counts() map[string]int {
	out := make(map[string]int, len(s.entries))
	for _, e := range s.entries {
		out[e.ItemID]++
	}
	return out
}

// RemoveSet removes one instance of every listed id (oldest first), or
// nothing at all if any id is missing. Duplicate ids require that many
// instances.
func (s *Stock) RemoveSet(itemIDs []string) bool {
	need := make(map[string]int, len(itemIDs))
	for _, id := range itemIDs {
		need[id]++
	}
	for id, n := range need {
		if s.Count(id) < n {
			return false
		}
	}
	for id, n := range need {
		s.removeOldest(id, n)
	}
	return true
}

// removeOldest drops the n oldest instances of an item.
func (s *Stock) removeOldest(itemID string, n int) {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if n > 0 && e.ItemID == itemID {
			n--
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
}

// RemoveExpired drops every entry older than its shelf life and returns the
// ids of what spoiled. Items the shelfLife function does not know keep
// forever.
func (s *Stock) RemoveExpired(nowMs int64, shelfLife func(itemID string) (int64, bool)) []string {
	var spoiled []string
	kept := s.entries[:0]
	for _, e := range s.entries {
		life, ok := shelfLife(e.ItemID)
		if ok && nowMs-e.AddedAtMs >= life {
			spoiled = append(spoiled, e.ItemID)
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	return spoiled
}
