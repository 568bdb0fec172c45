package diag

import "sort"

// Bag collects records up to a fixed cap.
type Bag struct {
	items   []Record
	max     int
	dropped int
}

func NewBag(max int) *Bag {
	if max <= 0 {
		max = 1
	}
	return &Bag{
		items: make([]Record, 0, min(max, 64)),
		max:   max,
	}
}

// Add appends a record unless the cap is reached.
// Returns false when the record was dropped.
func (b *Bag) Add(r Record) bool {
	if len(b.items) >= b.max {
		b.dropped++
		return false
	}
	b.items = append(b.items, r)
	return true
}

func (b *Bag) Cap() int {
	return b.max
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Dropped returns how many records the cap rejected.
func (b *Bag) Dropped() int {
	return b.dropped
}

// HasErrors reports whether any record carries Severity >= Error.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// Items returns a read-only view of the records.
// Callers must not modify the returned slice.
func (b *Bag) Items() []Record {
	return b.items
}

// Merge appends the records of another bag, growing the cap to fit.
func (b *Bag) Merge(other *Bag) {
	newTotal := len(b.items) + len(other.items)
	if newTotal > b.max {
		b.max = newTotal
	}
	b.items = append(b.items, other.items...)
	b.dropped += other.dropped
}

// Sort orders the records canonically, so repeated runs over identical
// input produce identical output.
func (b *Bag) Sort() {
	SortRecords(b.items)
}

// SortRecords orders records by path, start offset, rule id and finally
// message. This is the canonical output order.
func SortRecords(rs []Record) {
	sort.SliceStable(rs, func(i, j int) bool {
		ri, rj := rs[i], rs[j]
		if ri.Path != rj.Path {
			return ri.Path < rj.Path
		}
		if ri.Offset != rj.Offset {
			return ri.Offset < rj.Offset
		}
		if ri.RuleID != rj.RuleID {
			return ri.RuleID < rj.RuleID
		}
		return ri.Message < rj.Message
	})
}
