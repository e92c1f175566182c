package result

import (
	"sort"
	"sync"

	"github.com/oisee/uwu-tables/pkg/dispatch"
)

// Candidate is one accepted hash configuration and the jump table it builds.
type Candidate struct {
	Params dispatch.Params    `json:"params"`
	Table  dispatch.JumpTable `json:"table"`
	Merges []dispatch.Merge   `json:"merges,omitempty"`
	Words  int                `json:"words"`  // flash words of the hash + dispatch sequence
	Cycles int                `json:"cycles"` // worst-case cycles of the same
}

// Table stores accepted candidates. Safe for concurrent Add.
type Table struct {
	mu         sync.Mutex
	candidates []Candidate
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// Add inserts a candidate into the table.
func (t *Table) Add(c Candidate) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.candidates = append(t.candidates, c)
}

// Candidates returns a copy of all candidates in sweep order.
// The order does not depend on which worker found a candidate first.
func (t *Table) Candidates() []Candidate {
	result := t.snapshot()
	sort.Slice(result, func(i, j int) bool {
		return result[i].Params.Index() < result[j].Params.Index()
	})
	return result
}

// ByCost returns a copy of all candidates, cheapest first.
// Ties fall back to sweep order.
func (t *Table) ByCost() []Candidate {
	result := t.snapshot()
	SortByCost(result)
	return result
}

// SortByCost orders candidates by words, then cycles, then sweep order.
func SortByCost(cs []Candidate) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Words != cs[j].Words {
			return cs[i].Words < cs[j].Words
		}
		if cs[i].Cycles != cs[j].Cycles {
			return cs[i].Cycles < cs[j].Cycles
		}
		return cs[i].Params.Index() < cs[j].Params.Index()
	})
}

// Len returns the number of candidates.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.candidates)
}

func (t *Table) snapshot() []Candidate {
	t.mu.Lock()
	defer t.mu.Unlock()
	result := make([]Candidate, len(t.candidates))
	copy(result, t.candidates)
	return result
}
