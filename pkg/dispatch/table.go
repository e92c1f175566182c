package dispatch

// JumpTable maps each slot to the opcode dispatched from it; nil slots are unused.
type JumpTable [SlotCount]*Opcode

// Used returns the number of occupied slots.
func (t *JumpTable) Used() int {
	n := 0
	for _, op := range t {
		if op != nil {
			n++
		}
	}
	return n
}

// Lookup returns the opcode reachable for a command byte under p.
func (t *JumpTable) Lookup(p Params, value uint8) (Opcode, bool) {
	op := t[p.Hash(value)]
	if op == nil {
		return Opcode{}, false
	}
	return *op, true
}

// Merge records a generic opcode that collided with an earlier generic
// occupant. The occupant keeps the slot; Dropped is unreachable by name.
type Merge struct {
	Slot    uint8  `json:"slot"`
	Kept    Opcode `json:"kept"`
	Dropped Opcode `json:"dropped"`
}

// Evaluate places every opcode of set under p, in order.
//
// A free slot takes the opcode. An occupied slot is kept by its first occupant
// when both opcodes are generic (a merge); any other collision rejects the
// candidate and ok is false.
func Evaluate(p Params, set []Opcode) (table JumpTable, merges []Merge, ok bool) {
	for i := range set {
		op := set[i]
		slot := p.Hash(op.Value)
		if cur := table[slot]; cur != nil {
			if !(cur.Generic && op.Generic) {
				return JumpTable{}, nil, false
			}
			merges = append(merges, Merge{Slot: slot, Kept: *cur, Dropped: op})
			continue
		}
		table[slot] = &op
	}
	return table, merges, true
}
