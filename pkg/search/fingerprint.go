package search

import (
	"github.com/cespare/xxhash/v2"

	"github.com/oisee/uwu-tables/pkg/dispatch"
	"github.com/oisee/uwu-tables/pkg/result"
)

// LayoutFingerprint hashes which opcode occupies each slot of a jump table.
// Candidates with equal fingerprints dispatch identically.
func LayoutFingerprint(t *dispatch.JumpTable) uint64 {
	d := xxhash.New()
	for slot, op := range t {
		if op == nil {
			continue
		}
		d.Write([]byte{byte(slot), op.Value})
		d.WriteString(op.Name)
	}
	return d.Sum64()
}

// LayoutGroup is one distinct jump table and every parameter set producing it.
type LayoutGroup struct {
	Fingerprint uint64
	Table       dispatch.JumpTable
	Params      []dispatch.Params
}

// FingerprintMap groups candidates by jump table layout.
type FingerprintMap struct {
	m     map[uint64]*LayoutGroup
	order []uint64
}

// NewFingerprintMap creates a new map with the given capacity hint.
func NewFingerprintMap(cap int) *FingerprintMap {
	return &FingerprintMap{m: make(map[uint64]*LayoutGroup, cap)}
}

// Add registers a candidate under its layout fingerprint.
func (fm *FingerprintMap) Add(c result.Candidate) {
	fp := LayoutFingerprint(&c.Table)
	g, ok := fm.m[fp]
	if !ok {
		g = &LayoutGroup{Fingerprint: fp, Table: c.Table}
		fm.m[fp] = g
		fm.order = append(fm.order, fp)
	}
	g.Params = append(g.Params, c.Params)
}

// Lookup returns the group for a fingerprint, or nil.
func (fm *FingerprintMap) Lookup(fp uint64) *LayoutGroup {
	return fm.m[fp]
}

// Len returns the number of distinct layouts.
func (fm *FingerprintMap) Len() int {
	return len(fm.m)
}

// Groups returns the layouts in the order they were first seen.
func (fm *FingerprintMap) Groups() []LayoutGroup {
	groups := make([]LayoutGroup, 0, len(fm.order))
	for _, fp := range fm.order {
		groups = append(groups, *fm.m[fp])
	}
	return groups
}

// GroupLayouts groups candidates by layout, preserving their order.
func GroupLayouts(cs []result.Candidate) []LayoutGroup {
	fm := NewFingerprintMap(len(cs))
	for _, c := range cs {
		fm.Add(c)
	}
	return fm.Groups()
}
