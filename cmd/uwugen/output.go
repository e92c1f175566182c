package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/oisee/uwu-tables/pkg/dispatch"
	"github.com/oisee/uwu-tables/pkg/inst"
	"github.com/oisee/uwu-tables/pkg/result"
	"github.com/oisee/uwu-tables/pkg/search"
	"github.com/oisee/uwu-tables/pkg/translate"
)

// printCandidate writes the parameter line followed by the slot mapping.
func printCandidate(w io.Writer, c result.Candidate) {
	fmt.Fprintf(w, "%s has a valid configuration.\n", c.Params)
	printSlots(w, &c.Table, c.Merges)
}

func printSlots(w io.Writer, t *dispatch.JumpTable, merges []dispatch.Merge) {
	for slot, op := range t {
		if op == nil {
			continue
		}
		fmt.Fprintf(w, "\t%d: %s\n", slot, op)
		for _, m := range merges {
			if int(m.Slot) == slot {
				fmt.Fprintf(w, "\t%d: %s merged\n", slot, m.Dropped)
			}
		}
	}
}

func printLayout(w io.Writer, n int, g search.LayoutGroup) {
	fmt.Fprintf(w, "layout %d (%016x): %d configurations\n", n, g.Fingerprint, len(g.Params))
	printSlots(w, &g.Table, nil)
	params := make([]string, len(g.Params))
	for i, p := range g.Params {
		params[i] = p.String()
	}
	fmt.Fprintf(w, "\tparams: %s\n", strings.Join(params, ", "))
}

// printAssembly writes the dispatch code for c with its machine words.
func printAssembly(w io.Writer, c result.Candidate, tableAddr uint16) error {
	p := c.Params
	fmt.Fprintf(w, "; bit=%d addend=%d bit2=%d addend2=%d: %d words, %d cycles\n",
		p.Bit, p.Addend, p.Bit2, p.Addend2, c.Words, c.Cycles)
	for _, instr := range search.DispatchSequence(p, tableAddr) {
		word, err := inst.Encode(instr)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\t%-18s; %04X\n", inst.Disassemble(instr), word)
	}
	return nil
}

func printKeywords(w io.Writer, t translate.Tables) {
	for _, k := range t.Keywords {
		fmt.Fprintf(w, "%-12s crc=0x%04X len=%-2d index=%d\n", k.Name, k.Checksum, k.WordLength, k.Index)
	}
}
