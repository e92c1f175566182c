// Package cpu interprets the AVR instructions emitted for command dispatch.
package cpu

import "github.com/oisee/uwu-tables/pkg/inst"

// Exec executes prog[s.PC] and advances PC. It returns the cycles spent and,
// for IJMP, the jump target with jumped set.
func Exec(s *State, prog []inst.Instruction) (cycles int, target uint16, jumped bool) {
	i := prog[s.PC]
	s.PC++
	cycles = inst.Catalog[i.Op].Cycles

	if inst.IsSkip(i.Op) {
		set := s.R[i.Rr]&(1<<i.K) != 0
		if set == (i.Op == inst.SBRS) && s.PC < len(prog) {
			s.PC++
			cycles += inst.Catalog[prog[s.PC-1].Op].Words
		}
		return cycles, 0, false
	}

	switch i.Op {
	case inst.SUBI:
		d := s.R[i.Rd]
		r := d - i.K
		s.R[i.Rd] = r
		s.setZN(r)
		s.setC(i.K > d)
	case inst.ANDI:
		r := s.R[i.Rd] & i.K
		s.R[i.Rd] = r
		s.setZN(r)
	case inst.LDI:
		s.R[i.Rd] = i.K
	case inst.ADD:
		sum := uint16(s.R[i.Rd]) + uint16(s.R[i.Rr])
		s.R[i.Rd] = uint8(sum)
		s.setZN(uint8(sum))
		s.setC(sum > 0xFF)
	case inst.ADC:
		sum := uint16(s.R[i.Rd]) + uint16(s.R[i.Rr]) + uint16(s.carry())
		s.R[i.Rd] = uint8(sum)
		s.setZN(uint8(sum))
		s.setC(sum > 0xFF)
	case inst.IJMP:
		return cycles, s.Z(), true
	}
	return cycles, 0, false
}

// Run executes prog from s.PC until an IJMP or the end of the program.
// PC only moves forward, so Run always terminates.
func Run(s *State, prog []inst.Instruction) (cycles int, target uint16, jumped bool) {
	for s.PC < len(prog) {
		c, t, j := Exec(s, prog)
		cycles += c
		if j {
			return cycles, t, true
		}
	}
	return cycles, 0, false
}
