package search

import (
	"github.com/oisee/uwu-tables/pkg/dispatch"
	"github.com/oisee/uwu-tables/pkg/inst"
)

// CommandReg is the register holding the received command byte.
const CommandReg = inst.R24

// Sequence lowers the hash for p to AVR code operating on CommandReg.
// A step with a zero addend is a no-op and is omitted.
func Sequence(p dispatch.Params) []inst.Instruction {
	seq := make([]inst.Instruction, 0, 5)
	if p.Addend != 0 {
		seq = append(seq,
			inst.Instruction{Op: inst.SBRC, Rr: CommandReg, K: p.Bit},
			inst.AddImmediate(CommandReg, p.Addend))
	}
	if p.Addend2 != 0 {
		seq = append(seq,
			inst.Instruction{Op: inst.SBRC, Rr: CommandReg, K: p.Bit2},
			inst.AddImmediate(CommandReg, p.Addend2))
	}
	return append(seq, inst.Instruction{Op: inst.ANDI, Rd: CommandReg, K: dispatch.SlotMask})
}

// DispatchSequence appends the indirect jump into a table of rjmp entries
// located at word address tableAddr.
func DispatchSequence(p dispatch.Params, tableAddr uint16) []inst.Instruction {
	return append(Sequence(p),
		inst.Instruction{Op: inst.LDI, Rd: inst.ZL, K: uint8(tableAddr)},
		inst.Instruction{Op: inst.LDI, Rd: inst.ZH, K: uint8(tableAddr >> 8)},
		inst.Instruction{Op: inst.ADD, Rd: inst.ZL, Rr: CommandReg},
		inst.Instruction{Op: inst.ADC, Rd: inst.ZH, Rr: inst.R1},
		inst.Instruction{Op: inst.IJMP},
	)
}

// Cost returns flash words and worst-case cycles of the full dispatch for p.
func Cost(p dispatch.Params) (words, cycles int) {
	seq := DispatchSequence(p, 0)
	return inst.SeqWords(seq), inst.SeqCycles(seq)
}
