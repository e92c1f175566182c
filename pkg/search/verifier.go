package search

import (
	"fmt"

	"github.com/oisee/uwu-tables/pkg/cpu"
	"github.com/oisee/uwu-tables/pkg/dispatch"
)

// ExhaustiveCheck runs the emitted dispatch code for p on every command byte
// and checks it jumps to tableAddr + p.Hash(v) within the costed cycle budget.
func ExhaustiveCheck(p dispatch.Params, tableAddr uint16) error {
	prog := DispatchSequence(p, tableAddr)
	_, budget := Cost(p)
	for v := 0; v < 256; v++ {
		var s cpu.State
		s.R[CommandReg] = uint8(v)
		cycles, target, jumped := cpu.Run(&s, prog)
		if !jumped {
			return fmt.Errorf("%s: command 0x%02X: no jump", p, v)
		}
		if want := tableAddr + uint16(p.Hash(uint8(v))); target != want {
			return fmt.Errorf("%s: command 0x%02X: jumps to 0x%04X, want 0x%04X", p, v, target, want)
		}
		if cycles > budget {
			return fmt.Errorf("%s: command 0x%02X: %d cycles exceeds %d", p, v, cycles, budget)
		}
	}
	return nil
}
