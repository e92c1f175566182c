package cpu

// SREG bits. Only C, Z and N are modelled; the dispatch code never reads
// the others.
const (
	FlagC uint8 = 1 << 0
	FlagZ uint8 = 1 << 1
	FlagN uint8 = 1 << 2
)

// setZN updates Z and N from an 8-bit result, leaving C alone.
func (s *State) setZN(r uint8) {
	s.SREG &^= FlagZ | FlagN
	if r == 0 {
		s.SREG |= FlagZ
	}
	if r&0x80 != 0 {
		s.SREG |= FlagN
	}
}

func (s *State) setC(c bool) {
	if c {
		s.SREG |= FlagC
	} else {
		s.SREG &^= FlagC
	}
}

func (s *State) carry() uint8 {
	return s.SREG & FlagC
}
