package cpu

// State is the AVR register state a dispatch sequence touches.
type State struct {
	R    [32]uint8
	SREG uint8
	PC   int // index into the program, not a flash address
}

// Z returns the Z pointer (r31:r30).
func (s *State) Z() uint16 {
	return uint16(s.R[31])<<8 | uint16(s.R[30])
}
