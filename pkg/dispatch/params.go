package dispatch

import "fmt"

// Jump table geometry and the swept parameter ranges.
const (
	SlotCount = 8
	SlotMask  = SlotCount - 1

	MinBit    = 4  // inclusive
	MaxBit    = 8  // exclusive
	MaxAddend = 64 // exclusive

	bitSpan = MaxBit - MinBit

	// ParamCount is the size of the swept space: 4*64*4*64.
	ParamCount = bitSpan * MaxAddend * bitSpan * MaxAddend
)

// Params selects one candidate hash:
//
//	if v&(1<<Bit) != 0  { v += Addend }
//	if v&(1<<Bit2) != 0 { v += Addend2 }
//	slot = v & 7
type Params struct {
	Bit     uint8 `json:"bit"`
	Addend  uint8 `json:"addend"`
	Bit2    uint8 `json:"bit2"`
	Addend2 uint8 `json:"addend2"`
}

// Valid reports whether p lies inside the swept space.
func (p Params) Valid() bool {
	return p.Bit >= MinBit && p.Bit < MaxBit &&
		p.Bit2 >= MinBit && p.Bit2 < MaxBit &&
		p.Addend < MaxAddend && p.Addend2 < MaxAddend
}

// Hash maps an opcode value to its jump table slot.
// Arithmetic wraps at 8 bits like the firmware register does; only bits 0..7
// are ever tested or kept, so this equals the unbounded computation.
func (p Params) Hash(v uint8) uint8 {
	if v&(1<<p.Bit) != 0 {
		v += p.Addend
	}
	if v&(1<<p.Bit2) != 0 {
		v += p.Addend2
	}
	return v & SlotMask
}

// Index returns the position of p in sweep order (bit, addend, bit2, addend2).
func (p Params) Index() int {
	i := int(p.Bit - MinBit)
	i = i*MaxAddend + int(p.Addend)
	i = i*bitSpan + int(p.Bit2-MinBit)
	i = i*MaxAddend + int(p.Addend2)
	return i
}

// ParamsAt is the inverse of Params.Index.
func ParamsAt(i int) Params {
	var p Params
	p.Addend2 = uint8(i % MaxAddend)
	i /= MaxAddend
	p.Bit2 = uint8(i%bitSpan) + MinBit
	i /= bitSpan
	p.Addend = uint8(i % MaxAddend)
	i /= MaxAddend
	p.Bit = uint8(i) + MinBit
	return p
}

// String formats p the way the search reports it: "bit addend bit2 addend2".
func (p Params) String() string {
	return fmt.Sprintf("%d %d %d %d", p.Bit, p.Addend, p.Bit2, p.Addend2)
}
