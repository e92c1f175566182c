package inst

import "fmt"

// OpCode is a compact identifier for an AVR instruction form.
// Only the forms a dispatch sequence needs are modelled.
type OpCode uint8

// Instruction is one AVR instruction with its operands.
//
// Rd is the destination register, Rr the source register. K holds the 8-bit
// immediate for SUBI/ANDI/LDI and the bit number for SBRC/SBRS.
type Instruction struct {
	Op OpCode
	Rd uint8
	Rr uint8
	K  uint8
}

const (
	// Skip if bit in register cleared / set.
	SBRC OpCode = iota
	SBRS

	// Register-immediate ALU ops (Rd must be r16..r31).
	SUBI
	ANDI
	LDI

	// Register-register ALU ops.
	ADD
	ADC

	// Indirect jump through Z (r31:r30).
	IJMP

	OpCodeCount
)

// Register file layout the generator relies on.
const (
	R1  uint8 = 1  // avr-gcc zero register
	R24 uint8 = 24 // first argument / return register
	ZL  uint8 = 30
	ZH  uint8 = 31
)

// IsSkip returns true for the conditional-skip instructions.
func IsSkip(op OpCode) bool {
	return op == SBRC || op == SBRS
}

// Validate checks that the operands are encodable.
func Validate(i Instruction) error {
	if i.Op >= OpCodeCount {
		return fmt.Errorf("unknown opcode %d", i.Op)
	}
	switch Catalog[i.Op].form {
	case formBit:
		if i.Rr > 31 {
			return fmt.Errorf("%s: register r%d out of range", Catalog[i.Op].Mnemonic, i.Rr)
		}
		if i.K > 7 {
			return fmt.Errorf("%s: bit %d out of range", Catalog[i.Op].Mnemonic, i.K)
		}
	case formImm:
		if i.Rd < 16 || i.Rd > 31 {
			return fmt.Errorf("%s: register r%d not in r16..r31", Catalog[i.Op].Mnemonic, i.Rd)
		}
	case formReg:
		if i.Rd > 31 || i.Rr > 31 {
			return fmt.Errorf("%s: register out of range", Catalog[i.Op].Mnemonic)
		}
	}
	return nil
}

// Encode returns the 16-bit machine word for an instruction.
func Encode(i Instruction) (uint16, error) {
	if err := Validate(i); err != nil {
		return 0, err
	}
	info := &Catalog[i.Op]
	w := info.base
	switch info.form {
	case formBit:
		// ---- ---r rrrr -bbb
		w |= uint16(i.Rr)<<4 | uint16(i.K)
	case formImm:
		// ---- KKKK dddd KKKK
		w |= uint16(i.K&0xF0)<<4 | uint16(i.Rd-16)<<4 | uint16(i.K&0x0F)
	case formReg:
		// ---- --rd dddd rrrr
		w |= uint16(i.Rr&0x10)<<5 | uint16(i.Rd)<<4 | uint16(i.Rr&0x0F)
	}
	return w, nil
}

// Disassemble renders an instruction in avr-as syntax.
func Disassemble(i Instruction) string {
	if i.Op >= OpCodeCount {
		return fmt.Sprintf(".dw ?%d", i.Op)
	}
	info := &Catalog[i.Op]
	switch info.form {
	case formBit:
		return fmt.Sprintf("%s r%d, %d", info.Mnemonic, i.Rr, i.K)
	case formImm:
		return fmt.Sprintf("%s r%d, 0x%02X", info.Mnemonic, i.Rd, i.K)
	case formReg:
		return fmt.Sprintf("%s r%d, r%d", info.Mnemonic, i.Rd, i.Rr)
	}
	return info.Mnemonic
}

// SeqWords returns the total flash words of a sequence.
func SeqWords(seq []Instruction) int {
	n := 0
	for _, i := range seq {
		n += Catalog[i.Op].Words
	}
	return n
}

// SeqCycles returns the worst-case cycle count of a straight-line sequence.
// A taken skip over a one-word instruction costs the same as falling through
// and executing it, so the sum of the catalog cycles is the upper bound.
func SeqCycles(seq []Instruction) int {
	n := 0
	for _, i := range seq {
		n += Catalog[i.Op].Cycles
	}
	return n
}
