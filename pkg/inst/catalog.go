package inst

// form describes how operands are packed into the instruction word.
type form uint8

const (
	formNone form = iota
	formBit       // Rr, b
	formImm       // Rd, K
	formReg       // Rd, Rr
)

// Info holds static metadata for one opcode.
type Info struct {
	Mnemonic string
	Words    int // flash words
	Cycles   int // cycles when no skip is taken (AVRe core)
	base     uint16
	form     form
}

// Catalog maps each OpCode to its metadata.
// Encodings from the AVR Instruction Set Manual.
var Catalog = [OpCodeCount]Info{
	SBRC: {Mnemonic: "sbrc", Words: 1, Cycles: 1, base: 0xFC00, form: formBit},
	SBRS: {Mnemonic: "sbrs", Words: 1, Cycles: 1, base: 0xFE00, form: formBit},
	SUBI: {Mnemonic: "subi", Words: 1, Cycles: 1, base: 0x5000, form: formImm},
	ANDI: {Mnemonic: "andi", Words: 1, Cycles: 1, base: 0x7000, form: formImm},
	LDI:  {Mnemonic: "ldi", Words: 1, Cycles: 1, base: 0xE000, form: formImm},
	ADD:  {Mnemonic: "add", Words: 1, Cycles: 1, base: 0x0C00, form: formReg},
	ADC:  {Mnemonic: "adc", Words: 1, Cycles: 1, base: 0x1C00, form: formReg},
	IJMP: {Mnemonic: "ijmp", Words: 1, Cycles: 2, base: 0x9409, form: formNone},
}

// AddImmediate returns the SUBI that adds k to rd (AVR has no ADDI).
func AddImmediate(rd, k uint8) Instruction {
	return Instruction{Op: SUBI, Rd: rd, K: -k}
}
