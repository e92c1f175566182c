// Package dispatch models the bootloader's command dispatch: the STK500
// opcode set and the cheap hash that folds it into an 8-entry jump table.
package dispatch

import "fmt"

// Opcode is one STK500 command byte the bootloader recognises.
//
// Generic opcodes share a handler, so two of them may land in the same
// jump table slot.
type Opcode struct {
	Name    string `json:"name"`
	Value   uint8  `json:"value"`
	Generic bool   `json:"generic"`
}

func (o Opcode) String() string {
	return fmt.Sprintf("%s (0x%02X)", o.Name, o.Value)
}

// DefaultOpcodes returns the bootloader's command set in declaration order.
// Order matters: on a generic/generic collision the earlier opcode keeps the slot.
func DefaultOpcodes() []Opcode {
	return []Opcode{
		{Name: "STK_LOAD_ADDRESS", Value: 0x55},
		{Name: "STK_PROG_PAGE", Value: 0x64},
		{Name: "STK_READ_SIGN", Value: 0x75},
		{Name: "STK_LEAVE_PROGMODE", Value: 0x51},
		{Name: "STK_SYNC", Value: 0x30, Generic: true},
		{Name: "STK_PARAMETER", Value: 0x41},
		{Name: "STK_SET_DEVICE", Value: 0x42, Generic: true},
		{Name: "STK_EXT_PARAMS", Value: 0x45, Generic: true},
		{Name: "SCK_PROG_ENABLE", Value: 0x50, Generic: true},
	}
}
