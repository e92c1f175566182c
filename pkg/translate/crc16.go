package translate

// CRC parameters the firmware's word matcher uses: reflected 0x8005,
// register preset to 0xFFFF, no final XOR (the MODBUS parameter set).
const (
	crcInit = 0xFFFF
	crcPoly = 0xA001
)

var crcTable = makeCRCTable()

func makeCRCTable() *[256]uint16 {
	var t [256]uint16
	for i := range t {
		crc := uint16(i)
		for j := 0; j < 8; j++ {
			if crc&1 != 0 {
				crc = crc>>1 ^ crcPoly
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}
	return &t
}

// Checksum returns the 16-bit CRC of data.
func Checksum(data []byte) uint16 {
	crc := uint16(crcInit)
	for _, b := range data {
		crc = crc>>8 ^ crcTable[byte(crc)^b]
	}
	return crc
}

// ChecksumString returns the CRC of the UTF-8 bytes of s.
func ChecksumString(s string) uint16 {
	return Checksum([]byte(s))
}
