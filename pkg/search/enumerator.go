package search

import "github.com/oisee/uwu-tables/pkg/dispatch"

// EnumerateParams calls fn for every candidate in sweep order
// (bit, addend, bit2, addend2). fn should return false to stop early.
func EnumerateParams(fn func(p dispatch.Params) bool) {
	for _, prefix := range EnumeratePrefixes() {
		if !enumerateSuffix(prefix, fn) {
			return
		}
	}
}

// EnumeratePrefixes returns every (bit, addend) pair with Bit2/Addend2 unset.
// Each prefix covers ParamCount()/len(prefixes) candidates; workers split on it.
func EnumeratePrefixes() []dispatch.Params {
	prefixes := make([]dispatch.Params, 0, (dispatch.MaxBit-dispatch.MinBit)*dispatch.MaxAddend)
	for bit := dispatch.MinBit; bit < dispatch.MaxBit; bit++ {
		for addend := 0; addend < dispatch.MaxAddend; addend++ {
			prefixes = append(prefixes, dispatch.Params{Bit: uint8(bit), Addend: uint8(addend)})
		}
	}
	return prefixes
}

// enumerateSuffix walks bit2 and addend2 under a fixed prefix.
func enumerateSuffix(prefix dispatch.Params, fn func(dispatch.Params) bool) bool {
	p := prefix
	for bit2 := dispatch.MinBit; bit2 < dispatch.MaxBit; bit2++ {
		for addend2 := 0; addend2 < dispatch.MaxAddend; addend2++ {
			p.Bit2 = uint8(bit2)
			p.Addend2 = uint8(addend2)
			if !fn(p) {
				return false
			}
		}
	}
	return true
}

// ParamCount returns the number of candidates in the swept space.
func ParamCount() int {
	return dispatch.ParamCount
}
