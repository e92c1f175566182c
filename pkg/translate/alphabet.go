package translate

// AlphabetSize is the number of entries in UWU_LETTER_TABLE.
const AlphabetSize = 8

// Alphabet assigns replacement letters to slots in first-seen order.
// It is a value type; copying it snapshots the assignment.
type Alphabet struct {
	letters [AlphabetSize]byte
	n       int
}

// Slot returns the slot of c if it has one.
func (a *Alphabet) Slot(c byte) (uint8, bool) {
	for i := 0; i < a.n; i++ {
		if a.letters[i] == c {
			return uint8(i), true
		}
	}
	return 0, false
}

// slotOrAdd returns the slot of c, allocating the next free one if needed.
func (a *Alphabet) slotOrAdd(c byte) (uint8, error) {
	if s, ok := a.Slot(c); ok {
		return s, nil
	}
	if a.n == AlphabetSize {
		return 0, ErrAlphabetOverflow
	}
	a.letters[a.n] = c
	a.n++
	return uint8(a.n - 1), nil
}

// Len returns the number of assigned letters.
func (a *Alphabet) Len() int {
	return a.n
}

// Letters returns the table contents, zero padded to AlphabetSize.
func (a *Alphabet) Letters() [AlphabetSize]byte {
	return a.letters
}
