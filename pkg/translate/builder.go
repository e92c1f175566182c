// Package translate builds the UwU loader's word translation tables.
//
// A rule replaces some letters of a fixed word with letters of the same word
// length. Rules are folded into three tables the firmware reads:
//
//	UWU_KEY_WORDS     CRC-16 low, CRC-16 high, length, edit stream offset
//	UWU_TRANSLATIONS  one byte per replaced letter: offset | slot<<4, 0x80 ends a word
//	UWU_LETTER_TABLE  the (at most 8) replacement letters
package translate

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Table limits.
const (
	MaxTranslations = 16
	MaxLetterOffset = 15   // offset is a nibble
	EndOfWord       = 0x80 // set on the last edit of each word
)

// Rule is one whole-word substitution.
type Rule struct {
	Before string
	After  string
}

// KeywordEntry is one row of UWU_KEY_WORDS.
type KeywordEntry struct {
	Name       string // upper-case word, for listings only
	Checksum   uint16
	WordLength uint8
	Index      int // position of the word's first edit in the edit stream
}

// Builder accumulates rules. The zero value is not usable; call NewBuilder.
type Builder struct {
	keywords []KeywordEntry
	edits    []byte
	alphabet Alphabet

	lower cases.Caser
	upper cases.Caser
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		lower: cases.Lower(language.Und),
		upper: cases.Upper(language.Und),
	}
}

// Build registers rules in order and returns the finished tables.
func Build(rules []Rule) (Tables, error) {
	b := NewBuilder()
	if err := b.AddRules(rules); err != nil {
		return Tables{}, err
	}
	return b.Tables(), nil
}

// AddRules registers rules in order, stopping at the first error.
func (b *Builder) AddRules(rules []Rule) error {
	for _, r := range rules {
		if err := b.AddTranslation(r.Before, r.After); err != nil {
			return err
		}
	}
	return nil
}

// AddTranslation registers the rule before -> after. Both words are folded
// to lower case. On error the builder is left unchanged.
func (b *Builder) AddTranslation(before, after string) error {
	if len(b.keywords) >= MaxTranslations {
		return fmt.Errorf("%w: cannot add %q", ErrTooManyTranslations, before)
	}
	if nb, na := len([]rune(before)), len([]rune(after)); nb != na {
		return fmt.Errorf("%w: %q has %d letters, %q has %d", ErrLengthMismatch, before, nb, after, na)
	}

	lb := []rune(b.lower.String(before))
	la := []rune(b.lower.String(after))
	if len(lb) != len(la) {
		return fmt.Errorf("%w: %q and %q after case folding", ErrLengthMismatch, before, after)
	}
	if string(lb) == string(la) {
		return fmt.Errorf("%w: %q", ErrNoDifference, before)
	}
	if len(lb) > 0xFF {
		return fmt.Errorf("%w: %q has %d letters", ErrWordTooLong, before, len(lb))
	}

	word := string(lb)
	entry := KeywordEntry{
		Name:       b.upper.String(word),
		Checksum:   ChecksumString(word),
		WordLength: uint8(len(lb)),
		Index:      len(b.edits),
	}
	for _, k := range b.keywords {
		if k.Checksum == entry.Checksum && k.WordLength == entry.WordLength {
			return fmt.Errorf("%w: %q collides with %s", ErrDuplicateKeyword, before, k.Name)
		}
	}

	alpha := b.alphabet
	var ops []byte
	for i := range lb {
		if lb[i] == la[i] {
			continue
		}
		offset := len(lb) - i + 1
		if offset > MaxLetterOffset {
			return fmt.Errorf("%w: %q position %d needs offset %d", ErrLetterOffsetOverflow, before, i, offset)
		}
		if la[i] > 0xFF {
			return fmt.Errorf("%w: %q in %q", ErrLetterRange, la[i], after)
		}
		slot, err := alpha.slotOrAdd(byte(la[i]))
		if err != nil {
			return fmt.Errorf("%w: %q needs %q", err, after, la[i])
		}
		ops = append(ops, byte(offset)|slot<<4)
	}
	if len(ops) == 0 {
		return fmt.Errorf("%w: %q", ErrNoDifference, before)
	}
	ops[len(ops)-1] |= EndOfWord

	b.keywords = append(b.keywords, entry)
	b.edits = append(b.edits, ops...)
	b.alphabet = alpha
	return nil
}

// Len returns the number of registered rules.
func (b *Builder) Len() int {
	return len(b.keywords)
}

// Tables returns a snapshot of the accumulated tables.
func (b *Builder) Tables() Tables {
	return Tables{
		Keywords:    append([]KeywordEntry(nil), b.keywords...),
		Edits:       append([]byte(nil), b.edits...),
		Letters:     b.alphabet.Letters(),
		LetterCount: b.alphabet.Len(),
	}
}
