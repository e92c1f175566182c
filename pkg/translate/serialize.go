package translate

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Assembler labels of the emitted tables.
const (
	KeyWordsLabel     = "UWU_KEY_WORDS"
	TranslationsLabel = "UWU_TRANSLATIONS"
	LetterTableLabel  = "UWU_LETTER_TABLE"
)

// Tables is the finished, immutable output of a Builder.
type Tables struct {
	Keywords    []KeywordEntry
	Edits       []byte
	Letters     [AlphabetSize]byte
	LetterCount int
}

// LetterTable renders UWU_LETTER_TABLE: always AlphabetSize values.
func (t Tables) LetterTable() string {
	var sb strings.Builder
	sb.WriteString(LetterTableLabel + ":\n\t.db ")
	for i, c := range t.Letters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(int(c)))
	}
	sb.WriteString("\n")
	return sb.String()
}

// Translations renders UWU_TRANSLATIONS, the edit stream in append order.
func (t Tables) Translations() string {
	var sb strings.Builder
	sb.WriteString(TranslationsLabel + ":\n\t.db ")
	for i, op := range t.Edits {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(int(op)))
	}
	return sb.String()
}

// KeyWordValues returns the four .db operands of every keyword, flattened.
// The fourth is an assembler expression relocating the edit index against
// the translation table's address.
func (t Tables) KeyWordValues() []string {
	values := make([]string, 0, 4*len(t.Keywords))
	for _, k := range t.Keywords {
		values = append(values,
			strconv.Itoa(int(k.Checksum&0xFF)),
			strconv.Itoa(int(k.Checksum>>8)),
			strconv.Itoa(int(k.WordLength)),
			fmt.Sprintf("((%s << 1)&0xFF) + %d", TranslationsLabel, k.Index),
		)
	}
	return values
}

// KeyWords renders UWU_KEY_WORDS, one keyword per line.
func (t Tables) KeyWords() string {
	var sb strings.Builder
	sb.WriteString(KeyWordsLabel + ":")
	values := t.KeyWordValues()
	for i := 0; i+3 < len(values); i += 4 {
		sb.WriteString("\n\t.db " + strings.Join(values[i:i+4], ", "))
	}
	return sb.String()
}

// WriteTo writes all three tables, each followed by a newline.
func (t Tables) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.KeyWords()+"\n"+t.Translations()+"\n"+t.LetterTable()+"\n")
	return int64(n), err
}
