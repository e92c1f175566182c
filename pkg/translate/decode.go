package translate

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lookup finds the keyword entry matching word, case-insensitively.
func (t Tables) Lookup(word string) (KeywordEntry, bool) {
	lw := cases.Lower(language.Und).String(word)
	n := len([]rune(lw))
	if n > 0xFF {
		return KeywordEntry{}, false
	}
	sum := ChecksumString(lw)
	for _, k := range t.Keywords {
		if k.Checksum == sum && int(k.WordLength) == n {
			return k, true
		}
	}
	return KeywordEntry{}, false
}

// Translate applies the edits for word the way the firmware does: untouched
// letters keep their case, replaced letters come from the letter table.
func (t Tables) Translate(word string) (string, bool) {
	k, ok := t.Lookup(word)
	if !ok {
		return word, false
	}
	out := []rune(word)
	if len(out) != int(k.WordLength) {
		// case folding changed the length; leave it alone
		return word, false
	}
	for i := k.Index; i < len(t.Edits); i++ {
		op := t.Edits[i]
		pos := len(out) - int(op&0x0F) + 1
		if pos >= 0 && pos < len(out) {
			out[pos] = rune(t.Letters[(op>>4)&0x07])
		}
		if op&EndOfWord != 0 {
			break
		}
	}
	return string(out), true
}

// TranslateText translates every word (maximal run of letters) in text.
func (t Tables) TranslateText(text string) string {
	var sb strings.Builder
	start := -1
	flush := func(end int) {
		if start >= 0 {
			w, _ := t.Translate(text[start:end])
			sb.WriteString(w)
			start = -1
		}
	}
	for i, r := range text {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
		sb.WriteRune(r)
	}
	flush(len(text))
	return sb.String()
}
