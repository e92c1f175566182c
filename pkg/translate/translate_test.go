package translate

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultOutput = "UWU_KEY_WORDS:\n" +
	"\t.db 246, 52, 5, ((UWU_TRANSLATIONS << 1)&0xFF) + 0\n" +
	"\t.db 155, 102, 3, ((UWU_TRANSLATIONS << 1)&0xFF) + 2\n" +
	"\t.db 114, 100, 6, ((UWU_TRANSLATIONS << 1)&0xFF) + 5\n" +
	"\t.db 7, 246, 6, ((UWU_TRANSLATIONS << 1)&0xFF) + 7\n" +
	"\t.db 49, 176, 11, ((UWU_TRANSLATIONS << 1)&0xFF) + 11\n" +
	"\t.db 53, 164, 7, ((UWU_TRANSLATIONS << 1)&0xFF) + 13\n" +
	"\t.db 126, 190, 5, ((UWU_TRANSLATIONS << 1)&0xFF) + 15\n" +
	"\t.db 10, 121, 5, ((UWU_TRANSLATIONS << 1)&0xFF) + 18\n" +
	"\t.db 122, 242, 7, ((UWU_TRANSLATIONS << 1)&0xFF) + 19\n" +
	"\t.db 121, 18, 5, ((UWU_TRANSLATIONS << 1)&0xFF) + 20\n" +
	"\t.db 65, 239, 5, ((UWU_TRANSLATIONS << 1)&0xFF) + 21\n" +
	"\t.db 1, 125, 4, ((UWU_TRANSLATIONS << 1)&0xFF) + 22\n" +
	"\t.db 79, 98, 5, ((UWU_TRANSLATIONS << 1)&0xFF) + 23\n" +
	"\t.db 118, 174, 4, ((UWU_TRANSLATIONS << 1)&0xFF) + 24\n" +
	"\t.db 79, 207, 9, ((UWU_TRANSLATIONS << 1)&0xFF) + 25\n" +
	"\t.db 88, 105, 5, ((UWU_TRANSLATIONS << 1)&0xFF) + 26\n" +
	"UWU_TRANSLATIONS:\n" +
	"\t.db 4, 131, 20, 3, 146, 6, 149, 6, 37, 52, 195, 8, 135, 8, 134, 21, 4, 146, 133, 136, 134, 149, 133, 131, 131, 136, 132\n" +
	"UWU_LETTER_TABLE:\n" +
	"\t.db 119, 117, 101, 110, 115, 0, 0, 0\n" +
	"\n"

func buildDefault(t *testing.T) Tables {
	t.Helper()
	tables, err := Build(DefaultRules())
	require.NoError(t, err)
	return tables
}

// TestDefaultTablesGolden pins the generator output byte for byte.
func TestDefaultTablesGolden(t *testing.T) {
	tables := buildDefault(t)

	var buf bytes.Buffer
	n, err := tables.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, defaultOutput, buf.String())
}

func TestDefaultTablesShape(t *testing.T) {
	tables := buildDefault(t)
	require.Len(t, tables.Keywords, MaxTranslations)
	assert.Len(t, tables.KeyWordValues(), 16*4)
	assert.Len(t, tables.Letters, AlphabetSize)
	assert.Equal(t, 5, tables.LetterCount)
	assert.Equal(t, "\t.db 119, 117, 101, 110, 115, 0, 0, 0", strings.Split(tables.LetterTable(), "\n")[1])
	assert.Equal(t, "HELLO", tables.Keywords[0].Name)
	assert.Equal(t, "TEMPERATURE", tables.Keywords[4].Name)

	// Every word ends with exactly one end-of-word edit.
	ends := 0
	for _, op := range tables.Edits {
		if op&EndOfWord != 0 {
			ends++
		}
	}
	assert.Equal(t, len(tables.Keywords), ends)
}

func TestChecksum(t *testing.T) {
	tests := []struct {
		in   string
		want uint16
	}{
		{"", 0xFFFF},
		{"123456789", 0x4B37},
		{"hello", 0x34F6},
		{"abc", 0x5749},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ChecksumString(tc.in), "%q", tc.in)
		assert.Equal(t, tc.want, bitwiseCRC([]byte(tc.in)), "%q bitwise", tc.in)
	}
}

// TestChecksumTableMatchesBitwise compares the table-driven CRC with the
// bit-at-a-time definition the firmware implements.
func TestChecksumTableMatchesBitwise(t *testing.T) {
	data := make([]byte, 0, 512)
	for i := 0; i < 512; i++ {
		data = append(data, byte(i*131+7))
		require.Equal(t, bitwiseCRC(data), Checksum(data), "len %d", len(data))
	}
}

func bitwiseCRC(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b)
		for i := 0; i < 8; i++ {
			if crc&1 != 0 {
				crc = crc>>1 ^ 0xA001
			} else {
				crc >>= 1
			}
		}
	}
	return crc
}

func TestAddTranslationSingleEdit(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddTranslation("abc", "abd"))

	tables := b.Tables()
	require.Len(t, tables.Keywords, 1)
	k := tables.Keywords[0]
	assert.Equal(t, uint8(3), k.WordLength)
	assert.Equal(t, 0, k.Index)
	assert.Equal(t, ChecksumString("abc"), k.Checksum)
	assert.Equal(t, "ABC", k.Name)

	// Last letter: offset (3-2)+1 = 2, slot 0, end of word.
	require.Len(t, tables.Edits, 1)
	op := tables.Edits[0]
	assert.Equal(t, byte(2), op&0x0F)
	assert.Equal(t, byte(0), (op>>4)&0x07)
	assert.NotZero(t, op&EndOfWord)
	assert.Equal(t, [AlphabetSize]byte{'d'}, tables.Letters)
}

func TestAddTranslationFoldsCase(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddTranslation("HeLLo", "HEWWO"))
	tables := b.Tables()
	assert.Equal(t, ChecksumString("hello"), tables.Keywords[0].Checksum)
	assert.Equal(t, []byte{4, 3 | EndOfWord}, tables.Edits)
	assert.Equal(t, byte('w'), tables.Letters[0])
}

func TestAddTranslationIndexes(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddTranslation("Hello", "Hewwo"))
	require.NoError(t, b.AddTranslation("LED", "UwU"))
	require.NoError(t, b.AddTranslation("Stop", "Stwp"))
	tables := b.Tables()
	assert.Equal(t, []int{0, 2, 5}, []int{tables.Keywords[0].Index, tables.Keywords[1].Index, tables.Keywords[2].Index})
	assert.Equal(t, 3, b.Len())
}

func TestAddTranslationErrors(t *testing.T) {
	tests := []struct {
		name          string
		before, after string
		err           error
	}{
		{"identical", "hello", "hello", ErrNoDifference},
		{"identical after folding", "Hello", "hELLO", ErrNoDifference},
		{"length mismatch", "hi", "hey", ErrLengthMismatch},
		{"offset overflow", "abcdefghijklmno", "xbcdefghijklmno", ErrLetterOffsetOverflow},
		{"letter beyond Latin-1", "cafe", "caf€", ErrLetterRange},
		{"empty", "", "", ErrNoDifference},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBuilder()
			err := b.AddTranslation(tc.before, tc.after)
			require.ErrorIs(t, err, tc.err)
			assert.Equal(t, 0, b.Len(), "failed rule must not be registered")
		})
	}
}

// TestLatin1Letter checks letters up to 0xFF are stored as single bytes.
func TestLatin1Letter(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddTranslation("cafe", "café"))
	tables := b.Tables()
	assert.Equal(t, byte(0xE9), tables.Letters[0])
	assert.Equal(t, []byte{2 | EndOfWord}, tables.Edits)
	assert.Contains(t, tables.LetterTable(), ".db 233, 0, 0, 0, 0, 0, 0, 0")
}

// TestLetterOffsetLimit checks the boundary: offset 15 fits, 16 does not.
func TestLetterOffsetLimit(t *testing.T) {
	b := NewBuilder()
	// 14 letters, first letter: offset (14-0)+1 = 15
	require.NoError(t, b.AddTranslation("abcdefghijklmn", "xbcdefghijklmn"))
	assert.Equal(t, byte(15|EndOfWord), b.Tables().Edits[0])

	// A long word is fine when the change is near the end.
	require.NoError(t, b.AddTranslation("abcdefghijklmnopqrst", "abcdefghijklmnopqrsx"))
}

func TestAlphabetOverflow(t *testing.T) {
	b := NewBuilder()
	letters := "bcdefghi"
	for i := 0; i < len(letters); i++ {
		require.NoError(t, b.AddTranslation(fmt.Sprintf("a%d", i), fmt.Sprintf("%c%d", letters[i], i)))
	}
	before := b.Tables()
	assert.Equal(t, AlphabetSize, before.LetterCount)

	err := b.AddTranslation("a9", "j9")
	require.ErrorIs(t, err, ErrAlphabetOverflow)
	assert.Equal(t, before, b.Tables(), "builder must be unchanged")

	// reusing an existing letter still works
	require.NoError(t, b.AddTranslation("az", "bz"))
}

// TestAlphabetOverflowRollsBack checks a rule that adds letters before
// overflowing does not leak them into the alphabet.
func TestAlphabetOverflowRollsBack(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddTranslation("aaaaaaa", "bcdefgh"))
	require.ErrorIs(t, b.AddTranslation("aa", "ij"), ErrAlphabetOverflow)
	assert.Equal(t, 7, b.Tables().LetterCount)
	require.NoError(t, b.AddTranslation("aa", "ai"))
}

func TestTooManyTranslations(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddRules(DefaultRules()))
	err := b.AddTranslation("Extra", "Extwa")
	require.ErrorIs(t, err, ErrTooManyTranslations)
	assert.Equal(t, MaxTranslations, b.Len())

	_, err = Build(append(DefaultRules(), Rule{"Extra", "Extwa"}))
	require.ErrorIs(t, err, ErrTooManyTranslations)
}

func TestDuplicateKeyword(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddTranslation("Hello", "Hewwo"))
	require.ErrorIs(t, b.AddTranslation("HELLO", "Hellw"), ErrDuplicateKeyword)
}

func TestTablesSnapshotIsolated(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddTranslation("Hello", "Hewwo"))
	snap := b.Tables()
	require.NoError(t, b.AddTranslation("Loop", "Woop"))
	assert.Len(t, snap.Keywords, 1)
	assert.Len(t, snap.Edits, 2)
}

func TestSerializersEmpty(t *testing.T) {
	tables := NewBuilder().Tables()
	assert.Equal(t, "UWU_KEY_WORDS:", tables.KeyWords())
	assert.Equal(t, "UWU_TRANSLATIONS:\n\t.db ", tables.Translations())
	assert.Equal(t, "UWU_LETTER_TABLE:\n\t.db 0, 0, 0, 0, 0, 0, 0, 0\n", tables.LetterTable())
}

// TestTranslateRoundTrip decodes every rule the way the firmware would.
func TestTranslateRoundTrip(t *testing.T) {
	tables := buildDefault(t)
	for _, r := range DefaultRules() {
		got, ok := tables.Translate(strings.ToLower(r.Before))
		require.True(t, ok, r.Before)
		assert.Equal(t, strings.ToLower(r.After), got, r.Before)
	}
}

func TestTranslate(t *testing.T) {
	tables := buildDefault(t)

	got, ok := tables.Translate("Hello")
	require.True(t, ok)
	assert.Equal(t, "Hewwo", got)

	got, ok = tables.Translate("goodbye")
	assert.False(t, ok)
	assert.Equal(t, "goodbye", got)

	assert.Equal(t, "Hewwo Wurld! Swensr Euwou, bye.",
		tables.TranslateText("Hello World! Sensor Error, bye."))
	assert.Equal(t, "", tables.TranslateText(""))
}

func TestParseRules(t *testing.T) {
	in := `# built-ins
Hello Hewwo
  LED   UwU   # trailing comment

Stop	Stwp
`
	rules, err := ParseRules(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []Rule{{"Hello", "Hewwo"}, {"LED", "UwU"}, {"Stop", "Stwp"}}, rules)

	_, err = ParseRules(strings.NewReader("Hello\n"))
	require.ErrorIs(t, err, ErrRuleSyntax)
	assert.Contains(t, err.Error(), "line 1")

	_, err = ParseRules(strings.NewReader("a b\nc d e\n"))
	require.ErrorIs(t, err, ErrRuleSyntax)
	assert.Contains(t, err.Error(), "line 2")

	rules, err = ParseRules(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rules)
}
