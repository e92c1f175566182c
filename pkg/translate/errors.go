package translate

import "errors"

// Generation errors. Each one aborts the run; wrapped errors carry the
// offending rule.
var (
	ErrTooManyTranslations  = errors.New("translate: more than 16 translations")
	ErrLengthMismatch       = errors.New("translate: before and after differ in length")
	ErrNoDifference         = errors.New("translate: before and after are identical")
	ErrLetterOffsetOverflow = errors.New("translate: letter offset exceeds 15 (word too long?)")
	ErrAlphabetOverflow     = errors.New("translate: more than 8 distinct replacement letters")
	ErrLetterRange          = errors.New("translate: replacement letter does not fit a byte")
	ErrWordTooLong          = errors.New("translate: word length does not fit in a byte")
	ErrDuplicateKeyword     = errors.New("translate: keyword checksum and length already registered")
	ErrRuleSyntax           = errors.New("translate: malformed rule")
)
