package utils

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/twmb/murmur3"
)

func HashString(s string) uint64 {
	hash := murmur3.New64()
	_, err := hash.Write([]byte(s))
	if err != nil {
		panic(err)
	}
	return hash.Sum64()
}

func RecoverWithError(err *error) {
	if rv := recover(); rv != nil {
		*err = fmt.Errorf("got panic: %v", rv)
	}
}

// Tokenize splits text into lower-cased word tokens. Anything that is not a
// letter, digit or intra-word hyphen acts as a separator.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})
}

// CountNumericTokens counts whitespace-separated tokens that start with a digit.
func CountNumericTokens(text string) int {
	count := 0
	for _, tok := range strings.Fields(text) {
		runes := []rune(tok)
		if len(runes) > 0 && unicode.IsDigit(runes[0]) {
			count++
		}
	}
	return count
}

func AbsInt(n int) int {
	if n >= 0 {
		return n
	}

	return -n
}
