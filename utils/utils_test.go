package utils

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens := Tokenize("Patient denies chest-pain, SOB; O2 sat 98%.")
	expected := []string{"patient", "denies", "chest-pain", "sob", "o2", "sat", "98"}
	if diff := cmp.Diff(expected, tokens); diff != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", diff)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	require.Empty(t, Tokenize(""))
	require.Empty(t, Tokenize("  ,;:  "))
}

func TestCountNumericTokens(t *testing.T) {
	require.Equal(t, 3, CountNumericTokens("BP 120/80 HR 88 temp 37.2"))
	require.Equal(t, 0, CountNumericTokens("no numbers here"))
}

func TestHashStringStable(t *testing.T) {
	require.Equal(t, HashString("chest pain"), HashString("chest pain"))
	require.NotEqual(t, HashString("chest pain"), HashString("chest pains"))
}

func TestRecoverWithError(t *testing.T) {
	fn := func() (err error) {
		defer RecoverWithError(&err)
		panic("boom")
	}
	err := fn()
	require.Error(t, err)
	require.Contains(t, err.Error(), "boom")
}

func TestPrefixTreeLongestMatch(t *testing.T) {
	tree := &StringPrefixTree{}
	tree.Add("chest pain")
	tree.Add("chest pain radiating")
	tree.Add("fever")

	tokens := []string{"severe", "chest", "pain", "radiating", "to", "arm"}

	phrase, length, found := tree.LongestMatch(tokens, 1)
	require.True(t, found)
	require.Equal(t, "chest pain radiating", phrase)
	require.Equal(t, 3, length)

	phrase, length, found = tree.LongestMatch([]string{"chest", "pain", "today"}, 0)
	require.True(t, found)
	require.Equal(t, "chest pain", phrase)
	require.Equal(t, 2, length)

	_, _, found = tree.LongestMatch(tokens, 0)
	require.False(t, found)
}

func TestPrefixTreePartialPhraseDoesNotMatch(t *testing.T) {
	tree := &StringPrefixTree{}
	tree.Add("shortness of breath")

	_, _, found := tree.LongestMatch([]string{"shortness", "of", "motion"}, 0)
	require.False(t, found)
}
