package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestSplit(t *testing.T) {
	t.Run("cuts at word boundaries", func(t *testing.T) {
		// Execute
		tokens := split("Olá, mundo! don't stop 3.14 __init__ rock-n-roll  dogs' end.")

		// Check
		expected := []string{"Olá", "mundo", "don't", "stop", "3.14", "__init__", "rock", "n", "roll", "dogs", "end"}
		assert.Equal(t, expected, tokens, "word segments")
	})

	t.Run("no words", func(t *testing.T) {
		assert.Empty(t, split(" \t -- ... "), "only separators")
		assert.Empty(t, split(""), "empty line")
	})
}

func TestParseLocale(t *testing.T) {
	t.Run("accepts posix and bcp 47 names", func(t *testing.T) {
		// Execute
		posix, errPosix := ParseLocale("pt_BR.utf8")
		bcp, errBCP := ParseLocale("en-US")
		def, errDef := ParseLocale("")

		// Check
		assert.NoError(t, errPosix, "posix name")
		assert.Equal(t, language.MustParse("pt-BR"), posix, "posix name parsed")
		assert.NoError(t, errBCP, "bcp 47 name")
		assert.Equal(t, language.MustParse("en-US"), bcp, "bcp 47 name parsed")
		assert.NoError(t, errDef, "default")
		assert.Equal(t, language.MustParse("pt-BR"), def, "default locale")
	})

	t.Run("rejects malformed names", func(t *testing.T) {
		_, err := ParseLocale("!!")
		assert.Error(t, err, "malformed locale")
	})
}

func TestTokenizer_Words(t *testing.T) {
	t.Run("trims underscores and lower cases", func(t *testing.T) {
		// Prepare
		tokenizer, err := NewTokenizer("pt_BR.utf8", 0)
		require.NoError(t, err, "create tokenizer")

		// Execute
		words := tokenizer.Words("ÉRAMOS __Init__ ___ Ação")

		// Check
		assert.Equal(t, []string{"éramos", "init", "ação"}, words, "normalized words")
		assert.Equal(t, 4, tokenizer.cache.Len(), "every token cached")
	})

	t.Run("lower cases by locale", func(t *testing.T) {
		// Prepare
		turkish, err := NewTokenizer("tr_TR.UTF-8", 0)
		require.NoError(t, err, "create tokenizer")

		// Execute
		words := turkish.Words("İSTANBUL")

		// Check
		assert.Equal(t, []string{"istanbul"}, words, "dotted capital I lowers to plain i")
	})

	t.Run("serves repeated words from the cache", func(t *testing.T) {
		// Prepare
		tokenizer, err := NewTokenizer("", 2)
		require.NoError(t, err, "create tokenizer")

		// Execute
		first := tokenizer.Words("Sol sol SOL Sol")

		// Check
		assert.Equal(t, []string{"sol", "sol", "sol", "sol"}, first, "same normalization")
		assert.Equal(t, 2, tokenizer.cache.Len(), "cache bounded")
		cached, ok := tokenizer.cache.Get("Sol")
		assert.True(t, ok, "recent word cached")
		assert.Equal(t, "sol", cached, "cached normalization")
	})
}
