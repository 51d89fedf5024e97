package analyzer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultLocale - Locale used for lower casing when none is configured
const DefaultLocale = "pt-BR"

// DefaultCacheSize - Number of normalized words kept by a Tokenizer
const DefaultCacheSize = 4096

// Tokenizer - Splits text into words and normalizes them: leading and trailing underscores are trimmed and the
// rest is lower cased following the rules of the configured locale.
// A Tokenizer is not safe for concurrent use.
type Tokenizer struct {
	tag   language.Tag
	caser cases.Caser
	cache *lru.Cache[string, string]
}

// NewTokenizer - Returns a pointer to a new Tokenizer.
//   - locale is a BCP 47 tag such as "pt-BR", POSIX names such as "pt_BR.utf8" are accepted as well
//   - cacheSize is the number of normalized words to remember, zero selects DefaultCacheSize
func NewTokenizer(locale string, cacheSize int) (tokenizer *Tokenizer, err error) {
	tag, err := ParseLocale(locale)
	if err != nil {
		return
	}

	if cacheSize == 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		err = fmt.Errorf("error while creating normalization cache: %s", err)
		return
	}

	tokenizer = &Tokenizer{
		tag:   tag,
		caser: cases.Lower(tag),
		cache: cache,
	}

	return
}

// ParseLocale - Returns the language tag for locale, an empty locale gives DefaultLocale.
// POSIX style names are reduced to their language and region part, so "pt_BR.UTF-8" gives pt-BR.
func ParseLocale(locale string) (tag language.Tag, err error) {
	if locale == "" {
		locale = DefaultLocale
	}

	name, _, _ := strings.Cut(locale, ".")
	name = strings.ReplaceAll(name, "_", "-")

	tag, err = language.Parse(name)
	if err != nil {
		err = fmt.Errorf("locale %q not supported: %s", locale, err)
	}

	return
}

// Tag - Returns the language tag the Tokenizer lower cases for
func (T *Tokenizer) Tag() language.Tag {
	return T.tag
}

// Words - Returns the normalized words of line in the order they appear.
// Words consisting of underscores only are dropped.
func (T *Tokenizer) Words(line string) (words []string) {
	for _, token := range split(line) {
		if word := T.normalize(token); word != "" {
			words = append(words, word)
		}
	}

	return
}

// normalize - Trims underscores and lower cases word, remembering recent results
func (T *Tokenizer) normalize(word string) string {
	if normalized, ok := T.cache.Get(word); ok {
		return normalized
	}

	normalized := T.caser.String(strings.Trim(word, "_"))
	T.cache.Add(word, normalized)

	return normalized
}

// split - Cuts line at word boundaries and returns the word segments.
// A word is a run of letters, digits, marks and connector punctuation. An apostrophe joins two letters
// ("don't") and a period or comma joins two digits ("3.14"), everything else separates words.
func split(line string) (tokens []string) {
	start := -1
	var prev rune

	for i, r := range line {
		switch {
		case isWordRune(r):
			if start < 0 {
				start = i
			}
			prev = r
			continue

		case start >= 0 && isJoiner(prev, r, line[i+utf8.RuneLen(r):]):
			prev = r
			continue
		}

		if start >= 0 {
			tokens = append(tokens, line[start:i])
			start = -1
		}
		prev = r
	}

	if start >= 0 {
		tokens = append(tokens, line[start:])
	}

	return
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || unicode.Is(unicode.Pc, r)
}

// isJoiner - Returns true if r sits between prev and the first rune of rest and keeps them in one word
func isJoiner(prev, r rune, rest string) bool {
	next, _ := utf8.DecodeRuneInString(rest)

	switch r {
	case '\'', '’':
		return unicode.IsLetter(prev) && unicode.IsLetter(next)
	case '.', ',':
		return unicode.IsDigit(prev) && unicode.IsDigit(next)
	}

	return false
}
