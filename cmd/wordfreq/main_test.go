package main

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/gostonefire/dictmap/internal/analyzer"
	"github.com/stretchr/testify/assert"
)

func TestParseArgs(t *testing.T) {
	t.Run("positional arguments with defaults", func(t *testing.T) {
		// Execute
		opts, err := parseArgs([]string{"avl_dictionary", "book.txt"}, io.Discard)

		// Check
		assert.NoError(t, err, "parsed")
		assert.Equal(t, analyzer.Options{
			DictType:  "avl_dictionary",
			InputFile: "book.txt",
			Locale:    analyzer.DefaultLocale,
		}, opts, "options")
	})

	t.Run("flags anywhere", func(t *testing.T) {
		// Execute
		opts, err := parseArgs([]string{"-o", "out", "open_dictionary", "-mlf", "0.5", "book.txt", "-size", "31", "-locale", "en"}, io.Discard)

		// Check
		assert.NoError(t, err, "parsed")
		assert.Equal(t, analyzer.Options{
			DictType:      "open_dictionary",
			InputFile:     "book.txt",
			OutputDir:     "out",
			Locale:        "en",
			InitialSize:   31,
			MaxLoadFactor: 0.5,
		}, opts, "options")
	})

	t.Run("wrong number of arguments", func(t *testing.T) {
		_, errFew := parseArgs([]string{"avl_dictionary"}, io.Discard)
		_, errMany := parseArgs([]string{"avl_dictionary", "a.txt", "b.txt"}, io.Discard)

		assert.Error(t, errFew, "missing file")
		assert.Error(t, errMany, "extra argument")
	})

	t.Run("bad flag value", func(t *testing.T) {
		_, err := parseArgs([]string{"-size", "many", "avl", "a.txt"}, io.Discard)
		assert.Error(t, err, "size must be a number")
	})

	t.Run("help", func(t *testing.T) {
		_, err := parseArgs([]string{"-h"}, io.Discard)
		assert.True(t, errors.Is(err, flag.ErrHelp), "help requested")
	})
}
