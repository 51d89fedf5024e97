// Command wordfreq counts the words of a text file in one of the dictionary implementations and writes a
// frequency report together with the operation counters of the dictionary.
//
//	wordfreq <type> <file> [-o dir] [-locale tag] [-size n] [-mlf f]
//
// type is one of avl_dictionary, redblack_dictionary, chained_dictionary or open_dictionary.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gostonefire/dictmap/internal/analyzer"
)

const usage = "usage: wordfreq <type> <file> [-o dir] [-locale tag] [-size n] [-mlf f]"

func main() {
	log.SetFlags(log.LstdFlags)

	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Printf("[E]%v\n", err)
		log.Printf("[E]%s\n", usage)
		os.Exit(1)
	}

	report, reportFile, err := analyzer.Run(opts)
	if err != nil {
		log.Printf("[E]%v\n", err)
		os.Exit(1)
	}

	log.Printf("[I]%d words counted in %s, report written to %s\n", report.WordsProcessed, report.Metrics.Label, reportFile)
}

// parseArgs - Maps command line arguments onto analyzer options. Flags may appear before, between or after the
// two positional arguments.
func parseArgs(args []string, output io.Writer) (opts analyzer.Options, err error) {
	fs := flag.NewFlagSet("wordfreq", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		_, _ = fmt.Fprintln(output, usage)
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.OutputDir, "o", "", "directory to write the report to")
	fs.StringVar(&opts.Locale, "locale", analyzer.DefaultLocale, "locale used to lower case and order words")
	fs.Int64Var(&opts.InitialSize, "size", 0, "initial number of buckets for hash tables (0 selects the default)")
	fs.Float64Var(&opts.MaxLoadFactor, "mlf", 0, "max load factor for hash tables (0 selects the default)")

	var positional []string
	for {
		err = fs.Parse(args)
		if err != nil {
			return
		}

		args = fs.Args()
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}

	if len(positional) != 2 {
		err = fmt.Errorf("expected 2 arguments, got %d", len(positional))
		return
	}

	opts.DictType = positional[0]
	opts.InputFile = positional[1]

	return
}
