package analyzer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gostonefire/dictmap"
	"github.com/gostonefire/dictmap/internal/utils"
	"github.com/hashicorp/go-uuid"
	"golang.org/x/text/language"
)

// maxLineLength - Longest line ReadWords accepts
const maxLineLength = 1024 * 1024

// Options - Is a struct to be passed in the call to Run and contains the settings of one analysis.
//   - DictType is the dictionary name as accepted by dtype.Parse, e.g. "avl_dictionary"
//   - InputFile is the text file to analyze
//   - OutputDir is the directory the report is written to, empty means the current directory
//   - Locale is the locale used for lower casing and for ordering the report, empty selects DefaultLocale
//   - InitialSize and MaxLoadFactor are passed on to hash table dictionaries, zero selects their defaults
type Options struct {
	DictType      string
	InputFile     string
	OutputDir     string
	Locale        string
	InitialSize   int64
	MaxLoadFactor float64
}

// Report - The outcome of one analysis
//   - RunID identifies the run in the written report
//   - File is the analyzed file
//   - Date is when the analysis started
//   - BuildTime is the time spent counting words into the dictionary
//   - WordsProcessed is the total number of words counted, repeated words included
//   - MaxKeyWidth is the width in terminal columns of the longest word
//   - Locale orders the frequency table, the zero tag selects the root collation
//   - Metrics is the dictionary counter snapshot taken after counting
type Report struct {
	RunID          string
	File           string
	Date           time.Time
	BuildTime      time.Duration
	WordsProcessed int64
	MaxKeyWidth    int
	Locale         language.Tag
	Metrics        dictmap.Metrics
}

// ReadWords - Reads r line by line and returns all normalized words in order of appearance
func ReadWords(r io.Reader, tokenizer *Tokenizer) (words []string, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	for scanner.Scan() {
		words = append(words, tokenizer.Words(scanner.Text())...)
	}

	err = scanner.Err()
	if err != nil {
		err = fmt.Errorf("error while reading words: %s", err)
	}

	return
}

// Analyze - Counts every word in dict and returns a report over the counting.
// The counters of dict are cleared before counting, so the reported metrics cover this analysis only.
func Analyze(dict dictmap.Dictionary[string, uint64], words []string) (report Report) {
	dict.Clear()

	report.Date = time.Now()
	for _, word := range words {
		(*dict.Upsert(word))++
		report.WordsProcessed++
		report.MaxKeyWidth = max(report.MaxKeyWidth, utils.DisplayWidth(word))
	}
	report.BuildTime = time.Since(report.Date)
	report.Metrics = dict.Metrics()

	return
}

// Run - Performs a complete analysis: reads and tokenizes the input file, counts the words in the configured
// dictionary and writes the report to the output directory.
//
// It returns:
//   - report is the report that was written
//   - reportFile is the path of the written report
//   - err is a standard error, of type dtype.TypeNotFound if the dictionary name is unknown
func Run(opts Options) (report Report, reportFile string, err error) {
	dict, err := dictmap.NewDictionaryFromName[string, uint64](opts.DictType, dictmap.DictConf[string]{
		InitialSize:   opts.InitialSize,
		MaxLoadFactor: opts.MaxLoadFactor,
	})
	if err != nil {
		return
	}

	tokenizer, err := NewTokenizer(opts.Locale, DefaultCacheSize)
	if err != nil {
		return
	}

	words, err := readFile(opts.InputFile, tokenizer)
	if err != nil {
		return
	}

	report = Analyze(dict, words)
	report.File = opts.InputFile
	report.Locale = tokenizer.Tag()
	report.RunID, err = uuid.GenerateUUID()
	if err != nil {
		err = fmt.Errorf("error while generating run id: %s", err)
		return
	}

	reportFile = ReportFileName(opts.OutputDir, opts.InputFile, opts.DictType)
	err = writeFile(reportFile, report, dict)

	return
}

// ReportFileName - Returns the path of the report for inputFile analyzed with the named dictionary
func ReportFileName(outputDir, inputFile, dictType string) string {
	base := filepath.Base(inputFile)
	base = base[:len(base)-len(filepath.Ext(base))]

	return filepath.Join(outputDir, fmt.Sprintf("%s-%s.txt", base, dictType))
}

// readFile - Opens fileName and returns its normalized words
func readFile(fileName string, tokenizer *Tokenizer) (words []string, err error) {
	f, err := os.Open(fileName)
	if err != nil {
		err = fmt.Errorf("error while opening input file: %s", err)
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	return ReadWords(f, tokenizer)
}

// writeFile - Creates (or truncates) fileName and writes the report to it
func writeFile(fileName string, report Report, dict dictmap.Dictionary[string, uint64]) (err error) {
	if dir := filepath.Dir(fileName); dir != "" {
		err = os.MkdirAll(dir, 0755)
		if err != nil {
			err = fmt.Errorf("error while creating output directory: %s", err)
			return
		}
	}

	f, err := os.OpenFile(fileName, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		err = fmt.Errorf("error while open/create report file: %s", err)
		return
	}

	w := bufio.NewWriter(f)
	err = WriteReport(w, report, dict)
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		err = fmt.Errorf("error while writing report file: %s", err)
	}

	return
}
