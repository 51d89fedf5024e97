package analyzer

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/gostonefire/dictmap"
	"github.com/gostonefire/dictmap/internal/model"
	"github.com/gostonefire/dictmap/internal/storage"
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	lineWidth   = 80
	dateLayout  = "2006-01-02 15:04:05"
	wordHeading = "Word"
)

// WriteReport - Writes a report to w in three sections: a header describing the run, the frequency table with one
// line per distinct word in the collation order of report.Locale and the performance metrics of the dictionary.
//   - report is the report returned by Analyze (or Run)
//   - dict is the dictionary the words were counted in
func WriteReport(w io.Writer, report Report, dict dictmap.Dictionary[string, uint64]) (err error) {
	ew := &errWriter{w: w}

	ew.heading("Count of Words: Data Structure Edition - Output Report")
	ew.printf("File analyzed: %s\n", report.File)
	ew.printf("Data structure: %s\n", report.Metrics.Label)
	ew.printf("Run date: %s\n", report.Date.Format(dateLayout))
	ew.printf("Run id: %s\n", report.RunID)
	ew.printf("Words processed: %d\n", report.WordsProcessed)
	ew.printf("\n")

	ew.heading("Frequency Table")
	padding := strings.Repeat(" ", max(0, report.MaxKeyWidth-len(wordHeading)))
	ew.printf("%s%s | %s\n", wordHeading, padding, "Frequency")
	if ew.err == nil {
		ew.err = storage.WritePairs(w, collatedPairs(dict, report.Locale))
	}
	ew.printf("\n")

	ew.heading("Performance Metrics")
	ew.printf("Total time (ms): %d\n", report.BuildTime.Milliseconds())
	ew.printf("Comparisons: %d\n", report.Metrics.Comparisons)
	ew.printf("%s: %d\n", metricTitle(report.Metrics.SpecificName), report.Metrics.SpecificValue)

	if ew.err != nil {
		err = fmt.Errorf("error while writing report: %w", ew.err)
	}

	return
}

// errWriter - Remembers the first write error and skips all writes after it
type errWriter struct {
	w   io.Writer
	err error
}

func (E *errWriter) printf(format string, a ...any) {
	if E.err != nil {
		return
	}
	_, E.err = fmt.Fprintf(E.w, format, a...)
}

func (E *errWriter) heading(title string) {
	line := strings.Repeat("=", lineWidth)
	E.printf("%s\n%s\n%s\n", line, title, line)
}

// collatedPairs - Returns all entries of dict sorted by the collation rules of tag.
// Words the collator considers equal keep their byte order.
func collatedPairs(dict dictmap.Dictionary[string, uint64], tag language.Tag) []model.Pair[string, uint64] {
	pairs := storage.CollectPairs(dict.Len(), dict.Walk)
	collator := collate.New(tag)
	slices.SortFunc(pairs, func(a, b model.Pair[string, uint64]) int {
		if c := collator.CompareString(a.Key, b.Key); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})

	return pairs
}

// metricTitle - Returns the metric name as it is shown in the report, e.g. "Rotations"
func metricTitle(name string) string {
	return cases.Title(language.English).String(name)
}
