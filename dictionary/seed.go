package dictionary

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/wordsmith/lexicon/datastructure/wordtree"
)

const seedSeparator = ":"

var (
	// ErrMalformedSeedLine is returned for seed lines that contain a separator but no word or no definition.
	ErrMalformedSeedLine = ierrors.New("malformed seed line")
	// ErrEmptySeedLine is returned for blank seed lines.
	ErrEmptySeedLine = ierrors.New("empty seed line")
)

// ParseSeedLine splits a seed line of the form "word:definition" into its parts. A line without separator is a bare
// word that gets the wordtree.UndefinedWord definition. Only the first two fields of a line with several separators are
// used.
func ParseSeedLine(line string) (word string, definition string, err error) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return "", "", ErrEmptySeedLine
	}

	if !strings.Contains(line, seedSeparator) {
		return line, wordtree.UndefinedWord, nil
	}

	fields := dropTrailingEmpty(strings.Split(line, seedSeparator))
	if len(fields) < 2 || fields[0] == "" {
		return "", "", ierrors.Wrapf(ErrMalformedSeedLine, "%q", line)
	}

	return fields[0], fields[1], nil
}

// LoadReport summarizes a bulk load.
type LoadReport struct {
	// Lines is the amount of lines that were read.
	Lines int
	// Added is the amount of words that were inserted.
	Added int
	// Rejected is the amount of words that already existed with a real definition.
	Rejected int
	// Skipped is the amount of blank lines.
	Skipped int
	// Malformed holds the (1 based) numbers of the lines that could not be parsed.
	Malformed []int
}

// String returns a human readable version of the LoadReport.
func (r LoadReport) String() string {
	return stringify.Struct("LoadReport",
		stringify.NewStructField("lines", r.Lines),
		stringify.NewStructField("added", r.Added),
		stringify.NewStructField("rejected", r.Rejected),
		stringify.NewStructField("skipped", r.Skipped),
		stringify.NewStructField("malformed", r.Malformed),
	)
}

// Load adds every seed line of the reader to the Dictionary. Lines that can not be parsed are recorded in the report
// and do not abort the load; only read errors do. Lines are not limited in length.
func (d *Dictionary) Load(reader io.Reader) (report LoadReport, err error) {
	source := bufio.NewReader(reader)
	for {
		line, readErr := source.ReadString('\n')
		if line != "" {
			report.Lines++
			d.addSeedLine(line, &report)
		}

		if ierrors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return report, ierrors.Wrapf(readErr, "failed to read seed line %d", report.Lines+1)
		}
	}

	d.log.Infow("seed loaded", "lines", report.Lines, "added", report.Added, "rejected", report.Rejected, "malformed", len(report.Malformed))

	return report, nil
}

// addSeedLine parses a single seed line and records the outcome in the report.
func (d *Dictionary) addSeedLine(line string, report *LoadReport) {
	word, definition, err := ParseSeedLine(line)
	switch {
	case ierrors.Is(err, ErrEmptySeedLine):
		report.Skipped++
	case err != nil:
		d.log.Warnw("skipping seed line", "line", report.Lines, "err", err)
		report.Malformed = append(report.Malformed, report.Lines)
	case d.Add(word, definition):
		report.Added++
	default:
		report.Rejected++
	}
}

// LoadFile adds every seed line of the file at the given path to the Dictionary.
func (d *Dictionary) LoadFile(path string) (LoadReport, error) {
	file, err := os.Open(path)
	if err != nil {
		return LoadReport{}, ierrors.Wrapf(err, "unable to open seed file %s", path)
	}
	defer file.Close()

	return d.Load(file)
}

// dropTrailingEmpty removes the empty fields at the end of a split line.
func dropTrailingEmpty(fields []string) []string {
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}

	return fields
}
