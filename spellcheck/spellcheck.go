// Package spellcheck scans text for words that are missing from a dictionary.
package spellcheck

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

// Checker reports whether a word is known.
type Checker interface {
	Exists(word string) bool
}

// Report is the result of a spell check.
type Report struct {
	// Checked is the amount of words that were looked up.
	Checked int
	// Missing holds the unknown words in the order they appeared in the text, including repetitions.
	Missing []string
}

// Unique returns the missing words without repetitions, keeping the order of their first appearance.
func (r Report) Unique() []string {
	seen := make(map[string]struct{}, len(r.Missing))

	return lo.Filter(r.Missing, func(word string) bool {
		if _, exists := seen[word]; exists {
			return false
		}
		seen[word] = struct{}{}

		return true
	})
}

// Check looks up every word of the text and collects the ones the Checker does not know.
func Check(reader io.Reader, checker Checker) (report Report, err error) {
	err = Tokenize(reader, func(word string) bool {
		report.Checked++
		if !checker.Exists(word) {
			report.Missing = append(report.Missing, word)
		}

		return true
	})

	return report, err
}

// CheckFile spell checks the file at the given path.
func CheckFile(path string, checker Checker) (Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return Report{}, ierrors.Wrapf(err, "unable to open %s", path)
	}
	defer file.Close()

	return Check(file, checker)
}

// Tokenize splits the text into words at every run of characters that are not ASCII letters and calls the consumer
// for each word. Tokenizing stops as soon as the consumer returns false. Words are not limited in length.
func Tokenize(reader io.Reader, consumer func(word string) bool) error {
	source := bufio.NewReader(reader)

	var word strings.Builder
	for {
		b, err := source.ReadByte()
		if err != nil {
			if !ierrors.Is(err, io.EOF) {
				return ierrors.Wrap(err, "failed to tokenize text")
			}

			if word.Len() > 0 {
				consumer(word.String())
			}

			return nil
		}

		if isLetter(b) {
			word.WriteByte(b)
			continue
		}

		if word.Len() > 0 {
			if !consumer(word.String()) {
				return nil
			}
			word.Reset()
		}
	}
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
