package wordtree

import (
	"strings"

	"github.com/iotaledger/hive.go/stringify"
)

// UndefinedWord is the definition that marks an Entry as a placeholder without a real definition.
const UndefinedWord = "Undefined word"

// Entry is an immutable word together with its definition.
type Entry struct {
	word       string
	definition string
}

// NewEntry creates a new Entry. An empty definition is replaced by UndefinedWord.
func NewEntry(word string, definition string) Entry {
	if definition == "" {
		definition = UndefinedWord
	}

	return Entry{
		word:       word,
		definition: definition,
	}
}

// Word returns the key of the Entry.
func (e Entry) Word() string {
	return e.word
}

// Definition returns the definition that is associated to the word.
func (e Entry) Definition() string {
	return e.definition
}

// IsPlaceholder returns true if the Entry carries no real definition yet.
func (e Entry) IsPlaceholder() bool {
	return IsUndefined(e.definition)
}

// Compare orders two entries by the raw (case-sensitive) byte order of their words. It returns -1 if e sorts before
// other, 1 if it sorts after and 0 if both words are identical.
func (e Entry) Compare(other Entry) int {
	return compareWords(e.word, other.word)
}

// MatchesWord returns true if the Entry belongs to the given word, ignoring the case of both.
func (e Entry) MatchesWord(word string) bool {
	return strings.EqualFold(e.word, word)
}

// String returns a human readable version of the Entry.
func (e Entry) String() string {
	return stringify.Struct("Entry",
		stringify.NewStructField("word", e.word),
		stringify.NewStructField("definition", e.definition),
	)
}

// IsUndefined returns true if the given definition is the UndefinedWord sentinel.
func IsUndefined(definition string) bool {
	return strings.EqualFold(strings.TrimSpace(definition), UndefinedWord)
}

func compareWords(a string, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
