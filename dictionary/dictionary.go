package dictionary

import (
	"github.com/wordsmith/lexicon/datastructure/wordtree"
	"github.com/wordsmith/lexicon/logger"
	"github.com/wordsmith/lexicon/syncutils"
)

// Status describes how a word is known to a Dictionary.
type Status uint8

const (
	// Unknown marks a word that is not part of the Dictionary.
	Unknown Status = iota
	// Placeholder marks a word that is part of the Dictionary but has no definition yet.
	Placeholder
	// Defined marks a word with a real definition.
	Defined
)

// String returns the name of the Status.
func (s Status) String() string {
	switch s {
	case Placeholder:
		return "Placeholder"
	case Defined:
		return "Defined"
	default:
		return "Unknown"
	}
}

// Description is the result of describing a word.
type Description struct {
	Word       string
	Definition string
	Status     Status
}

// Dictionary is a thread safe collection of words and their definitions. Mutations hold an exclusive lock, all read
// operations share a read lock.
type Dictionary struct {
	tree  *wordtree.Tree
	mutex syncutils.RWMutex
	stats Stats
	log   *logger.Logger
}

// New creates an empty Dictionary.
func New(opts ...Option) *Dictionary {
	d := &Dictionary{
		tree: wordtree.New(),
		log:  logger.NewNopLogger(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Add stores the word with the given definition. It returns false if the word already has a real definition.
func (d *Dictionary) Add(word string, definition string) (added bool) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	added = d.tree.Insert(word, definition)
	d.stats.recordInsert(added)

	if added {
		d.log.Debugw("word added", "word", word)
	} else {
		d.log.Debugw("word rejected", "word", word)
	}

	return added
}

// Delete removes the word from the Dictionary. It returns an error wrapping wordtree.ErrNotFound if the word is
// unknown.
func (d *Dictionary) Delete(word string) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if err := d.tree.Remove(word); err != nil {
		return err
	}
	d.stats.removals.Inc()

	d.log.Debugw("word deleted", "word", word)

	return nil
}

// Lookup returns the Entry of the given word.
func (d *Dictionary) Lookup(word string) (entry wordtree.Entry, exists bool) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	entry, exists = d.tree.Lookup(word)
	d.stats.recordLookup(exists)

	return entry, exists
}

// Meaning returns the definition of the given word.
func (d *Dictionary) Meaning(word string) (definition string, exists bool) {
	entry, exists := d.Lookup(word)
	if !exists {
		return "", false
	}

	return entry.Definition(), true
}

// Describe returns the definition of the word together with its Status.
func (d *Dictionary) Describe(word string) Description {
	entry, exists := d.Lookup(word)

	switch {
	case !exists:
		return Description{Word: word, Status: Unknown}
	case entry.IsPlaceholder():
		return Description{Word: entry.Word(), Definition: entry.Definition(), Status: Placeholder}
	default:
		return Description{Word: entry.Word(), Definition: entry.Definition(), Status: Defined}
	}
}

// Exists returns true if the word is part of the Dictionary.
func (d *Dictionary) Exists(word string) bool {
	_, exists := d.Lookup(word)

	return exists
}

// Count returns the amount of words in the Dictionary.
func (d *Dictionary) Count() int {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	return d.tree.Count()
}

// SortedEntries returns a snapshot of all entries in ascending word order.
func (d *Dictionary) SortedEntries() []wordtree.Entry {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	return d.tree.SortedEntries()
}

// Words returns all words in ascending order.
func (d *Dictionary) Words() []string {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	return d.tree.Words()
}

// Stats returns the current operation counters.
func (d *Dictionary) Stats() StatsSnapshot {
	return d.stats.Snapshot()
}
