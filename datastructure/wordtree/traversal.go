package wordtree

import (
	"github.com/iotaledger/hive.go/ds/stack"
	"github.com/iotaledger/hive.go/lo"
)

// ForEach iterates through the entries of the Tree in ascending word order and calls the consumer for each of them.
// The iteration aborts as soon as the consumer returns false. The Tree must not be modified during the iteration.
func (t *Tree) ForEach(consumer func(entry Entry) bool) {
	pending := stack.New[handle]()

	for currentNode := t.root; currentNode != nilHandle || !pending.IsEmpty(); {
		// descend to the leftmost node that was not visited yet
		for ; currentNode != nilHandle; currentNode = t.node(currentNode).left {
			pending.Push(currentNode)
		}

		currentNode, _ = pending.Pop()
		if !consumer(t.node(currentNode).entry) {
			return
		}

		currentNode = t.node(currentNode).right
	}
}

// SortedEntries returns a snapshot of all entries in ascending word order.
func (t *Tree) SortedEntries() []Entry {
	entries := make([]Entry, 0, t.count)
	t.ForEach(func(entry Entry) bool {
		entries = append(entries, entry)

		return true
	})

	return entries
}

// Words returns the words of the Tree in ascending order.
func (t *Tree) Words() []string {
	return lo.Map(t.SortedEntries(), Entry.Word)
}
