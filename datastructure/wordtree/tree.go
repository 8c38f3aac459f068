package wordtree

import (
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/stringify"
)

var (
	// ErrNotFound is returned when a word that is not part of the Tree is removed.
	ErrNotFound = ierrors.New("word not found")
)

// Tree is an unbalanced binary search tree that maps case-insensitive words to their definitions. Nodes are kept in an
// arena and reference their parent and children by handle.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	root  handle
	count int
	nodes []node
	free  []handle
}

// New creates a new empty Tree.
func New() *Tree {
	return &Tree{
		root: nilHandle,
	}
}

// Insert adds the word with the given definition and returns true if the Tree was modified. The word is stored in
// lower case. An existing word is only replaced if its current definition is the UndefinedWord placeholder.
func (t *Tree) Insert(word string, definition string) (inserted bool) {
	if word == "" {
		return false
	}

	word = strings.ToLower(word)
	if existing := t.find(word); existing != nilHandle {
		if !t.node(existing).entry.IsPlaceholder() {
			return false
		}

		t.removeNode(existing)
	}

	entry := NewEntry(word, definition)
	if t.root == nilHandle {
		t.root = t.allocate(entry, nilHandle)
		t.count++

		return true
	}

	for currentNode := t.root; ; {
		switch entry.Compare(t.node(currentNode).entry) {
		case 0:
			return false
		case -1:
			if left := t.node(currentNode).left; left != nilHandle {
				currentNode = left
				continue
			}

			// allocate may grow the arena, so the parent is only dereferenced afterwards
			child := t.allocate(entry, currentNode)
			t.node(currentNode).left = child
		default:
			if right := t.node(currentNode).right; right != nilHandle {
				currentNode = right
				continue
			}

			child := t.allocate(entry, currentNode)
			t.node(currentNode).right = child
		}

		t.count++

		return true
	}
}

// Remove deletes the word (matched case-insensitively) from the Tree. It returns ErrNotFound if the word is unknown.
func (t *Tree) Remove(word string) error {
	h := t.find(word)
	if h == nilHandle {
		return ierrors.Wrapf(ErrNotFound, "failed to remove %q", word)
	}

	t.removeNode(h)

	return nil
}

// Lookup returns the Entry that belongs to the given word (matched case-insensitively).
func (t *Tree) Lookup(word string) (entry Entry, exists bool) {
	if h := t.find(word); h != nilHandle {
		return t.node(h).entry, true
	}

	return entry, false
}

// Exists returns true if the given word is part of the Tree.
func (t *Tree) Exists(word string) bool {
	return t.find(word) != nilHandle
}

// Count returns the amount of words in the Tree.
func (t *Tree) Count() int {
	return t.count
}

// IsEmpty returns true if the Tree holds no words.
func (t *Tree) IsEmpty() bool {
	return t.count == 0
}

// Clear removes all words from the Tree.
func (t *Tree) Clear() {
	t.root = nilHandle
	t.count = 0
	t.nodes = nil
	t.free = nil
}

// String returns a human readable version of the Tree.
func (t *Tree) String() string {
	if t.root == nilHandle {
		return stringify.Struct("Tree",
			stringify.NewStructField("count", t.count),
		)
	}

	return stringify.Struct("Tree",
		stringify.NewStructField("count", t.count),
		stringify.NewStructField("root", t.node(t.root).entry),
	)
}

// find returns the node that matches the word case-insensitively (or nilHandle if it doesn't exist).
func (t *Tree) find(word string) handle {
	query := strings.ToLower(word)

	for currentNode := t.root; currentNode != nilHandle; {
		n := t.node(currentNode)
		if n.entry.MatchesWord(query) {
			return currentNode
		}

		if query < strings.ToLower(n.entry.word) {
			currentNode = n.left
		} else {
			currentNode = n.right
		}
	}

	return nilHandle
}

// removeNode unlinks the given node from the Tree. A node with two children takes over the Entry of its in-order
// successor and the successor is unlinked instead.
func (t *Tree) removeNode(h handle) {
	if n := t.node(h); n.left != nilHandle && n.right != nilHandle {
		successor := t.successor(h)
		n.entry = t.node(successor).entry
		h = successor
	}

	n := t.node(h)

	replacement := n.left
	if replacement == nilHandle {
		replacement = n.right
	}

	if replacement != nilHandle {
		t.node(replacement).parent = n.parent
	}
	t.replaceChild(n.parent, h, replacement)

	t.release(h)
	t.count--
}
