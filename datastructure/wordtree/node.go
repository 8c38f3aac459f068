package wordtree

// handle addresses a node in the arena of a Tree.
type handle int

// nilHandle marks the absence of a node (an empty child slot or the parent of the root).
const nilHandle handle = -1

// node represents a slot in the arena of the Tree.
type node struct {
	entry  Entry
	parent handle
	left   handle
	right  handle
}

// newNode returns a detached node holding the given Entry.
func newNode(entry Entry, parent handle) node {
	return node{
		entry:  entry,
		parent: parent,
		left:   nilHandle,
		right:  nilHandle,
	}
}

// node returns a pointer to the arena slot of the given handle.
func (t *Tree) node(h handle) *node {
	return &t.nodes[h]
}

// allocate stores a new node in the arena and returns its handle. Freed slots are reused first.
func (t *Tree) allocate(entry Entry, parent handle) handle {
	if len(t.free) > 0 {
		h := t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		t.nodes[h] = newNode(entry, parent)

		return h
	}

	t.nodes = append(t.nodes, newNode(entry, parent))

	return handle(len(t.nodes) - 1)
}

// release returns the slot of a node that was unlinked from the Tree to the free list.
func (t *Tree) release(h handle) {
	t.nodes[h] = node{parent: nilHandle, left: nilHandle, right: nilHandle}
	t.free = append(t.free, h)
}

// min returns the leftmost descendant of the given node.
func (t *Tree) min(h handle) handle {
	if h == nilHandle {
		return nilHandle
	}

	for t.node(h).left != nilHandle {
		h = t.node(h).left
	}

	return h
}

// successor returns the node with the next higher word (or nilHandle if none exists).
func (t *Tree) successor(h handle) handle {
	if h == nilHandle {
		return nilHandle
	}

	if right := t.node(h).right; right != nilHandle {
		return t.min(right)
	}

	// walk up as long as we are the right child, the first ancestor reached from the left is the successor
	child, parent := h, t.node(h).parent
	for parent != nilHandle && child == t.node(parent).right {
		child, parent = parent, t.node(parent).parent
	}

	return parent
}

// replaceChild points the slot of parent that references oldChild to newChild. If parent is nilHandle the root is
// replaced instead.
func (t *Tree) replaceChild(parent handle, oldChild handle, newChild handle) {
	switch {
	case parent == nilHandle:
		t.root = newChild
	case t.node(parent).left == oldChild:
		t.node(parent).left = newChild
	default:
		t.node(parent).right = newChild
	}
}
