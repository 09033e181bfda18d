package types

// Tree is the in-memory vault hierarchy: a single root Folder plus an
// index of every identifier in use. The tree is exclusively owned by
// one load-mutate-serialize cycle; nothing here locks.
type Tree struct {
	Root *Folder

	ids map[Identifier]struct{}
}

// NewTree wraps root in a Tree and builds the identifier index.
func NewTree(root *Folder) *Tree {
	t := &Tree{Root: root}
	t.Reindex()
	return t
}

// Reindex rebuilds the identifier index by walking the whole tree.
func (t *Tree) Reindex() {
	t.ids = make(map[Identifier]struct{})
	if t.Root != nil {
		t.index(t.Root)
	}
}

func (t *Tree) index(f *Folder) {
	if !f.ID.IsZero() {
		t.ids[f.ID] = struct{}{}
	}
	for _, e := range f.Entries {
		t.ids[e.ID] = struct{}{}
	}
	for _, sub := range f.Subfolders {
		t.index(sub)
	}
}

// InUse returns the set of identifiers currently claimed by the tree,
// keyed on raw bytes. Callers must treat the map as read-only; use
// Claim and Release to change it.
func (t *Tree) InUse() map[Identifier]struct{} {
	if t.ids == nil {
		t.Reindex()
	}
	return t.ids
}

// Claim records id as in use.
func (t *Tree) Claim(id Identifier) {
	if t.ids == nil {
		t.Reindex()
	}
	t.ids[id] = struct{}{}
}

// Release removes id from the in-use set. Called when a node is
// detached during rollback.
func (t *Tree) Release(id Identifier) {
	if t.ids != nil {
		delete(t.ids, id)
	}
}
