package types

// Folder is a named node in the vault hierarchy. Subfolders and
// Entries keep insertion order; every non-root folder has exactly one
// parent, which owns it through the Subfolders slice.
type Folder struct {
	ID         Identifier
	Name       string
	Times      Times
	Subfolders []*Folder
	Entries    []*Entry
}

// AddSubfolder appends f to the folder's subfolder sequence.
func (p *Folder) AddSubfolder(f *Folder) {
	p.Subfolders = append(p.Subfolders, f)
}

// RemoveSubfolder removes f from the folder's subfolder sequence,
// dropping f and everything below it from the tree. It is a no-op if
// f is not a direct child.
func (p *Folder) RemoveSubfolder(f *Folder) {
	for i, sub := range p.Subfolders {
		if sub == f {
			p.Subfolders = append(p.Subfolders[:i], p.Subfolders[i+1:]...)
			return
		}
	}
}

// AddEntry appends e to the folder's entry sequence.
func (p *Folder) AddEntry(e *Entry) {
	p.Entries = append(p.Entries, e)
}
