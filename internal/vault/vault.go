package vault

import (
	"strings"

	"github.com/mesh-intelligence/kpwrite/internal/logging"
	"github.com/mesh-intelligence/kpwrite/pkg/types"
)

// WriteEntry resolves path against the tree, creates any missing part
// of it, and appends a new entry built from params to the destination
// folder. An empty path targets the root folder. On any error the
// tree is left unchanged: a folder chain created for this entry is
// detached again if the entry itself cannot be built.
func WriteEntry(log logging.Logger, gen *Generator, tree *types.Tree, path []string, params EntryParams) (*types.Entry, error) {
	res, err := Resolve(log, tree, path)
	if err != nil {
		return nil, err
	}

	target := res.Folder
	var chainHead *types.Folder
	if !res.Found() {
		log.Infof("destination group %q not found; creating it", strings.Join(path, "/"))
		target, err = CreateSuffix(log, gen, tree, res.Folder, res.Remaining)
		if err != nil {
			return nil, err
		}
		// The chain is the last child appended to the anchor.
		chainHead = res.Folder.Subfolders[len(res.Folder.Subfolders)-1]
	}

	entry, err := CreateEntry(log, gen, tree, target, params)
	if err != nil {
		if chainHead != nil {
			res.Folder.RemoveSubfolder(chainHead)
			for f := chainHead; ; f = f.Subfolders[0] {
				tree.Release(f.ID)
				if len(f.Subfolders) == 0 {
					break
				}
			}
		}
		return nil, err
	}
	return entry, nil
}
