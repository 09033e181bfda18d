package vault

import (
	"fmt"

	"github.com/mesh-intelligence/kpwrite/internal/logging"
	"github.com/mesh-intelligence/kpwrite/pkg/types"
)

// CreateSuffix creates the missing part of a group path under
// ancestor, one folder per segment, and returns the leaf of the new
// chain. The walk is iterative and the whole call is a single logical
// unit: if any segment fails, every folder appended by this call is
// detached and its identifier released before the error propagates,
// so a partial chain never stays attached to the tree.
func CreateSuffix(log logging.Logger, gen *Generator, tree *types.Tree, ancestor *types.Folder, suffix []string) (*types.Folder, error) {
	parent := ancestor
	created := make([]*types.Folder, 0, len(suffix))

	for _, name := range suffix {
		id, err := gen.Generate(tree.InUse())
		if err != nil {
			rollbackSuffix(tree, ancestor, created)
			return nil, fmt.Errorf("creating group %q: %w", name, err)
		}
		folder := &types.Folder{
			ID:    id,
			Name:  name,
			Times: NewTimes(false, nil),
		}
		parent.AddSubfolder(folder)
		tree.Claim(id)
		created = append(created, folder)
		log.Infof("created group %q (%s)", name, id)
		parent = folder
	}
	return parent, nil
}

// rollbackSuffix detaches the chain created so far. Detaching the
// first created folder from the ancestor drops the whole chain; the
// identifier index is then released folder by folder.
func rollbackSuffix(tree *types.Tree, ancestor *types.Folder, created []*types.Folder) {
	if len(created) == 0 {
		return
	}
	ancestor.RemoveSubfolder(created[0])
	for _, f := range created {
		tree.Release(f.ID)
	}
}
