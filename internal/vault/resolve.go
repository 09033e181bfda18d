package vault

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/kpwrite/internal/logging"
	"github.com/mesh-intelligence/kpwrite/pkg/types"
)

// Resolution is the result of resolving a group path. When the full
// path matched, Folder is the destination and Remaining is empty.
// Otherwise Folder is the deepest existing ancestor and Remaining
// holds the unmatched suffix, in order.
type Resolution struct {
	Folder    *types.Folder
	Remaining []string
}

// Found reports whether the full path resolved to an existing folder.
func (r Resolution) Found() bool {
	return len(r.Remaining) == 0
}

// SplitPath splits a slash-delimited destination string into path
// segments. An empty string means the root folder.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// Resolve walks the path from the tree root, matching each segment
// against the current folder's immediate subfolders by exact,
// case-sensitive name. It stops at the first miss and reports the
// deepest existing ancestor. An empty path resolves to the root.
//
// When several sibling folders share a segment's name, the first in
// insertion order is chosen and a warning is reported through log so
// the user can tell the entry may land in an unexpected place.
func Resolve(log logging.Logger, tree *types.Tree, path []string) (Resolution, error) {
	for _, seg := range path {
		if strings.TrimSpace(seg) == "" {
			return Resolution{}, fmt.Errorf("%w: blank segment in %q", types.ErrInvalidPath, strings.Join(path, "/"))
		}
	}

	current := tree.Root
	for i, seg := range path {
		var matches []*types.Folder
		for _, sub := range current.Subfolders {
			if sub.Name == seg {
				matches = append(matches, sub)
			}
		}
		if len(matches) == 0 {
			return Resolution{Folder: current, Remaining: path[i:]}, nil
		}
		if len(matches) > 1 {
			log.Warnf("group name %q is ambiguous under %q (%d matches); using the first",
				seg, current.Name, len(matches))
		}
		current = matches[0]
	}
	return Resolution{Folder: current}, nil
}
