package vault

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/kpwrite/internal/logging"
	"github.com/mesh-intelligence/kpwrite/pkg/types"
)

// EntryParams carries the fields for a new credential entry. Title,
// Username and Password are required; URL and Notes are optional and
// empty means absent. Protected is the explicit protection mode for
// the password field; callers decide, nothing is hardcoded.
type EntryParams struct {
	Title    string
	Username string
	Password string
	URL      string
	Notes    string

	Protected bool
	Expires   bool
	Expiry    *time.Time
}

func (p EntryParams) validate() error {
	switch {
	case p.Title == "":
		return fmt.Errorf("%w: title", types.ErrMissingField)
	case p.Username == "":
		return fmt.Errorf("%w: username", types.ErrMissingField)
	case p.Password == "":
		return fmt.Errorf("%w: password", types.ErrMissingField)
	}
	return nil
}

// CreateEntry assembles a new entry from params and appends it to
// folder, claiming a fresh identifier in the tree's index. A warning
// is reported when the folder already holds an entry with the same
// title; the container permits duplicates but they are usually a
// mistake.
func CreateEntry(log logging.Logger, gen *Generator, tree *types.Tree, folder *types.Folder, params EntryParams) (*types.Entry, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	for _, existing := range folder.Entries {
		if existing.Title == params.Title {
			log.Warnf("group %q already has an entry titled %q", folder.Name, params.Title)
			break
		}
	}

	id, err := gen.Generate(tree.InUse())
	if err != nil {
		return nil, fmt.Errorf("creating entry %q: %w", params.Title, err)
	}

	entry := &types.Entry{
		ID:       id,
		Title:    params.Title,
		Username: params.Username,
		Password: types.ProtectedField{Value: params.Password, Protected: params.Protected},
		URL:      params.URL,
		Notes:    params.Notes,
		Times:    NewTimes(params.Expires, params.Expiry),
	}
	folder.AddEntry(entry)
	tree.Claim(id)
	log.Infof("created entry %q (%s)", entry.Title, entry.ID)
	return entry, nil
}
