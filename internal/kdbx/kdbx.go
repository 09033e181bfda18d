package kdbx

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/tobischo/gokeepasslib/v3"

	"github.com/mesh-intelligence/kpwrite/pkg/types"
)

// Container pairs the decoded vault Tree with the underlying KDBX
// database, so Meta, headers and encryption settings survive the
// load-mutate-serialize cycle unchanged.
type Container struct {
	db   *gokeepasslib.Database
	Tree *types.Tree
}

// Open decrypts the KDBX file at path and decodes it into a vault
// Tree. An empty keyfile means password-only credentials. Failures to
// decrypt map to ErrBadCredentials; any other decode failure wraps
// ErrCorrupt.
func Open(path, password, keyfile string) (*Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	creds, err := credentials(password, keyfile)
	if err != nil {
		return nil, err
	}

	db := gokeepasslib.NewDatabase()
	db.Credentials = creds
	if err := gokeepasslib.NewDecoder(f).Decode(db); err != nil {
		return nil, classifyDecodeError(err)
	}
	if err := db.UnlockProtectedEntries(); err != nil {
		return nil, fmt.Errorf("%w: unlocking protected values: %v", ErrCorrupt, err)
	}
	if db.Content == nil || db.Content.Root == nil || len(db.Content.Root.Groups) == 0 {
		return nil, fmt.Errorf("%w: no root group", ErrCorrupt)
	}

	tree := treeFromRoot(&db.Content.Root.Groups[0])
	return &Container{db: db, Tree: tree}, nil
}

// Serialize rebuilds the database root from the Tree and returns the
// encoded container bytes. The in-memory container stays unlocked and
// usable afterwards.
func (c *Container) Serialize() ([]byte, error) {
	c.db.Content.Root.Groups[0] = groupFromFolder(c.Tree.Root)

	if err := c.db.LockProtectedEntries(); err != nil {
		return nil, fmt.Errorf("locking protected values: %w", err)
	}
	var buf bytes.Buffer
	encErr := gokeepasslib.NewEncoder(&buf).Encode(c.db)
	if err := c.db.UnlockProtectedEntries(); err != nil && encErr == nil {
		encErr = err
	}
	if encErr != nil {
		return nil, fmt.Errorf("encoding database: %w", encErr)
	}
	return buf.Bytes(), nil
}

// Create writes a fresh, empty KDBX v4 container to path, protected
// by password. The root group is named after the file.
func Create(path, password string) error {
	db := gokeepasslib.NewDatabase(gokeepasslib.WithDatabaseKDBXVersion4())
	db.Credentials = gokeepasslib.NewPasswordCredentials(password)

	root := gokeepasslib.NewGroup()
	root.Name = "Root"
	db.Content.Root = &gokeepasslib.RootData{Groups: []gokeepasslib.Group{root}}

	if err := db.LockProtectedEntries(); err != nil {
		return fmt.Errorf("locking protected values: %w", err)
	}
	var buf bytes.Buffer
	if err := gokeepasslib.NewEncoder(&buf).Encode(db); err != nil {
		return fmt.Errorf("encoding database: %w", err)
	}
	return WriteFile(path, buf.Bytes())
}

func credentials(password, keyfile string) (*gokeepasslib.DBCredentials, error) {
	if keyfile == "" {
		return gokeepasslib.NewPasswordCredentials(password), nil
	}
	creds, err := gokeepasslib.NewPasswordAndKeyCredentials(password, keyfile)
	if err != nil {
		return nil, fmt.Errorf("reading keyfile %s: %w", keyfile, err)
	}
	return creds, nil
}

// classifyDecodeError sorts a Decode failure into the two boundary
// kinds. gokeepasslib has no typed wrong-credentials error; a bad
// password surfaces as an HMAC or integrity check failure.
func classifyDecodeError(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "hmac") ||
		strings.Contains(msg, "password") ||
		strings.Contains(msg, "credentials") ||
		strings.Contains(msg, "integrity") {
		return fmt.Errorf("%w: %v", ErrBadCredentials, err)
	}
	return fmt.Errorf("%w: %v", ErrCorrupt, err)
}
