// Add command: write a new credential entry into a KDBX database,
// creating the destination group path as needed.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kpwrite/internal/kdbx"
	"github.com/mesh-intelligence/kpwrite/internal/vault"
)

var (
	addDatabase      string
	addPassword      string
	addKeyfile       string
	addDestination   string
	addEntryTitle    string
	addEntryUsername string
	addEntryPassword string
	addEntryURL      string
	addEntryNotes    string
	addExpires       bool
	addExpiry        string
	addNoProtect     bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new entry to the database",
	Long: `Add writes a new credential entry into the destination group of a
KDBX database. Missing groups along the destination path are created.
The database file is replaced atomically; a failed run never leaves a
half-written file in place of the original.

Example:
  kpwrite add -d vault.kdbx -p master -D "Personal/Email" \
      -e Gmail -U alice -P secret`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addDatabase, "database", "d", "", "database (KDBX file)")
	addCmd.Flags().StringVarP(&addPassword, "password", "p", "", "password of the KDBX database (required)")
	addCmd.Flags().StringVarP(&addKeyfile, "keyfile", "k", "", "keyfile to unlock the KDBX database")
	addCmd.Flags().StringVarP(&addDestination, "destination", "D", "", "group to write the new entry to (slash-delimited; empty for root)")
	addCmd.Flags().StringVarP(&addEntryTitle, "entry", "e", "", "name of the new entry (required)")
	addCmd.Flags().StringVarP(&addEntryUsername, "entry-username", "U", "", "username to put in the new entry (required)")
	addCmd.Flags().StringVarP(&addEntryPassword, "entry-password", "P", "", "password to put in the new entry (required)")
	addCmd.Flags().StringVar(&addEntryURL, "entry-url", "", "URL of the new entry")
	addCmd.Flags().StringVarP(&addEntryNotes, "entry-notes", "N", "", "notes for the new entry")
	addCmd.Flags().BoolVar(&addExpires, "expires", false, "mark the new entry as expiring")
	addCmd.Flags().StringVar(&addExpiry, "expiry", "", "expiry time (RFC 3339, implies --expires)")
	addCmd.Flags().BoolVar(&addNoProtect, "no-protect", false, "store the entry password without in-memory protection")
	_ = addCmd.MarkFlagRequired("password")
	_ = addCmd.MarkFlagRequired("entry")
	_ = addCmd.MarkFlagRequired("entry-username")
	_ = addCmd.MarkFlagRequired("entry-password")
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	database := addDatabase
	if database == "" {
		database = cfg.GetString(cfgKeyDatabase)
	}
	if database == "" {
		return fmt.Errorf("no database given (use --database or set %q in the config file)", cfgKeyDatabase)
	}
	keyfile := addKeyfile
	if keyfile == "" {
		keyfile = cfg.GetString(cfgKeyKeyfile)
	}

	var expiry *time.Time
	if addExpiry != "" {
		t, err := time.Parse(time.RFC3339, addExpiry)
		if err != nil {
			return fmt.Errorf("parsing --expiry: %w", err)
		}
		expiry = &t
	}

	log := newLogger()
	log.Debugf("opening database %s", database)
	container, err := kdbx.Open(database, addPassword, keyfile)
	if err != nil {
		return err
	}

	entry, err := vault.WriteEntry(log, &vault.Generator{}, container.Tree,
		vault.SplitPath(addDestination), vault.EntryParams{
			Title:     addEntryTitle,
			Username:  addEntryUsername,
			Password:  addEntryPassword,
			URL:       addEntryURL,
			Notes:     addEntryNotes,
			Protected: !addNoProtect,
			Expires:   addExpires || expiry != nil,
			Expiry:    expiry,
		})
	if err != nil {
		return err
	}

	data, err := container.Serialize()
	if err != nil {
		return err
	}
	if err := kdbx.WriteFile(database, data); err != nil {
		return err
	}

	dest := addDestination
	if dest == "" {
		dest = container.Tree.Root.Name
	}
	fmt.Printf("Created entry %q in %q (%s)\n", entry.Title, dest, entry.ID)
	return nil
}
