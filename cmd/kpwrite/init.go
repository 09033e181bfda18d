// Init command: create a fresh, empty KDBX database.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kpwrite/internal/kdbx"
)

var (
	initDatabase string
	initPassword string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new empty KDBX database",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initDatabase, "database", "d", "", "database to create (KDBX file, required)")
	initCmd.Flags().StringVarP(&initPassword, "password", "p", "", "password for the new database (required)")
	_ = initCmd.MarkFlagRequired("database")
	_ = initCmd.MarkFlagRequired("password")
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(initDatabase); err == nil {
		return fmt.Errorf("%s already exists", initDatabase)
	}
	if err := kdbx.Create(initDatabase, initPassword); err != nil {
		return err
	}
	fmt.Printf("Created database %s\n", initDatabase)
	return nil
}
