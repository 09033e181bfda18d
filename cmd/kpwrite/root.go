// Root command for the kpwrite CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kpwrite/internal/logging"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfig  string
	flagVerbose bool
	flagDebug   bool
)

var rootCmd = &cobra.Command{
	Use:     "kpwrite",
	Short:   "kpwrite writes credential entries into a KeePass KDBX database",
	Version: version,
	// Errors from subcommands are reported by main; repeating the
	// usage text would bury them.
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: .kpwrite.yaml, then ~/.kpwrite.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "show informational messages")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "show debug messages")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(initCmd)
}

// newLogger builds the reporting collaborator passed into vault
// operations from the global verbosity flags.
func newLogger() logging.Logger {
	return logging.Logger{Verbose: flagVerbose, Debug: flagDebug}
}
