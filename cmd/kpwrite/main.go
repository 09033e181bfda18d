// Package main provides the kpwrite CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/kpwrite/internal/kdbx"
	"github.com/mesh-intelligence/kpwrite/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode sorts errors into the user/system split: mistakes the user
// can fix (credentials, paths, missing fields) exit 1, everything
// else (I/O, corrupt containers) exits 2.
func exitCode(err error) int {
	switch {
	case errors.Is(err, kdbx.ErrBadCredentials),
		errors.Is(err, types.ErrInvalidPath),
		errors.Is(err, types.ErrMissingField):
		return exitUserError
	default:
		return exitSysError
	}
}
