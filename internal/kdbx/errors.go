package kdbx

import "errors"

// Boundary errors surfaced to the driver.
var (
	// ErrBadCredentials indicates the database could not be decrypted
	// with the given password/keyfile.
	ErrBadCredentials = errors.New("kdbx: cannot decrypt database (wrong password or keyfile?)")

	// ErrCorrupt indicates the file is not a well-formed KDBX container.
	ErrCorrupt = errors.New("kdbx: database is corrupt or not a KDBX file")
)
