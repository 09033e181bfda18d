// Package types defines the in-memory vault model for kpwrite: the
// Tree of Folders and Entries decoded from a KDBX container, the
// 16-byte Identifier type with its storage encoding, and the standard
// error values shared across packages.
package types
