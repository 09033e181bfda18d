// Package kdbx is the container boundary: it decodes a KeePass KDBX
// file into the vault model, re-encodes the mutated model, and
// replaces the file on disk atomically. Key derivation, ciphers and
// the protected-value scheme are owned by gokeepasslib; this package
// only maps the model 1:1 onto the container's group/entry schema.
package kdbx
