package types

import (
	"encoding/base64"
	"fmt"
)

// IdentifierSize is the length in bytes of a node identifier.
const IdentifierSize = 16

// Identifier uniquely distinguishes a Folder or Entry within a Tree.
// The value is 16 raw bytes; the container stores it as standard
// base64 text. Uniqueness is always decided on the raw bytes, never
// on the encoded form.
type Identifier [IdentifierSize]byte

// String returns the base64 text form used by the container schema.
func (id Identifier) String() string {
	return base64.StdEncoding.EncodeToString(id[:])
}

// IsZero reports whether the identifier is the all-zero value.
func (id Identifier) IsZero() bool {
	return id == Identifier{}
}

// ParseIdentifier decodes the base64 text form back to raw bytes.
// It is the exact inverse of String: for any identifier id,
// ParseIdentifier(id.String()) returns id.
func ParseIdentifier(s string) (Identifier, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Identifier{}, fmt.Errorf("%w: %v", ErrInvalidIdentifier, err)
	}
	if len(raw) != IdentifierSize {
		return Identifier{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidIdentifier, len(raw), IdentifierSize)
	}
	var id Identifier
	copy(id[:], raw)
	return id, nil
}
