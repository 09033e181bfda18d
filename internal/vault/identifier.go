package vault

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/kpwrite/pkg/types"
)

// maxGenerateAttempts bounds the collision-retry loop. A collision on
// 16 random bytes is already astronomically unlikely; hitting the
// bound means the entropy source is broken, not that the space filled.
const maxGenerateAttempts = 1000

// Generator produces identifiers for new tree nodes.
type Generator struct {
	// Rand is the entropy source. Nil means crypto/rand.
	Rand io.Reader
}

// Generate returns 16 random bytes not present in inUse. Membership is
// checked on the raw byte values, never on the encoded text form.
// Collisions are retried internally; after maxGenerateAttempts the
// call fails with ErrIdentifierExhausted.
func (g *Generator) Generate(inUse map[types.Identifier]struct{}) (types.Identifier, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		var (
			u   uuid.UUID
			err error
		)
		if g.Rand != nil {
			u, err = uuid.NewRandomFromReader(g.Rand)
		} else {
			u, err = uuid.NewRandom()
		}
		if err != nil {
			return types.Identifier{}, fmt.Errorf("reading random identifier: %w", err)
		}
		id := types.Identifier(u)
		if _, taken := inUse[id]; !taken {
			return id, nil
		}
	}
	return types.Identifier{}, types.ErrIdentifierExhausted
}
