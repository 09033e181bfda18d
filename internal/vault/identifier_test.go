package vault

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/kpwrite/pkg/types"
)

// blockReader feeds fixed 16-byte blocks to the generator, repeating
// the last block forever. It makes collision behavior deterministic.
type blockReader struct {
	blocks [][]byte
	idx    int
}

func (r *blockReader) Read(p []byte) (int, error) {
	b := r.blocks[r.idx]
	if r.idx < len(r.blocks)-1 {
		r.idx++
	}
	return copy(p, b), nil
}

// idFromBlock reproduces the identifier the generator derives from a
// 16-byte entropy block.
func idFromBlock(t *testing.T, block []byte) types.Identifier {
	t.Helper()
	u, err := uuid.NewRandomFromReader(bytes.NewReader(block))
	require.NoError(t, err)
	return types.Identifier(u)
}

func TestGenerateNeverRepeats(t *testing.T) {
	gen := &Generator{}
	inUse := make(map[types.Identifier]struct{})

	for i := 0; i < 10000; i++ {
		id, err := gen.Generate(inUse)
		require.NoError(t, err)
		_, seen := inUse[id]
		require.False(t, seen, "identifier %s returned twice", id)
		require.False(t, id.IsZero())
		inUse[id] = struct{}{}
	}
}

func TestGenerateRetriesCollisions(t *testing.T) {
	taken := bytes.Repeat([]byte{0xaa}, 16)
	fresh := bytes.Repeat([]byte{0xbb}, 16)
	gen := &Generator{Rand: &blockReader{blocks: [][]byte{taken, fresh}}}

	inUse := map[types.Identifier]struct{}{
		idFromBlock(t, taken): {},
	}

	id, err := gen.Generate(inUse)
	require.NoError(t, err)
	assert.Equal(t, idFromBlock(t, fresh), id)
}

func TestGenerateExhaustsAfterBoundedAttempts(t *testing.T) {
	taken := bytes.Repeat([]byte{0xcc}, 16)
	gen := &Generator{Rand: &blockReader{blocks: [][]byte{taken}}}

	inUse := map[types.Identifier]struct{}{
		idFromBlock(t, taken): {},
	}

	_, err := gen.Generate(inUse)
	assert.ErrorIs(t, err, types.ErrIdentifierExhausted)
}
