package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifierRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		id   Identifier
	}{
		{name: "zero value", id: Identifier{}},
		{name: "ascending bytes", id: Identifier{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}},
		{name: "all high bits", id: Identifier{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := tt.id.String()
			decoded, err := ParseIdentifier(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestParseIdentifierRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "not base64", input: "not!!base64"},
		{name: "too short", input: "AAAA"},
		{name: "too long", input: "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIdentifier(tt.input)
			assert.ErrorIs(t, err, ErrInvalidIdentifier)
		})
	}
}
