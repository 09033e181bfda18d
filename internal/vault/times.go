package vault

import (
	"time"

	"github.com/mesh-intelligence/kpwrite/pkg/types"
)

// NewTimes builds the timestamp block for a freshly created node.
// Created, Modified, Accessed and LocationChanged are all the current
// time in UTC at second precision. When expires is set and no explicit
// expiry is given, Expiry equals Created.
func NewTimes(expires bool, expiry *time.Time) types.Times {
	now := time.Now().UTC().Truncate(time.Second)
	t := types.Times{
		Created:         now,
		Modified:        now,
		Accessed:        now,
		LocationChanged: now,
		Expires:         expires,
		Expiry:          now,
		UsageCount:      0,
	}
	if expiry != nil {
		t.Expiry = expiry.UTC().Truncate(time.Second)
	}
	return t
}
