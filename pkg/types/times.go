package types

import "time"

// Times is the metadata timestamp block carried by every Folder and
// Entry, mirroring the container's time-field schema. All timestamps
// are UTC with second precision.
type Times struct {
	Created         time.Time
	Modified        time.Time
	Accessed        time.Time
	LocationChanged time.Time
	Expires         bool
	Expiry          time.Time
	UsageCount      int
}
