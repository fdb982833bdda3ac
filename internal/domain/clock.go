package domain

import "time"

// Now is the clock used for created/updated stamps. Postgres keeps
// microseconds, so stamps are truncated to survive a round trip unchanged.
var Now = func() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
