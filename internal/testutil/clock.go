package testutil

import "time"

// FixtureTime is the load timestamp used by corpus fixtures.
var FixtureTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
