package users

import "time"

// timeNow is a seam for tests.
var timeNow = time.Now

func fromUnix(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
