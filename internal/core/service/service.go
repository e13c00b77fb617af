package service

import "time"

// nextUpdateTime returns the updated_at value for a successful update,
// clamped to fall strictly after prev so updated_at always advances even
// when two updates land within the clock's resolution.
func nextUpdateTime(prev time.Time) time.Time {
	now := time.Now().UTC()
	if !now.After(prev) {
		return prev.Add(time.Microsecond)
	}
	return now
}
