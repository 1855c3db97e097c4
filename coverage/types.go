// SPDX-License-Identifier: MIT

package coverage

import (
	"time"

	"github.com/katalvlaran/lvtab/frame"
)

// DaysPerWeek is the number of distinct weekdays a complete group must show.
const DaysPerWeek = 7

// EndOfDay is the time of day the latest timestamp of a complete group must reach.
const EndOfDay = 23*time.Hour + 59*time.Minute + 59*time.Second

// Key identifies one group.
type Key struct {
	ID  frame.Label
	ID2 frame.Label
}

// Compare orders keys by ID, then ID2.
func (k Key) Compare(o Key) int {
	if c := k.ID.Compare(o.ID); c != 0 {
		return c
	}

	return k.ID2.Compare(o.ID2)
}

// Summary aggregates one group's timestamps.
//   - MinTime/MaxTime are the earliest and latest time of day seen.
//   - Days[d] is true when weekday d (0=Monday) occurs.
//   - Rows counts the timestamps folded in.
type Summary struct {
	Key     Key
	MinTime time.Duration
	MaxTime time.Duration
	Days    [DaysPerWeek]bool
	Rows    int
}

// DayCount returns the number of distinct weekdays seen.
func (s Summary) DayCount() int {
	n := 0
	for _, ok := range s.Days {
		if ok {
			n++
		}
	}

	return n
}

// Complete reports whether s spans the whole day on all seven weekdays.
func (s Summary) Complete() bool {
	return s.Rows > 0 && s.MinTime <= 0 && s.MaxTime >= EndOfDay && s.DayCount() == DaysPerWeek
}

// add folds t into s.
func (s *Summary) add(t time.Time) {
	tod := TimeOfDay(t)
	if s.Rows == 0 || tod < s.MinTime {
		s.MinTime = tod
	}
	if s.Rows == 0 || tod > s.MaxTime {
		s.MaxTime = tod
	}
	s.Days[Weekday(t)] = true
	s.Rows++
}

// Coverage is the verdict for one group.
type Coverage struct {
	Key      Key
	Complete bool
}

// Series holds one verdict per group, ordered by Key.
type Series []Coverage

// Get returns the verdict for (id, id2) and whether that group exists.
func (s Series) Get(id, id2 frame.Label) (complete, found bool) {
	k := Key{ID: id, ID2: id2}
	for _, c := range s {
		if c.Key == k {
			return c.Complete, true
		}
	}

	return false, false
}

// Weekday returns the weekday of t in its own location, 0=Monday … 6=Sunday.
func Weekday(t time.Time) int { return (int(t.Weekday()) + 6) % 7 }

// TimeOfDay returns the time elapsed since midnight of t's calendar day,
// read from the wall clock in t's location.
func TimeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}
