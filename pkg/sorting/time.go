package sorting

import (
	"cmp"
	"time"

	"github.com/arthur-debert/xf/pkg/entry"
)

type byModified struct {
	key  func(time.Time) int64
	then Strategy
}

func (s byModified) Compare(a, b entry.Entry) int {
	ma, mb := a.Metadata(), b.Metadata()
	switch {
	case ma.HasModified() && !mb.HasModified():
		return -1
	case !ma.HasModified() && mb.HasModified():
		return 1
	case ma.HasModified():
		if c := cmp.Compare(s.key(ma.Modified), s.key(mb.Modified)); c != 0 {
			return c
		}
	}
	return s.then.Compare(a, b)
}

// ByDate compares the local calendar day of the modification time.
// Entries without a modification time sort after those with one.
func ByDate(inner Strategy) Strategy {
	return byModified{key: localDay, then: then(inner)}
}

// ByTime compares the local time of day, ignoring the date.
func ByTime(inner Strategy) Strategy {
	return byModified{key: localClock, then: then(inner)}
}

// ByDateTime compares the full modification instant.
func ByDateTime(inner Strategy) Strategy {
	return byModified{key: func(t time.Time) int64 { return t.UnixNano() }, then: then(inner)}
}

func localDay(t time.Time) int64 {
	y, m, d := t.Local().Date()
	return int64(y)*10000 + int64(m)*100 + int64(d)
}

func localClock(t time.Time) int64 {
	l := t.Local()
	return int64(l.Hour())*int64(time.Hour) +
		int64(l.Minute())*int64(time.Minute) +
		int64(l.Second())*int64(time.Second) +
		int64(l.Nanosecond())
}
