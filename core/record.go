package core

import (
	"bytes"
	"runtime"
	"strings"
	"time"

	"github.com/firthlabs/deferlog/serialize"
)

// inlineFragments is the number of argument fragments a Record can carry
// without spilling to the heap.
const inlineFragments = 4

// Fragment is one captured argument: a Store over arena bytes plus the
// explicit name bound by the structured-field form, or "" for a
// positional argument.
type Fragment struct {
	Name  string
	Store serialize.Store
}

// Callsite is the static metadata of a log call: source location and the
// message template. It lives in program data for the callsite's lifetime
// and is copied into the record by value.
type Callsite struct {
	File     string
	Line     int
	Template string
}

// GetCallsite captures the calling source location. skip follows the
// runtime.Caller convention.
func GetCallsite(skip int, template string) Callsite {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Callsite{Template: template}
	}
	return Callsite{File: file, Line: line, Template: template}
}

// Record is one deferred log event. It carries everything the drainer
// needs to reconstruct the line: the timestamp, the level, the callsite
// metadata, the captured fragments, and the absolute arena offset past
// which its bytes end.
type Record struct {
	Time     time.Time
	Level    Level
	Site     Callsite
	arenaEnd uint64
	nfrags   int
	frags    [inlineFragments]Fragment
	extra    []Fragment
}

// AddFragment appends a captured argument fragment.
func (r *Record) AddFragment(f Fragment) {
	if r.nfrags < inlineFragments {
		r.frags[r.nfrags] = f
	} else {
		r.extra = append(r.extra, f)
	}
	r.nfrags++
}

// NumFragments returns the number of captured fragments.
func (r *Record) NumFragments() int { return r.nfrags }

func (r *Record) fragment(i int) *Fragment {
	if i < inlineFragments {
		return &r.frags[i]
	}
	return &r.extra[i-inlineFragments]
}

// SetArenaEnd records the absolute arena offset one past the record's
// last byte. The drainer releases the arena through it after emission.
func (r *Record) SetArenaEnd(end uint64) { r.arenaEnd = end }

// ArenaEnd returns the offset set by SetArenaEnd.
func (r *Record) ArenaEnd() uint64 { return r.arenaEnd }

// Materialize writes the record's message into buf: the template with
// each "{}" placeholder replaced by the next positional fragment's
// decoded text, followed by any remaining positional fragments and then
// the named fragments as " name=value" pairs. It consumes no state
// beyond the captured fragments, so invoking it twice produces the same
// text.
func (r *Record) Materialize(buf *bytes.Buffer) {
	tmpl := r.Site.Template
	next := 0

	// nextPositional advances past named fragments.
	nextPositional := func() *Fragment {
		for next < r.nfrags {
			f := r.fragment(next)
			next++
			if f.Name == "" {
				return f
			}
		}
		return nil
	}

	for {
		i := strings.Index(tmpl, "{}")
		if i < 0 {
			break
		}
		buf.WriteString(tmpl[:i])
		tmpl = tmpl[i+2:]
		if f := nextPositional(); f != nil {
			buf.WriteString(f.Store.String())
		} else {
			// More placeholders than arguments: leave the
			// placeholder visible rather than drop it silently.
			buf.WriteString("{}")
		}
	}
	buf.WriteString(tmpl)

	for i := 0; i < r.nfrags; i++ {
		f := r.fragment(i)
		if f.Name != "" {
			continue
		}
		if i < next {
			continue // already interpolated
		}
		buf.WriteByte(' ')
		buf.WriteString(f.Store.String())
	}
	for i := 0; i < r.nfrags; i++ {
		f := r.fragment(i)
		if f.Name == "" {
			continue
		}
		buf.WriteByte(' ')
		buf.WriteString(f.Name)
		buf.WriteByte('=')
		buf.WriteString(f.Store.String())
	}
}
