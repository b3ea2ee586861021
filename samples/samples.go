// Package samples holds per-process call-stack sample counts in the
// collapsed representation: a stack key is a semicolon-joined string
// "comm;frame1;frame2;..." where comm is the thread or process command
// name, mapped to the number of times that exact stack was observed.
package samples

import (
	"fmt"
	"strings"
)

// StackToSampleCount counts occurrences of unique stack keys.
// Counts are never negative.
type StackToSampleCount map[string]int

// Add increments the count for key by n, creating the entry if needed.
// A negative n is an invariant violation and panics.
func (s StackToSampleCount) Add(key string, n int) {
	if n < 0 {
		panic(fmt.Sprintf("samples: negative increment %d for stack %q", n, key))
	}
	s[key] += n
}

// Merge accumulates all counts from other into s.
func (s StackToSampleCount) Merge(other StackToSampleCount) {
	for key, count := range other {
		s.Add(key, count)
	}
}

func (s StackToSampleCount) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

// Total returns the sum of all sample counts.
func (s StackToSampleCount) Total() int {
	total := 0
	for _, count := range s {
		total += count
	}
	return total
}

// Comm returns the command name segment of a stack key, the part before
// the first semicolon.
func Comm(key string) string {
	comm, _, _ := strings.Cut(key, ";")
	return comm
}
