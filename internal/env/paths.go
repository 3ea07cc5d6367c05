package env

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// ListSeparator joins search-path segments.
const ListSeparator = string(os.PathListSeparator)

// PathView is an ordered view of the search-path variable of an Env.
// Reads split the current value; writes join and store it back. The
// view holds no state of its own.
type PathView struct {
	env *Env
}

// List returns the segments in order. A missing key yields an empty
// list; a present but empty value is a single empty segment, which
// stands for the current directory.
func (p PathView) List() []string {
	value, ok := p.env.Lookup(PathKey)
	if !ok {
		return []string{}
	}
	return strings.Split(value, ListSeparator)
}

// Set replaces all segments. An empty list unsets the variable.
func (p PathView) Set(segments []string) {
	if len(segments) == 0 {
		p.env.Unset(PathKey)
		return
	}
	p.env.Set(PathKey, strings.Join(segments, ListSeparator))
}

// Len returns the number of segments.
func (p PathView) Len() int {
	return len(p.List())
}

// At returns the segment at index i. It panics if i is out of range.
func (p PathView) At(i int) string {
	return p.List()[i]
}

// SetAt replaces the segment at index i. It panics if i is out of range.
func (p PathView) SetAt(i int, segment string) {
	list := p.List()
	list[i] = segment
	p.Set(list)
}

// Prepend puts segment first. Existing copies of segment are kept.
func (p PathView) Prepend(segment string) {
	p.Set(slices.Insert(p.List(), 0, segment))
}

// Append puts segment last. Existing copies of segment are kept.
func (p PathView) Append(segment string) {
	p.Set(append(p.List(), segment))
}

// Insert places segment at index i, shifting later segments. It panics
// if i is greater than Len.
func (p PathView) Insert(i int, segment string) {
	p.Set(slices.Insert(p.List(), i, segment))
}

// RemoveAt deletes the segment at index i. It panics if i is out of range.
func (p PathView) RemoveAt(i int) {
	p.Set(slices.Delete(p.List(), i, i+1))
}

// Truncate keeps the first n segments. It panics if n is negative or
// greater than Len.
func (p PathView) Truncate(n int) {
	list := p.List()
	if n < 0 || n > len(list) {
		panic(fmt.Sprintf("env: truncate length %d out of range [0:%d]", n, len(list)))
	}
	p.Set(list[:n])
}

// Index returns the position of the first occurrence of segment, or -1.
func (p PathView) Index(segment string) int {
	return slices.Index(p.List(), segment)
}

// Contains reports whether segment occurs anywhere in the search path.
func (p PathView) Contains(segment string) bool {
	return p.Index(segment) >= 0
}

// Merge moves incoming to the front of the search path. Segments already
// present that also occur in incoming are dropped first, so each
// incoming segment appears once and shadows nothing it replaced.
func (p PathView) Merge(incoming []string) {
	if len(incoming) == 0 {
		return
	}
	seen := make(map[string]struct{}, len(incoming))
	for _, s := range incoming {
		seen[s] = struct{}{}
	}
	rest := slices.DeleteFunc(p.List(), func(s string) bool {
		_, ok := seen[s]
		return ok
	})
	p.Set(append(slices.Clone(incoming), rest...))
}

// Equal reports whether the segments match other element by element.
func (p PathView) Equal(other []string) bool {
	return slices.Equal(p.List(), other)
}
