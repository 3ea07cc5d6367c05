package env

import (
	"maps"
	"slices"
)

// EnvDiff represents changes between two environments.
// It captures the minimal information needed to transform one environment
// into another, and to reverse that transformation. A nil value means the
// variable is unset on that side.
type EnvDiff struct {
	// Prev contains values to restore on revert.
	Prev map[string]*string `json:"p"`

	// Next contains values to apply.
	Next map[string]*string `json:"n"`
}

// BuildEnvDiff computes the diff from e1 (before) to e2 (after).
// Both environments are filtered to exclude ignored keys before comparison.
func BuildEnvDiff(e1, e2 *Env) *EnvDiff {
	diff := &EnvDiff{
		Prev: make(map[string]*string),
		Next: make(map[string]*string),
	}
	if e1 == nil {
		e1 = New()
	}
	if e2 == nil {
		e2 = New()
	}
	f1 := e1.Filtered()
	f2 := e2.Filtered()

	// Keys in e1 that changed or were removed
	for _, key := range f1.keys {
		v1 := f1.values[key]
		v2, exists := f2.Lookup(key)
		switch {
		case !exists:
			diff.Prev[key] = ptr(v1)
			diff.Next[key] = nil
		case v1 != v2:
			diff.Prev[key] = ptr(v1)
			diff.Next[key] = ptr(v2)
		}
	}

	// Keys added in e2
	for _, key := range f2.keys {
		if _, exists := f1.Lookup(key); !exists {
			diff.Prev[key] = nil
			diff.Next[key] = ptr(f2.values[key])
		}
	}

	return diff
}

// Patch applies the diff to an environment.
// Returns a new environment; the original is not modified.
func (d *EnvDiff) Patch(e *Env) *Env {
	result := New()
	if e != nil {
		result = e.Copy()
	}
	if d == nil {
		return result
	}

	for _, key := range slices.Sorted(maps.Keys(d.Next)) {
		if value := d.Next[key]; value == nil {
			result.Unset(key)
		} else {
			result.Set(key, *value)
		}
	}

	return result
}

// Reverse returns a new diff that undoes this diff.
func (d *EnvDiff) Reverse() *EnvDiff {
	if d == nil {
		return &EnvDiff{
			Prev: make(map[string]*string),
			Next: make(map[string]*string),
		}
	}

	return &EnvDiff{
		Prev: copyMap(d.Next),
		Next: copyMap(d.Prev),
	}
}

// IsEmpty returns true if no changes are recorded in the diff.
func (d *EnvDiff) IsEmpty() bool {
	if d == nil {
		return true
	}
	return len(d.Next) == 0 && len(d.Prev) == 0
}

// Equal reports whether both diffs record the same changes.
func (d *EnvDiff) Equal(other *EnvDiff) bool {
	if d == nil || other == nil {
		return d.IsEmpty() && other.IsEmpty()
	}
	return maps.EqualFunc(d.Prev, other.Prev, samePtr) &&
		maps.EqualFunc(d.Next, other.Next, samePtr)
}

// Added returns the sorted keys the diff sets that were previously unset.
func (d *EnvDiff) Added() []string {
	return d.keysWhere(func(prev, next *string) bool { return prev == nil && next != nil })
}

// Changed returns the sorted keys whose value the diff replaces.
func (d *EnvDiff) Changed() []string {
	return d.keysWhere(func(prev, next *string) bool { return prev != nil && next != nil })
}

// Removed returns the sorted keys the diff unsets.
func (d *EnvDiff) Removed() []string {
	return d.keysWhere(func(prev, next *string) bool { return prev != nil && next == nil })
}

func (d *EnvDiff) keysWhere(match func(prev, next *string) bool) []string {
	if d == nil {
		return nil
	}
	var keys []string
	for key, next := range d.Next {
		if match(d.Prev[key], next) {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	return keys
}

func copyMap(m map[string]*string) map[string]*string {
	cp := make(map[string]*string, len(m))
	for k, v := range m {
		if v != nil {
			v = ptr(*v)
		}
		cp[k] = v
	}
	return cp
}

func samePtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func ptr(s string) *string {
	return &s
}
