package env

import "maps"

// VarsView is a view of an Env with the search-path variable hidden.
// Reads never return it and writes to it are ignored.
type VarsView struct {
	env *Env
}

// Lookup returns the value of key and whether it is set.
func (v VarsView) Lookup(key string) (string, bool) {
	if key == PathKey {
		return "", false
	}
	return v.env.Lookup(key)
}

// Get returns the value of key, or "" if it is not set.
func (v VarsView) Get(key string) string {
	value, _ := v.Lookup(key)
	return value
}

// Set assigns value to key. Setting the search-path key does nothing.
func (v VarsView) Set(key, value string) {
	if key == PathKey {
		return
	}
	v.env.Set(key, value)
}

// Unset removes key. Unsetting the search-path key does nothing.
func (v VarsView) Unset(key string) {
	if key == PathKey {
		return
	}
	v.env.Unset(key)
}

// Clear removes every variable except the search path.
func (v VarsView) Clear() {
	for _, key := range v.Keys() {
		v.env.Unset(key)
	}
}

// Keys returns the visible variable names in insertion order.
func (v VarsView) Keys() []string {
	keys := make([]string, 0, v.env.Len())
	for _, key := range v.env.keys {
		if key != PathKey {
			keys = append(keys, key)
		}
	}
	return keys
}

// Len returns the number of visible variables.
func (v VarsView) Len() int {
	n := v.env.Len()
	if _, ok := v.env.Lookup(PathKey); ok {
		n--
	}
	return n
}

// Map returns a copy of the visible variables.
func (v VarsView) Map() map[string]string {
	m := v.env.Map()
	delete(m, PathKey)
	return m
}

// Merge copies every variable of other into v, overwriting on collision.
func (v VarsView) Merge(other VarsView) {
	for _, key := range other.Keys() {
		v.Set(key, other.env.values[key])
	}
}

// Equal reports whether v holds exactly the pairs in other. A search-path
// entry in other is ignored. Order does not matter.
func (v VarsView) Equal(other map[string]string) bool {
	o := maps.Clone(other)
	delete(o, PathKey)
	return maps.Equal(v.Map(), o)
}
