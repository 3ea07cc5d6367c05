package env

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Portable is the plain form of an Env used for files and interchange.
type Portable struct {
	Paths []string          `json:"paths" yaml:"paths" toml:"paths"`
	Vars  map[string]string `json:"vars" yaml:"vars" toml:"vars"`
}

// DecodeStatus reports how much of a portable document was usable.
type DecodeStatus int

const (
	// DecodeEmpty means the input was absent or not a mapping.
	DecodeEmpty DecodeStatus = iota
	// DecodePartial means some of paths or vars had to be skipped.
	DecodePartial
	// DecodeComplete means paths and vars were taken in full.
	DecodeComplete
)

func (s DecodeStatus) String() string {
	switch s {
	case DecodeEmpty:
		return "empty"
	case DecodePartial:
		return "partial"
	case DecodeComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// ToPortable returns the search path and the remaining variables of e.
func (e *Env) ToPortable() Portable {
	return Portable{
		Paths: e.Paths().List(),
		Vars:  e.Vars().Map(),
	}
}

// FromPortable rebuilds an Env from a Portable or from a generic decoded
// document such as map[string]any. It never fails: unusable input gives
// an empty Env, and wrongly shaped fields are skipped. The status says
// which of the two happened. Paths are not deduplicated.
func FromPortable(data any) (*Env, DecodeStatus) {
	e := New()

	switch v := data.(type) {
	case Portable:
		return fromTyped(v), DecodeComplete
	case *Portable:
		if v == nil {
			return e, DecodeEmpty
		}
		return fromTyped(*v), DecodeComplete
	}

	doc, ok := asMapping(data)
	if !ok {
		return e, DecodeEmpty
	}

	status := DecodeComplete
	if raw, present := doc["vars"]; present {
		if !decodeVars(e, raw) {
			status = DecodePartial
		}
	}
	if raw, present := doc["paths"]; present {
		if !decodePaths(e, raw) {
			status = DecodePartial
		}
	}
	return e, status
}

// DecodeJSON parses a JSON portable document.
func DecodeJSON(data []byte) (*Env, DecodeStatus) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return New(), DecodeEmpty
	}
	return FromPortable(doc)
}

// DecodeYAML parses a YAML portable document.
func DecodeYAML(data []byte) (*Env, DecodeStatus) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return New(), DecodeEmpty
	}
	return FromPortable(doc)
}

// DecodeTOML parses a TOML portable document.
func DecodeTOML(data []byte) (*Env, DecodeStatus) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return New(), DecodeEmpty
	}
	return FromPortable(doc)
}

func fromTyped(p Portable) *Env {
	e := New()
	for _, key := range slices.Sorted(maps.Keys(p.Vars)) {
		e.Vars().Set(key, p.Vars[key])
	}
	e.Paths().Set(p.Paths)
	return e
}

// asMapping accepts the map shapes produced by encoding/json, yaml.v3
// and go-toml.
func asMapping(data any) (map[string]any, bool) {
	switch m := data.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			key, ok := k.(string)
			if !ok {
				continue
			}
			out[key] = v
		}
		return out, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, true
	default:
		return nil, false
	}
}

// decodeVars reports false if anything under vars was dropped.
func decodeVars(e *Env, raw any) bool {
	m, ok := asMapping(raw)
	if !ok {
		return false
	}
	complete := true
	if src, isAny := raw.(map[any]any); isAny && len(src) != len(m) {
		complete = false
	}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		value, ok := scalarString(m[key])
		if !ok || key == "" {
			complete = false
			continue
		}
		e.Vars().Set(key, value)
	}
	return complete
}

// decodePaths reports false if anything under paths was dropped.
func decodePaths(e *Env, raw any) bool {
	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case []string:
		e.Paths().Set(v)
		return true
	default:
		return false
	}
	complete := true
	segments := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := scalarString(item)
		if !ok {
			complete = false
			continue
		}
		segments = append(segments, s)
	}
	e.Paths().Set(segments)
	return complete
}

// scalarString coerces strings, numbers and booleans. Nulls and nested
// values are refused.
func scalarString(v any) (string, bool) {
	switch v.(type) {
	case nil, map[string]any, map[any]any, []any:
		return "", false
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", false
	}
	return s, true
}
