package env

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
)

// MarshalCompact encodes e to the compact transport format
// (portable JSON → zlib → base64 URL-safe), small enough to carry a
// prepared environment in a single variable.
func MarshalCompact(e *Env) (string, error) {
	return marshalCompact(e.ToPortable())
}

// UnmarshalCompact decodes a compact string back to an Env.
// Transport damage (bad base64 or zlib) is an error; once the JSON is
// recovered, decoding is as lenient as DecodeJSON.
func UnmarshalCompact(s string) (*Env, DecodeStatus, error) {
	if s == "" {
		return New(), DecodeEmpty, nil
	}

	jsonData, err := unmarshalCompact(s)
	if err != nil {
		return nil, DecodeEmpty, err
	}

	e, status := DecodeJSON(jsonData)
	return e, status, nil
}

// MarshalCompactDiff encodes d in the compact transport format.
func MarshalCompactDiff(d *EnvDiff) (string, error) {
	if d == nil {
		d = &EnvDiff{}
	}
	return marshalCompact(d)
}

// UnmarshalCompactDiff decodes a diff written by MarshalCompactDiff.
// An empty string is an empty diff.
func UnmarshalCompactDiff(s string) (*EnvDiff, error) {
	d := &EnvDiff{Prev: map[string]*string{}, Next: map[string]*string{}}
	if s == "" {
		return d, nil
	}

	jsonData, err := unmarshalCompact(s)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(jsonData, d); err != nil {
		return nil, fmt.Errorf("json decode: %w", err)
	}
	return d, nil
}

func marshalCompact(v any) (string, error) {
	jsonData, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("json encode: %w", err)
	}

	var compressed bytes.Buffer
	w := zlib.NewWriter(&compressed)
	if _, err := w.Write(jsonData); err != nil {
		return "", fmt.Errorf("zlib write: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("zlib close: %w", err)
	}

	return base64.URLEncoding.EncodeToString(compressed.Bytes()), nil
}

func unmarshalCompact(s string) ([]byte, error) {
	compressed, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("base64 decode: %w", err)
	}

	r, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("zlib reader: %w", err)
	}
	defer r.Close()

	jsonData, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("zlib read: %w", err)
	}
	return jsonData, nil
}
