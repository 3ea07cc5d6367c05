package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/unrss/envprep/internal/env"
)

// ReadFile decodes a portable environment document. The format is chosen
// by extension: .yaml and .yml use YAML, .toml uses TOML, anything else JSON.
func ReadFile(path string) (*env.Env, env.DecodeStatus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, env.DecodeEmpty, fmt.Errorf("read env file: %w", err)
	}

	e, status := Decode(filepath.Ext(path), data)
	return e, status, nil
}

// Decode decodes data according to a file extension such as ".toml".
func Decode(ext string, data []byte) (*env.Env, env.DecodeStatus) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return env.DecodeYAML(data)
	case ".toml":
		return env.DecodeTOML(data)
	default:
		return env.DecodeJSON(data)
	}
}
