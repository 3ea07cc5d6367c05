package cmd

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConfig_JSON(t *testing.T) {
	home := setupHome(t)
	writeUserConfig(t, home, "prepend = [\"/opt/bin\"]\nshell = \"zsh\"\n")

	out := mustRun(t, "config", "--json")

	var got ConfigOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("unmarshal config output: %v\n%s", err, out)
	}

	want := ConfigOutput{
		ConfigFile: filepath.Join(home, ".config", "envprep", "config.toml"),
		Inherit:    true,
		Prepend:    []string{"/opt/bin"},
		ProfileDir: filepath.Join(home, ".local", "share", "envprep", "profiles"),
		LogLevel:   "warn",
		Shell:      "zsh",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config --json mismatch (-want +got):\n%s", diff)
	}
}

func TestConfig_ProfileDirFromFile(t *testing.T) {
	home := setupHome(t)
	dir := filepath.Join(home, "profiles")
	writeUserConfig(t, home, "profile_dir = \""+filepath.ToSlash(dir)+"\"\n")

	out := mustRun(t, "config", "--json")

	var got ConfigOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("unmarshal config output: %v\n%s", err, out)
	}
	if filepath.Clean(got.ProfileDir) != dir {
		t.Errorf("ProfileDir = %q, want %q", got.ProfileDir, dir)
	}
}

func TestConfig_Human(t *testing.T) {
	setupHome(t)

	out := mustRun(t, "config")
	for _, want := range []string{"envprep configuration", "Config file: (none)", "Inherit: true", "Prepend: (none)", "Shell: bash"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q:\n%s", want, out)
		}
	}
}
