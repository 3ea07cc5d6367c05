package cmd

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/unrss/envprep/internal/env"
)

var recordPattern = regexp.MustCompile(diffKey + `[= ]["']([A-Za-z0-9_=-]+)["']`)

// recordedDiff returns the diff record a shell export wrote.
func recordedDiff(t *testing.T, out string) string {
	t.Helper()

	m := recordPattern.FindStringSubmatch(out)
	if m == nil {
		t.Fatalf("no %s record in export output:\n%s", diffKey, out)
	}
	return m[1]
}

func TestExport_Bash(t *testing.T) {
	setupHome(t)
	t.Setenv("EXPORT_TEST_CHG", "old")

	got := mustRun(t, "--set", "EXPORT_TEST_NEW=hello $USER", "--set", "EXPORT_TEST_CHG=new", "export", "bash")
	want := "export EXPORT_TEST_CHG=\"new\";\nexport EXPORT_TEST_NEW=\"hello \\$USER\";\n"
	if !strings.HasSuffix(got, want) {
		t.Errorf("export bash = %q, want suffix %q", got, want)
	}

	diff, err := env.UnmarshalCompactDiff(recordedDiff(t, got))
	if err != nil {
		t.Fatalf("UnmarshalCompactDiff: %v", err)
	}
	if got, want := diff.Prev["EXPORT_TEST_CHG"], "old"; got == nil || *got != want {
		t.Errorf("recorded prev EXPORT_TEST_CHG = %v, want %q", got, want)
	}
	if got := diff.Prev["EXPORT_TEST_NEW"]; got != nil {
		t.Errorf("recorded prev EXPORT_TEST_NEW = %q, want unset", *got)
	}
}

func TestExport_NoChanges(t *testing.T) {
	setupHome(t)

	if got := mustRun(t, "export", "zsh"); got != "" {
		t.Errorf("export zsh = %q, want nothing", got)
	}
}

func TestExport_DefaultShellFromConfig(t *testing.T) {
	setupHome(t)
	t.Setenv("ENVPREP_SHELL", "fish")

	got := mustRun(t, "--set", "EXPORT_TEST_NEW=it's", "export")
	if !strings.HasPrefix(got, "set -gx "+diffKey+" '") {
		t.Errorf("export = %q, want fish %s record first", got, diffKey)
	}
	if want := "set -gx EXPORT_TEST_NEW 'it\\'s';\n"; !strings.HasSuffix(got, want) {
		t.Errorf("export = %q, want suffix %q", got, want)
	}
}

func TestExport_Full(t *testing.T) {
	setupHome(t)

	got := mustRun(t, "--no-inherit", "--set", "B=2", "--set", "A=1", "--prepend", "/opt/bin", "export", "--full", "bash")
	want := "export B=\"2\";\nexport A=\"1\";\nexport " + env.PathKey + "=\"/opt/bin\";\n"
	if got != want {
		t.Errorf("export --full bash = %q, want %q", got, want)
	}
}

func TestExport_Undo(t *testing.T) {
	setupHome(t)
	t.Setenv("EXPORT_TEST_CHG", "old")

	out := mustRun(t, "--set", "EXPORT_TEST_NEW=hi", "--set", "EXPORT_TEST_CHG=new", "export", "bash")

	// Apply the export to this process, as eval would in a shell.
	t.Setenv("EXPORT_TEST_CHG", "new")
	t.Setenv("EXPORT_TEST_NEW", "hi")
	t.Setenv(diffKey, recordedDiff(t, out))

	got := mustRun(t, "export", "--undo", "bash")
	want := "unset " + diffKey + ";\nexport EXPORT_TEST_CHG=\"old\";\nunset EXPORT_TEST_NEW;\n"
	if got != want {
		t.Errorf("export --undo bash = %q, want %q", got, want)
	}
}

func TestExport_UndoErrors(t *testing.T) {
	setupHome(t)

	tests := []struct {
		name    string
		record  string
		args    []string
		wantErr string
	}{
		{name: "nothing recorded", args: []string{"export", "--undo", "bash"}, wantErr: "nothing to undo"},
		{name: "damaged record", record: "!!!", args: []string{"export", "--undo", "zsh"}, wantErr: "decode " + diffKey},
		{name: "document format", args: []string{"export", "--undo", "json"}, wantErr: "needs a shell format"},
		{name: "with full", args: []string{"export", "--undo", "--full", "bash"}, wantErr: "full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(diffKey, tt.record)

			_, _, err := run(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("envprep %v error = %v, want %q", tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestExport_LogsPlainSummary(t *testing.T) {
	setupHome(t)

	_, stderr, err := run(t, "--log-level", "info", "--set", "EXPORT_TEST_NEW=x", "export", "bash")
	if err != nil {
		t.Fatalf("export bash: %v\nstderr: %s", err, stderr)
	}
	if !strings.Contains(stderr, "changes=+EXPORT_TEST_NEW") {
		t.Errorf("stderr = %q, want change summary", stderr)
	}
	if strings.Contains(stderr, "\033[") {
		t.Errorf("stderr = %q, want no colour codes", stderr)
	}
}

func TestExport_Unsupported(t *testing.T) {
	setupHome(t)

	_, _, err := run(t, "--no-inherit", "export", "powershell")
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("export powershell error = %v, want unsupported format", err)
	}
}

func TestExport_Documents(t *testing.T) {
	setupHome(t)

	args := []string{"--no-inherit", "--set", "EDITOR=vim", "--set", "N=3", "--prepend", "/usr/bin", "--prepend", "/opt/bin"}
	want := env.New()
	want.Vars().Set("EDITOR", "vim")
	want.Vars().Set("N", "3")
	want.Paths().Set([]string{"/usr/bin", "/opt/bin"})

	tests := []struct {
		format string
		decode func(*testing.T, string) (*env.Env, env.DecodeStatus)
	}{
		{"json", func(_ *testing.T, s string) (*env.Env, env.DecodeStatus) { return env.DecodeJSON([]byte(s)) }},
		{"yaml", func(_ *testing.T, s string) (*env.Env, env.DecodeStatus) { return env.DecodeYAML([]byte(s)) }},
		{"toml", func(_ *testing.T, s string) (*env.Env, env.DecodeStatus) { return env.DecodeTOML([]byte(s)) }},
		{"compact", func(t *testing.T, s string) (*env.Env, env.DecodeStatus) {
			e, status, err := env.UnmarshalCompact(strings.TrimSpace(s))
			if err != nil {
				t.Fatalf("UnmarshalCompact: %v", err)
			}
			return e, status
		}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out := mustRun(t, append(args, "export", tt.format)...)

			got, status := tt.decode(t, out)
			if status != env.DecodeComplete {
				t.Errorf("status = %v, want complete\n%s", status, out)
			}
			if !got.Equal(want) {
				t.Errorf("decoded mismatch:\n%s", cmp.Diff(want.ToPortable(), got.ToPortable()))
			}
		})
	}
}
