package env

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVarsView_MasksSearchPath(t *testing.T) {
	t.Parallel()

	e := FromGoEnv([]string{"A=1", PathKey + "=" + join("/a", "/b"), "B=2"})
	v := e.Vars()

	if _, ok := v.Lookup(PathKey); ok {
		t.Error("Lookup(PathKey) found the search path")
	}
	if got := v.Get(PathKey); got != "" {
		t.Errorf("Get(PathKey) = %q, want empty", got)
	}
	if diff := cmp.Diff([]string{"A", "B"}, v.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if got := v.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if diff := cmp.Diff(map[string]string{"A": "1", "B": "2"}, v.Map()); diff != "" {
		t.Errorf("Map() mismatch (-want +got):\n%s", diff)
	}

	v.Set(PathKey, "x")
	if got, want := e.Get(PathKey), join("/a", "/b"); got != want {
		t.Errorf("search path after masked Set = %q, want %q", got, want)
	}

	v.Unset(PathKey)
	if _, ok := e.Lookup(PathKey); !ok {
		t.Error("masked Unset removed the search path")
	}
}

func TestVarsView_MaskedSetOnEmptyStore(t *testing.T) {
	t.Parallel()

	e := New()
	e.Vars().Set(PathKey, "x")
	if e.Len() != 0 {
		t.Errorf("masked Set added a key: %v", e.Keys())
	}
}

func TestVarsView_SetUnset(t *testing.T) {
	t.Parallel()

	e := New()
	v := e.Vars()

	v.Set("FOO", "bar")
	if got := e.Get("FOO"); got != "bar" {
		t.Errorf("store FOO = %q, want %q", got, "bar")
	}

	v.Unset("FOO")
	if _, ok := e.Lookup("FOO"); ok {
		t.Error("FOO still set after Unset")
	}
}

func TestVarsView_Clear(t *testing.T) {
	t.Parallel()

	e := FromGoEnv([]string{"A=1", PathKey + "=/bin", "B=2"})
	e.Vars().Clear()

	if diff := cmp.Diff([]string{PathKey}, e.Keys()); diff != "" {
		t.Errorf("Keys() after Clear mismatch (-want +got):\n%s", diff)
	}
	if got := e.Vars().Len(); got != 0 {
		t.Errorf("Len() after Clear = %d, want 0", got)
	}
}

func TestVarsView_Merge(t *testing.T) {
	t.Parallel()

	a := FromGoEnv([]string{"KEEP=a", "SHARED=a", PathKey + "=/a"})
	b := FromGoEnv([]string{"SHARED=b", "NEW=b", PathKey + "=/b"})

	a.Vars().Merge(b.Vars())

	want := map[string]string{"KEEP": "a", "SHARED": "b", "NEW": "b"}
	if diff := cmp.Diff(want, a.Vars().Map()); diff != "" {
		t.Errorf("Map() mismatch (-want +got):\n%s", diff)
	}
	if got := a.Get(PathKey); got != "/a" {
		t.Errorf("vars merge touched search path: %q", got)
	}
}

func TestVarsView_Equal(t *testing.T) {
	t.Parallel()

	e := FromGoEnv([]string{"B=2", "A=1", PathKey + "=/bin"})

	tests := []struct {
		name  string
		other map[string]string
		want  bool
	}{
		{"same pairs", map[string]string{"A": "1", "B": "2"}, true},
		{"search path in other ignored", map[string]string{"A": "1", "B": "2", PathKey: "/x"}, true},
		{"missing pair", map[string]string{"A": "1"}, false},
		{"different value", map[string]string{"A": "1", "B": "3"}, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := e.Vars().Equal(tt.other); got != tt.want {
				t.Errorf("Equal(%v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}
