package env

import (
	"testing"
)

func TestMarshalUnmarshalCompact(t *testing.T) {
	t.Parallel()

	t.Run("empty string unmarshal", func(t *testing.T) {
		t.Parallel()

		e, status, err := UnmarshalCompact("")
		if err != nil {
			t.Fatalf("UnmarshalCompact(\"\") error: %v", err)
		}
		if status != DecodeEmpty {
			t.Errorf("status = %v, want empty", status)
		}
		if e.Len() != 0 {
			t.Errorf("UnmarshalCompact(\"\") not empty: %v", e.Keys())
		}
	})

	t.Run("round-trip", func(t *testing.T) {
		t.Parallel()

		original := New()
		original.Vars().Set("FOO", "new")
		original.Vars().Set("EMPTY", "")
		original.Paths().Set([]string{"/home/user/bin", "/usr/bin", "/bin"})

		encoded, err := MarshalCompact(original)
		if err != nil {
			t.Fatalf("MarshalCompact() error: %v", err)
		}
		if encoded == "" {
			t.Fatal("MarshalCompact() returned empty string")
		}

		decoded, status, err := UnmarshalCompact(encoded)
		if err != nil {
			t.Fatalf("UnmarshalCompact() error: %v", err)
		}
		if status != DecodeComplete {
			t.Errorf("status = %v, want complete", status)
		}
		if !decoded.Equal(original) {
			t.Errorf("decoded = %v, want %v", decoded.ToPortable(), original.ToPortable())
		}
	})

	t.Run("empty env", func(t *testing.T) {
		t.Parallel()

		encoded, err := MarshalCompact(New())
		if err != nil {
			t.Fatalf("MarshalCompact() error: %v", err)
		}
		decoded, _, err := UnmarshalCompact(encoded)
		if err != nil {
			t.Fatalf("UnmarshalCompact() error: %v", err)
		}
		if decoded.Len() != 0 {
			t.Errorf("decoded %d keys from empty env", decoded.Len())
		}
	})
}

func TestUnmarshalCompactErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "invalid base64",
			input: "not-valid-base64!!!",
		},
		{
			name:  "valid base64 but not zlib",
			input: "aGVsbG8gd29ybGQ=", // "hello world" in base64
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := UnmarshalCompact(tt.input)
			if err == nil {
				t.Error("UnmarshalCompact() expected error, got nil")
			}
		})
	}
}

func TestMarshalUnmarshalCompactDiff(t *testing.T) {
	t.Parallel()

	prev := FromMap(map[string]string{"CHG": "old", "DEL": "gone", "KEEP": "1"})
	next := FromMap(map[string]string{"CHG": "new", "ADD": "", "KEEP": "1"})
	diff := BuildEnvDiff(prev, next)

	encoded, err := MarshalCompactDiff(diff)
	if err != nil {
		t.Fatalf("MarshalCompactDiff() error: %v", err)
	}

	decoded, err := UnmarshalCompactDiff(encoded)
	if err != nil {
		t.Fatalf("UnmarshalCompactDiff() error: %v", err)
	}
	if !decoded.Equal(diff) {
		t.Errorf("decoded = %+v, want %+v", decoded, diff)
	}

	// Unset and empty survive the trip as different things.
	if decoded.Next["DEL"] != nil {
		t.Errorf("Next[DEL] = %q, want unset", *decoded.Next["DEL"])
	}
	if v := decoded.Next["ADD"]; v == nil || *v != "" {
		t.Errorf("Next[ADD] = %v, want empty string", v)
	}

	if !decoded.Reverse().Patch(next).Equal(prev) {
		t.Error("reversing the decoded diff does not restore the original")
	}
}

func TestUnmarshalCompactDiff_EmptyAndDamaged(t *testing.T) {
	t.Parallel()

	d, err := UnmarshalCompactDiff("")
	if err != nil {
		t.Fatalf("UnmarshalCompactDiff(\"\") error: %v", err)
	}
	if !d.IsEmpty() {
		t.Errorf("UnmarshalCompactDiff(\"\") = %+v, want empty", d)
	}

	if _, err := UnmarshalCompactDiff("not-valid-base64!!!"); err == nil {
		t.Error("UnmarshalCompactDiff() expected error for damaged input")
	}

	encodedEnv, err := MarshalCompact(New())
	if err != nil {
		t.Fatalf("MarshalCompact() error: %v", err)
	}
	// A compact environment is valid JSON but not a diff shape; fields
	// are simply absent.
	if d, err := UnmarshalCompactDiff(encodedEnv); err != nil || !d.IsEmpty() {
		t.Errorf("UnmarshalCompactDiff(encodedEnv) = %+v, %v, want empty diff", d, err)
	}
}
