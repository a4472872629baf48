package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindNotFound, "not found"},
		{KindInvalid, "invalid"},
		{KindConflict, "conflicting options"},
		{KindPermission, "permission denied"},
		{KindIO, "I/O error"},
		{KindConfig, "configuration error"},
		{KindGeometry, "bad geometry"},
		{Kind(999), "unknown error"}, // Unknown kind
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "test.Op", Context: "some context", Err: errors.New("underlying error")},
			expected: "test.Op: some context: underlying error",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "test.Op", Err: errors.New("underlying error")},
			expected: "test.Op: underlying error",
		},
		{
			name:     "without op",
			err:      &Error{Err: errors.New("underlying error")},
			expected: "underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &Error{Op: "test.Op", Err: underlying}

	if got := err.Unwrap(); got != underlying {
		t.Errorf("Error.Unwrap() = %v, want %v", got, underlying)
	}
}

func TestE(t *testing.T) {
	err := E(Op("test.Op"), KindConflict, "context", errors.New("boom"))

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("E() should return *Error, got %T", err)
	}
	if e.Op != "test.Op" {
		t.Errorf("Op = %q, want %q", e.Op, "test.Op")
	}
	if e.Kind != KindConflict {
		t.Errorf("Kind = %v, want %v", e.Kind, KindConflict)
	}
	if e.Err == nil {
		t.Error("Err should be set")
	}
}

func TestE_ContextOnly(t *testing.T) {
	err := E(Op("test.Op"), "just context")
	if err.Error() != "test.Op: just context" {
		t.Errorf("Error() = %q, want %q", err.Error(), "test.Op: just context")
	}
}

func TestIs(t *testing.T) {
	err := SessionConflict()

	if !Is(err, KindConflict) {
		t.Error("SessionConflict should be KindConflict")
	}
	if Is(err, KindGeometry) {
		t.Error("SessionConflict should not be KindGeometry")
	}
	if Is(errors.New("plain"), KindConflict) {
		t.Error("plain errors should not match any Kind")
	}
}

func TestGetKind(t *testing.T) {
	if got := GetKind(GeometryInvalid("640x")); got != KindGeometry {
		t.Errorf("GetKind = %v, want %v", got, KindGeometry)
	}
	if got := GetKind(errors.New("plain")); got != KindUnknown {
		t.Errorf("GetKind = %v, want %v", got, KindUnknown)
	}
}

func TestDomainHelpers(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind Kind
		contains string
	}{
		{"session conflict", SessionConflict(), KindConflict, "--session"},
		{"action requires remote", ActionRequiresRemote("focus"), KindInvalid, "already-running instance"},
		{"geometry invalid", GeometryInvalid("notanumber"), KindGeometry, "notanumber"},
		{"session file not found", SessionFileNotFound("/tmp/x.json"), KindNotFound, "/tmp/x.json"},
		{"config load failed", ConfigLoadFailed("/tmp/c.json", errors.New("boom")), KindConfig, "/tmp/c.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetKind(tt.err); got != tt.wantKind {
				t.Errorf("GetKind = %v, want %v", got, tt.wantKind)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("Error() = %q, should contain %q", tt.err.Error(), tt.contains)
			}
		})
	}
}
