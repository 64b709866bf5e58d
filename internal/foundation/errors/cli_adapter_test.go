package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "validation", err: ValidationError("missing title").Build(), expected: 2},
		{name: "not found", err: NotFoundError("no such file").Build(), expected: 3},
		{name: "config", err: ConfigError("bad template").Build(), expected: 7},
		{name: "filesystem", err: FileSystemError("read failed").Build(), expected: 11},
		{name: "wrapped config", err: fmt.Errorf("loading: %w", ConfigError("bad").Build()), expected: 7},
		{name: "unclassified", err: stderrors.New("boom"), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(tt.err); got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	err := ConfigError("url template setting is missing").WithContext("setting", "PAGE_URL").Build()

	quiet := NewCLIErrorAdapter(false, nil)
	if got := quiet.FormatError(err); got != "Error: url template setting is missing (use -v for details)" {
		t.Errorf("unexpected quiet format: %q", got)
	}

	verbose := NewCLIErrorAdapter(true, nil)
	if got := verbose.FormatError(err); got != "Error: [config:error] url template setting is missing (setting=PAGE_URL)" {
		t.Errorf("unexpected verbose format: %q", got)
	}

	if got := quiet.FormatError(nil); got != "" {
		t.Errorf("expected empty string for nil error, got %q", got)
	}
}
