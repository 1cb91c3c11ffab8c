package executor

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"
)

func TestLookPathMissing(t *testing.T) {
	exec := New()

	_, err := exec.LookPath("definitely-not-a-real-binary-7f3a")
	if err == nil {
		t.Fatal("LookPath() should fail for a missing binary")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("LookPath() error = %v, want ErrNotFound", err)
	}
}

func TestExecute(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	exec := New()
	ctx := context.Background()

	out, err := exec.Execute(ctx, "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Errorf("Execute() = %q, want %q", out, "hello")
	}

	_, err = exec.Execute(ctx, "sh", "-c", "echo boom >&2; exit 3")
	if err == nil {
		t.Fatal("Execute() should fail on non-zero exit")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("Execute() error should include stderr, got %v", err)
	}
}

func TestLastLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short", "a\nb", 5, "a\nb"},
		{"trimmed", "a\nb\nc\nd", 2, "c\nd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lastLines(tt.in, tt.n); got != tt.want {
				t.Errorf("lastLines() = %q, want %q", got, tt.want)
			}
		})
	}
}
