package runner

import (
	"strings"
	"testing"
)

func feedString(t *testing.T, s string) []string {
	t.Helper()
	var lines []string
	if err := feed(strings.NewReader(s), func(line string) {
		lines = append(lines, line)
	}); err != nil {
		t.Fatalf("feed: %v", err)
	}
	return lines
}

func TestFeed_NewlineTerminatesLines(t *testing.T) {
	lines := feedString(t, "one\ntwo\n")
	want := []string{"one", "two"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestFeed_CarriageReturnDiscardsBuffer(t *testing.T) {
	lines := feedString(t, "a\rb\n")
	if len(lines) != 1 || lines[0] != "b" {
		t.Fatalf("lines = %v, want [b]", lines)
	}
}

func TestFeed_ProgressCountdownCollapses(t *testing.T) {
	// A countdown that rewrites itself with \r yields only the final state.
	lines := feedString(t, "3\r2\r1\r0\n")
	if len(lines) != 1 || lines[0] != "0" {
		t.Fatalf("lines = %v, want [0]", lines)
	}
}

func TestFeed_FlushesFinalLineWithoutNewline(t *testing.T) {
	lines := feedString(t, "x\ny\nz")
	want := []string{"x", "y", "z"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestFeed_EmptyStream(t *testing.T) {
	if lines := feedString(t, ""); len(lines) != 0 {
		t.Fatalf("lines = %v, want none", lines)
	}
}

func TestFeed_EmptyLinePreserved(t *testing.T) {
	lines := feedString(t, "a\n\nb\n")
	want := []string{"a", "", "b"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}
