package ui

import (
	"strings"
	"testing"
)

func TestRenderTableAlignsColumns(t *testing.T) {
	out := RenderTable([]Row{
		{Pair: "fetch", Status: "ok", Result: "Int"},
		{Pair: "longer-name", Status: "failed", Result: "-", Failed: true},
	}, false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	resultCol := strings.Index(lines[0], "RESULT")
	if resultCol < 0 {
		t.Fatalf("missing RESULT header in %q", lines[0])
	}
	if !strings.HasPrefix(lines[1][resultCol:], "Int") {
		t.Fatalf("result column misaligned: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2][resultCol:], "-") {
		t.Fatalf("result column misaligned: %q", lines[2])
	}
}

func TestRenderTableEmpty(t *testing.T) {
	out := RenderTable(nil, false)
	if !strings.Contains(out, "no pairs") {
		t.Fatalf("unexpected empty output: %q", out)
	}
}
