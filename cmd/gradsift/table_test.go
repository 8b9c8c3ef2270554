package main

import (
	"strings"
	"testing"
)

func TestRenderTableKeepsHeaderCase(t *testing.T) {
	out := renderTable(
		[]column{{name: "Firm"}, {name: "Avg Salary", right: true}},
		[][]string{{"Allens", "$85000"}},
	)
	if !strings.Contains(out, "Avg Salary") {
		t.Errorf("header casing not preserved:\n%s", out)
	}
	if strings.Contains(out, "AVG SALARY") {
		t.Errorf("header was upper-cased:\n%s", out)
	}
}

func TestRenderTableWrapsWideCells(t *testing.T) {
	excerpt := strings.Repeat("rotated through practice groups ", 8)
	out := renderTable(
		[]column{{name: "Firm"}, {name: "Experience", widthMax: 40}},
		[][]string{{"Ashurst", excerpt}},
	)
	for _, line := range strings.Split(out, "\n") {
		if len([]rune(line)) > 60 {
			t.Errorf("line exceeds capped width: %q", line)
		}
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable(
		[]column{{name: "Firm"}, {name: "Signals", right: true}},
		[][]string{{"MinterEllison"}},
	)
	if !strings.Contains(out, "MinterEllison") {
		t.Errorf("row missing:\n%s", out)
	}
}

func TestRenderTableEmptyColumns(t *testing.T) {
	if out := renderTable(nil, nil); out != "" {
		t.Errorf("renderTable(nil) = %q, want empty", out)
	}
}
