package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConsoleHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	logger = NewComponentLogger(logger, "extract")
	logger.Info("run finished", Args(Int("signals", 412), String("source", "file one.csv"))...)

	line := buf.String()
	if !strings.Contains(line, " INFO extract: run finished") {
		t.Errorf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "signals=412") {
		t.Errorf("missing int attr: %q", line)
	}
	if !strings.Contains(line, `source="file one.csv"`) {
		t.Errorf("value with spaces should be quoted: %q", line)
	}
	if strings.Contains(line, "\x1b[") {
		t.Errorf("buffer writer must not get ANSI colors: %q", line)
	}
}

func TestConsoleHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelWarn)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record leaked past warn level: %q", out)
	}
	if !strings.Contains(out, "WARN shown") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestConsoleHandlerGroups(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, levelVar)).WithGroup("run")

	logger.Info("stats", Args(Int("posts", 9))...)
	if !strings.Contains(buf.String(), "run.posts=9") {
		t.Errorf("group prefix missing: %q", buf.String())
	}
}

func TestNewJSONFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gradsift.log")
	logger, err := New(Options{Level: "debug", Format: "json", OutputPaths: []string{path}, ErrorOutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("probe", Args(String(FieldRunID, "abc"))...)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &record); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, data)
	}
	if record["level"] != "debug" || record["msg"] != "probe" || record["run_id"] != "abc" {
		t.Errorf("unexpected record: %v", record)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNop()
	logger.Error("swallowed", Args(Error(nil))...)
	if logger.Enabled(nil, slog.LevelError) {
		t.Fatal("nop logger should report disabled")
	}
}
