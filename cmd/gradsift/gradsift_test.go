package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testPost = "I clerked at Allens in Sydney last summer for their 2025 summer clerkship. " +
	"I rotated through two practice groups, worked on due diligence and drafted advice memos. " +
	"The graduate salary was around $75k and applications closed on 15 Aug 2024. " +
	"My supervisor assigned real matters and I learned a lot from the feedback culture there."

func writeTestConfig(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	inputDir := filepath.Join(root, "input")
	if err := os.MkdirAll(inputDir, 0o755); err != nil {
		t.Fatalf("mkdir input: %v", err)
	}
	posts := "content,thread_title,thread_url,timestamp,post_number\n" +
		"\"" + testPost + "\",Clerkships 2025,https://example.com/t/1,2024-07-01T10:00:00Z,12\n"
	if err := os.WriteFile(filepath.Join(inputDir, "thread1.csv"), []byte(posts), 0o644); err != nil {
		t.Fatalf("write posts: %v", err)
	}

	cfgText := "[paths]\n" +
		"input_dir = \"" + inputDir + "\"\n" +
		"output_dir = \"" + filepath.Join(root, "output") + "\"\n" +
		"cache_dir = \"" + filepath.Join(root, "cache") + "\"\n" +
		"log_dir = \"" + filepath.Join(root, "logs") + "\"\n" +
		"database_path = \"" + filepath.Join(root, "gradsift.db") + "\"\n" +
		"[output]\n" +
		"sqlite = true\n" +
		"[logging]\n" +
		"level = \"error\"\n"
	cfgPath := filepath.Join(root, "gradsift.toml")
	if err := os.WriteFile(cfgPath, []byte(cfgText), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath
}

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("gradsift %s: %v\n%s", strings.Join(args, " "), err, buf.String())
	}
	return buf.String()
}

func TestExtractThenCardsAndRuns(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out := runCommand(t, "--config", cfgPath, "extract")
	if !strings.Contains(out, "1 posts") {
		t.Errorf("extract output missing post count:\n%s", out)
	}
	if !strings.Contains(out, "Allens") {
		t.Errorf("extract summary missing firm table:\n%s", out)
	}

	signalsPath := filepath.Join(filepath.Dir(cfgPath), "output", "signals.csv")
	if _, err := os.Stat(signalsPath); err != nil {
		t.Fatalf("signals.csv not written: %v", err)
	}

	out = runCommand(t, "--config", cfgPath, "cards")
	if !strings.Contains(out, "Allens") || !strings.Contains(out, "Sydney") {
		t.Errorf("cards output missing aggregate:\n%s", out)
	}

	out = runCommand(t, "--config", cfgPath, "runs")
	if !strings.Contains(out, "Accepted") {
		t.Errorf("runs output missing table:\n%s", out)
	}
}

func TestExperiencesAndCategorize(t *testing.T) {
	cfgPath := writeTestConfig(t)
	runCommand(t, "--config", cfgPath, "extract")

	out := runCommand(t, "--config", cfgPath, "experiences", "--firm", "Allens")
	if !strings.Contains(out, "Allens") {
		t.Errorf("experiences output missing firm row:\n%s", out)
	}

	out = runCommand(t, "--config", cfgPath, "categorize")
	if !strings.Contains(out, "Categorized") {
		t.Errorf("categorize output missing confirmation:\n%s", out)
	}
	annotated := filepath.Join(filepath.Dir(cfgPath), "output", "experiences_categorized.csv")
	data, err := os.ReadFile(annotated)
	if err != nil {
		t.Fatalf("read categorized csv: %v", err)
	}
	if !strings.Contains(string(data), "primary_cat") {
		t.Errorf("categorized csv missing appended columns:\n%s", data)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out := runCommand(t, "config", "init", "--path", target)
	if !strings.Contains(out, "Wrote sample configuration") {
		t.Errorf("config init output unexpected:\n%s", out)
	}

	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"config", "init", "--path", target})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error when config file already exists")
	}

	out = runCommand(t, "config", "show", "--path", target)
	if !strings.Contains(out, "matching.fuzzy_threshold") {
		t.Errorf("config show output missing settings table:\n%s", out)
	}
}

func TestExtractFailsWithoutInput(t *testing.T) {
	cfgPath := writeTestConfig(t)
	missing := filepath.Join(t.TempDir(), "nope")

	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--config", cfgPath, "extract", "--in", missing})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error when no input is readable")
	}
}
