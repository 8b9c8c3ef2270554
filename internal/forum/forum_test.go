package forum

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "threads.csv",
		"content,thread_title,thread_url,timestamp,post_number\n"+
			"Allens clerkship opens 1 July,Clerkships 2025,https://example.net/t/1,\"2023-Aug-14, 9:41 pm AEST\",12\n"+
			",Clerkships 2025,https://example.net/t/1,2023-08-15,13\n"+
			"second post,Clerkships 2025,https://example.net/t/1,15 Aug 2025,14\n")

	posts, err := NewReader(nil).ReadFiles([]string{path})
	if err != nil {
		t.Fatalf("ReadFiles: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2 (empty content skipped)", len(posts))
	}
	first := posts[0]
	if first.Content != "Allens clerkship opens 1 July" {
		t.Errorf("content = %q", first.Content)
	}
	if first.PostNumber != "12" {
		t.Errorf("post number = %q", first.PostNumber)
	}
	if first.SourceFile != "threads.csv" {
		t.Errorf("source file = %q", first.SourceFile)
	}
	if first.Timestamp != "2023-08-14T11:41:00Z" {
		t.Errorf("timestamp not normalized: %q", first.Timestamp)
	}
	if posts[1].Timestamp != "2025-08-15" {
		t.Errorf("date-only timestamp = %q", posts[1].Timestamp)
	}
}

func TestReadFilesSkipsMissing(t *testing.T) {
	dir := t.TempDir()
	good := writeCSV(t, dir, "good.csv", "content\nhello world\n")

	posts, err := NewReader(nil).ReadFiles([]string{filepath.Join(dir, "missing.csv"), good})
	if err != nil {
		t.Fatalf("ReadFiles should continue past a missing file: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("got %d posts, want 1", len(posts))
	}
}

func TestReadFilesAllMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := NewReader(nil).ReadFiles([]string{filepath.Join(dir, "a.csv"), filepath.Join(dir, "b.csv")})
	if err == nil {
		t.Fatal("expected error when nothing is readable")
	}
}

func TestReadDirSorted(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "b.csv", "content\nfrom b\n")
	writeCSV(t, dir, "a.csv", "content\nfrom a\n")
	writeCSV(t, dir, "notes.txt", "ignored")

	posts, err := NewReader(nil).ReadDir(dir, "*.csv")
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(posts) != 2 || posts[0].Content != "from a" || posts[1].Content != "from b" {
		t.Fatalf("unexpected posts: %+v", posts)
	}
}

func TestReadDirEmpty(t *testing.T) {
	if _, err := NewReader(nil).ReadDir(t.TempDir(), "*.csv"); err == nil {
		t.Fatal("expected error for empty directory")
	}
}
