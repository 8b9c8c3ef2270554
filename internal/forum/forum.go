// Package forum reads forum export CSVs into RawPost records. Ingestion is
// tolerant: a missing or unreadable file logs a warning and the run
// continues with whatever could be read.
package forum

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gradsift/internal/dates"
	"gradsift/internal/logging"
)

// RawPost is one forum post as exported, before cleaning. Timestamp is
// normalized toward UTC ISO form when the export stamp parses.
type RawPost struct {
	Content     string
	ThreadTitle string
	ThreadURL   string
	Timestamp   string
	PostNumber  string
	SourceFile  string
}

// Reader ingests forum export CSVs.
type Reader struct {
	logger *slog.Logger
}

// NewReader builds a reader. A nil logger disables logging.
func NewReader(logger *slog.Logger) *Reader {
	return &Reader{logger: logging.NewComponentLogger(logger, "forum")}
}

// ReadFiles ingests every path in order. Unreadable files are skipped with
// a warning; the error return is non-nil only when not a single file could
// be opened.
func (r *Reader) ReadFiles(paths []string) ([]RawPost, error) {
	var posts []RawPost
	readable := 0
	for _, path := range paths {
		filePosts, err := r.readFile(path)
		if err != nil {
			r.logger.Warn("skipping input file",
				logging.Args(logging.String(logging.FieldSourceFile, path), logging.Error(err))...)
			continue
		}
		readable++
		posts = append(posts, filePosts...)
	}
	if readable == 0 && len(paths) > 0 {
		return nil, fmt.Errorf("no readable input among %d file(s)", len(paths))
	}
	return posts, nil
}

// ReadDir ingests every file in dir matching the glob pattern, in sorted
// order.
func (r *Reader) ReadDir(dir, glob string) ([]RawPost, error) {
	if strings.TrimSpace(glob) == "" {
		glob = "*.csv"
	}
	matches, err := filepath.Glob(filepath.Join(dir, glob))
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", glob, err)
	}
	sort.Strings(matches)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files matching %q in %s", glob, dir)
	}
	return r.ReadFiles(matches)
}

func (r *Reader) readFile(path string) ([]RawPost, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}
	if _, ok := cols["content"]; !ok {
		return nil, fmt.Errorf("no content column in %s", path)
	}

	source := filepath.Base(path)
	var posts []RawPost
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			r.logger.Warn("skipping malformed row",
				logging.Args(logging.String(logging.FieldSourceFile, source), logging.Int("line", line), logging.Error(err))...)
			continue
		}
		content := field(row, cols, "content")
		if strings.TrimSpace(content) == "" {
			continue
		}
		posts = append(posts, RawPost{
			Content:     content,
			ThreadTitle: field(row, cols, "thread_title"),
			ThreadURL:   field(row, cols, "thread_url"),
			Timestamp:   dates.NormalizeTimestamp(field(row, cols, "timestamp")),
			PostNumber:  strings.TrimSpace(field(row, cols, "post_number")),
			SourceFile:  source,
		})
	}
	return posts, nil
}

func field(row []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}
