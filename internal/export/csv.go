package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gradsift/internal/signal"
)

// WriteSignalsCSV writes the signal CSV atomically: rows go to a temp file
// in the same directory which is renamed into place only once fully
// written, so readers never observe a partial file.
func WriteSignalsCSV(path string, signals []signal.Signal) error {
	records := make([][]string, 0, len(signals))
	for _, s := range signals {
		records = append(records, s.Record())
	}
	return writeAtomic(path, signal.Columns, records)
}

// WriteFilteredCSV writes the filtered experience CSV atomically.
func WriteFilteredCSV(path string, posts []signal.FilteredPost) error {
	records := make([][]string, 0, len(posts))
	for _, p := range posts {
		records = append(records, p.Record())
	}
	return writeAtomic(path, signal.FilteredColumns, records)
}

// WriteFirmCaches writes one experiences_<slug>.csv per firm into dir.
// Firms are written in name order so repeated runs touch files in a stable
// sequence.
func WriteFirmCaches(dir string, posts []signal.FilteredPost) error {
	byFirm := make(map[string][]signal.FilteredPost)
	for _, p := range posts {
		if p.FirmName == "" {
			continue
		}
		byFirm[p.FirmName] = append(byFirm[p.FirmName], p)
	}
	names := make([]string, 0, len(byFirm))
	for name := range byFirm {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := WriteFilteredCSV(FirmCachePath(dir, name), byFirm[name]); err != nil {
			return err
		}
	}
	return nil
}

// ReadSignals loads a signal CSV written by WriteSignalsCSV.
func ReadSignals(path string) ([]signal.Signal, error) {
	rows, err := readRows(path, signal.Columns)
	if err != nil {
		return nil, err
	}
	signals := make([]signal.Signal, 0, len(rows))
	for i, row := range rows {
		s, err := signal.FromRecord(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", filepath.Base(path), i+2, err)
		}
		signals = append(signals, s)
	}
	return signals, nil
}

// ReadFilteredPosts loads filtered experiences, applying the consumer
// filters: canonical firm name (empty keeps all firms), minimum quality
// score, and optionally dropping questions.
func ReadFilteredPosts(path, firm string, minQuality float64, excludeQuestions bool) ([]signal.FilteredPost, error) {
	rows, err := readRows(path, signal.FilteredColumns)
	if err != nil {
		return nil, err
	}
	var posts []signal.FilteredPost
	for i, row := range rows {
		p, err := signal.FilteredFromRecord(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", filepath.Base(path), i+2, err)
		}
		if firm != "" && !strings.EqualFold(p.FirmName, firm) {
			continue
		}
		if p.Quality.Score < minQuality {
			continue
		}
		if excludeQuestions && p.Quality.IsQuestion {
			continue
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func writeAtomic(path string, header []string, records [][]string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	writer := csv.NewWriter(tmp)
	if err := writer.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	if err := writer.WriteAll(records); err != nil {
		tmp.Close()
		return fmt.Errorf("write rows: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

func readRows(path string, wantHeader []string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(wantHeader) {
		return nil, fmt.Errorf("%s: got %d columns, want %d", filepath.Base(path), len(header), len(wantHeader))
	}
	for i, name := range header {
		if name != wantHeader[i] {
			return nil, fmt.Errorf("%s: column %d is %q, want %q", filepath.Base(path), i, name, wantHeader[i])
		}
	}
	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
