package insights

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// AnnotateCSV copies a CSV stream while appending primary_cat and
// cat_labels columns derived from the content column. Rows without a
// content column value classify as empty.
func AnnotateCSV(in io.Reader, out io.Writer, classifier *Classifier) error {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	writer := csv.NewWriter(out)

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read csv header: %w", err)
	}
	contentIdx := -1
	for i, name := range header {
		if name == "content" {
			contentIdx = i
			break
		}
	}
	if err := writer.Write(append(append([]string{}, header...), "primary_cat", "cat_labels")); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read csv row: %w", err)
		}
		content := ""
		if contentIdx >= 0 && contentIdx < len(row) {
			content = row[contentIdx]
		}
		result := classifier.Classify(content)
		labels := make([]string, len(result.Categories))
		for i, slug := range result.Categories {
			labels[i] = Label(slug)
		}
		row = append(row, result.Primary, strings.Join(labels, ", "))
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
