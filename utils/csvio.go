package utils

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Table holds the parsed input CSV: the header row and one name→value map
// per data row. Headers keep their file order so the first column can act as
// the order-identifier fallback.
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// createOutputFile opens the output file for writing.
// Package-level var so tests can substitute a failing opener.
var createOutputFile = func(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// ReadRows reads the input CSV into a Table. A missing header row or a file
// with no data rows aborts the whole run; there is nothing to process.
func ReadRows(fileName string) (*Table, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to open input CSV: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse input CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("no data or headers found in input CSV")
	}

	headers := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return &Table{Headers: headers, Rows: rows}, nil
}

// WriteRows writes rows to a CSV under the given column plan. If the target
// file is locked by another process the write is retried under a mutated
// filename ("name (1).csv", "name (2).csv", ...) until it succeeds; any other
// failure aborts. Returns the filename actually written.
func WriteRows(fileName string, headers []string, rows []map[string]string, logger *zap.Logger) (string, error) {
	if len(rows) == 0 {
		return "", fmt.Errorf("no rows to write to CSV")
	}

	target := fileName
	for attempt := 1; ; attempt++ {
		err := writeFile(target, headers, rows)
		if err == nil {
			return target, nil
		}
		if !errors.Is(err, fs.ErrPermission) {
			return "", fmt.Errorf("failed to write CSV: %w", err)
		}
		logger.Warn("Could not write output file, trying a new name",
			zap.String("file", target),
			zap.Error(err))
		target = AddSuffixToFileName(fileName, fmt.Sprintf(" (%d)", attempt))
	}
}

// writeFile performs one write attempt
func writeFile(fileName string, headers []string, rows []map[string]string) error {
	file, err := createOutputFile(fileName)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(headers); err != nil {
		file.Close()
		return err
	}
	for _, row := range rows {
		record := make([]string, len(headers))
		for i, header := range headers {
			record[i] = row[header]
		}
		if err := writer.Write(record); err != nil {
			file.Close()
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

// AddSuffixToFileName inserts a suffix before the file extension, so
// ("orders.csv", "_output") becomes "orders_output.csv". Files without an
// extension get the suffix appended.
func AddSuffixToFileName(fileName, suffix string) string {
	idx := strings.LastIndex(fileName, ".")
	if idx < 0 {
		return fileName + suffix
	}
	return fileName[:idx] + suffix + fileName[idx:]
}
