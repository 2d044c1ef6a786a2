// Package cache persists the parsed stats table between runs, either as a
// flat CSV file (the default) or as the same CSV payload in Redis.
package cache

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"nba-voice-stats/internal/domain"
)

const DefaultPath = "nba_stats.csv"

// EncodeCSV writes the table with a header line followed by one record per
// row.
func EncodeCSV(w io.Writer, table *domain.StatsTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range table.Rows {
		if err := cw.Write(table.Record(row)); err != nil {
			return fmt.Errorf("writing row %q: %w", row.Player, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func DecodeCSV(r io.Reader) (*domain.StatsTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	table := &domain.StatsTable{Columns: header}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		if row, ok := domain.NewPlayerRow(header, record); ok {
			table.Rows = append(table.Rows, row)
		}
	}
	return table, nil
}

// FileCache stores the table as a CSV file. Its presence alone decides
// whether the network is consulted.
type FileCache struct {
	path string
}

func NewFileCache(path string) *FileCache {
	if path == "" {
		path = DefaultPath
	}
	return &FileCache{path: path}
}

func (f *FileCache) Path() string {
	return f.path
}

func (f *FileCache) Load(_ context.Context) (*domain.StatsTable, bool, error) {
	file, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("opening cache file: %w", err)
	}
	defer file.Close()

	table, err := DecodeCSV(file)
	if err != nil {
		return nil, false, fmt.Errorf("decoding %s: %w", f.path, err)
	}
	return table, true, nil
}

// Save writes to a temporary file next to the target and renames it, so a
// failed write never leaves a truncated cache behind.
func (f *FileCache) Save(_ context.Context, table *domain.StatsTable) error {
	var buf bytes.Buffer
	if err := EncodeCSV(&buf, table); err != nil {
		return fmt.Errorf("encoding stats: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming cache file: %w", err)
	}
	return nil
}
