package logtail

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const (
	chunkSize = 32 * 1024
	// maxScan bounds how far back Tail reads in very long files.
	maxScan = 4 * 1024 * 1024
)

// Tail returns at most n lines from the end of the file at path, oldest
// first. A missing file yields no lines and no error.
func Tail(path string, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat log: %w", err)
	}

	end := info.Size()
	stop := max(end-maxScan, 0)
	var buf []byte
	for end > stop && bytes.Count(buf, []byte{'\n'}) <= n {
		start := max(end-chunkSize, stop)
		chunk := make([]byte, end-start)
		if _, err := file.ReadAt(chunk, start); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read log: %w", err)
		}
		buf = append(chunk, buf...)
		end = start
	}

	text := strings.TrimRight(string(buf), "\n")
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(text, "\n")
	// The first line is partial when the scan stopped mid-file.
	if end > 0 && len(lines) > 1 {
		lines = lines[1:]
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

// Entry is one decoded JSON log line.
type Entry struct {
	Time    time.Time
	Level   string
	Message string
	Raw     string
}

// Parse decodes a zerolog JSON line. Lines that are not JSON come back with
// only Raw set.
func Parse(line string) Entry {
	entry := Entry{Raw: line}
	var fields struct {
		Time    string `json:"time"`
		Level   string `json:"level"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(line), &fields); err != nil {
		return entry
	}
	entry.Level = strings.ToLower(fields.Level)
	entry.Message = fields.Message
	if ts, err := time.Parse(time.RFC3339, fields.Time); err == nil {
		entry.Time = ts
	}
	return entry
}
