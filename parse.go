package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// ParseSessionLog reads a JSONL session log and returns the decoded entries
// in file order. Malformed lines are warned about and skipped; one bad line
// never aborts the parse. Only failures on the file itself are returned.
func ParseSessionLog(path string) ([]SessionEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session log: %w", err)
	}
	defer f.Close()

	return parseSessionLines(f, path)
}

// parseSessionLines does the line-by-line work so tests can feed synthetic
// logs from any reader.
func parseSessionLines(r io.Reader, name string) ([]SessionEntry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 10*1024*1024) // 10MB max line

	var entries []SessionEntry
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())

		// Skip blank lines silently
		if len(line) == 0 {
			continue
		}

		// A valid JSON value that is not an object carries nothing we
		// bucket; only syntactically broken lines get a warning.
		if line[0] != '{' {
			if !jsontext.Value(line).IsValid() {
				log.Printf("Warning: %s:%d: failed to parse line", name, lineNo)
			}
			continue
		}

		var entry SessionEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			log.Printf("Warning: %s:%d: failed to parse line: %v", name, lineNo, err)
			continue
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading session log: %w", err)
	}

	return entries, nil
}
