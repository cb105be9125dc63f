package fasta

// Package fasta contains minimal helpers to parse FASTA formatted data used
// by the viewer. It intentionally keeps parsing simple and conservative:
// malformed or empty input yields an empty result rather than an error, and
// the caller decides how to present that.

import (
	"bufio"
	"io"
	"strings"
)

// Record represents a single FASTA record (header and sequence).
type Record struct {
	Header   string
	Sequence string
}

// Parse reads FASTA records from r and returns a slice of Record.
// Lines beginning with '>' denote headers; sequence lines are concatenated
// with line breaks stripped. Sequence data appearing before the first header
// is ignored.
func Parse(r io.Reader) []Record {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var records []Record
	var current Record
	inRecord := false
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, ">") {
			if inRecord {
				records = append(records, current)
			}
			current = Record{Header: strings.TrimSpace(line[1:])}
			inRecord = true
		} else if inRecord {
			current.Sequence += strings.TrimSpace(line)
		}
	}
	if inRecord {
		records = append(records, current)
	}
	return records
}

// ParseString is a convenience wrapper over Parse for in-memory blobs.
func ParseString(blob string) []Record {
	return Parse(strings.NewReader(blob))
}

// Split separates records into parallel name and sequence slices, the row
// order of the viewer. Sequences are uppercased; headers are kept verbatim.
// Both slices are empty when the input has no records.
func Split(records []Record) (names, seqs []string) {
	if len(records) == 0 {
		return nil, nil
	}
	names = make([]string, len(records))
	seqs = make([]string, len(records))
	for i, rec := range records {
		names[i] = rec.Header
		seqs[i] = strings.ToUpper(rec.Sequence)
	}
	return names, seqs
}
