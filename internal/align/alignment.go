// Package align holds the immutable alignment matrix the viewer renders and
// the per-column conservation profile derived from it.
package align

import (
	"github.com/aabdoo23/Protomatic-sub001/internal/fasta"
)

// FallbackResidue is substituted for any cell that is missing or not a
// printable single-letter code. Ragged rows therefore still render at the
// full alignment width.
const FallbackResidue = byte('.')

// Alignment is an ordered set of named, equal-width residue rows. Row order
// is input order. An Alignment is never mutated after construction; derived
// data (the conservation profile) is computed lazily and cached on the value.
type Alignment struct {
	names []string
	seqs  []string
	width int

	conservation []float64
}

// New builds an Alignment from parallel name/sequence slices. Width is the
// longest sequence; shorter rows are padded on read via FallbackResidue.
func New(names, seqs []string) *Alignment {
	a := &Alignment{names: names, seqs: seqs}
	for _, s := range seqs {
		if len(s) > a.width {
			a.width = len(s)
		}
	}
	return a
}

// FromRecords builds an Alignment from parsed FASTA records.
func FromRecords(records []fasta.Record) *Alignment {
	names, seqs := fasta.Split(records)
	return New(names, seqs)
}

// FromBlob parses a FASTA blob and builds an Alignment from it. Malformed
// input yields an empty alignment, not an error.
func FromBlob(blob string) *Alignment {
	return FromRecords(fasta.ParseString(blob))
}

// Depth returns the number of rows.
func (a *Alignment) Depth() int { return len(a.seqs) }

// Width returns the number of columns.
func (a *Alignment) Width() int { return a.width }

// Empty reports whether there is nothing to render.
func (a *Alignment) Empty() bool { return len(a.seqs) == 0 || a.width == 0 }

// Name returns the row's sequence name, or "" when out of range.
func (a *Alignment) Name(row int) string {
	if row < 0 || row >= len(a.names) {
		return ""
	}
	return a.names[row]
}

// Names returns the row names in render order.
func (a *Alignment) Names() []string { return a.names }

// Cell returns the residue at [row][col], substituting FallbackResidue for
// out-of-range or non-printable cells. It never panics.
func (a *Alignment) Cell(row, col int) byte {
	if row < 0 || row >= len(a.seqs) || col < 0 || col >= a.width {
		return FallbackResidue
	}
	s := a.seqs[row]
	if col >= len(s) {
		return FallbackResidue
	}
	c := s[col]
	if c <= ' ' || c > '~' {
		return FallbackResidue
	}
	return c
}

// Row returns the raw sequence string for a row, or "" when out of range.
func (a *Alignment) Row(row int) string {
	if row < 0 || row >= len(a.seqs) {
		return ""
	}
	return a.seqs[row]
}
