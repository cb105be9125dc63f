package align

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aabdoo23/Protomatic-sub001/internal/fasta"
)

func TestFromBlobScenario(t *testing.T) {
	a := FromBlob(">A\nMKV-\n>B\nMKVL\n")
	require.Equal(t, 2, a.Depth())
	require.Equal(t, 4, a.Width())
	assert.Equal(t, []string{"A", "B"}, a.Names())
	assert.Equal(t, "MKV-", a.Row(0))
	assert.Equal(t, "MKVL", a.Row(1))
	assert.Equal(t, []float64{1.0, 1.0, 1.0, 0.5}, a.Conservation())
}

func TestEmptyBlob(t *testing.T) {
	a := FromBlob("")
	assert.True(t, a.Empty())
	assert.Equal(t, 0, a.Depth())
	assert.Equal(t, 0, a.Width())
	assert.Empty(t, a.Conservation())
	assert.Equal(t, 0.0, a.MeanConservation())
	min, at := a.MinConservation()
	assert.Equal(t, 0.0, min)
	assert.Equal(t, -1, at)
}

func TestCellFallback(t *testing.T) {
	a := New([]string{"a", "b"}, []string{"MK", "MKVL"})
	assert.Equal(t, 4, a.Width())
	// Ragged row reads the fallback glyph past its own end.
	assert.Equal(t, FallbackResidue, a.Cell(0, 3))
	assert.Equal(t, byte('L'), a.Cell(1, 3))
	// Out of range never panics.
	assert.Equal(t, FallbackResidue, a.Cell(-1, 0))
	assert.Equal(t, FallbackResidue, a.Cell(0, 99))
	assert.Equal(t, FallbackResidue, a.Cell(7, 0))
}

func TestCellNonPrintable(t *testing.T) {
	a := New([]string{"a"}, []string{"M\tV"})
	assert.Equal(t, FallbackResidue, a.Cell(0, 1))
}

func TestConservationBounds(t *testing.T) {
	const rows, width = 37, 211
	rng := rand.New(rand.NewSource(1))
	residues := "ACDEFGHIKLMNPQRSTVWY-"
	seqs := make([]string, rows)
	names := make([]string, rows)
	for i := range seqs {
		var b strings.Builder
		for j := 0; j < width; j++ {
			b.WriteByte(residues[rng.Intn(len(residues))])
		}
		seqs[i] = b.String()
		names[i] = "seq"
	}
	a := New(names, seqs)
	scores := a.Conservation()
	require.Len(t, scores, width)
	for i, s := range scores {
		assert.GreaterOrEqual(t, s, 1.0/float64(rows), "col %d", i)
		assert.LessOrEqual(t, s, 1.0, "col %d", i)
	}
}

func TestConservationUniformColumnIsOne(t *testing.T) {
	a := New([]string{"a", "b", "c"}, []string{"MAV", "MCV", "MGV"})
	scores := a.Conservation()
	require.Len(t, scores, 3)
	assert.Equal(t, 1.0, scores[0])
	assert.InDelta(t, 1.0/3.0, scores[1], 1e-12)
	assert.Equal(t, 1.0, scores[2])
}

func TestConservationMemoized(t *testing.T) {
	a := FromBlob(">A\nMKV-\n>B\nMKVL\n")
	first := a.Conservation()
	second := a.Conservation()
	// Same backing array: computed once per alignment identity.
	require.Same(t, &first[0], &second[0])
}

func TestRoundTripGeneratedBlob(t *testing.T) {
	const n, length = 25, 60
	rng := rand.New(rand.NewSource(7))
	residues := "ACDEFGHIKLMNPQRSTVWY-"
	var blob strings.Builder
	for i := 0; i < n; i++ {
		blob.WriteString(">rec\n")
		for j := 0; j < length; j++ {
			blob.WriteByte(residues[rng.Intn(len(residues))])
		}
		blob.WriteByte('\n')
	}
	names, seqs := fasta.Split(fasta.ParseString(blob.String()))
	require.Len(t, names, n)
	require.Len(t, seqs, n)
	for _, s := range seqs {
		assert.Len(t, s, length)
	}
}
