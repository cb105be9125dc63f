package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aabdoo23/Protomatic-sub001/internal/align"
)

// sparkWidth is how many buckets the conservation sparkline is squeezed
// into for terminal output.
const sparkWidth = 60

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

var infoCmd = &cobra.Command{
	Use:   "info <alignment.fasta>",
	Short: "Print alignment dimensions and a conservation summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read alignment: %w", err)
		}
		a := align.FromBlob(string(data))
		if a.Empty() {
			color.Yellow("no alignment records in %s", args[0])
			return nil
		}

		bold := color.New(color.Bold)
		bold.Printf("%s\n", args[0])
		fmt.Printf("  sequences     %d\n", a.Depth())
		fmt.Printf("  columns       %d\n", a.Width())
		fmt.Printf("  mean conserv. %.3f\n", a.MeanConservation())
		min, at := a.MinConservation()
		fmt.Printf("  min conserv.  %.3f (column %d)\n", min, at+1)
		fmt.Printf("  profile       %s\n", sparkline(a.Conservation(), sparkWidth))
		return nil
	},
}

// sparkline buckets the profile into width cells and renders each bucket's
// mean score as a block glyph, colored by conservation band.
func sparkline(scores []float64, width int) string {
	if len(scores) == 0 || width < 1 {
		return ""
	}
	if width > len(scores) {
		width = len(scores)
	}
	high := color.New(color.FgGreen)
	mid := color.New(color.FgYellow)
	low := color.New(color.FgRed)

	out := ""
	for b := 0; b < width; b++ {
		start := b * len(scores) / width
		end := (b + 1) * len(scores) / width
		if end == start {
			end = start + 1
		}
		sum := 0.0
		for _, s := range scores[start:end] {
			sum += s
		}
		mean := sum / float64(end-start)

		idx := int(mean * float64(len(sparkBlocks)-1))
		glyph := string(sparkBlocks[idx])
		switch {
		case mean >= 0.8:
			out += high.Sprint(glyph)
		case mean >= 0.5:
			out += mid.Sprint(glyph)
		default:
			out += low.Sprint(glyph)
		}
	}
	return out
}
