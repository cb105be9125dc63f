package align

// Conservation returns the per-column conservation profile: for each column,
// the fraction of rows sharing the most frequent residue there. Scores are
// in [0,1]; which residue wins a tie is irrelevant, only the max count
// matters. The profile is computed once per Alignment and cached, so calling
// this on every render frame is cheap.
func (a *Alignment) Conservation() []float64 {
	if a.conservation != nil {
		return a.conservation
	}
	depth := a.Depth()
	if depth == 0 || a.width == 0 {
		a.conservation = []float64{}
		return a.conservation
	}
	scores := make([]float64, a.width)
	var counts [256]int
	for col := 0; col < a.width; col++ {
		var seen [256]bool
		var touched []byte
		max := 0
		for row := 0; row < depth; row++ {
			c := a.Cell(row, col)
			if !seen[c] {
				seen[c] = true
				touched = append(touched, c)
			}
			counts[c]++
			if counts[c] > max {
				max = counts[c]
			}
		}
		scores[col] = float64(max) / float64(depth)
		for _, c := range touched {
			counts[c] = 0
		}
	}
	a.conservation = scores
	return scores
}

// MeanConservation returns the average column score, or 0 for an empty
// alignment.
func (a *Alignment) MeanConservation() float64 {
	scores := a.Conservation()
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// MinConservation returns the lowest column score and its column index, or
// (0, -1) for an empty alignment.
func (a *Alignment) MinConservation() (float64, int) {
	scores := a.Conservation()
	if len(scores) == 0 {
		return 0, -1
	}
	min, at := scores[0], 0
	for i, s := range scores {
		if s < min {
			min, at = s, i
		}
	}
	return min, at
}
