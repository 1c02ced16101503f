package systems

// Histogram is the polar obstacle density, one value per sector, index-aligned
// with the Scan it was built from.
type Histogram []float64

// BuildHistogram converts range readings into inverse-distance densities.
// Readings below minDistance are raised to it first, which keeps every
// density finite and positive for any minDistance > 0.
//
// Neighboring sectors are not smoothed.
func BuildHistogram(distances []float64, minDistance float64) Histogram {
	h := make(Histogram, len(distances))
	for i, d := range distances {
		if d < minDistance {
			d = minDistance
		}
		h[i] = 1.0 / d
	}
	return h
}
