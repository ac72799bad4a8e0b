package rasterlab

// Dedup returns the points with repeated cells removed, keeping the first
// occurrence of each cell and the original order otherwise.
//
// The rasterizers never deduplicate their own output. Dedup is a separate
// post-processing step for renderers that only care about the set of
// covered cells. The input slice is not modified.
func Dedup(points []GridPoint) []GridPoint {
	seen := make(map[GridPoint]struct{}, len(points))
	out := make([]GridPoint, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
