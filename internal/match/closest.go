package match

// closestThreshold is the minimum similarity score for a candidate to be
// worth suggesting.
const closestThreshold = 0.5

// Closest returns the candidate most similar to name, or false when no
// candidate clears the suggestion threshold. Ties keep the earliest
// candidate so suggestions are deterministic.
func Closest(name string, candidates []string) (string, bool) {
	best := ""
	bestScore := 0.0

	for _, c := range candidates {
		if score := Score(name, c); score > bestScore {
			best = c
			bestScore = score
		}
	}

	if bestScore < closestThreshold {
		return "", false
	}

	return best, true
}
