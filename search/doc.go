// Package search finds how many (HL) pairs a mirror needs for its
// transmittance to drop to a threshold.
//
// Starting from the single-layer stack AHG, LayerCount appends one pair at a
// time and re-evaluates until the chosen polarization's intensity is at or
// below the threshold, or until the pair limit is reached. Reaching the limit
// is reported with ErrLimitExceeded together with the partial Report, never
// by looping forever.
//
//	m, _ := mirror.New(math.Pi/6, 1.457, 2.4, 1.457)
//	rep, err := search.LayerCount(m, search.WithThreshold(0.002), search.WithLimit(10))
//	if errors.Is(err, search.ErrLimitExceeded) {
//		// increase the limit
//	}
//	fmt.Println(rep.Pairs) // 8
//
// Complexity: O(limit).
package search
