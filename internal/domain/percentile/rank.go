package percentile

import "sort"

// Ranks returns 1-based fractional ranks of values. Equal values share the
// mean of the ranks they span, so [10 20 20 40] ranks as [1 2.5 2.5 4].
func Ranks(values []float64) []float64 {
	n := len(values)
	ranks := make([]float64, n)
	if n == 0 {
		return ranks
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})

	for start := 0; start < n; {
		end := start + 1
		for end < n && values[order[end]] == values[order[start]] {
			end++
		}
		// positions start..end-1 hold ranks start+1..end
		avg := float64(start+1+end) / 2
		for k := start; k < end; k++ {
			ranks[order[k]] = avg
		}
		start = end
	}
	return ranks
}

// Percentiles scales Ranks to rank/n*100.
func Percentiles(values []float64) []float64 {
	ranks := Ranks(values)
	n := float64(len(values))
	for i, r := range ranks {
		ranks[i] = r / n * 100
	}
	return ranks
}
