package kasiski

// Divisors returns every d in [2, gap] that divides gap, ascending.
// A gap below 2 has no divisors.
func Divisors(gap int) []int {
	if gap < 2 {
		return []int{}
	}
	divs := make([]int, 0, 8)
	for d := 2; d <= gap; d++ {
		if gap%d == 0 {
			divs = append(divs, d)
		}
	}
	return divs
}
