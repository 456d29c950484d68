package kasiski

import (
	"runtime"
	"sync"
)

// FindRepeats scans text for substrings of length minLen..maxLen that occur
// at least twice. Lengths are scanned in ascending order and offsets left to
// right, so the result is ordered by length, then by the position at which
// the second occurrence was found.
//
// Only the first two occurrences of a substring are reported for each
// length; a third or later occurrence produces no additional Match.
// Offsets count characters, not bytes. minLen > maxLen yields nil.
func FindRepeats(text string, minLen, maxLen int) []Match {
	runes, minLen, ok := prepare(text, minLen, maxLen)
	if !ok {
		return nil
	}

	var matches []Match
	for l := minLen; l <= maxLen && l <= len(runes); l++ {
		matches = append(matches, scanLength(runes, l)...)
	}
	return matches
}

// FindRepeatsParallel returns the same result as FindRepeats, scanning each
// length on a pool of workers. workers <= 0 uses GOMAXPROCS.
func FindRepeatsParallel(text string, minLen, maxLen, workers int) []Match {
	runes, minLen, ok := prepare(text, minLen, maxLen)
	if !ok {
		return nil
	}
	if maxLen > len(runes) {
		maxLen = len(runes)
	}
	if minLen > maxLen {
		return nil
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	lengths := maxLen - minLen + 1
	if workers > lengths {
		workers = lengths
	}

	perLength := make([][]Match, lengths)
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for l := range jobs {
				perLength[l-minLen] = scanLength(runes, l)
			}
		}()
	}
	for l := minLen; l <= maxLen; l++ {
		jobs <- l
	}
	close(jobs)
	wg.Wait()

	var matches []Match
	for _, ms := range perLength {
		matches = append(matches, ms...)
	}
	return matches
}

func prepare(text string, minLen, maxLen int) ([]rune, int, bool) {
	if minLen < 1 {
		minLen = 1
	}
	if minLen > maxLen || text == "" {
		return nil, minLen, false
	}
	return []rune(text), minLen, true
}

// scanLength reports the first repeated pair of every substring of length l.
func scanLength(runes []rune, l int) []Match {
	var matches []Match
	// first sighting offset; -1 once the pair has been reported
	seen := make(map[string]int)
	for i := 0; i+l <= len(runes); i++ {
		seq := string(runes[i : i+l])
		first, ok := seen[seq]
		if !ok {
			seen[seq] = i
			continue
		}
		if first < 0 {
			continue
		}
		gap := i - first
		matches = append(matches, Match{
			Sequence:  seq,
			Length:    l,
			FirstPos:  first,
			SecondPos: i,
			Gap:       gap,
			Divisors:  Divisors(gap),
		})
		seen[seq] = -1
	}
	return matches
}
