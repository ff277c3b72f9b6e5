// Package scoring holds the derived, read-only computations over the
// student collection. Every function here is pure: it takes the
// in-memory student slice and returns values, touching no storage.
//
// The marks mapping is open-ended (any subject set, per student); all
// computations read only its values, never a fixed key set.
package scoring

import (
	"math"
	"sort"

	"github.com/kunaltiwari/school-records/internal/types"
)

// PassMark is the minimum score a student must reach in EVERY subject
// to count as passing.
const PassMark = 32

// Result pairs a passing student's name with their marks, for display.
type Result struct {
	Name  string
	Marks map[string]int
}

// PercentageEntry is one student's percentage. Passed is false when
// any mark is below PassMark; Percent is meaningless in that case and
// displays as the "-" sentinel.
type PercentageEntry struct {
	Name    string
	Percent float64
	Passed  bool
}

// RankEntry is one passing student's 1-based rank by total marks.
type RankEntry struct {
	Name string
	Rank int
}

// passed reports whether every individual mark is at least PassMark.
// A student with no marks at all passes vacuously, same as before.
func passed(marks map[string]int) bool {
	for _, m := range marks {
		if m < PassMark {
			return false
		}
	}
	return true
}

// total sums the marks values.
func total(marks map[string]int) int {
	sum := 0
	for _, m := range marks {
		sum += m
	}
	return sum
}

// PassFail filters students down to those who passed every subject,
// preserving the original order. Applying it to its own output yields
// the same sequence.
func PassFail(students []types.Student) []Result {
	results := make([]Result, 0)
	for _, s := range students {
		if passed(s.Marks) {
			results = append(results, Result{Name: s.Name, Marks: s.Marks})
		}
	}
	return results
}

// Extremes reports the highest and lowest mark totals among passing
// students. ok is false when no student passes; the caller renders
// that as the "-" sentinel.
func Extremes(students []types.Student) (highest, lowest int, ok bool) {
	first := true
	for _, s := range students {
		if !passed(s.Marks) {
			continue
		}
		t := total(s.Marks)
		if first {
			highest, lowest, first = t, t, false
			continue
		}
		if t > highest {
			highest = t
		}
		if t < lowest {
			lowest = t
		}
	}
	return highest, lowest, !first
}

// Percentage computes one student's percentage: the mark total over
// the maximum possible (100 per subject), rounded to 3 decimal places.
// ok is false when the student failed any subject — a failing student
// has no percentage, regardless of anyone else's results.
func Percentage(marks map[string]int) (float64, bool) {
	if len(marks) == 0 || !passed(marks) {
		return 0, false
	}
	pct := float64(total(marks)) / float64(len(marks)*100) * 100
	return math.Round(pct*1000) / 1000, true
}

// PercentageForAll computes Percentage for every student, failing
// students included (as sentinel entries), in the original order.
func PercentageForAll(students []types.Student) []PercentageEntry {
	entries := make([]PercentageEntry, 0, len(students))
	for _, s := range students {
		pct, ok := Percentage(s.Marks)
		entries = append(entries, PercentageEntry{Name: s.Name, Percent: pct, Passed: ok})
	}
	return entries
}

// Rank orders the passing students by total marks, highest first, and
// assigns 1-based positional ranks. The sort is stable, so students
// with equal totals keep their insertion order and receive distinct
// consecutive ranks — there is no shared-rank handling.
func Rank(students []types.Student) []RankEntry {
	passing := make([]types.Student, 0)
	for _, s := range students {
		if passed(s.Marks) {
			passing = append(passing, s)
		}
	}

	sort.SliceStable(passing, func(i, j int) bool {
		return total(passing[i].Marks) > total(passing[j].Marks)
	})

	ranks := make([]RankEntry, 0, len(passing))
	for i, s := range passing {
		ranks = append(ranks, RankEntry{Name: s.Name, Rank: i + 1})
	}
	return ranks
}
