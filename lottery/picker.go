// Package lottery draws lottery numbers and orders them for display
package lottery

import (
	"errors"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrInvalidCount = errors.New("draw count must be at least 1")
	ErrInvalidRange = errors.New("pool must hold at least as many numbers as are drawn")
)

// Picker draws distinct numbers from 1..N
type Picker struct {
	rng RandomSource
}

// NewPicker creates a picker, nil rng selects DefaultRNG
func NewPicker(rng RandomSource) *Picker {
	if rng == nil {
		rng = DefaultRNG()
	}
	return &Picker{rng: rng}
}

// Pick returns k distinct numbers uniform in [1, n] in draw order.
// A candidate already drawn is rejected and resampled.
func (p *Picker) Pick(k, n int) ([]int, error) {
	if k < 1 {
		return nil, ErrInvalidCount
	}
	if n < 1 || k > n {
		return nil, ErrInvalidRange
	}

	numbers := make([]int, 0, k)
	for len(numbers) < k {
		candidate := p.rng.IntN(n) + 1
		if slices.Contains(numbers, candidate) {
			continue
		}
		numbers = append(numbers, candidate)
	}
	return numbers, nil
}

// SortNumbers returns an ascending copy, nums is left untouched
func SortNumbers(nums []int) []int {
	sorted := slices.Clone(nums)
	slices.Sort(sorted)
	return sorted
}

// FormatNumbers renders nums as "[a,b,c]"
func FormatNumbers(nums []int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, n := range nums {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(n))
	}
	sb.WriteByte(']')
	return sb.String()
}
