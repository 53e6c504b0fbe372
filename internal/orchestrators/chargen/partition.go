package chargen

import (
	"github.com/natelandau/valentina-sub000/internal/entities/wod"
	"github.com/natelandau/valentina-sub000/internal/errors"
	"github.com/natelandau/valentina-sub000/internal/pkg/rng"
)

// validatePartition rejects totals that cannot be represented within
// the bounds. Hitting this is a dot-budget configuration bug, not a
// runtime condition.
func validatePartition(total, count, maxValue, minValue int) error {
	if count <= 0 {
		return errors.InfeasiblePartitionf("cannot partition into %d parts", count)
	}
	if minValue > maxValue {
		return errors.InfeasiblePartitionf(
			"min value %d exceeds max value %d", minValue, maxValue)
	}
	if total < count*minValue || total > count*maxValue {
		return errors.InfeasiblePartitionf(
			"cannot divide %d dots into %d parts within [%d, %d]",
			total, count, minValue, maxValue)
	}
	return nil
}

// PartitionEven splits total into count parts in [minValue, maxValue]
// summing exactly to total. Raw shares come from recursively halving
// the total with random jitter, so parts stay near-uniform. Used for
// small groups like the three attribute traits.
func PartitionEven(r rng.Roller, total, count, maxValue, minValue int) ([]int, error) {
	if err := validatePartition(total, count, maxValue, minValue); err != nil {
		return nil, err
	}

	values := evenShares(r, total, count)
	for i, v := range values {
		values[i] = clamp(v, minValue, maxValue)
	}
	correct(r, values, total, maxValue, minValue)
	return values, nil
}

// PartitionNormal splits total into count parts in [minValue, maxValue]
// summing exactly to total. Raw shares are drawn from the level's
// normal distribution, which skews dots toward a few strong traits.
// Used for larger groups like abilities and backgrounds.
func PartitionNormal(r rng.Roller, total, count, maxValue, minValue int, level wod.Level) ([]int, error) {
	if err := validatePartition(total, count, maxValue, minValue); err != nil {
		return nil, err
	}

	mean, stddev := level.Params()
	values := make([]int, count)
	for i := range values {
		values[i] = clamp(int(r.Norm(mean, stddev)), minValue, maxValue)
	}
	correct(r, values, total, maxValue, minValue)
	return values, nil
}

// evenShares recursively halves total with a small random jitter on
// each split point
func evenShares(r rng.Roller, total, count int) []int {
	if count == 1 {
		return []int{total}
	}

	half := count / 2
	left := total * half / count
	if total > 0 {
		left += r.Intn(3) - 1
	}
	left = clamp(left, 0, total)

	return append(evenShares(r, left, half), evenShares(r, total-left, count-half)...)
}

// correct nudges random eligible elements by one dot at a time until
// the values sum to total. Feasibility was validated up front, so some
// element can always still move and the loop terminates.
func correct(r rng.Roller, values []int, total, maxValue, minValue int) {
	sum := 0
	for _, v := range values {
		sum += v
	}

	for sum != total {
		i := r.Intn(len(values))
		switch {
		case sum < total && values[i] < maxValue:
			values[i]++
			sum++
		case sum > total && values[i] > minValue:
			values[i]--
			sum--
		}
	}
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
