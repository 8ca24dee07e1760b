// SPDX-License-Identifier: MIT
// Package stats aggregates per-trial outcomes of a protocol run into an
// entanglement rate and summary figures.
//
// A trial outcome is the timestep (≥ 1) at which the users first shared a
// GHZ state, or NoSuccess when the timestep budget ran out.
package stats

import (
	"errors"
	"fmt"
)

// NoSuccess marks a trial that never succeeded within its timestep budget.
const NoSuccess = -1

// ErrArithmeticUndefined indicates a rate with a zero denominator.
var ErrArithmeticUndefined = errors.New("stats: rate undefined for zero total timesteps")

// Rate returns the GHZ states generated per timestep:
//
//	successes / (Σ success times + failures × timesteps)
//
// Returns ErrArithmeticUndefined when the denominator is zero (no trials,
// or no successes and timesteps == 0).
func Rate(times []int, timesteps int) (float64, error) {
	var successes, failures, total int
	for _, t := range times {
		if t == NoSuccess {
			failures++
			continue
		}
		successes++
		total += t
	}
	total += failures * timesteps
	if total == 0 {
		return 0, fmt.Errorf("%d trials, %d timesteps: %w", len(times), timesteps, ErrArithmeticUndefined)
	}

	return float64(successes) / float64(total), nil
}

// SuccessCount returns the number of trials that succeeded.
func SuccessCount(times []int) int {
	n := 0
	for _, t := range times {
		if t != NoSuccess {
			n++
		}
	}

	return n
}

// MeanSuccessTime averages the success timesteps of successful trials.
// It returns 0 when no trial succeeded.
func MeanSuccessTime(times []int) float64 {
	var n, sum int
	for _, t := range times {
		if t != NoSuccess {
			n++
			sum += t
		}
	}
	if n == 0 {
		return 0
	}

	return float64(sum) / float64(n)
}
