// Package ticker discretises continuous clock time into periodic steps.
package ticker

import (
	"errors"
	"math"

	"github.com/delaneyj/signalscene/alien"
	"github.com/delaneyj/signalscene/clock"
)

// ErrEmptySequence is returned by TickIterate when there is nothing to cycle.
var ErrEmptySequence = errors.New("ticker: empty value sequence")

// Tick counts periods elapsed since creation. Index 0 holds for delay
// milliseconds, then the index increments every period.
//
// period must be positive. A non-positive period is a caller error and the
// index stays 0.
func Tick(rs *alien.ReactiveSystem, clk clock.Source, period, delay float64) *alien.ReadonlySignal[int] {
	start := clk.Peek() + delay
	return alien.Computed(rs, func(int) int {
		if period <= 0 {
			return 0
		}
		since := max(0, clk.Now()-start)
		return int(math.Floor(since / period))
	})
}

// TickBool flips every period, starting false.
func TickBool(rs *alien.ReactiveSystem, clk clock.Source, period, delay float64) *alien.ReadonlySignal[bool] {
	idx := Tick(rs, clk, period, delay)
	return alien.Computed(rs, func(bool) bool {
		return idx.Value()%2 == 1
	})
}

// TickIterate cycles through values, advancing one element per period.
func TickIterate[T comparable](rs *alien.ReactiveSystem, clk clock.Source, period, delay float64, values []T) (*alien.ReadonlySignal[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptySequence
	}
	values = append([]T(nil), values...)
	idx := Tick(rs, clk, period, delay)
	return alien.Computed(rs, func(T) T {
		return values[idx.Value()%len(values)]
	}), nil
}
