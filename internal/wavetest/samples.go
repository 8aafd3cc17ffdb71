// SPDX-License-Identifier: EPL-2.0

package wavetest

import (
	"math"
	"testing"

	"github.com/Xuanmizhen/visible-waves/wave"
)

// Const returns n samples all holding value v.
func Const(n, v int) []int {
	samples := make([]int, n)
	for i := range samples {
		samples[i] = v
	}

	return samples
}

// Ramp returns n samples counting up from start in steps of one.
func Ramp(n, start int) []int {
	samples := make([]int, n)
	for i := range samples {
		samples[i] = start + i
	}

	return samples
}

// Sine returns n samples of a rounded sine wave at the given frequency,
// sample rate and peak amplitude. It mirrors the production formula so
// tests can compare rendered buffers against a known-good reference.
func Sine(n int, frequency float64, rate, amplitude int) []int {
	samples := make([]int, n)
	for i := range samples {
		phase := 2 * math.Pi * frequency * float64(i) / float64(rate)
		samples[i] = int(math.Round(float64(amplitude) * math.Sin(phase)))
	}

	return samples
}

// MustWave builds a Wave or fails the test immediately.
func MustWave(t testing.TB, samples []int, format wave.Format, rate int) *wave.Wave {
	t.Helper()

	w, err := wave.New(samples, format, rate)
	if err != nil {
		t.Fatalf("wave.New() error = %v", err)
	}

	return w
}
