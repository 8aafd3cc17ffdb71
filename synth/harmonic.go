// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/Xuanmizhen/visible-waves/wave"
)

const tau = 2 * math.Pi

// Harmonic renders a simple harmonic (sine) tone.
//
// Frame n holds round(amplitude × sin(2π·f·n/rate)) where amplitude is the
// format's positive full scale scaled by volume. Rendered values stay
// within [-amplitude, +amplitude], so the buffer always fits the format.
//
// Harmonic is a pure function: it validates, renders and returns an
// immutable Wave with no shared state.
func Harmonic(p Params) (*wave.Wave, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	amp := p.amplitude()
	rate := float64(p.SampleRate)
	samples := make([]int, p.frames())

	for n := range samples {
		samples[n] = int(math.Round(amp * math.Sin(tau*p.Frequency*float64(n)/rate)))
	}

	return wave.New(samples, p.Format, p.SampleRate)
}
