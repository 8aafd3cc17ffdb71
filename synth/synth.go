// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/Xuanmizhen/visible-waves/wave"
)

// Kind selects a waveform variant. The set is closed: generators are plain
// functions dispatched over Kind, there is no open registration.
type Kind int

const (
	KindHarmonic Kind = iota
	KindSquare
)

func (k Kind) String() string {
	switch k {
	case KindHarmonic:
		return "harmonic"
	case KindSquare:
		return "square"
	}

	return "unknown"
}

// Params bundles the inputs shared by every generator.
type Params struct {
	// Frequency of the waveform in Hz. Must be positive. Frequencies above
	// the Nyquist rate are not rejected; the rendered samples alias.
	Frequency float64
	// Format is the signed sample format of the rendered buffer.
	Format wave.Format
	// SampleRate in frames per second.
	SampleRate int
	// Duration of the rendered buffer in seconds.
	Duration float64
	// Volume scales the amplitude, 0.0 (silence) to 1.0 (full scale).
	Volume float64
}

// Validate reports the first invalid field. Generators call it before any
// sample is computed.
func (p Params) Validate() error {
	if !p.Format.Valid() {
		return wave.ErrInvalidFormat
	}

	if p.SampleRate < 1 {
		return wave.ErrInvalidSampleRate
	}

	if math.IsNaN(p.Frequency) || math.IsInf(p.Frequency, 0) || p.Frequency <= 0 {
		return ErrInvalidFrequency
	}

	if math.IsNaN(p.Duration) || math.IsInf(p.Duration, 0) || p.Duration < 0 {
		return ErrInvalidDuration
	}

	if !(p.Volume >= 0 && p.Volume <= 1) {
		return ErrVolumeOutOfRange
	}

	return nil
}

// frames returns the number of samples to render, round(duration × rate).
func (p Params) frames() int {
	return int(math.Round(p.Duration * float64(p.SampleRate)))
}

// amplitude returns the peak sample value, (2^(bits-1)-1) × volume.
func (p Params) amplitude() float64 {
	return float64(p.Format.MaxAmplitude()) * p.Volume
}

// Generate renders a waveform of the given kind.
func Generate(kind Kind, p Params) (*wave.Wave, error) {
	switch kind {
	case KindHarmonic:
		return Harmonic(p)
	case KindSquare:
		return Square(p)
	}

	return nil, ErrUnknownKind
}
