// SPDX-License-Identifier: EPL-2.0

package wave

import "math/big"

// Wave holds a single channel of signed integer PCM samples together with
// the sample rate they were rendered at. A Wave is immutable after New;
// there are no mutation methods.
type Wave struct {
	samples []int
	format  Format
	rate    int

	step     *big.Rat
	duration *big.Rat
}

// New builds a Wave from a 1-D sample buffer and a sample rate.
//
// The format must be valid, the rate positive, and every sample must fit
// the format range [format.Min(), format.Max()]. Out-of-range samples are
// rejected, never clamped or wrapped. An empty buffer is legal and encodes
// to a header-only WAV file.
//
// The returned Wave keeps the samples slice; callers must not modify it
// afterwards.
func New(samples []int, format Format, rate int) (*Wave, error) {
	if !format.Valid() {
		return nil, ErrInvalidFormat
	}

	if rate < 1 {
		return nil, ErrInvalidSampleRate
	}

	lo, hi := format.Min(), format.Max()
	for _, s := range samples {
		if s < lo || s > hi {
			return nil, ErrSampleOutOfRange
		}
	}

	step := big.NewRat(1, int64(rate))

	return &Wave{
		samples:  samples,
		format:   format,
		rate:     rate,
		step:     step,
		duration: new(big.Rat).Mul(big.NewRat(int64(len(samples)), 1), step),
	}, nil
}

// Samples returns the sample buffer. The slice is shared with the Wave and
// must be treated as read-only.
func (w *Wave) Samples() []int { return w.samples }

// Format returns the sample format of the buffer.
func (w *Wave) Format() Format { return w.format }

// SampleRate returns the sample rate in frames per second.
func (w *Wave) SampleRate() int { return w.rate }

// Frames returns the number of samples in the buffer.
func (w *Wave) Frames() int { return len(w.samples) }

// Step returns the exact duration of a single frame, 1/rate seconds.
// Exact rational arithmetic keeps long buffers free of floating drift.
func (w *Wave) Step() *big.Rat { return new(big.Rat).Set(w.step) }

// Duration returns the exact total duration, Frames()×Step() seconds.
func (w *Wave) Duration() *big.Rat { return new(big.Rat).Set(w.duration) }

// DurationSeconds returns the total duration as a float64 convenience.
func (w *Wave) DurationSeconds() float64 {
	f, _ := w.duration.Float64()
	return f
}
