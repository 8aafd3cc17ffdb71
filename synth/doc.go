// SPDX-License-Identifier: EPL-2.0

// Package synth renders mono waveform buffers from a parameter bundle.
//
// Generators are pure functions: they validate their parameters, compute a
// sample buffer in one pass, and hand it to the wave package. There is no
// waveform type hierarchy; the closed set of variants is a Kind value
// dispatched by Generate.
//
// # Parameters
//
// Every generator takes the same Params:
//
//	p := synth.Params{
//	    Frequency:  440,
//	    Format:     wave.Int8,
//	    SampleRate: 44100,
//	    Duration:   1.0,
//	    Volume:     0.5,
//	}
//
// Validation happens before any sample is computed. Invalid formats,
// non-positive rates or frequencies, negative durations and volumes outside
// [0, 1] are rejected with sentinel errors.
//
// # Waveforms
//
// Harmonic renders a sine tone:
//
//	w, err := synth.Harmonic(p)
//
// Square renders a square wave with an exact rational half period:
//
//	w, err := synth.Square(p)
//
// Generate dispatches over the Kind union:
//
//	w, err := synth.Generate(synth.KindSquare, p)
//
// # Amplitude
//
// The peak value is (2^(bits-1) - 1) × volume, so a full-volume int8 tone
// peaks at ±127 and a half-volume one at ±64. Rendered samples always fit
// the requested format; no clamping is ever needed.
//
// # Determinism
//
// The same Params always render the same buffer. The square generator walks
// the half-period grid with exact integer arithmetic, so its phase is drift
// free at any buffer length. The harmonic generator evaluates the sine per
// frame from the frame index rather than accumulating phase.
package synth
