// SPDX-License-Identifier: EPL-2.0

// Package visiblewaves synthesizes mono audio waveforms, renders them as
// scatter plots, and writes them to uncompressed WAV files.
//
// The package composes three concerns, each living in its own subpackage:
//   - Sample synthesis (simple harmonic and square waves) via synth
//   - A validated, immutable sample container with a WAV codec via wave
//   - Scatter-plot rendering via plot
//
// # Quick Start
//
// The simplest way to produce a tone file is WriteWAV:
//
//	p := synth.Params{
//	    Frequency:  440,
//	    Format:     wave.Int8,
//	    SampleRate: 44100,
//	    Duration:   1.0,
//	    Volume:     0.5,
//	}
//
//	err := visiblewaves.WriteWAV("simple_harmonic.wav", synth.KindHarmonic, p)
//
// # Synthesis
//
// Waveform kinds form a closed set dispatched over synth.Kind:
//
//	w, err := visiblewaves.Synthesize(synth.KindSquare, p)
//
// Generators are pure: the same parameters always render the same buffer,
// and the result is immutable.
//
// # In-Memory Rendering
//
// RenderWAV returns the complete WAV file as bytes without touching disk:
//
//	data, err := visiblewaves.RenderWAV(synth.KindHarmonic, p)
//	// data[0:4] == "RIFF"
//
// # Visualization
//
// The plot subpackage draws a scatter of (time, amplitude) for the start of
// a buffer and writes it as a PNG image:
//
//	err := plot.ScatterPNG(w, "Simple Harmonic Wave", "tone.png")
//
// # WAV Output
//
// Files are canonical single-channel RIFF/WAVE, PCM, no compression, with
// the sample width and frame rate taken from the Wave. They can be read
// back with wave.Decode, which round-trips the integer sample buffer
// exactly.
//
// # Error Handling
//
// Invalid parameters are rejected with sentinel errors before any sample is
// computed; file I/O failures propagate to the caller with no retry. All
// failures are fatal error returns, there is no partial-result mode.
//
// See the examples/tones program for a complete runnable demo.
package visiblewaves
