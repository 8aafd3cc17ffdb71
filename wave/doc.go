// SPDX-License-Identifier: EPL-2.0

// Package wave provides the mono PCM sample container and its WAV codec.
//
// A Wave owns an ordered, one-dimensional buffer of signed integer samples,
// a sample rate, and exact rational step and total durations derived from
// them. Waves are immutable after construction.
//
// # Construction
//
// Build a Wave from a sample buffer, a Format and a sample rate:
//
//	samples := []int{0, 90, 127, 90, 0, -90, -127, -90}
//	w, err := wave.New(samples, wave.Int8, 8)
//	if err != nil {
//	    // Handle error
//	}
//
// New validates its inputs: the format must be one of the signed integer
// formats, the rate must be positive, and every sample must fit the format
// range. Out-of-range samples are an error, never silently clamped or
// wrapped.
//
// # Sample Formats
//
// Supported formats are signed linear PCM at 8, 16, 24 and 32 bits:
//
//	wave.Int8.MaxAmplitude()  // 127
//	wave.Int16.MaxAmplitude() // 32767
//	wave.Int24.MaxAmplitude() // 8388607
//	wave.Int32.MaxAmplitude() // 2147483647
//
// Unsigned and floating-point buffers have no Format value, so they are
// rejected before any computation can see them.
//
// # Exact Timing
//
// Step() and Duration() are math/big rationals:
//
//	w.Step()     // exactly 1/rate seconds
//	w.Duration() // exactly Frames()/rate seconds
//
// Rational arithmetic avoids cumulative floating error across long buffers.
//
// # Writing WAV Files
//
// Save writes a canonical single-channel, uncompressed PCM WAV file:
//
//	err := w.Save("tone.wav")
//
// Encode does the same to any io.WriteSeeker, which allows in-memory
// rendering. The codec is github.com/go-audio/wav; Buffer() exposes the
// samples as a go-audio IntBuffer for other go-audio consumers.
//
// # Reading WAV Files
//
// Decode reads back the files this package writes:
//
//	f, _ := os.Open("tone.wav")
//	w, err := wave.Decode(f)
//
// Decode rejects non-WAV input (ErrNotWave), multi-channel data
// (ErrNotMono) and unsupported bit depths (ErrInvalidFormat).
//
// # Error Handling
//
// All failure cases use package sentinel errors, so callers can test with
// errors.Is:
//
//	_, err := wave.New([]int{128}, wave.Int8, 8000)
//	if errors.Is(err, wave.ErrSampleOutOfRange) {
//	    // 128 does not fit int8
//	}
package wave
