// SPDX-License-Identifier: EPL-2.0

package visiblewaves

import (
	"fmt"
	"io"

	"github.com/orcaman/writerseeker"

	"github.com/Xuanmizhen/visible-waves/synth"
	"github.com/Xuanmizhen/visible-waves/wave"
)

// Synthesize renders a waveform of the given kind from p.
//
// It is the package-level entry to the synth dispatch:
//
//	w, err := visiblewaves.Synthesize(synth.KindHarmonic, p)
//
// The returned Wave is immutable and ready to plot, encode or save.
func Synthesize(kind synth.Kind, p synth.Params) (*wave.Wave, error) {
	return synth.Generate(kind, p)
}

// WriteWAV synthesizes a waveform and saves it as an uncompressed mono PCM
// WAV file at path.
//
// Parameters:
//   - path: target file, created or truncated
//   - kind: waveform variant (synth.KindHarmonic, synth.KindSquare)
//   - p: synthesis parameters, validated before any sample is computed
//
// Example:
//
//	err := visiblewaves.WriteWAV("square.wav", synth.KindSquare, synth.Params{
//	    Frequency:  440,
//	    Format:     wave.Int8,
//	    SampleRate: 44100,
//	    Duration:   1.0,
//	    Volume:     0.5,
//	})
func WriteWAV(path string, kind synth.Kind, p synth.Params) error {
	w, err := synth.Generate(kind, p)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := w.Save(path); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// RenderWAV synthesizes a waveform and returns the complete WAV file as a
// byte slice, without touching the filesystem. The encoder needs a seekable
// target to finalize headers, so the rendering goes through an in-memory
// write seeker.
func RenderWAV(kind synth.Kind, p synth.Params) ([]byte, error) {
	w, err := synth.Generate(kind, p)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	buf := new(writerseeker.WriterSeeker)
	if err := w.Encode(buf); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	data, err := io.ReadAll(buf.Reader())
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return data, nil
}
