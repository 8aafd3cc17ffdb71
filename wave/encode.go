// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// WAV audio format tag for uncompressed PCM.
const pcmFormat = 1

// Buffer returns the samples as a go-audio integer buffer, the interchange
// type used by the WAV codec. The buffer shares the Wave's sample slice.
func (w *Wave) Buffer() *goaudio.IntBuffer {
	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  w.rate,
		},
		Data:           w.samples,
		SourceBitDepth: w.format.Bits(),
	}
}

// Encode writes the Wave as a single-channel, uncompressed PCM WAV stream.
// The sample width comes from the Wave's format and the frame rate from its
// sample rate. Headers are finalized on every path.
func (w *Wave) Encode(ws io.WriteSeeker) error {
	enc := gowav.NewEncoder(ws, w.rate, w.format.Bits(), 1, pcmFormat)

	if err := enc.Write(w.Buffer()); err != nil {
		enc.Close()
		return fmt.Errorf("%w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Save writes the Wave to a WAV file at path. The file handle is closed on
// every exit path, including encode failures. Fails if the target path
// cannot be opened for writing; I/O errors propagate to the caller.
func (w *Wave) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w", cerr)
		}
	}()

	return w.Encode(f)
}
