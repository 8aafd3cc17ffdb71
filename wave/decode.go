// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
)

// Decode reads a single-channel PCM WAV stream back into a Wave.
//
// It accepts the files Encode produces: mono, uncompressed, with one of the
// supported bit depths. 8-bit WAV data is stored as raw bytes; it is
// reinterpreted as two's complement so Decode(Encode(w)) returns w's
// samples unchanged.
func Decode(r io.ReadSeeker) (*Wave, error) {
	dec := gowav.NewDecoder(r)

	if !dec.IsValidFile() {
		return nil, ErrNotWave
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if buf.Format == nil || buf.Format.NumChannels != 1 {
		return nil, ErrNotMono
	}

	format, err := FormatFromBits(int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	samples := buf.Data
	if samples == nil {
		samples = []int{}
	}

	if format == Int8 {
		for i, s := range samples {
			samples[i] = int(int8(uint8(s)))
		}
	}

	return New(samples, format, buf.Format.SampleRate)
}
