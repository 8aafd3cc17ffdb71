// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"math/big"

	"github.com/Xuanmizhen/visible-waves/wave"
)

// Square renders a square wave.
//
// The half period rate/(2·f) frames is kept as an exact rational: frame n
// lies in half period k = floor(2·f·n/rate) and holds +amplitude when k is
// even, -amplitude when k is odd. Integer bookkeeping over the exact ratio
// means the phase never drifts, however long the buffer.
func Square(p Params) (*wave.Wave, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	hi := int(math.Round(p.amplitude()))
	lo := -hi
	samples := make([]int, p.frames())

	// Decompose the frequency into an exact numerator/denominator pair.
	// Every float64 is a dyadic rational, so SetFloat64 is lossless.
	freq := new(big.Rat).SetFloat64(p.Frequency)
	step := new(big.Int).Mul(big.NewInt(2), freq.Num())
	den := new(big.Int).Mul(freq.Denom(), big.NewInt(int64(p.SampleRate)))

	// k = floor(2·f·n/rate) advances by rem accumulation: carry the
	// remainder forward and flip parity when the quotient step is odd.
	rem := new(big.Int)
	quo := new(big.Int)
	even := true

	for n := range samples {
		if n > 0 {
			rem.Add(rem, step)
			quo.DivMod(rem, den, rem)
			if quo.Bit(0) == 1 {
				even = !even
			}
		}

		if even {
			samples[n] = hi
		} else {
			samples[n] = lo
		}
	}

	return wave.New(samples, p.Format, p.SampleRate)
}
