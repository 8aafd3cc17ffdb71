// SPDX-License-Identifier: EPL-2.0

package wave

import "fmt"

// Format identifies a signed linear PCM sample format by its bit width.
// Only signed integer formats exist; unsigned or floating-point sample
// formats cannot be expressed and unknown widths fail validation.
type Format int

const (
	Int8  Format = 8
	Int16 Format = 16
	Int24 Format = 24
	Int32 Format = 32
)

// Valid reports whether f is one of the supported signed formats.
func (f Format) Valid() bool {
	switch f {
	case Int8, Int16, Int24, Int32:
		return true
	}

	return false
}

// Bits returns the sample width in bits.
func (f Format) Bits() int { return int(f) }

// Bytes returns the sample width in bytes.
func (f Format) Bytes() int { return int(f) / 8 }

// MaxAmplitude returns the largest representable sample value, 2^(bits-1)-1.
func (f Format) MaxAmplitude() int { return 1<<(uint(f)-1) - 1 }

// Min returns the smallest representable sample value, -2^(bits-1).
func (f Format) Min() int { return -(1 << (uint(f) - 1)) }

// Max returns the largest representable sample value. Same as MaxAmplitude.
func (f Format) Max() int { return 1<<(uint(f)-1) - 1 }

func (f Format) String() string {
	switch f {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int24:
		return "int24"
	case Int32:
		return "int32"
	}

	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromBits maps a bit depth to its Format.
// Returns ErrInvalidFormat for widths without a signed integer format.
func FormatFromBits(bits int) (Format, error) {
	f := Format(bits)
	if !f.Valid() {
		return 0, ErrInvalidFormat
	}

	return f, nil
}
