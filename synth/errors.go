// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	ErrUnknownKind      = errors.New("unknown waveform kind")
	ErrInvalidFrequency = errors.New("frequency must be positive and finite")
	ErrInvalidDuration  = errors.New("duration must be a non-negative finite number")
	ErrVolumeOutOfRange = errors.New("volume must be between 0 and 1")
)
