// SPDX-License-Identifier: EPL-2.0

package wave

import "errors"

var (
	ErrInvalidFormat     = errors.New("invalid sample format")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrSampleOutOfRange  = errors.New("sample out of format range")
	ErrNotWave           = errors.New("not a WAV file")
	ErrNotMono           = errors.New("only mono PCM supported")
)
