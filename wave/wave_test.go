// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"errors"
	"math/big"
	"testing"
)

func TestNew_Valid(t *testing.T) {
	t.Parallel()

	samples := []int{0, 90, 127, 90, 0, -90, -127, -90}

	w, err := New(samples, Int8, 8)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if w.Frames() != 8 {
		t.Errorf("Frames() = %d, want 8", w.Frames())
	}

	if w.Format() != Int8 {
		t.Errorf("Format() = %v, want Int8", w.Format())
	}

	if w.SampleRate() != 8 {
		t.Errorf("SampleRate() = %d, want 8", w.SampleRate())
	}

	got := w.Samples()
	for i, s := range samples {
		if got[i] != s {
			t.Errorf("Samples()[%d] = %d, want %d", i, got[i], s)
		}
	}
}

func TestNew_InvalidFormat(t *testing.T) {
	t.Parallel()

	for _, format := range []Format{0, 7, 12, 64} {
		_, err := New([]int{0}, format, 8000)
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("New(format=%d) error = %v, want ErrInvalidFormat", int(format), err)
		}
	}
}

func TestNew_InvalidSampleRate(t *testing.T) {
	t.Parallel()

	for _, rate := range []int{0, -1, -44100} {
		_, err := New([]int{0}, Int16, rate)
		if !errors.Is(err, ErrInvalidSampleRate) {
			t.Errorf("New(rate=%d) error = %v, want ErrInvalidSampleRate", rate, err)
		}
	}
}

func TestNew_SampleRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		samples []int
		format  Format
		wantErr bool
	}{
		{"int8 boundaries fit", []int{-128, 127}, Int8, false},
		{"int8 above max", []int{128}, Int8, true},
		{"int8 below min", []int{-129}, Int8, true},
		{"int16 boundaries fit", []int{-32768, 32767}, Int16, false},
		{"int16 above max", []int{32768}, Int16, true},
		{"int24 above max", []int{8388608}, Int24, true},
		{"late offender", []int{0, 1, 2, 3, 1000}, Int8, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.samples, tt.format, 8000)
			if tt.wantErr {
				if !errors.Is(err, ErrSampleOutOfRange) {
					t.Errorf("New() error = %v, want ErrSampleOutOfRange", err)
				}
			} else if err != nil {
				t.Errorf("New() error = %v, want nil", err)
			}
		})
	}
}

func TestNew_EmptySamples(t *testing.T) {
	t.Parallel()

	w, err := New(nil, Int16, 44100)
	if err != nil {
		t.Fatalf("New(nil) error = %v", err)
	}

	if w.Frames() != 0 {
		t.Errorf("Frames() = %d, want 0", w.Frames())
	}

	if w.Duration().Sign() != 0 {
		t.Errorf("Duration() = %v, want 0", w.Duration())
	}
}

func TestWave_StepAndDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		frames       int
		rate         int
		wantStep     *big.Rat
		wantDuration *big.Rat
	}{
		{"half second at 44100", 22050, 44100, big.NewRat(1, 44100), big.NewRat(1, 2)},
		{"one second at 8000", 8000, 8000, big.NewRat(1, 8000), big.NewRat(1, 1)},
		{"single frame", 1, 3, big.NewRat(1, 3), big.NewRat(1, 3)},
		{"empty", 0, 48000, big.NewRat(1, 48000), new(big.Rat)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, err := New(make([]int, tt.frames), Int16, tt.rate)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			if w.Step().Cmp(tt.wantStep) != 0 {
				t.Errorf("Step() = %v, want %v", w.Step(), tt.wantStep)
			}

			if w.Duration().Cmp(tt.wantDuration) != 0 {
				t.Errorf("Duration() = %v, want %v", w.Duration(), tt.wantDuration)
			}
		})
	}
}

func TestWave_StepReturnsCopy(t *testing.T) {
	t.Parallel()

	w, err := New([]int{0, 0}, Int16, 10)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	step := w.Step()
	step.SetInt64(99)

	if w.Step().Cmp(big.NewRat(1, 10)) != 0 {
		t.Error("mutating the returned Step() changed the Wave's rational")
	}
}

func TestWave_DurationSeconds(t *testing.T) {
	t.Parallel()

	w, err := New(make([]int, 22050), Int16, 44100)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := w.DurationSeconds(); got != 0.5 {
		t.Errorf("DurationSeconds() = %v, want 0.5", got)
	}
}

func BenchmarkNew(b *testing.B) {
	samples := make([]int, 44100)
	for i := range samples {
		samples[i] = i % 128
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = New(samples, Int8, 44100)
	}
}
