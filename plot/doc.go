// SPDX-License-Identifier: EPL-2.0

// Package plot renders waveform buffers as scatter plots.
//
// Plots are built with gonum.org/v1/plot and returned as explicit
// *plot.Plot values. Nothing in this package keeps figure state between
// calls; every plot belongs to its caller.
//
// # Building a Plot
//
//	w, _ := synth.Harmonic(p)
//	fig, err := plot.Scatter(w, "Simple Harmonic Wave")
//
// The scatter shows (time, amplitude) points for frames within
// [0, 256/rate) seconds — a close-up of the buffer start where single
// samples are still distinguishable. The X axis is labeled in seconds.
//
// # Writing Images
//
//	err := plot.SavePNG(fig, "tone.png")
//
// or in one step:
//
//	err := plot.ScatterPNG(w, "Square Wave", "square.png")
//
// Rendering is purely a visualization aid; the sample data is never
// modified.
package plot
