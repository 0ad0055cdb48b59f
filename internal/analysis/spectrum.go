// Package analysis provides offline frequency analysis of recorded frame
// traces, e.g. to read the bounce period of a body off its vertical
// position history.
package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude spectrum of a trace. The input is
// zero-padded to the next power of two; only the first half of the
// spectrum (up to the Nyquist bin) is returned.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}

	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)

	// Remove the mean so the DC bin does not drown the motion.
	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))
	for i := range data {
		padded[i] -= mean
	}

	spectrum := fft.FFTReal(padded)

	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency returns the strongest non-DC frequency in the power
// spectrum, in cycles per frame, given the padded transform size the
// spectrum was computed from.
func DominantFrequency(ps []float64) (binFraction float64, power float64) {
	maxIdx := 0
	maxPower := 0.0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}
	if maxIdx == 0 {
		return 0, 0
	}
	// len(ps) bins cover 0..Nyquist = 0..0.5 cycles/frame.
	return 0.5 * float64(maxIdx) / float64(len(ps)), maxPower
}
