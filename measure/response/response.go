package response

import (
	"errors"
	"fmt"
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by response measurement functions.
var (
	ErrEmptyIR           = errors.New("response: impulse response is empty")
	ErrInvalidFFTSize    = errors.New("response: fft size must be a power of two >= 2")
	ErrIRTooLong         = errors.New("response: impulse response longer than fft size")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
	ErrInvalidFrequency  = errors.New("response: frequency must be in [0, nyquist]")
)

// Processor maps one input sample to one output sample.
type Processor interface {
	ProcessSample(x float64) float64
}

// ProcessorFunc adapts a plain function as a [Processor].
type ProcessorFunc func(x float64) float64

// ProcessSample calls f(x).
func (f ProcessorFunc) ProcessSample(x float64) float64 { return f(x) }

type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

// Impulse drives p with an impulse of the given amplitude followed by
// silence and returns n output samples divided by amplitude.
//
// p is advanced n samples and is not reset afterwards.
func Impulse(p Processor, amplitude float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if amplitude == 0 {
		amplitude = 1
	}

	out := make([]float64, n)
	out[0] = p.ProcessSample(amplitude) / amplitude
	for i := 1; i < n; i++ {
		out[i] = p.ProcessSample(0) / amplitude
	}

	return out
}

// Magnitude returns |H(k)| for k in [0, fftSize/2] of ir zero-padded to
// fftSize.
func Magnitude(ir []float64, fftSize int) ([]float64, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyIR
	}
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFFTSize, fftSize)
	}
	if len(ir) > fftSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrIRTooLong, len(ir), fftSize)
	}

	in := make([]complex128, fftSize)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan: %w", err)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, in); err != nil {
		return nil, fmt.Errorf("response: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re, im, buf := getScratch(bins)
	defer scratchPool.Put(buf)

	for k := range bins {
		re[k] = real(freq[k])
		im[k] = imag(freq[k])
	}

	out := make([]float64, bins)
	vecmath.Magnitude(out, re, im)

	return out, nil
}

// MagnitudeAt returns the magnitude of the bin nearest to freqHz.
func MagnitudeAt(ir []float64, freqHz, sampleRate float64, fftSize int) (float64, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, ErrInvalidSampleRate
	}
	if freqHz < 0 || freqHz > sampleRate/2 || math.IsNaN(freqHz) {
		return 0, fmt.Errorf("%w: %f", ErrInvalidFrequency, freqHz)
	}

	mag, err := Magnitude(ir, fftSize)
	if err != nil {
		return 0, err
	}

	bin := int(math.Round(freqHz * float64(fftSize) / sampleRate))
	bin = min(max(bin, 0), len(mag)-1)

	return mag[bin], nil
}

// MagnitudeDB converts linear magnitudes to dB (20*log10). Zero
// magnitudes map to -Inf.
func MagnitudeDB(mag []float64) []float64 {
	out := make([]float64, len(mag))
	for i, m := range mag {
		if m <= 0 {
			out[i] = math.Inf(-1)
			continue
		}
		out[i] = 20 * math.Log10(m)
	}
	return out
}
