// Command sfxscan runs the sfx signal-conditioning primitives over a WAV
// file and writes their per-sample outputs as a multi-channel debug WAV.
//
// Usage:
//
//	sfxscan [flags] input.wav
//	sfxscan -response [flags]
//
// The debug file has seven channels: normalized input, smoothed envelope,
// onset value, zero-cross pulse, peak pulse, peak envelope and the attack
// level follower. Detected onsets are printed as a table on stdout.
//
// Examples:
//
//	sfxscan guitar.wav
//	sfxscan -sensitivity 0.7 -decay 80 -out debug.wav guitar.wav
//	sfxscan -downsample half.wav guitar.wav
//	sfxscan -response -smooth-base 20 -rate 44100
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/dsp/filter/smoother"
	"github.com/cwbudde/algo-sfx/internal/wavio"
	"github.com/cwbudde/algo-sfx/measure/response"
)

const responseFFTSize = 1 << 16

var responseFrequencies = []float64{10, 20, 50, 100, 200, 500, 1000, 2000, 5000, 10000}

func main() {
	defaults := defaultScanConfig()

	out := flag.String("out", "", "debug WAV path (default: <input>_sfx.wav)")
	half := flag.String("downsample", "", "also write a half-rate copy of the input to this path (even sample rates only)")
	showResponse := flag.Bool("response", false, "print the smoother's small-signal magnitude response and exit")
	rate := flag.Float64("rate", 48000, "sample rate for -response")
	sensitivity := flag.Float64("sensitivity", defaults.onsetSensitivity, "onset detector sensitivity")
	decayMs := flag.Float64("decay", defaults.decay.Milliseconds(), "onset envelope decay in ms")
	zcHyst := flag.Float64("zc-hysteresis", defaults.zeroCrossHyst, "zero-cross hysteresis width")
	peakSense := flag.Float64("peak-sensitivity", defaults.peakSensitivity, "peak detector envelope droop")
	peakHyst := flag.Float64("peak-hysteresis", defaults.peakHyst, "peak detector hysteresis width")
	smoothBase := flag.Float64("smooth-base", defaults.smoothBase.Hz(), "smoother base cutoff in Hz")
	smoothSense := flag.Float64("smooth-sensitivity", defaults.smoothSense, "smoother sensitivity")
	attackMs := flag.Float64("attack", defaults.attack.Milliseconds(), "attack level follower time in ms")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sfxscan [flags] input.wav\n")
		fmt.Fprintf(os.Stderr, "       sfxscan -response [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Runs onset, zero-cross and peak detection plus dynamic smoothing\n")
		fmt.Fprintf(os.Stderr, "over a WAV file and writes a multi-channel debug WAV.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := scanConfig{
		onsetSensitivity: *sensitivity,
		decay:            core.Milliseconds(*decayMs),
		zeroCrossHyst:    *zcHyst,
		peakSensitivity:  *peakSense,
		peakHyst:         *peakHyst,
		smoothBase:       core.Hz(*smoothBase),
		smoothSense:      *smoothSense,
		attack:           core.Milliseconds(*attackMs),
	}

	if *showResponse {
		if err := printResponse(os.Stdout, *rate, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	input := flag.Arg(0)
	if *out == "" {
		*out = strings.TrimSuffix(input, filepath.Ext(input)) + "_sfx.wav"
	}

	if err := scanFile(input, *out, *half, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func scanFile(input, output, halfRate string, cfg scanConfig) error {
	clip, err := wavio.ReadMonoFile(input)
	if err != nil {
		return err
	}

	halfRateHz := 0
	if halfRate != "" {
		if halfRateHz, err = halfSampleRate(clip.SampleRate); err != nil {
			return err
		}
	}

	s, err := newScanner(float64(clip.SampleRate), cfg)
	if err != nil {
		return err
	}

	res := s.run(clip.Samples)
	if err := wavio.WriteFile(output, clip.SampleRate, res.Channels, res.Debug); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%d channels, %d frames)\n", output, res.Channels, len(clip.Samples))

	if halfRate != "" {
		if err := wavio.WriteFile(halfRate, halfRateHz, 1, downsample(clip.Samples)); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s (%d Hz)\n", halfRate, halfRateHz)
	}

	return printOnsets(os.Stdout, res.Onsets)
}

func printOnsets(w io.Writer, onsets []onsetEvent) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "#\tSample\tTime [s]\tPeak\tPeak [dB]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for i, o := range onsets {
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%.4f\t%.4f\t%.2f\n",
			i+1, o.Index, o.Time, o.Peak, core.LinearToDB(o.Peak)); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	return tw.Flush()
}

func printResponse(w io.Writer, sampleRate float64, cfg scanConfig) error {
	s, err := smoother.New(sampleRate,
		smoother.WithBaseFrequency(cfg.smoothBase),
		smoother.WithSensitivity(cfg.smoothSense),
	)
	if err != nil {
		return err
	}

	// A tiny impulse keeps the self-modulation out of the measurement.
	ir := response.Impulse(s, 1e-9, responseFFTSize)
	mag, err := response.Magnitude(ir, responseFFTSize)
	if err != nil {
		return err
	}
	db := response.MagnitudeDB(mag)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Frequency [Hz]\tGain\tGain [dB]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, f := range responseFrequencies {
		if f > sampleRate/2 {
			break
		}
		bin := int(f*responseFFTSize/sampleRate + 0.5)
		if _, err := fmt.Fprintf(tw, "%.0f\t%.6f\t%.2f\n", f, mag[bin], db[bin]); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	return tw.Flush()
}
