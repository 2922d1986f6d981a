// Package wavio reads and writes PCM WAV files as float64 samples for the
// command-line tools.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	wavFormatPCM   = 1
	outputBitDepth = 16

	// 8-bit PCM is unsigned with silence at 128.
	unsignedBitDepth = 8
	unsignedOffset   = 128
)

// Errors returned by the WAV helpers.
var (
	ErrNotWavFile          = errors.New("wavio: not a valid WAV file")
	ErrUnsupportedFormat   = errors.New("wavio: only integer PCM WAV is supported")
	ErrInvalidChannelCount = errors.New("wavio: channel count must be > 0")
	ErrInterleaveMismatch  = errors.New("wavio: sample count is not a multiple of the channel count")
)

// Clip is a decoded mono signal.
type Clip struct {
	SampleRate int
	Samples    []float64
}

// ReadMono decodes a PCM WAV stream and averages all channels into one.
// Samples are scaled to [-1, 1) by the file's bit depth. 8-bit files are
// re-centred around zero first.
func ReadMono(r io.ReadSeeker) (Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Clip{}, ErrNotWavFile
	}
	if dec.WavAudioFormat != wavFormatPCM {
		return Clip{}, fmt.Errorf("%w: format %d", ErrUnsupportedFormat, dec.WavAudioFormat)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Clip{}, fmt.Errorf("wavio: decode: %w", err)
	}

	channels := int(dec.NumChans)
	if channels <= 0 {
		return Clip{}, ErrInvalidChannelCount
	}

	bitDepth := int(dec.BitDepth)
	offset := 0
	if bitDepth == unsignedBitDepth {
		offset = unsignedOffset
	}

	scale := 1 / math.Ldexp(1, bitDepth-1)
	frames := len(buf.Data) / channels
	out := make([]float64, frames)
	for i := range frames {
		sum := 0
		for ch := range channels {
			sum += buf.Data[i*channels+ch] - offset
		}
		out[i] = float64(sum) * scale / float64(channels)
	}

	return Clip{SampleRate: int(dec.SampleRate), Samples: out}, nil
}

// ReadMonoFile opens path and calls ReadMono.
func ReadMonoFile(path string) (Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return Clip{}, fmt.Errorf("wavio: %w", err)
	}
	defer f.Close()

	return ReadMono(f)
}

// Write encodes interleaved float samples as 16-bit PCM. Values outside
// [-1, 1] are clipped.
func Write(w io.WriteSeeker, sampleRate, channels int, interleaved []float64) error {
	if channels <= 0 {
		return ErrInvalidChannelCount
	}
	if len(interleaved)%channels != 0 {
		return fmt.Errorf("%w: %d samples, %d channels", ErrInterleaveMismatch, len(interleaved), channels)
	}

	const fullScale = 1<<(outputBitDepth-1) - 1

	data := make([]int, len(interleaved))
	for i, v := range interleaved {
		v = math.Max(-1, math.Min(1, v))
		data[i] = int(math.Round(v * fullScale))
	}

	enc := wav.NewEncoder(w, sampleRate, outputBitDepth, channels, wavFormatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: outputBitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavio: close: %w", err)
	}

	return nil
}

// WriteFile creates path and calls Write.
func WriteFile(path string, sampleRate, channels int, interleaved []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavio: %w", err)
	}

	if err := Write(f, sampleRate, channels, interleaved); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
