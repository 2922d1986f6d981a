package wavio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-sfx/internal/testutil"
)

const lsb = 1.0 / 32768

func TestWriteReadMono(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.wav")
	in := []float64{0, 0.5, -0.5, 0.25, 1, -1}

	if err := WriteFile(path, 44100, 1, in); err != nil {
		t.Fatal(err)
	}

	clip, err := ReadMonoFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if clip.SampleRate != 44100 {
		t.Fatalf("sampleRate=%d want=44100", clip.SampleRate)
	}
	testutil.RequireSliceNearlyEqual(t, clip.Samples, in, lsb)
}

func TestReadMonoAveragesChannels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")
	interleaved := []float64{
		0.5, -0.5,
		0.5, 0.5,
		-0.25, -0.75,
	}

	if err := WriteFile(path, 48000, 2, interleaved); err != nil {
		t.Fatal(err)
	}

	clip, err := ReadMonoFile(path)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, clip.Samples, []float64{0, 0.5, -0.5}, lsb)
}

func TestWriteClips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.wav")
	if err := WriteFile(path, 8000, 1, []float64{3, -3}); err != nil {
		t.Fatal(err)
	}

	clip, err := ReadMonoFile(path)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireWithin(t, clip.Samples, -1, 1)
}

func TestWriteErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")

	if err := WriteFile(path, 8000, 0, nil); !errors.Is(err, ErrInvalidChannelCount) {
		t.Fatalf("err=%v want ErrInvalidChannelCount", err)
	}
	if err := WriteFile(path, 8000, 2, []float64{1, 2, 3}); !errors.Is(err, ErrInterleaveMismatch) {
		t.Fatalf("err=%v want ErrInterleaveMismatch", err)
	}
}

func TestReadMonoRejectsGarbage(t *testing.T) {
	_, err := ReadMono(bytes.NewReader([]byte("definitely not a riff file")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Fatalf("err=%v want ErrNotWavFile", err)
	}
}

// pcm8 builds a mono 8-bit PCM WAV stream around data.
func pcm8(sampleRate int, data []byte) []byte {
	var b bytes.Buffer
	le := binary.LittleEndian

	b.WriteString("RIFF")
	_ = binary.Write(&b, le, uint32(36+len(data)))
	b.WriteString("WAVE")
	b.WriteString("fmt ")
	_ = binary.Write(&b, le, uint32(16))
	_ = binary.Write(&b, le, uint16(1)) // PCM
	_ = binary.Write(&b, le, uint16(1)) // channels
	_ = binary.Write(&b, le, uint32(sampleRate))
	_ = binary.Write(&b, le, uint32(sampleRate)) // byte rate
	_ = binary.Write(&b, le, uint16(1))          // block align
	_ = binary.Write(&b, le, uint16(8))
	b.WriteString("data")
	_ = binary.Write(&b, le, uint32(len(data)))
	b.Write(data)

	return b.Bytes()
}

func TestReadMonoUnsigned8Bit(t *testing.T) {
	tests := []struct {
		name string
		in   byte
		want float64
	}{
		{"silence", 0x80, 0},
		{"negative full scale", 0x00, -1},
		{"positive full scale", 0xFF, 127.0 / 128},
		{"half up", 0xC0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := bytes.Repeat([]byte{tt.in}, 16)
			clip, err := ReadMono(bytes.NewReader(pcm8(8000, data)))
			if err != nil {
				t.Fatal(err)
			}
			if clip.SampleRate != 8000 {
				t.Fatalf("sampleRate=%d want=8000", clip.SampleRate)
			}
			if len(clip.Samples) != len(data) {
				t.Fatalf("len=%d want=%d", len(clip.Samples), len(data))
			}
			for i, got := range clip.Samples {
				if got != tt.want {
					t.Fatalf("sample %d: got=%v want=%v", i, got, tt.want)
				}
			}
		})
	}
}
