package core

// Frequency is a frequency in Hz.
type Frequency float64

// Duration is a span of time in seconds.
type Duration float64

// Decibel is an amplitude level in dB (20*log10 convention).
type Decibel float64

// Hz returns v Hz.
func Hz(v float64) Frequency { return Frequency(v) }

// KHz returns v kHz.
func KHz(v float64) Frequency { return Frequency(v * 1000) }

// Seconds returns a duration of v seconds.
func Seconds(v float64) Duration { return Duration(v) }

// Milliseconds returns a duration of v milliseconds.
func Milliseconds(v float64) Duration { return Duration(v / 1000) }

// DB returns a level of v dB.
func DB(v float64) Decibel { return Decibel(v) }

// Hz returns the frequency as a plain number of cycles per second.
func (f Frequency) Hz() float64 { return float64(f) }

// Normalized returns f as a fraction of sampleRate (cycles per sample).
func (f Frequency) Normalized(sampleRate float64) float64 {
	return float64(f) / sampleRate
}

// Period returns the duration of one cycle.
func (f Frequency) Period() Duration { return Duration(1 / float64(f)) }

// Seconds returns the duration as a plain number of seconds.
func (d Duration) Seconds() float64 { return float64(d) }

// Milliseconds returns the duration in milliseconds.
func (d Duration) Milliseconds() float64 { return float64(d) * 1000 }

// Samples returns the duration measured in sample periods at sampleRate.
func (d Duration) Samples(sampleRate float64) float64 {
	return float64(d) * sampleRate
}

// Frequency returns the frequency whose period is d.
func (d Duration) Frequency() Frequency { return Frequency(1 / float64(d)) }

// Linear returns the level as a linear amplitude factor.
func (l Decibel) Linear() float64 { return DBToLinear(float64(l)) }
