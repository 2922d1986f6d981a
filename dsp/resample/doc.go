// Package resample provides cheap sample-rate reduction for real-time
// signal paths.
//
// FastDownsampler halves the sample rate with a useful amount of
// antialiasing: every source sample is convolved with the 3-tap kernel
// {0.25, 0.5, 0.25} before every second sample is dropped. The kernel has a
// zero at the input Nyquist frequency, so content that would fold onto DC
// after decimation is removed, while the passband droops smoothly toward
// the new Nyquist limit.
//
// The downsampler is generic over the native sample type, so integer PCM
// (for example int16 straight from a codec) can be decimated without a
// float conversion. Integer types use truncating division.
package resample
