package resample

// Sample is any integer or floating-point sample representation.
type Sample interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// FastDownsampler decimates by two using the kernel {0.25, 0.5, 0.25}.
//
// Each call consumes a pair of consecutive input samples and produces one
// output sample. The quarter-weighted tail of the second sample is carried
// into the next call. The zero value is ready to use.
type FastDownsampler[T Sample] struct {
	carry T
}

// Process consumes the input pair (s1, s2) and returns one output sample:
// carry + s1/2 + s2/4. The carry becomes s2/4.
func (d *FastDownsampler[T]) Process(s1, s2 T) T {
	out := d.carry + s1/2
	d.carry = s2 / 4

	return out + d.carry
}

// Carry returns the quarter-weighted tail that the next call will add.
func (d *FastDownsampler[T]) Carry() T { return d.carry }

// Reset clears the carry register.
func (d *FastDownsampler[T]) Reset() {
	var zero T
	d.carry = zero
}
