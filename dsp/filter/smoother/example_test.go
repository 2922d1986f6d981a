package smoother_test

import (
	"fmt"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/dsp/filter/smoother"
)

func ExampleDynamicSmoother() {
	s, err := smoother.New(48000, smoother.WithBaseFrequency(core.Hz(20)))
	if err != nil {
		panic(err)
	}

	// The first output is the stage state from before any input arrived.
	fmt.Println(s.ProcessSample(1))

	for range 48000 {
		s.ProcessSample(1)
	}
	fmt.Printf("%.3f\n", s.Value())
	// Output:
	// 0
	// 1.000
}
