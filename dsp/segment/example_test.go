package segment_test

import (
	"fmt"

	"github.com/murmurhq/voicedsp/dsp/segment"
)

func ExampleNormalize() {
	out, err := segment.Normalize([]float64{2.0, -4.0, 1.0})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f %.4f %.4f\n", out[0], out[1], out[2])

	// Output:
	// 0.4750 -0.9500 0.2375
}

func ExampleConcat() {
	out, err := segment.Concat([][]float64{
		{1, 1, 1, 1},
		{2, 2, 2, 2},
	}, 2)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)

	// Output:
	// [1 1 1 1.5 2 2]
}

func ExampleDuration() {
	d, err := segment.Duration(make([]float64, 12000), 24000)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.1fs\n", d)

	// Output:
	// 0.5s
}
