package mirror_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bragg/mirror"
)

// ExampleStack_NextLayers grows a TiO2/quartz quarter-wave mirror pair by
// pair and prints its TM transmittance, as a layer-count search would.
func ExampleStack_NextLayers() {
	m, err := mirror.New(math.Pi/6, 1.457, 2.4, 1.457)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	l, err := m.SetLayersDefault()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	s := l.FirstLayer()
	for s.Pairs() < 3 {
		r, _ := s.Transmittance()
		fmt.Printf("%-12s T_TM=%.4f\n", s.Structure(), r.TM)
		s.NextLayers()
	}
	// Output:
	// AHG          T_TM=0.7070
	// A(HL)^(1)HG  T_TM=0.3855
	// A(HL)^(2)HG  T_TM=0.1814
}
