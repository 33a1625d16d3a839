// Command basisfactdemo builds a small basis, pushes a couple of
// etas, and prints the result of a forward/backward solve, the same
// "construct a domain object, mutate it, run it, print" shape as the
// teacher's own cmd/main.go.
package main

import (
	"fmt"
	"log"
	"os"

	"basisfact/basisfact"
	"basisfact/config"
	"basisfact/diagnostics"
)

func main() {
	bf, err := basisfact.New(3)
	if err != nil {
		log.Fatal(err)
	}

	config.LoggingEnabled = true

	b0 := [][]float64{
		{2, 4, -2},
		{4, 9, -3},
		{-2, -3, 7},
	}
	if err := bf.SetB0(b0); err != nil {
		log.Fatal(err)
	}

	depths := make([]int, 0, 4)
	depths = append(depths, len(bf.Etas()))

	bf.PushEta(0, []float64{3, 1, 0})
	depths = append(depths, len(bf.Etas()))

	bf.PushEta(2, []float64{0, -1, 2})
	depths = append(depths, len(bf.Etas()))

	y := []float64{2, 8, 10}
	x := make([]float64, 3)
	bf.Forward(y, x)
	fmt.Printf("Forward(%v) = %v\n", y, x)

	back := make([]float64, 3)
	bf.Backward(y, back)
	fmt.Printf("Backward(%v) = %v\n", y, back)

	if len(bf.Etas()) == 0 {
		fmt.Printf("B0 condition number (2-norm): %.4f\n", diagnostics.ConditionNumber(bf.B0()))
	}

	chart := &diagnostics.EtaDepthChart{Title: "demo eta depth", Depths: depths}
	if f, err := os.Create("eta_depth.png"); err == nil {
		defer f.Close()
		if err := chart.Render(f); err != nil {
			log.Printf("rendering eta depth chart: %v", err)
		}
	}

	heatmap := &diagnostics.B0Heatmap{Title: "demo |B0|", B0: bf.B0()}
	if f, err := os.Create("b0_heatmap.png"); err == nil {
		defer f.Close()
		if err := heatmap.Render(f); err != nil {
			log.Printf("rendering B0 heatmap: %v", err)
		}
	}
}
