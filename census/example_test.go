package census_test

import (
	"fmt"

	"github.com/katalvlaran/ordstat/census"
)

// ExampleCheck replays every input of the 6-comparison median of 5.
func ExampleCheck() {
	nets, err := census.Lookup("Select2Of5")
	if err != nil {
		fmt.Println(err)
		return
	}
	rep := census.Check(nets[0])
	fmt.Printf("cases=%d worst=%d mean=%.3f ok=%v\n", rep.Cases, rep.Worst, rep.Mean, rep.OK())
	// Output: cases=541 worst=6 mean=6.000 ok=true
}

// ExampleCheckRange verifies the range layer on all inputs of length 0..3.
func ExampleCheckRange() {
	rep := census.CheckRange(3)
	fmt.Printf("cases=%d ok=%v\n", rep.Cases, rep.OK())
	// Output: cases=18 ok=true
}
