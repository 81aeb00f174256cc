package lights_test

import (
	"fmt"

	"github.com/katalvlaran/lattice/lights"
)

// ExampleFewestPresses lights the middle pair of a four-light panel.
func ExampleFewestPresses() {
	m, err := lights.ParseMachine("[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := lights.FewestPresses(m.Target, m.Buttons)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("presses:", res.Presses)
	// Output:
	// presses: 2
}

// ExampleMinJoltagePresses drives the counters of the same panel to {3,5,4,7}.
func ExampleMinJoltagePresses() {
	m, _ := lights.ParseMachine("[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}")
	n, err := lights.MinJoltagePresses(m.Buttons, m.Joltage)
	fmt.Println(n, err)
	// Output:
	// 10 <nil>
}
