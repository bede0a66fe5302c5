package interrupt_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlmesh/interrupt"
)

// ExampleTracker shows how nested section weights fold into one completion
// fraction: a stage split 0.2 / 0.8, whose second half reports per-item
// progress.
func ExampleTracker() {
	tr := interrupt.NewTracker(context.Background(), interrupt.WithOnProgress(func(p float64) {
		fmt.Printf("%.2f\n", p)
	}))

	interrupt.Begin(tr, 0.2)
	interrupt.End(tr)

	interrupt.Begin(tr, 0.8)
	for i := 1; i <= 2; i++ {
		interrupt.CheckAt(tr, float64(i)/4)
	}
	interrupt.End(tr)

	// Output:
	// 0.20
	// 0.40
	// 0.60
	// 1.00
}
