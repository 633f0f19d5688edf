package trace_test

import (
	"fmt"

	"github.com/katalvlaran/dbsp/trace"
)

// ExampleJoin reproduces scenario S3 from the design: joining an
// indexed relation A on its first coordinate against an indexed
// relation B keyed the same way.
func ExampleJoin() {
	type row struct {
		id   int64
		name string
	}
	a := trace.Trace[int64, row]{
		1: {{1, "x"}: 1},
		2: {{2, "y"}: 1},
	}
	b := trace.Trace[int64, int64]{
		1: {10: 1},
		2: {20: 1},
	}
	type joined struct {
		id   int64
		name string
		val  int64
	}
	out := trace.Join(a, b, func(k int64, r row, v int64) joined {
		return joined{r.id, r.name, v}
	})
	fmt.Println(out[joined{1, "x", 10}], out[joined{2, "y", 20}])
	// Output: 1 1
}
