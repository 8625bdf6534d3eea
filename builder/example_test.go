// SPDX-License-Identifier: MIT
package builder_test

import (
	"fmt"

	"github.com/katalvlaran/subiso/builder"
)

// ExampleBuildGraph builds a wheel with five vertices: a 4-cycle rim plus a hub.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, builder.Wheel(5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Vertices())
	fmt.Println(g.EdgeCount())
	// Output:
	// [0 1 2 3 Center]
	// 8
}
