// SPDX-License-Identifier: MIT
package ullman_test

import (
	"fmt"

	"github.com/katalvlaran/subiso/builder"
	"github.com/katalvlaran/subiso/core"
	"github.com/katalvlaran/subiso/matrix"
	"github.com/katalvlaran/subiso/ullman"
)

// ExampleIsSubgraphIsomorphic checks a triangle and a 4-cycle against a wheel.
func ExampleIsSubgraphIsomorphic() {
	wheel, _ := builder.BuildGraph(nil, builder.Wheel(5))
	triangle, _ := builder.BuildGraph(nil, builder.Complete(3))
	square, _ := builder.BuildGraph(nil, builder.Cycle(4))
	k4, _ := builder.BuildGraph(nil, builder.Complete(4))

	for _, p := range []struct {
		name string
		g    *core.Graph
	}{{"K3", triangle}, {"C4", square}, {"K4", k4}} {
		ok, err := ullman.IsSubgraphIsomorphic(p.g, wheel)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s in W5: %v\n", p.name, ok)
	}
	// Output:
	// K3 in W5: true
	// C4 in W5: true
	// K4 in W5: false
}

// ExampleMatch runs the matcher directly on adjacency matrices in both modes.
func ExampleMatch() {
	path, _ := matrix.FromRows([][]uint8{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	})
	triangle, _ := matrix.FromRows([][]uint8{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	})

	strict, _ := ullman.Match(path, triangle)
	mono, _ := ullman.Match(path, triangle, ullman.WithMode(ullman.ModeMonomorphism))
	fmt.Println("strict:", strict)
	fmt.Println("monomorphism:", mono)
	// Output:
	// strict: false
	// monomorphism: true
}
