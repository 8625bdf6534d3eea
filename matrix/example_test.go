package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/subiso/core"
	"github.com/katalvlaran/subiso/matrix"
)

// ExampleNewAdjacencyMatrix shows the index enumeration and degree lookup.
func ExampleNewAdjacencyMatrix() {
	g := core.NewGraph()
	_ = g.AddEdge("B", "A")
	_ = g.AddEdge("B", "C")

	am, err := matrix.NewAdjacencyMatrix(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < am.VertexCount(); i++ {
		id, _ := am.VertexAt(i)
		d, _ := am.Degree(i)
		fmt.Println(i, id, d)
	}
	fmt.Println(am.Rows())

	// Output:
	// 0 A 1
	// 1 B 2
	// 2 C 1
	// [[0 1 0] [1 0 1] [0 1 0]]
}
