package dijkstra_test

import (
	"fmt"

	"github.com/shriyamishra-ctrl/Train-Reservation-system/core"
	"github.com/shriyamishra-ctrl/Train-Reservation-system/dijkstra"
)

// ExampleDijkstra_triangle computes distances from one station to all others.
func ExampleDijkstra_triangle() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dist[A]=%d, dist[B]=%d, dist[C]=%d\n", dist["A"], dist["B"], dist["C"])
	// Output: dist[A]=0, dist[B]=1, dist[C]=3
}

// ExampleShortestPath prefers two short legs over one long route.
func ExampleShortestPath() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 4)
	g.AddEdge("B", "C", 4)
	g.AddEdge("A", "C", 10)

	p, err := dijkstra.ShortestPath(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Distance, p.Stations)
	// Output: 8 [A B C]
}
