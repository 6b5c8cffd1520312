// Command little-tsp reads a Manhattan-distance coordinate graph from
// stdin, solves it with the chosen solver, and prints the tour length
// followed by the tour itself, one per line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/karepker/little-tsp/fast"
	"github.com/karepker/little-tsp/graph"
	"github.com/karepker/little-tsp/graphio"
	"github.com/karepker/little-tsp/little"
	"github.com/karepker/little-tsp/naive"
)

const (
	exitOK        = 0
	exitImplError = 2
	exitUnknown   = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("little-tsp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	graphType := fs.String("graph", "manhattan", "type of graph to construct (options: manhattan)")
	solverType := fs.String("solver", "little", "solver to use (options: little, naive, fast)")
	if err := fs.Parse(args); err != nil {
		return exitUnknown
	}

	if *graphType != "manhattan" {
		fmt.Fprintf(stderr, "Unknown Error: unknown graph type %q\n", *graphType)
		return exitUnknown
	}
	switch *solverType {
	case "little", "naive", "fast":
	default:
		fmt.Fprintf(stderr, "Unknown Error: unknown solver type %q\n", *solverType)
		return exitUnknown
	}

	pts, err := graphio.ReadPoints(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Unknown Error: %v\n", err)
		return exitUnknown
	}

	g, err := graph.NewManhattan(pts)
	if err != nil {
		fmt.Fprintf(stderr, "Unknown Error: %v\n", err)
		return exitUnknown
	}

	length, vertices, err := solve(*solverType, g)
	if err != nil {
		if errors.Is(err, little.ErrImplementation) || errors.Is(err, graph.ErrImplementation) {
			fmt.Fprintf(stderr, "Implementation Error: %v\n", err)
			return exitImplError
		}
		fmt.Fprintf(stderr, "Unknown Error: %v\n", err)
		return exitUnknown
	}

	fmt.Fprintln(stdout, length)
	for i, v := range vertices {
		if i > 0 {
			fmt.Fprint(stdout, " ")
		}
		fmt.Fprint(stdout, v)
	}
	fmt.Fprintln(stdout)

	return exitOK
}

// solve dispatches to the requested solver and normalizes its result to a
// (length, vertices, error) triple for printing.
func solve(solverType string, g graph.Graph) (int, []int, error) {
	switch solverType {
	case "naive":
		tour, err := naive.Solve(g)
		if err != nil {
			return 0, nil, err
		}
		return tour.Length, tour.Vertices, nil
	case "fast":
		tour := fast.Solve(g)
		return tour.Length, tour.Vertices, nil
	default:
		tour, err := little.Solve(g, little.DefaultOptions())
		if err != nil && !errors.Is(err, little.ErrNotProvenOptimal) {
			return 0, nil, err
		}
		return tour.Length, tour.Vertices, nil
	}
}
