package graphio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/karepker/little-tsp/graph"
)

// ReadPoints parses r as a coordinate file: the first whitespace-separated
// token is the world size (read and discarded beyond validation — it bounds
// the coordinate space but does not affect distances), the second is the
// vertex count n, followed by n pairs of integer coordinates. Returns
// ErrMalformedInput if any expected token is missing or not an integer.
func ReadPoints(r io.Reader) ([]graph.Point, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	nextInt := func() (int, bool) {
		if !sc.Scan() {
			return 0, false
		}
		v, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err != nil {
			return 0, false
		}
		return v, true
	}

	if _, ok := nextInt(); !ok {
		return nil, ErrMalformedInput
	}

	n, ok := nextInt()
	if !ok || n < 0 {
		return nil, ErrMalformedInput
	}

	pts := make([]graph.Point, 0, n)
	var i int
	for i = 0; i < n; i++ {
		x, ok := nextInt()
		if !ok {
			return nil, ErrMalformedInput
		}
		y, ok := nextInt()
		if !ok {
			return nil, ErrMalformedInput
		}
		pts = append(pts, graph.Point{X: x, Y: y})
	}

	return pts, nil
}
