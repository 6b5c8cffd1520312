package graph

// Edge is a directed pair of vertex indices u -> v. The underlying graph is
// symmetric (Weight(u, v) == Weight(v, u) for every concrete Graph in this
// module), but edges are directed because reduction, exclusion, and tour
// orientation in the Little solver are asymmetric operations over them.
type Edge struct {
	U, V int
}

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}
