package maze

// frame is one level of the depth-first traversal: a visited cell, its
// neighbours in shuffled order and how many of them have been tried.
type frame struct {
	cell      CellPosition
	neighbors [4]Direction
	next      int
}

// generator owns the mutable state of a single generation call.
type generator struct {
	rng      Source
	visited  [][]bool
	topology *Topology
	stack    []frame
}

// Generate builds a perfect maze of rows x cols cells.
// The traversal start cell is drawn from rng (row first, then column).
func Generate(rows, cols int, rng Source) (*Topology, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimension
	}

	start := CellPosition{Row: rng.Intn(rows), Col: rng.Intn(cols)}
	return GenerateFrom(rows, cols, start, rng)
}

// GenerateFrom builds a perfect maze of rows x cols cells, starting the
// traversal at start. The result depends only on its arguments and the
// sequence of values produced by rng.
func GenerateFrom(rows, cols int, start CellPosition, rng Source) (*Topology, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimension
	}
	if start.Row < 0 || start.Row >= rows || start.Col < 0 || start.Col >= cols {
		return nil, ErrOutOfBounds
	}

	g := &generator{
		rng:      rng,
		visited:  newBoolGrid(rows, cols),
		topology: newTopology(rows, cols),
		stack:    make([]frame, 0, rows+cols),
	}
	g.run(start)

	return g.topology, nil
}

// run is the recursive backtracker with the call stack made explicit. A cell's
// neighbours are shuffled when it is first visited and tried one at a time; an
// unvisited neighbour has its passage opened and is descended into before the
// remaining neighbours are tried. Randomness is consumed in the same order as
// the recursive formulation.
func (g *generator) run(start CellPosition) {
	g.visit(start)

	for len(g.stack) > 0 {
		top := &g.stack[len(g.stack)-1]
		if top.next == len(top.neighbors) {
			g.stack = g.stack[:len(g.stack)-1]
			continue
		}

		d := top.neighbors[top.next]
		top.next++

		cell := top.cell
		next := cell.Step(d)
		if !g.topology.InBound(next.Row, next.Col) || g.visited[next.Row][next.Col] {
			continue
		}

		g.topology.open(cell, d)
		// visit may grow the stack; top must not be used after this point.
		g.visit(next)
	}
}

// visit marks cell visited and pushes its frame. Revisits are no-ops.
func (g *generator) visit(cell CellPosition) {
	if g.visited[cell.Row][cell.Col] {
		return
	}
	g.visited[cell.Row][cell.Col] = true

	f := frame{cell: cell, neighbors: directions}
	shuffleDirections(&f.neighbors, g.rng)
	g.stack = append(g.stack, f)
}
