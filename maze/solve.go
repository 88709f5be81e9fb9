package maze

// IsPerfect reports whether t is a spanning tree of its grid: exactly
// rows*cols-1 open passages and every cell reachable from the top-left corner.
func IsPerfect(t *Topology) bool {
	if t == nil {
		return false
	}
	cells := t.rows * t.cols
	if t.Passages() != cells-1 {
		return false
	}
	return len(reachable(t, t.Start())) == cells
}

// Solve returns the path from one cell to another, both inclusive.
// In a perfect maze the path is unique. A nil topology is malformed.
func Solve(t *Topology, from, to CellPosition) ([]CellPosition, error) {
	if t == nil {
		return nil, ErrMalformedTopology
	}
	if !t.InBound(from.Row, from.Col) || !t.InBound(to.Row, to.Col) {
		return nil, ErrOutOfBounds
	}

	parents := map[CellPosition]CellPosition{from: from}
	queue := []CellPosition{from}
	for len(queue) > 0 && !hasKey(parents, to) {
		cell := queue[0]
		queue = queue[1:]
		for _, d := range t.OpenDirections(cell) {
			next := cell.Step(d)
			if _, seen := parents[next]; seen {
				continue
			}
			parents[next] = cell
			queue = append(queue, next)
		}
	}

	if !hasKey(parents, to) {
		return nil, ErrNoPath
	}

	var path []CellPosition
	for cell := to; cell != from; cell = parents[cell] {
		path = append(path, cell)
	}
	path = append(path, from)

	// Reverse so the path runs from -> to.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// reachable returns every cell connected to start through open passages.
func reachable(t *Topology, start CellPosition) map[CellPosition]struct{} {
	seen := map[CellPosition]struct{}{start: {}}
	stack := []CellPosition{start}
	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range t.OpenDirections(cell) {
			next := cell.Step(d)
			if _, ok := seen[next]; !ok {
				seen[next] = struct{}{}
				stack = append(stack, next)
			}
		}
	}
	return seen
}

func hasKey(m map[CellPosition]CellPosition, k CellPosition) bool {
	_, ok := m[k]
	return ok
}
