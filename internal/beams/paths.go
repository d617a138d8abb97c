package beams

// CountPaths returns the number of distinct paths a signal can take from
// the start cell to the bottom of the grid when every splitter sends a
// full copy of its incoming paths both ways. Paths leaving through a side
// are dropped. The grid is not modified.
func CountPaths(g *Grid) (int, error) {
	if _, ok := g.FindStart(); !ok {
		return 0, ErrNoStart
	}

	width, height := g.Shape()
	counts := make([]int, width)
	for y := range height {
		next := make([]int, width)
		for x := range width {
			c, _ := g.Get(x, y)
			switch c {
			case Start:
				next[x] = 1
			case Space:
				next[x] += counts[x]
			case Splitter:
				if x > 0 {
					next[x-1] += counts[x]
				}
				if x < width-1 {
					next[x+1] += counts[x]
				}
			case Beam:
				/* not part of this model */
			}
		}
		counts = next
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	return total, nil
}
