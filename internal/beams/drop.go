package beams

import "github.com/sirupsen/logrus"

// enter lights the first cell of a branch spawned beside a splitter and
// reports whether the branch continues from there. A branch landing on
// another splitter keeps the splitter and falls from it.
func (g *Grid) enter(p Pos) bool {
	c, ok := g.Get(p.X, p.Y)
	if !ok {
		return false /* ran off the side */
	}
	switch c {
	case Space:
		g.Set(p.X, p.Y, Beam)
		return true
	case Splitter:
		return true
	case Start, Beam:
		return false
	}
	return false
}

// Drop sends a signal down from the start cell, lighting every cell it
// passes and splitting it left and right at each splitter it reaches. The
// grid is modified in place. It returns the number of splits.
//
// Branches that reach a lit cell stop there, so a second Drop on the same
// grid finds no start and returns 0 with [ErrNoStart].
func (g *Grid) Drop() (int, error) {
	start, ok := g.FindStart()
	if !ok {
		return 0, ErrNoStart
	}
	g.Set(start.X, start.Y, Beam)

	todo := []Pos{start}
	for len(todo) > 0 {
		p := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

	fall:
		for {
			c, ok := g.Get(p.X, p.Y+1)
			if !ok {
				break /* left the grid */
			}
			switch c {
			case Space:
				g.Set(p.X, p.Y+1, Beam)
				p.Y++
			case Splitter:
				g.splits++
				left := Pos{p.X - 1, p.Y + 1}
				right := Pos{p.X + 1, p.Y + 1}
				// left is pushed last so it runs first
				if g.enter(right) {
					todo = append(todo, right)
				}
				if g.enter(left) {
					todo = append(todo, left)
				}
				break fall
			case Start, Beam:
				break fall
			}
		}
	}

	Log.WithFields(logrus.Fields{
		"start":  start.String(),
		"splits": g.splits,
	}).Debug("drop finished")
	return g.splits, nil
}
