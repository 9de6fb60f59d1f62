package board

import "slices"

// groupLiberties returns the distinct empty cardinal neighbours of v's
// group, in traversal order.
func (g *groupState) groupLiberties(v Vertex) []Vertex {
	var libs []Vertex
	cur := v
	for {
		for _, n := range g.neighbours(cur) {
			if g.vertices[n] == Empty && !slices.Contains(libs, n) {
				libs = append(libs, n)
			}
		}
		cur = g.nextVertex[cur]
		if cur == v {
			return libs
		}
	}
}

// IsLadderCapture reports whether placing color at (x, y) initiates a
// winning ladder against some adjacent opponent group. The move is assumed
// pseudo-legal. Operates on a value copy of the group state only -- no
// history or Zobrist hash is touched, so recursion is cheap.
func (b *Board) IsLadderCapture(color Color, x, y int) bool {
	return b.groupState.isLadderCapture(color, Index(x, y))
}

// isLadderCapture implements spec.md 4.5 step by step. The receiver is a
// value, so every call (including each of the two recursive attempts in
// step 6) operates on its own independent copy of vertices/nextVertex.
func (g groupState) isLadderCapture(color Color, v Vertex) bool {
	// (1) Place the candidate stone without resolving captures.
	g.placeNoCapture(color, v)

	// (2) Find the first adjacent opponent group already in atari, N/E/S/W.
	opponent := color.Opposite()
	var atari Vertex
	found := false
	for _, n := range g.neighbours(v) {
		if g.vertices[n] == opponent && !g.hasTwoLiberties(n) {
			atari = n
			found = true
			break
		}
	}
	if !found {
		return false
	}

	liberty, ok := g.getOneLiberty(atari)
	if !ok {
		return false
	}

	// (3) Extend the opponent group into its one remaining liberty.
	g.placeNoCapture(opponent, liberty)

	// (4) Count the extended group's liberties.
	empties := g.groupLiberties(liberty)
	switch {
	case len(empties) < 2:
		return true
	case len(empties) > 2:
		return false
	}

	// (5) The extension must not put one of our own neighbouring groups
	// into atari, or we lose the exchange.
	for _, n := range g.neighbours(liberty) {
		if g.vertices[n] == color && !g.hasTwoLiberties(n) {
			return false
		}
	}

	// (6) Recurse on each of the two remaining liberties.
	for _, n := range empties {
		if g.isLadderCapture(color, n) {
			return true
		}
	}
	return false
}

// IsLadderEscape reports whether placing color at (x, y) saves a friendly
// group that is currently in atari from being ladder-captured.
func (b *Board) IsLadderEscape(color Color, x, y int) bool {
	v := Index(x, y)
	g := b.groupState

	// (1) Must be adjacent to a friendly group actually in atari.
	adjacentAtari := false
	for _, n := range g.neighbours(v) {
		if g.vertices[n] == color && !g.hasTwoLiberties(n) {
			adjacentAtari = true
			break
		}
	}
	if !adjacentAtari {
		return false
	}

	// (2) After the tentative placement, the merged group must have
	// exactly two liberties.
	g.placeNoCapture(color, v)

	empties := g.groupLiberties(v)
	if len(empties) != 2 {
		return false
	}

	// (3) The opponent must not be able to start a winning ladder from
	// either remaining liberty.
	opponent := color.Opposite()
	for _, n := range empties {
		if g.isLadderCapture(opponent, n) {
			return false
		}
	}
	return true
}
