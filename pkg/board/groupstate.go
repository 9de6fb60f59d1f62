package board

// groupState holds exactly the fields a ladder search needs to clone and
// mutate cheaply: the color map and the circular group links. It carries
// no history or Zobrist state, since ladder outcomes depend only on local
// geometry and liberties (see spec.md "Local ladder clones").
//
// Board embeds groupState so the placement/legality/capture machinery is
// shared between the live board and ladder-search clones without
// duplication.
type groupState struct {
	vertices   [NumCells]Color
	nextVertex [NumVertices]Vertex
}

func newGroupState() groupState {
	var g groupState
	for v := Vertex(NumVertices); v < NumCells; v++ {
		g.vertices[v] = OffBoard
	}
	return g
}

func (g *groupState) neighbours(v Vertex) [4]Vertex {
	return [4]Vertex{north[v], east[v], south[v], west[v]}
}

// hasOneLiberty returns whether any member of v's group has an empty
// cardinal neighbour. Short-circuits on the first find.
func (g *groupState) hasOneLiberty(v Vertex) bool {
	cur := v
	for {
		for _, n := range g.neighbours(cur) {
			if g.vertices[n] == Empty {
				return true
			}
		}
		cur = g.nextVertex[cur]
		if cur == v {
			return false
		}
	}
}

// hasTwoLiberties returns whether v's group has at least two distinct empty
// cardinal neighbours, tracking a single "first empty seen" index.
func (g *groupState) hasTwoLiberties(v Vertex) bool {
	const none = Vertex(0xffff)

	cur := v
	first := none
	for {
		for _, n := range g.neighbours(cur) {
			if g.vertices[n] != Empty {
				continue
			}
			if first == none {
				first = n
			} else if n != first {
				return true
			}
		}
		cur = g.nextVertex[cur]
		if cur == v {
			return false
		}
	}
}

// getOneLiberty returns the first empty cardinal neighbour found while
// traversing v's group, if any.
func (g *groupState) getOneLiberty(v Vertex) (Vertex, bool) {
	cur := v
	for {
		for _, n := range g.neighbours(cur) {
			if g.vertices[n] == Empty {
				return n, true
			}
		}
		cur = g.nextVertex[cur]
		if cur == v {
			return 0, false
		}
	}
}

// numLiberties returns the exact liberty count of v's group, using the
// 384-entry scratch-buffer dedup technique and memoising the result into
// every group member of memo (which the caller resets to zero per turn).
func (g *groupState) numLiberties(v Vertex, memo []int) int {
	if memo[v] != 0 {
		return memo[v]
	}

	var scratch [scratchSize]Color
	for i := range scratch {
		scratch[i] = OffBoard
	}

	cur := v
	for {
		for _, n := range g.neighbours(cur) {
			if g.vertices[n] == Empty {
				scratch[n] = Empty
			}
		}
		cur = g.nextVertex[cur]
		if cur == v {
			break
		}
	}

	count := 0
	for _, c := range scratch {
		if c == Empty {
			count++
		}
	}

	cur = v
	for {
		memo[cur] = count
		cur = g.nextVertex[cur]
		if cur == v {
			break
		}
	}
	return count
}

// joinGroups merges the circular group lists rooted at a and other. Walks
// from a first to guard against merging a group with itself, which would
// otherwise corrupt the list into two disjoint sub-cycles.
func (g *groupState) joinGroups(a, other Vertex) {
	cur := a
	for {
		if cur == other {
			return
		}
		cur = g.nextVertex[cur]
		if cur == a {
			break
		}
	}
	g.nextVertex[a], g.nextVertex[other] = g.nextVertex[other], g.nextVertex[a]
}

// placeNoCapture writes color at v and joins it into any adjacent friendly
// groups, without removing any opponent group that may now lack
// liberties. Used directly by ladder search, and as the first phase of
// Board.Place.
func (g *groupState) placeNoCapture(color Color, v Vertex) {
	g.vertices[v] = color
	g.nextVertex[v] = v

	for _, n := range g.neighbours(v) {
		if g.vertices[n] == color {
			g.joinGroups(v, n)
		}
	}
}

// capture removes v's entire group from the board. next_vertex values of
// emptied cells become undefined, matching the spec.
func (g *groupState) capture(v Vertex) {
	cur := v
	for {
		next := g.nextVertex[cur]
		g.vertices[cur] = Empty
		if next == v {
			return
		}
		cur = next
	}
}

// isValidPseudo is the pseudo-legality test: the target vertex must be
// empty, and the move must not be suicide.
func (g *groupState) isValidPseudo(color Color, v Vertex) bool {
	if g.vertices[v] != Empty {
		return false
	}

	neighbours := g.neighbours(v)
	for _, n := range neighbours {
		if g.vertices[n] == Empty {
			return true
		}
	}
	for _, n := range neighbours {
		nc := g.vertices[n]
		if nc == OffBoard {
			continue
		}
		if (nc == color) == g.hasTwoLiberties(n) {
			return true
		}
	}
	return false
}
