package board

// Vertex is an index into the board's vertex array. On-board vertices are
// 0..360 in row-major order (index = 19*y + x); NumVertices..NumCells are
// sentinel cells that always hold OffBoard.
type Vertex uint16

const (
	// BoardSize is the fixed edge length of the board. Variable board size
	// is an explicit non-goal.
	BoardSize = 19

	// NumVertices is the number of on-board points.
	NumVertices = BoardSize * BoardSize

	// NumSentinels is the padding region redirecting off-board neighbour
	// lookups, removing bounds checks from the hot path.
	NumSentinels = 7

	// NumCells is the full backing-array size: on-board vertices plus the
	// sentinel padding.
	NumCells = NumVertices + NumSentinels

	// scratchSize is the domain of the liberty scratch buffer. Every
	// on-board and sentinel index is < NumCells <= scratchSize, so writes
	// into the scratch buffer keyed by vertex index never collide or
	// overflow.
	scratchSize = 384
)

const (
	sentinelNorth Vertex = NumVertices + iota
	sentinelEast
	sentinelSouth
	sentinelWest
)

// north, east, south, west map a vertex to its cardinal neighbour. Off-edge
// lookups redirect to one of the four sentinel cells, which are invariant
// OffBoard, so every table lookup yields a valid array index with no branch.
var (
	north [NumCells]Vertex
	east  [NumCells]Vertex
	south [NumCells]Vertex
	west  [NumCells]Vertex
)

func init() {
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			v := Index(x, y)

			if y+1 < BoardSize {
				north[v] = Index(x, y+1)
			} else {
				north[v] = sentinelNorth
			}
			if y-1 >= 0 {
				south[v] = Index(x, y-1)
			} else {
				south[v] = sentinelSouth
			}
			if x+1 < BoardSize {
				east[v] = Index(x+1, y)
			} else {
				east[v] = sentinelEast
			}
			if x-1 >= 0 {
				west[v] = Index(x-1, y)
			} else {
				west[v] = sentinelWest
			}
		}
	}
	for v := Vertex(NumVertices); v < NumCells; v++ {
		north[v], east[v], south[v], west[v] = v, v, v, v
	}
}

// Index returns the row-major vertex index for (x, y), both in [0, BoardSize).
func Index(x, y int) Vertex {
	return Vertex(y*BoardSize + x)
}

// X returns the column of an on-board vertex.
func (v Vertex) X() int {
	return int(v) % BoardSize
}

// Y returns the row of an on-board vertex.
func (v Vertex) Y() int {
	return int(v) / BoardSize
}

// IsOnBoard reports whether v is one of the 361 playable points.
func (v Vertex) IsOnBoard() bool {
	return v < NumVertices
}
