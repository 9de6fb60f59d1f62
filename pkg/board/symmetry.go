package board

// Transform is a permutation of the 361 on-board vertices, used by
// GetFeatures to realise one of the 8 dihedral symmetries of the board
// without materialising a rotated copy. Transform[i] is the vertex that
// on-board index i should be written to.
type Transform [NumVertices]Vertex

// The 8 dihedral symmetries of a square board: identity, three rotations,
// and four reflections. Spec.md treats the symmetry table as supplied by
// an external collaborator; these are offered as a small, self-contained
// convenience the same way the teacher's square.go owns its own rank/file
// tables, since the tables are cheap to precompute and any caller needs at
// least the identity transform to use GetFeatures at all.
var (
	Identity         = buildTransform(func(x, y int) (int, int) { return x, y })
	Rotate90         = buildTransform(func(x, y int) (int, int) { return y, BoardSize - 1 - x })
	Rotate180        = buildTransform(func(x, y int) (int, int) { return BoardSize - 1 - x, BoardSize - 1 - y })
	Rotate270        = buildTransform(func(x, y int) (int, int) { return BoardSize - 1 - y, x })
	FlipHorizontal   = buildTransform(func(x, y int) (int, int) { return BoardSize - 1 - x, y })
	FlipVertical     = buildTransform(func(x, y int) (int, int) { return x, BoardSize - 1 - y })
	FlipDiagonal     = buildTransform(func(x, y int) (int, int) { return y, x })
	FlipAntiDiagonal = buildTransform(func(x, y int) (int, int) { return BoardSize - 1 - y, BoardSize - 1 - x })
)

func buildTransform(fn func(x, y int) (int, int)) Transform {
	var t Transform
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			nx, ny := fn(x, y)
			t[Index(x, y)] = Index(nx, ny)
		}
	}
	return t
}
