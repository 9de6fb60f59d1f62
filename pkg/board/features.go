package board

// NumPlanes is the number of feature planes produced by GetFeatures.
const NumPlanes = 32

// Numeric constrains the element type of a feature tensor. GetFeatures is
// a free function, not a method, because Go does not allow a method to
// introduce its own type parameter.
type Numeric interface {
	~float32 | ~float64 |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Order maps a (plane, on-board vertex) pair to a linear tensor offset.
type Order interface {
	Index(plane int, v Vertex) int
}

// CHW lays out the tensor as [plane][vertex]: c*361+i.
type CHW struct{}

func (CHW) Index(plane int, v Vertex) int {
	return plane*NumVertices + int(v)
}

// HWC lays out the tensor as [vertex][plane]: i*32+c.
type HWC struct{}

func (HWC) Index(plane int, v Vertex) int {
	return int(v)*NumPlanes + plane
}

// GetFeatures assembles the 32-plane feature tensor for color's perspective,
// permuting every plane's spatial index through symmetry. Plane layout:
//
//	0      constant 1 (on-board mask)
//	1      constant 1 iff color == Black
//	2-7    one-hot liberty bucket {1,2,3,4,5,>=6} of our existing groups
//	8-13   same bucket, pretend-place liberty count at pseudo-legal empty cells
//	14-19  our stones in the current and previous 5 positions, newest first
//	20-25  liberty buckets for opponent groups
//	26-31  opponent stones in the current and previous 5 positions
func GetFeatures[T Numeric](b *Board, color Color, symmetry Transform, order Order) []T {
	out := make([]T, NumPlanes*NumVertices)

	set := func(plane int, v Vertex) {
		out[order.Index(plane, symmetry[v])] = 1
	}

	opponent := color.Opposite()

	for v := Vertex(0); v < NumVertices; v++ {
		set(0, v)
		if color == Black {
			set(1, v)
		}
	}

	ourMemo := make([]int, NumVertices)
	oppMemo := make([]int, NumVertices)
	for v := Vertex(0); v < NumVertices; v++ {
		switch b.vertices[v] {
		case color:
			set(2+libertyBucket(b.numLiberties(v, ourMemo)), v)
		case opponent:
			set(20+libertyBucket(b.numLiberties(v, oppMemo)), v)
		}
	}

	for v := Vertex(0); v < NumVertices; v++ {
		if b.vertices[v] != Empty || !b.isValidPseudo(color, v) {
			continue
		}
		set(8+libertyBucket(b.numLibertiesIf(color, v)), v)
	}

	for step := 0; step < historyDepth; step++ {
		snap := b.history.At(step)
		for v := Vertex(0); v < NumVertices; v++ {
			switch snap[v] {
			case color:
				set(14+step, v)
			case opponent:
				set(26+step, v)
			}
		}
	}

	return out
}

// libertyBucket maps an exact liberty count to the {1,2,3,4,5,>=6} one-hot
// bucket offset used by planes 2-7/8-13/20-25.
func libertyBucket(n int) int {
	switch {
	case n <= 0:
		return 0
	case n >= 6:
		return 5
	default:
		return n - 1
	}
}

// numLibertiesIf returns the liberty count v's group would have if color
// were placed there right now, including any opponent captures that move
// would trigger. Operates on a value copy of the group state; the live
// board is never mutated.
func (b *Board) numLibertiesIf(color Color, v Vertex) int {
	g := b.groupState
	g.placeNoCapture(color, v)

	opponent := color.Opposite()
	for _, n := range g.neighbours(v) {
		if g.vertices[n] == opponent && !g.hasOneLiberty(n) {
			g.capture(n)
		}
	}

	memo := make([]int, NumVertices)
	return g.numLiberties(v, memo)
}
