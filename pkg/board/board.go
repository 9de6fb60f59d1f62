package board

import (
	"fmt"
	"strings"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Board is the intrusive-linked-list Go board representation: a value-sized
// payload of vertices, group links, a Zobrist hash, and bounded history,
// designed to be cloned cheaply by MCTS-style search layers.
type Board struct {
	groupState

	zt *ZobristTable

	count   uint16
	hash    ZobristHash
	history CircularHistory
	superko *SmallSet
}

// New returns an empty 19x19 board using the given Zobrist table. zt is
// shared by pointer across boards that must compare/hash compatibly (e.g. a
// board and its clones).
func New(zt *ZobristTable) *Board {
	return &Board{
		groupState: newGroupState(),
		zt:         zt,
		superko:    NewSmallSet(defaultSuperkoCapacity),
	}
}

// Clone returns an independent deep copy. O(board size), no aliasing with
// the original.
func (b *Board) Clone() *Board {
	clone := *b
	clone.superko = b.superko.Clone()
	return &clone
}

// Size returns the fixed board edge length, 19.
func (b *Board) Size() int {
	return BoardSize
}

// Count returns the number of moves played so far.
func (b *Board) Count() uint16 {
	return b.count
}

// ZobristHash returns the current position hash.
func (b *Board) ZobristHash() ZobristHash {
	return b.hash
}

// At returns the occupant of (x, y): Empty, Black, or White.
func (b *Board) At(x, y int) lang.Optional[Color] {
	return lang.Some(b.vertices[Index(x, y)])
}

// IsValid reports whether placing color at (x, y) is legal: pseudo-legal
// (not suicide) and not forbidden by positional superko.
func (b *Board) IsValid(color Color, x, y int) bool {
	v := Index(x, y)
	return b.isValidPseudo(color, v) && !b.isKo(color, v)
}

// Place plays color at (x, y). Precondition: the vertex is empty (usually
// guaranteed by a prior IsValid check). Placing on an occupied vertex is a
// programmer error and panics; the core prefers total functions with
// preconditions over recoverable errors for this kind of misuse.
//
// Own-group suicide is not rejected here: Place only captures opponent
// groups that reach zero liberties. Callers must gate on IsValid to keep
// the position Tromp-Taylor legal.
func (b *Board) Place(color Color, x, y int) {
	v := Index(x, y)
	if b.vertices[v] != Empty {
		panic(fmt.Sprintf("board: place on occupied vertex (%d,%d)", x, y))
	}

	b.placeNoCapture(color, v)

	b.count++
	b.hash ^= b.zt.At(color, v)

	opponent := color.Opposite()
	for _, n := range b.neighbours(v) {
		if b.vertices[n] == opponent && !b.hasOneLiberty(n) {
			b.captureWithHash(n)
		}
	}

	var snap snapshot
	copy(snap[:], b.vertices[:])
	b.history.Push(&snap)
	b.superko.Push(b.hash)
}

// captureWithHash removes v's group and undoes its contribution to the
// Zobrist hash, unlike the hash-agnostic groupState.capture used by ladder
// search clones.
func (b *Board) captureWithHash(v Vertex) {
	color := b.vertices[v]

	cur := v
	for {
		b.hash ^= b.zt.At(color, cur)
		next := b.nextVertex[cur]
		b.vertices[cur] = Empty
		if next == v {
			return
		}
		cur = next
	}
}

// captureDelta computes the Zobrist contribution of v's group without
// mutating the board, used by isKo to pretend-capture.
func (b *Board) captureDelta(v Vertex) ZobristHash {
	color := b.vertices[v]

	var delta ZobristHash
	cur := v
	for {
		delta ^= b.zt.At(color, cur)
		cur = b.nextVertex[cur]
		if cur == v {
			return delta
		}
	}
}

// isKo computes a tentative post-move hash (without mutating the board)
// and checks it against the bounded superko history.
func (b *Board) isKo(color Color, v Vertex) bool {
	tentative := b.hash ^ b.zt.At(color, v)

	opponent := color.Opposite()
	for _, n := range b.neighbours(v) {
		if b.vertices[n] == opponent && !b.hasTwoLiberties(n) {
			tentative ^= b.captureDelta(n)
		}
	}
	return b.superko.Contains(tentative)
}

// Equals reports value-equality: both the stone layout and the entire
// superko history sequence must match. History matters because feature
// planes derived from the last five positions differentiate otherwise
// identical boards.
func (b *Board) Equals(other *Board) bool {
	if other == nil {
		return false
	}
	if b.vertices != other.vertices {
		return false
	}
	a, o := b.superko.Iter(), other.superko.Iter()
	if len(a) != len(o) {
		return false
	}
	for i := range a {
		if a[i] != o[i] {
			return false
		}
	}
	return true
}

// Hash returns an FNV-1a style hash over the entire superko history
// sequence, matching the equality semantics of Equals. It is not the
// Zobrist position hash alone.
func (b *Board) Hash() uint64 {
	const offset, prime = uint64(14695981039346656037), uint64(1099511628211)

	h := offset
	for _, e := range b.superko.Iter() {
		h ^= uint64(e)
		h *= prime
	}
	return h
}

// columnLetters are the 19 column labels a-h,j-u, skipping 'i'.
var columnLetters = buildColumnLetters()

func buildColumnLetters() []rune {
	letters := make([]rune, 0, BoardSize)
	for c := 'a'; len(letters) < BoardSize; c++ {
		if c == 'i' {
			continue
		}
		letters = append(letters, c)
	}
	return letters
}

// String renders the board as a 19x19 grid bordered by rounded-box glyphs,
// with row 19 at the top and a Black/White legend, matching the reference
// display format exactly.
func (b *Board) String() string {
	var sb strings.Builder

	writeColumnHeader(&sb)
	sb.WriteString("╭")
	sb.WriteString(strings.Repeat("──", BoardSize))
	sb.WriteString("─╮\n")

	for y := BoardSize - 1; y >= 0; y-- {
		row := y + 1
		fmt.Fprintf(&sb, "%2d │", row)
		for x := 0; x < BoardSize; x++ {
			switch b.vertices[Index(x, y)] {
			case Black:
				sb.WriteString(" ●")
			case White:
				sb.WriteString(" ○")
			default:
				sb.WriteString("  ")
			}
		}
		fmt.Fprintf(&sb, " │ %d\n", row)
	}

	sb.WriteString("╰")
	sb.WriteString(strings.Repeat("──", BoardSize))
	sb.WriteString("─╯\n")
	writeColumnHeader(&sb)
	sb.WriteString("\n    ● Black    ○ White\n")

	return sb.String()
}

func writeColumnHeader(sb *strings.Builder) {
	sb.WriteString("   ")
	for _, l := range columnLetters {
		fmt.Fprintf(sb, " %c", l)
	}
	sb.WriteString("\n")
}
