package board

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCoordinate parses a short algebraic coordinate such as "d4" or "t19"
// into (x, y), using the a-h,j-u column lettering (skipping 'i') and rows
// 1..19 matching the display format.
func ParseCoordinate(s string) (x, y int, err error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) < 2 {
		return 0, 0, fmt.Errorf("invalid coordinate: %q", s)
	}

	col := rune(s[0])
	found := false
	for i, l := range columnLetters {
		if l == col {
			x, found = i, true
			break
		}
	}
	if !found {
		return 0, 0, fmt.Errorf("invalid coordinate: %q", s)
	}

	row, err := strconv.Atoi(s[1:])
	if err != nil || row < 1 || row > BoardSize {
		return 0, 0, fmt.Errorf("invalid coordinate: %q", s)
	}
	return x, row - 1, nil
}

// FormatCoordinate renders (x, y) using the same lettering as ParseCoordinate.
func FormatCoordinate(x, y int) string {
	return fmt.Sprintf("%c%d", columnLetters[x], y+1)
}
