package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsumego/ishi/pkg/board"
)

func TestSmallSetEvictsOldest(t *testing.T) {
	s := board.NewSmallSet(3)

	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.True(t, s.Contains(1))

	s.Push(4)
	assert.False(t, s.Contains(1), "oldest entry should have been evicted")
	assert.True(t, s.Contains(2))
	assert.True(t, s.Contains(3))
	assert.True(t, s.Contains(4))
	assert.Equal(t, 3, s.Len())
}

func TestSmallSetCloneIsIndependent(t *testing.T) {
	s := board.NewSmallSet(4)
	s.Push(1)
	s.Push(2)

	clone := s.Clone()
	clone.Push(3)

	assert.False(t, s.Contains(3))
	assert.True(t, clone.Contains(3))
}
