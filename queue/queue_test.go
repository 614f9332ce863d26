package queue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gomesh/refine2d/queue"
)

func TestPopReturnsHighestPriorityFirst(t *testing.T) {
	q := queue.New()
	q.Push(1, 0.5)
	q.Push(2, 9.0)
	q.Push(3, 3.0)

	face, priority, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, queue.FaceID(2), face)
	assert.Equal(t, 9.0, priority)

	face, _, ok = q.Pop()
	assert.True(t, ok)
	assert.Equal(t, queue.FaceID(3), face)

	face, _, ok = q.Pop()
	assert.True(t, ok)
	assert.Equal(t, queue.FaceID(1), face)

	_, _, ok = q.Pop()
	assert.False(t, ok)
}

func TestRemoveByHandle(t *testing.T) {
	q := queue.New()
	q.Push(1, 1.0)
	q.Push(2, 2.0)
	q.Push(3, 3.0)

	assert.True(t, q.Remove(2))
	assert.False(t, q.Contains(2))
	assert.Equal(t, 2, q.Len())

	face, _, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, queue.FaceID(3), face)

	assert.False(t, q.Remove(42))
}

func TestPushExistingFaceUpdatesPriority(t *testing.T) {
	q := queue.New()
	q.Push(1, 1.0)
	q.Push(2, 5.0)

	q.Push(1, 100.0)

	face, priority, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, queue.FaceID(1), face)
	assert.Equal(t, 100.0, priority)
}

func TestPeekDoesNotRemove(t *testing.T) {
	q := queue.New()
	q.Push(1, 1.0)

	face, _, ok := q.Peek()
	assert.True(t, ok)
	assert.Equal(t, queue.FaceID(1), face)
	assert.Equal(t, 1, q.Len())
}
