package ring

import (
	"sync"
)

// Buffer is a fixed capacity FIFO that overwrites its oldest item when full.
type Buffer[T any] struct {
	mu    sync.Mutex
	items []T
	head  int
	tail  int
	size  int
	count int
}

func NewBuffer[T any](capacity int) *Buffer[T] {
	capacity = max(1, capacity)
	return &Buffer[T]{
		items: make([]T, capacity),
		size:  capacity,
	}
}

func (rb *Buffer[T]) Len() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.count
}

func (rb *Buffer[T]) Push(item T) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	if rb.count == rb.size {
		rb.head = (rb.head + 1) % rb.size
	} else {
		rb.count++
	}
	rb.items[rb.tail] = item
	rb.tail = (rb.tail + 1) % rb.size
}

// Last is the most recently pushed item, or the zero value when empty.
func (rb *Buffer[T]) Last() T {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	if rb.count == 0 {
		var zero T
		return zero
	}
	return rb.items[(rb.tail-1+rb.size)%rb.size]
}

// Items copies the buffered items, oldest first.
func (rb *Buffer[T]) Items() []T {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	out := make([]T, rb.count)
	for i := range out {
		out[i] = rb.items[(rb.head+i)%rb.size]
	}
	return out
}
