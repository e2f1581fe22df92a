package queue

// Q is a generic LIFO with indexed access. The group validator uses it as an
// occurrence arena: each group occurrence is pushed as it opens, the top is
// the occurrence currently being filled, and validation walks all of them in
// the order they appeared on the command line.
type Q[T any] struct {
	items []T
}

// New creates an empty Q.
func New[T any]() *Q[T] {
	return &Q[T]{}
}

// Push adds an item on top.
func (q *Q[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Pop removes and returns the top item.
func (q *Q[T]) Pop() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	item := q.items[len(q.items)-1]
	q.items = q.items[:len(q.items)-1]
	return item, true
}

// Peek returns the top item without removing it.
func (q *Q[T]) Peek() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[len(q.items)-1], true
}

// Len returns the number of items.
func (q *Q[T]) Len() int {
	return len(q.items)
}

// At returns the item at index, counted from the bottom.
func (q *Q[T]) At(index int) (T, bool) {
	if index < 0 || index >= len(q.items) {
		var zero T
		return zero, false
	}
	return q.items[index], true
}

// ForEach iterates from bottom to top. Returning false from the callback
// stops the iteration early.
func (q *Q[T]) ForEach(callback func(item T, index int) bool) {
	for i := 0; i < len(q.items); i++ {
		if !callback(q.items[i], i) {
			break
		}
	}
}

// Clear removes all items.
func (q *Q[T]) Clear() {
	q.items = q.items[:0]
}
