package linkedlist

// IntoIter is an owning iterator. Every yielded value is removed from it.
type IntoIter[T any] struct {
	list List[T]
}

// IntoIter moves all elements of l into a new owning iterator, leaving l empty.
func (l *List[T]) IntoIter() *IntoIter[T] {
	l.mustWrite("IntoIter")

	it := &IntoIter[T]{}
	it.list.head, it.list.tail, it.list.len = l.head, l.tail, l.len
	l.head, l.tail, l.len = nil, nil, 0

	return it
}

// Len returns the number of values not yet yielded.
func (it *IntoIter[T]) Len() int {
	return it.list.len
}

// Next removes and returns the front value.
func (it *IntoIter[T]) Next() (T, bool) {
	return it.list.PopFront()
}

// NextBack removes and returns the back value.
func (it *IntoIter[T]) NextBack() (T, bool) {
	return it.list.PopBack()
}

// Close releases the values that were not yielded.
func (it *IntoIter[T]) Close() {
	it.list.Clear()
}
