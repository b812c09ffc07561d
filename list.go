/*
Package linkedlist implements a generic doubly linked list with O(1) operations at
both ends, bidirectional indexed access and a family of borrowing and owning iterators.

The list performs no locking. It may be handed over to another goroutine as a whole,
and may be read from several goroutines at once as long as nobody mutates it;
anything else must be synchronized by the caller.

Iterators borrow the list. While an iterator is alive, structural changes to the list
panic with ErrBorrowed instead of corrupting the iteration. An iterator stays alive until
it is closed or Next or NextBack reports exhaustion; range loops over All, Values and
Backward release the list when the loop exits.

Pointers returned by GetPtr, FrontPtr, BackPtr, TopPtr, PeekPtr and IterMut refer to the
element in place and are not tracked. The borrow only covers a pointer from IterMut while
its iterator is alive. Once the element is removed from the list, writes through a pointer
to it are no longer observed by the list.
*/
package linkedlist

// List is a doubly linked list.
//
// The zero value is a ready to use empty list.
type List[T any] struct {
	head  *node[T]
	tail  *node[T]
	len   int
	guard guard
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.len == 0
}

// PushFront inserts a value at the front of the list.
func (l *List[T]) PushFront(value T) {
	l.mustWrite("PushFront")
	l.pushFrontNode(&node[T]{value: value})
}

// PushBack inserts a value at the back of the list.
func (l *List[T]) PushBack(value T) {
	l.mustWrite("PushBack")
	l.pushBackNode(&node[T]{value: value})
}

// PopFront removes and returns the first value of the list.
// It returns false if the list is empty.
func (l *List[T]) PopFront() (value T, ok bool) {
	l.mustWrite("PopFront")

	n := l.head
	if n == nil {
		return value, false
	}

	l.unlink(n)

	return free(n), true
}

// PopBack removes and returns the last value of the list.
// It returns false if the list is empty.
func (l *List[T]) PopBack() (value T, ok bool) {
	l.mustWrite("PopBack")

	n := l.tail
	if n == nil {
		return value, false
	}

	l.unlink(n)

	return free(n), true
}

// Front returns the first value of the list.
func (l *List[T]) Front() (value T, ok bool) {
	l.mustRead("Front")

	if l.head == nil {
		return value, false
	}

	return l.head.value, true
}

// Back returns the last value of the list.
func (l *List[T]) Back() (value T, ok bool) {
	l.mustRead("Back")

	if l.tail == nil {
		return value, false
	}

	return l.tail.value, true
}

// FrontPtr returns a pointer to the first value of the list or nil.
func (l *List[T]) FrontPtr() *T {
	l.mustWrite("FrontPtr")

	if l.head == nil {
		return nil
	}

	return &l.head.value
}

// BackPtr returns a pointer to the last value of the list or nil.
func (l *List[T]) BackPtr() *T {
	l.mustWrite("BackPtr")

	if l.tail == nil {
		return nil
	}

	return &l.tail.value
}

// Clear removes all elements from the list.
func (l *List[T]) Clear() {
	l.mustWrite("Clear")

	for l.head != nil {
		l.PopFront()
	}
}
