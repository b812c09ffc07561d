package linkedlist

// Iter is a bidirectional iterator over the values of a list.
//
// It walks a window of the chain between its own head and tail cursors,
// independent of later reads of the list. The list is borrowed until the
// iterator is closed or Next or NextBack reports exhaustion.
type Iter[T any] struct {
	list *List[T]
	loan *loan
	head *node[T]
	tail *node[T]
	len  int
}

// Iter returns an iterator over the values of the list.
func (l *List[T]) Iter() *Iter[T] {
	l.mustRead("Iter")

	it := &Iter[T]{
		head: l.head,
		tail: l.tail,
		len:  l.len,
	}

	if it.len > 0 {
		it.list = l
		it.loan = l.borrow()
	}

	return it
}

// Len returns the number of values not yet yielded.
func (it *Iter[T]) Len() int {
	if !it.loan.active() {
		return 0
	}
	return it.len
}

// Next returns the value at the front cursor and advances it.
// It returns false and releases the list when the iterator is exhausted.
func (it *Iter[T]) Next() (value T, ok bool) {
	if it.Len() == 0 {
		it.Close()
		return value, false
	}

	n := it.head
	it.head = n.next
	it.len--

	return n.value, true
}

// NextBack returns the value at the back cursor and moves it backwards.
// It returns false and releases the list when the iterator is exhausted.
func (it *Iter[T]) NextBack() (value T, ok bool) {
	if it.Len() == 0 {
		it.Close()
		return value, false
	}

	n := it.tail
	it.tail = n.prev
	it.len--

	return n.value, true
}

// Clone returns an independent iterator at the same position.
func (it *Iter[T]) Clone() *Iter[T] {
	c := *it
	if it.loan.active() {
		c.loan = it.list.borrow()
	}
	return &c
}

// Close releases the list. Close is idempotent.
func (it *Iter[T]) Close() {
	it.len = 0
	it.head = nil
	it.tail = nil
	it.list = nil

	it.loan.release()
	it.loan = nil
}

// IterMut is a bidirectional iterator yielding pointers to the values of a list.
//
// The list is exclusively borrowed until the iterator is closed or Next or
// NextBack reports exhaustion: neither reads nor writes through the list are
// allowed in the meantime.
type IterMut[T any] struct {
	loan *loan
	head *node[T]
	tail *node[T]
	len  int
}

// IterMut returns an iterator over pointers to the values of the list.
func (l *List[T]) IterMut() *IterMut[T] {
	b := l.borrowMut()

	it := &IterMut[T]{
		head: l.head,
		tail: l.tail,
		len:  l.len,
	}

	if it.len > 0 {
		it.loan = b
	} else {
		b.release()
	}

	return it
}

// Len returns the number of values not yet yielded.
func (it *IterMut[T]) Len() int {
	if !it.loan.active() {
		return 0
	}
	return it.len
}

// Next returns a pointer to the value at the front cursor and advances it.
// It returns false and releases the list when the iterator is exhausted.
func (it *IterMut[T]) Next() (*T, bool) {
	if it.Len() == 0 {
		it.Close()
		return nil, false
	}

	n := it.head
	it.head = n.next
	it.len--

	return &n.value, true
}

// NextBack returns a pointer to the value at the back cursor and moves it backwards.
// It returns false and releases the list when the iterator is exhausted.
func (it *IterMut[T]) NextBack() (*T, bool) {
	if it.Len() == 0 {
		it.Close()
		return nil, false
	}

	n := it.tail
	it.tail = n.prev
	it.len--

	return &n.value, true
}

// Close releases the list. Close is idempotent.
func (it *IterMut[T]) Close() {
	it.len = 0
	it.head = nil
	it.tail = nil

	it.loan.release()
	it.loan = nil
}
