package linkedlist

import "iter"

// All returns an iterator over index-value pairs in forward order.
// The list is borrowed for the duration of the loop.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := l.Iter()
		defer it.Close()

		for i := 0; ; i++ {
			v, ok := it.Next()
			if !ok || !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in forward order.
// The list is borrowed for the duration of the loop.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iter()
		defer it.Close()

		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs in backward order.
// The list is borrowed for the duration of the loop.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := l.Iter()
		defer it.Close()

		for i := it.Len() - 1; ; i-- {
			v, ok := it.NextBack()
			if !ok || !yield(i, v) {
				return
			}
		}
	}
}

// Drain returns an iterator that removes values from the front of the list as it yields them.
// Values not reached when the loop stops stay in the list.
func (l *List[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := l.PopFront()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// AppendSeq pushes every value of seq to the back of the list, in order.
func (l *List[T]) AppendSeq(seq iter.Seq[T]) {
	l.mustWrite("AppendSeq")

	for v := range seq {
		l.PushBack(v)
	}
}

// Collect builds a list from seq by pushing each value to the back.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	l.AppendSeq(seq)
	return l
}

// Of builds a list holding values in order.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Slice returns the values of the list in forward order.
func (l *List[T]) Slice() []T {
	s := make([]T, 0, l.Len())
	for v := range l.Values() {
		s = append(s, v)
	}
	return s
}
