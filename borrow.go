package linkedlist

import "fmt"

// guard counts the iterators currently borrowing a list.
// It is a plain counter, not a synchronization primitive.
type guard struct {
	shared    int
	exclusive bool
}

// loan is a single borrow of a list. Copies of an iterator share its loan,
// so a borrow is given back at most once.
type loan struct {
	guard     *guard
	exclusive bool
}

// active reports whether the borrow is still held.
func (b *loan) active() bool {
	return b != nil && b.guard != nil
}

// release gives the borrow back. Releasing twice is a no-op.
func (b *loan) release() {
	if !b.active() {
		return
	}

	if b.exclusive {
		b.guard.exclusive = false
	} else {
		b.guard.shared--
	}

	b.guard = nil
}

// mustWrite panics if any iterator borrows the list.
func (l *List[T]) mustWrite(op string) {
	if l.guard.shared > 0 || l.guard.exclusive {
		panic(fmt.Errorf("%w: %s during iteration", ErrBorrowed, op))
	}
}

// mustRead panics if the elements are exclusively borrowed.
func (l *List[T]) mustRead(op string) {
	if l.guard.exclusive {
		panic(fmt.Errorf("%w: %s during mutable iteration", ErrBorrowed, op))
	}
}

func (l *List[T]) borrow() *loan {
	l.mustRead("iterate")
	l.guard.shared++
	return &loan{guard: &l.guard}
}

func (l *List[T]) borrowMut() *loan {
	if l.guard.shared > 0 || l.guard.exclusive {
		panic(fmt.Errorf("%w: mutable iteration during iteration", ErrBorrowed))
	}
	l.guard.exclusive = true
	return &loan{guard: &l.guard, exclusive: true}
}
