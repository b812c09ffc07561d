package linkedlist

import "fmt"

// Validate checks the structural invariants of l.
func Validate[T any](l *List[T]) error {
	if (l.len == 0) != (l.head == nil) || (l.head == nil) != (l.tail == nil) {
		return fmt.Errorf("len %d inconsistent with head %p and tail %p", l.len, l.head, l.tail)
	}

	if l.head == nil {
		return nil
	}

	if l.head.prev != nil {
		return fmt.Errorf("head has a previous node")
	}

	if l.tail.next != nil {
		return fmt.Errorf("tail has a next node")
	}

	var (
		last  *node[T]
		count int
	)

	for n := l.head; n != nil; n = n.next {
		if count++; count > l.len {
			return fmt.Errorf("forward chain longer than %d", l.len)
		}
		if n.next != nil && n.next.prev != n {
			return fmt.Errorf("broken back link at position %d", count-1)
		}
		last = n
	}

	if count != l.len || last != l.tail {
		return fmt.Errorf("forward chain of %d nodes does not end at tail", count)
	}

	count = 0

	for n := l.tail; n != nil; n = n.prev {
		if count++; count > l.len {
			return fmt.Errorf("backward chain longer than %d", l.len)
		}
		last = n
	}

	if count != l.len || last != l.head {
		return fmt.Errorf("backward chain of %d nodes does not end at head", count)
	}

	return nil
}

// CountFrees returns the number of nodes released while running f.
func CountFrees(f func()) int {
	freed := 0

	testHookFree = func() {
		freed++
	}
	defer func() {
		testHookFree = nil
	}()

	f()

	return freed
}
