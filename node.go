package linkedlist

// node is a list cell. Its links are only changed by the link and unlink helpers below.
type node[T any] struct {
	next, prev *node[T]
	value      T
}

// testHookFree is called each time a node is released.
var testHookFree func()

// pushFrontNode links n as the new head.
func (l *List[T]) pushFrontNode(n *node[T]) {
	n.prev = nil
	n.next = l.head

	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}

	l.head = n
	l.len++
}

// pushBackNode links n as the new tail.
func (l *List[T]) pushBackNode(n *node[T]) {
	n.next = nil
	n.prev = l.tail

	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}

	l.tail = n
	l.len++
}

// linkAfter links n after mark.
func (l *List[T]) linkAfter(mark, n *node[T]) {
	n.prev = mark
	n.next = mark.next

	if mark.next == nil {
		l.tail = n
	} else {
		mark.next.prev = n
	}

	mark.next = n
	l.len++
}

// unlink detaches n from the chain and clears its links.
func (l *List[T]) unlink(n *node[T]) {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}

	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}

	n.next = nil
	n.prev = nil
	l.len--
}

// free releases an unlinked node and returns its value.
// The node must not be used afterwards.
func free[T any](n *node[T]) T {
	v := n.value
	*n = node[T]{}

	if testHookFree != nil {
		testHookFree()
	}

	return v
}
