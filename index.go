package linkedlist

import "fmt"

func (l *List[T]) checkIndex(op string, index, limit int) {
	if index < 0 || index >= limit {
		panic(fmt.Errorf("%w: %s index %d with length %d", ErrIndexOutOfRange, op, index, l.len))
	}
}

// find returns the node at index, walking from whichever end is closer.
// The index must be in range.
func (l *List[T]) find(index int) *node[T] {
	if l.len-index > index {
		n := l.head
		for i := 0; i < index; i++ {
			n = n.next
		}
		return n
	}

	n := l.tail
	for i := l.len - 1; i > index; i-- {
		n = n.prev
	}
	return n
}

// Get returns the value at index. It panics if index is out of range.
func (l *List[T]) Get(index int) T {
	l.mustRead("Get")
	l.checkIndex("Get", index, l.len)

	return l.find(index).value
}

// GetPtr returns a pointer to the value at index. It panics if index is out of range.
//
// The pointer stays valid until the element is removed from the list.
func (l *List[T]) GetPtr(index int) *T {
	l.mustWrite("GetPtr")
	l.checkIndex("GetPtr", index, l.len)

	return &l.find(index).value
}

// Set replaces the value at index. It panics if index is out of range.
func (l *List[T]) Set(index int, value T) {
	l.mustWrite("Set")
	l.checkIndex("Set", index, l.len)

	l.find(index).value = value
}

// Insert inserts a value so that it ends up at index, for 0 < index < Len().
// It panics if index is negative or greater than Len().
//
// The boundaries are inverted: index 0 appends the value at the back of the list
// and index Len() prepends it at the front. For an empty list index 0 appends.
func (l *List[T]) Insert(index int, value T) {
	l.mustWrite("Insert")
	l.checkIndex("Insert", index, l.len+1)

	switch index {
	case 0:
		l.pushBackNode(&node[T]{value: value})
	case l.len:
		l.pushFrontNode(&node[T]{value: value})
	default:
		l.linkAfter(l.find(index-1), &node[T]{value: value})
	}
}

// Remove removes and returns the value at index, for 0 < index < Len().
// It panics if index is out of range.
//
// The boundary is inverted like in Insert: index 0 removes the back element.
func (l *List[T]) Remove(index int) T {
	l.mustWrite("Remove")
	l.checkIndex("Remove", index, l.len)

	var n *node[T]
	if index == 0 {
		n = l.tail
	} else {
		n = l.find(index)
	}

	l.unlink(n)

	return free(n)
}
