package linkedlist

import "errors"

// ErrIndexOutOfRange indicates an index outside of the list bounds.
var ErrIndexOutOfRange = errors.New("linkedlist: index out of range")

// ErrBorrowed indicates an operation that conflicts with a live iterator.
var ErrBorrowed = errors.New("linkedlist: list is borrowed")
