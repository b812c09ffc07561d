package main

import (
	"fmt"

	"github.com/mgnsk/linkedlist"
)

func main() {
	l := linkedlist.Of(1, 2, 3)

	// Index 0 appends at the back and index Len() prepends at the front.
	l.Insert(0, 4)
	l.Insert(l.Len(), 0)

	for i, v := range l.All() {
		fmt.Println(i, v)
	}

	// Double every value in place.
	it := l.IterMut()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		*p *= 2
	}

	fmt.Println(l)

	// Drain the list from the front.
	for v := range l.Drain() {
		fmt.Println(v)
	}

	fmt.Println(l.Len())
}
