package linkedlist

import (
	"cmp"
	"fmt"
	"hash/maphash"
)

// Equal reports whether both lists hold equal values in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool {
		return x == y
	})
}

// EqualFunc is like Equal but compares values with eq.
func EqualFunc[T1, T2 any](a *List[T1], b *List[T2], eq func(T1, T2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	ia, ib := a.Iter(), b.Iter()
	defer ia.Close()
	defer ib.Close()

	for {
		x, ok := ia.Next()
		if !ok {
			return true
		}

		y, _ := ib.Next()
		if !eq(x, y) {
			return false
		}
	}
}

// Compare compares the values of a and b lexicographically in forward order.
// A list that is a prefix of the other is the lesser one.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare but compares values with cmp.
func CompareFunc[T1, T2 any](a *List[T1], b *List[T2], cmp func(T1, T2) int) int {
	ia, ib := a.Iter(), b.Iter()
	defer ia.Close()
	defer ib.Close()

	for {
		x, okA := ia.Next()
		y, okB := ib.Next()

		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return -1
		case !okB:
			return 1
		}

		if c := cmp(x, y); c != 0 {
			return c
		}
	}
}

// Hash returns a hash of the list length followed by its values in forward order.
func Hash[T comparable](seed maphash.Seed, l *List[T]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)

	HashFunc(&h, l, maphash.WriteComparable[T])

	return h.Sum64()
}

// HashFunc writes the list length to h, then each value using f.
func HashFunc[T any](h *maphash.Hash, l *List[T], f func(*maphash.Hash, T)) {
	maphash.WriteComparable(h, l.Len())

	for v := range l.Values() {
		f(h, v)
	}
}

// Clone returns a new list holding a copy of each value.
func (l *List[T]) Clone() *List[T] {
	return Collect(l.Values())
}

// Format renders the values in forward order like a slice.
func (l *List[T]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), l.Slice())
}

// String returns the values in forward order like a slice.
func (l *List[T]) String() string {
	return fmt.Sprint(l.Slice())
}
