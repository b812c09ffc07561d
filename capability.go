package linkedlist

// Collection is a container with a length that can be emptied.
type Collection interface {
	Len() int
	Clear()
}

// Inserter inserts values at an index.
type Inserter[T any] interface {
	Insert(index int, value T)
}

// Remover removes values at an index.
type Remover[T any] interface {
	Remove(index int) T
}

// Deque is a double ended queue.
type Deque[T any] interface {
	Collection
	PushFront(T)
	PushBack(T)
	PopFront() (T, bool)
	PopBack() (T, bool)
	Front() (T, bool)
	Back() (T, bool)
	FrontPtr() *T
	BackPtr() *T
}

// Stack is a LIFO container.
type Stack[T any] interface {
	Collection
	Push(T)
	Pop() (T, bool)
	Top() (T, bool)
	TopPtr() *T
}

// Queue is a FIFO container.
type Queue[T any] interface {
	Collection
	Enqueue(T)
	Dequeue() (T, bool)
	Peek() (T, bool)
	PeekPtr() *T
}

var (
	_ Inserter[int] = &List[int]{}
	_ Remover[int]  = &List[int]{}
	_ Deque[int]    = &List[int]{}
	_ Stack[int]    = &List[int]{}
	_ Queue[int]    = &List[int]{}
)

// Push pushes a value to the top of the stack, which is the back of the list.
func (l *List[T]) Push(value T) {
	l.PushBack(value)
}

// Pop removes and returns the top of the stack.
func (l *List[T]) Pop() (T, bool) {
	return l.PopBack()
}

// Top returns the top of the stack.
func (l *List[T]) Top() (T, bool) {
	return l.Back()
}

// TopPtr returns a pointer to the top of the stack or nil.
func (l *List[T]) TopPtr() *T {
	return l.BackPtr()
}

// Enqueue adds a value at the back of the queue.
func (l *List[T]) Enqueue(value T) {
	l.PushBack(value)
}

// Dequeue removes and returns the value at the front of the queue.
func (l *List[T]) Dequeue() (T, bool) {
	return l.PopFront()
}

// Peek returns the value at the front of the queue.
func (l *List[T]) Peek() (T, bool) {
	return l.Front()
}

// PeekPtr returns a pointer to the value at the front of the queue or nil.
func (l *List[T]) PeekPtr() *T {
	return l.FrontPtr()
}
