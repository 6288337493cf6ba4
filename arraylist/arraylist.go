// Package arraylist implements an index-addressable list on a manually
// managed backing array that doubles when full.
//
// Methods are not thread-safe.
package arraylist

import (
	"containers/internal/render"
)

// DefaultCapacity is the initial backing array length used by New.
const DefaultCapacity = 10

// List is a growable array-backed sequence. Elements occupy the positions
// [0, size) of the backing array; slots past size hold the zero value.
type List[T any] struct {
	elements []T
	size     int
}

// New returns an empty List with DefaultCapacity slots.
func New[T any]() *List[T] {
	return NewWithCapacity[T](DefaultCapacity)
}

// NewWithCapacity returns an empty List with the given number of slots.
// It panics if capacity is less than one.
func NewWithCapacity[T any](capacity int) *List[T] {
	if capacity < 1 {
		panic("arraylist: capacity must be positive")
	}
	return &List[T]{elements: make([]T, capacity)}
}

// From returns a List holding items in order.
func From[T any](items ...T) *List[T] {
	l := New[T]()
	l.AddAll(items...)
	return l
}

// Add appends value at the end of the list.
func (l *List[T]) Add(value T) {
	l.ensureCapacity()
	l.elements[l.size] = value
	l.size++
}

// AddAt inserts value at index, shifting the elements at [index, size) one
// position right. index may equal Size, which appends.
func (l *List[T]) AddAt(index int, value T) error {
	if err := l.checkIndexForAdd(index); err != nil {
		return err
	}
	l.ensureCapacity()
	copy(l.elements[index+1:l.size+1], l.elements[index:l.size])
	l.elements[index] = value
	l.size++
	return nil
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return l.elements[index], nil
}

// Remove deletes and returns the element at index, shifting the elements
// after it one position left.
func (l *List[T]) Remove(index int) (T, error) {
	var zero T
	if err := l.checkIndex(index); err != nil {
		return zero, err
	}
	removed := l.elements[index]
	copy(l.elements[index:l.size-1], l.elements[index+1:l.size])
	l.size--
	l.elements[l.size] = zero
	return removed, nil
}

// AddAll appends items in order, as repeated calls to Add would.
func (l *List[T]) AddAll(items ...T) {
	for _, item := range items {
		l.Add(item)
	}
}

// Size returns the number of elements.
func (l *List[T]) Size() int {
	return l.size
}

// Cap returns the length of the backing array.
func (l *List[T]) Cap() int {
	return len(l.elements)
}

// Values returns a copy of the elements in order.
func (l *List[T]) Values() []T {
	values := make([]T, l.size)
	copy(values, l.elements[:l.size])
	return values
}

// String renders the elements in order, e.g. "[1, 2, 3]".
func (l *List[T]) String() string {
	return render.Bracketed(l.size, func(i int) string {
		return render.Text(l.elements[i])
	})
}

// ensureCapacity doubles the backing array when every slot is in use.
func (l *List[T]) ensureCapacity() {
	if l.size < len(l.elements) {
		return
	}
	grown := make([]T, len(l.elements)*2)
	copy(grown, l.elements)
	l.elements = grown
}

func (l *List[T]) checkIndex(index int) error {
	if index < 0 || index >= l.size {
		return &IndexOutOfRangeError{Index: index, Size: l.size}
	}
	return nil
}

func (l *List[T]) checkIndexForAdd(index int) error {
	if index < 0 || index > l.size {
		return &IndexOutOfRangeError{Index: index, Size: l.size}
	}
	return nil
}
