package hashset

import (
	"unicode/utf16"

	"github.com/cespare/xxhash/v2"
)

// Hasher supplies the equality and hash capability a Set needs from its
// element type. Equal values must produce equal hashes, and Hash must be
// deterministic for the lifetime of the set.
type Hasher[T any] interface {
	Hash(value T) int32
	Equal(a, b T) bool
}

// Hashable is implemented by element types that know how to hash and compare
// themselves.
type Hashable[T any] interface {
	Hash() int32
	Equal(other T) bool
}

// HasherFunc adapts a pair of functions to the Hasher interface.
type HasherFunc[T any] struct {
	HashFn  func(T) int32
	EqualFn func(a, b T) bool
}

func (f HasherFunc[T]) Hash(value T) int32 { return f.HashFn(value) }
func (f HasherFunc[T]) Equal(a, b T) bool  { return f.EqualFn(a, b) }

type stringHasher struct{}

// Strings returns the reference string hasher: h = 31*h + c over the UTF-16
// code units of the string, wrapping at 32 bits. With the default capacity it
// yields the reference bucket layout, and so the reference rendering order.
func Strings() Hasher[string] { return stringHasher{} }

func (stringHasher) Hash(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = 31*h + int32(c)
	}
	return h
}

func (stringHasher) Equal(a, b string) bool { return a == b }

type xxStringHasher struct{}

// XXStrings hashes strings with xxhash64, folded to 32 bits. Spread is much
// better than Strings, but rendering order differs from the reference layout.
func XXStrings() Hasher[string] { return xxStringHasher{} }

func (xxStringHasher) Hash(s string) int32 {
	sum := xxhash.Sum64String(s)
	return int32(uint32(sum ^ sum>>32))
}

func (xxStringHasher) Equal(a, b string) bool { return a == b }

type intHasher struct{}

// Ints hashes an int to its low 32 bits, the identity for every value that
// fits in an int32.
func Ints() Hasher[int] { return intHasher{} }

func (intHasher) Hash(v int) int32    { return int32(v) }
func (intHasher) Equal(a, b int) bool { return a == b }

type methodHasher[T Hashable[T]] struct{}

// Methods delegates to the Hash and Equal methods of T.
func Methods[T Hashable[T]]() Hasher[T] { return methodHasher[T]{} }

func (methodHasher[T]) Hash(value T) int32 { return value.Hash() }
func (methodHasher[T]) Equal(a, b T) bool  { return a.Equal(b) }
