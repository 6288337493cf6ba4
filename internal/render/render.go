// Package render holds the textual convention shared by the containers:
// elements in order, separated by ", " and wrapped in square brackets.
package render

import (
	"fmt"
	"strings"
)

// Empty is the rendering of a container without elements.
const Empty = "[]"

// Bracketed renders n elements, asking at for the text of each position.
func Bracketed(n int, at func(i int) string) string {
	if n == 0 {
		return Empty
	}

	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(at(i))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Join renders values using their default fmt representation.
func Join[T any](values []T) string {
	return Bracketed(len(values), func(i int) string {
		return Text(values[i])
	})
}

// Text is the canonical text of a single element.
func Text(v any) string {
	return fmt.Sprint(v)
}
