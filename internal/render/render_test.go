package render

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

type point struct{ x, y int }

func (p point) String() string { return "(" + strconv.Itoa(p.x) + "," + strconv.Itoa(p.y) + ")" }

func TestJoin(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"empty", Join([]int{}), "[]"},
		{"nil", Join[string](nil), "[]"},
		{"single", Join([]string{"a"}), "[a]"},
		{"ints", Join([]int{1, 99, 2, 3}), "[1, 99, 2, 3]"},
		{"stringer", Join([]point{{1, 2}, {3, 4}}), "[(1,2), (3,4)]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestBracketedAsksEachPositionOnce(t *testing.T) {
	var seen []int
	out := Bracketed(3, func(i int) string {
		seen = append(seen, i)
		return strconv.Itoa(i * 10)
	})

	assert.Equal(t, "[0, 10, 20]", out)
	assert.Equal(t, []int{0, 1, 2}, seen)
}
