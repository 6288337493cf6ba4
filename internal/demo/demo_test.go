package demo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"containers/hashset"
)

const englishTranscript = `HashSet: [first, third, second], Size: 3
After removal: [third, second], Size: 2
ArrayList: [1, 2, 3], Size: 3
After insert at index: [1, 99, 2, 3], Size: 4
Element at index 1 (get): 99
After removal: [99, 2, 3], Size: 3
After addAll: [99, 2, 3, 1, 2, 3, 4, 5], Size: 8
`

const russianTranscript = `HashSet: [first, third, second], Size: 3
После удаления: [third, second], Size: 2
ArrayList: [1, 2, 3], Size: 3
После вставки по индексу: [1, 99, 2, 3], Size: 4
Элемент с индексом 1 (get): 99
После удаления: [99, 2, 3], Size: 3
После addAll: [99, 2, 3, 1, 2, 3, 4, 5], Size: 8
`

func TestTranscript(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"en", englishTranscript},
		{"ru", russianTranscript},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			tag, err := ParseLang(tt.lang)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, Run(&buf, Options{Lang: tag}))
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("transcript (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTranscriptIsStableAcrossRuns(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Run(&a, Options{}))
	require.NoError(t, Run(&b, Options{}))
	assert.Equal(t, a.String(), b.String())
}

func TestXXHashKeepsSetContents(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(&buf, Options{Lang: language.English, Hasher: hashset.XXStrings(), SetCapacity: 4}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "Size: 3")
	for _, w := range []string{"first", "second", "third"} {
		assert.Contains(t, lines[0], w)
	}
	assert.NotContains(t, lines[1], "first")
	assert.Equal(t, strings.Split(englishTranscript, "\n")[2:7], lines[2:7], "list lines do not depend on the hasher")
}

func TestSmallListCapacity(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(&buf, Options{ListCapacity: 1}))
	assert.Equal(t, englishTranscript, buf.String())
}

func TestParseLangRejectsGarbage(t *testing.T) {
	_, err := ParseLang("not a language!")
	assert.Error(t, err)
}
