package dllist

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func printed(t *testing.T, print func(w *bytes.Buffer) error) string {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, print(buf))
	return buf.String()
}

func TestPrint(t *testing.T) {
	l := New()
	for _, v := range []int{3, 7, 2, 1} {
		l.InsertFront(v)
	}
	assert.Equal(t, "1\n2\n7\n3\n", printed(t, func(w *bytes.Buffer) error { return l.Print(w) }))

	l.RemoveRange(1, 2)
	assert.Equal(t, "1\n3\n", printed(t, func(w *bytes.Buffer) error { return l.Print(w) }))
}

func TestPrintNegativeValues(t *testing.T) {
	l := FromValues([]int{-4, 0, 12})
	assert.Equal(t, "-4\n0\n12\n", printed(t, func(w *bytes.Buffer) error { return l.Print(w) }))
}

func TestPrintEmpty(t *testing.T) {
	l := New()
	assert.Equal(t, EmptyListMessage, printed(t, func(w *bytes.Buffer) error { return l.Print(w) }))
	assert.Equal(t, EmptyListMessage, printed(t, func(w *bytes.Buffer) error { return l.PrintSorted(w) }))

	l.InsertFront(1)
	l.RemoveLast()
	assert.Equal(t, EmptyListMessage, printed(t, func(w *bytes.Buffer) error { return l.Print(w) }))
}

func TestPrintSorted(t *testing.T) {
	l := FromValues([]int{5, 2, 7, 2, -1})
	before := printed(t, func(w *bytes.Buffer) error { return l.Print(w) })

	assert.Equal(t, "-1\n2\n2\n5\n7\n", printed(t, func(w *bytes.Buffer) error { return l.PrintSorted(w) }))

	// The list itself keeps its order
	assert.Equal(t, before, printed(t, func(w *bytes.Buffer) error { return l.Print(w) }))
	assert.Equal(t, []int{5, 2, 7, 2, -1}, l.Values())
	checkRing(t, l)
}

func TestSortedValues(t *testing.T) {
	l := FromValues([]int{3, 1, 2})
	assert.Equal(t, []int{1, 2, 3}, l.SortedValues())
	assert.Equal(t, []int{3, 1, 2}, l.Values())
}

func TestPrintWriterError(t *testing.T) {
	l := FromValues([]int{1})
	err := l.Print(failingWriter{})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "disk full")

	err = New().PrintSorted(failingWriter{})
	require.NotNil(t, err)
}
