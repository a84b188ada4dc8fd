package dllist

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Invicton-Labs/go-circularlist/collections"
	"github.com/Invicton-Labs/go-stackerr"
)

// EmptyListMessage is written by Print and PrintSorted instead of values when
// the list has no elements.
const EmptyListMessage = "The list is empty.\n"

// writeValues writes one value per line, or EmptyListMessage if there are none.
func writeValues(w io.Writer, values []int) stackerr.Error {
	var buf []byte
	if len(values) == 0 {
		buf = []byte(EmptyListMessage)
	} else {
		buf = make([]byte, 0, 4*len(values))
		for _, v := range values {
			buf = strconv.AppendInt(buf, int64(v), 10)
			buf = append(buf, '\n')
		}
	}
	if _, err := w.Write(buf); err != nil {
		return stackerr.Wrap(err)
	}
	return nil
}

// Print writes the values of the list to w from front to back, one per line.
func (l *CircularList) Print(w io.Writer) stackerr.Error {
	return writeValues(w, l.Values())
}

// SortedValues returns the values of the list in ascending order. The list
// itself is not reordered.
func (l *CircularList) SortedValues() []int {
	values := l.Values()
	collections.SortSliceAscendingInPlace(values)
	return values
}

// PrintSorted writes the values of the list to w in ascending order, one per
// line. The list itself is not reordered.
func (l *CircularList) PrintSorted(w io.Writer) stackerr.Error {
	return writeValues(w, l.SortedValues())
}

// String formats the values from front to back, e.g. "[1 2 7 3]".
func (l *CircularList) String() string {
	return fmt.Sprint(l.Values())
}
