package dllist

import (
	"github.com/Invicton-Labs/go-circularlist/numbers"
	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/multierr"
)

// ValidateGetRange returns an error describing every reason why [start, end]
// is not a valid argument for GetRange, or nil if it is.
//
// A range is invalid if start is negative, end >= l.Len(), or start > end.
func (l *CircularList) ValidateGetRange(start int, end int) error {
	var err error
	if start < 0 {
		err = multierr.Append(err, stackerr.Errorf("start index %d is negative", start))
	}
	if end >= l.length {
		err = multierr.Append(err, stackerr.Errorf("end index %d is out of range for a list of length %d", end, l.length))
	}
	if start > end {
		err = multierr.Append(err, stackerr.Errorf("start index %d is after end index %d", start, end))
	}
	return err
}

// ValidateRemoveRange returns an error describing every reason why [start, end]
// is not a valid argument for RemoveRange, or nil if it is.
//
// A range is invalid if start is negative, end > l.Len(), or start > end. Unlike
// ValidateGetRange, end == l.Len() is accepted; that position holds no element,
// so nothing is removed for it.
func (l *CircularList) ValidateRemoveRange(start int, end int) error {
	var err error
	if start < 0 {
		err = multierr.Append(err, stackerr.Errorf("start index %d is negative", start))
	}
	if end > l.length {
		err = multierr.Append(err, stackerr.Errorf("end index %d is out of range for a list of length %d", end, l.length))
	}
	if start > end {
		err = multierr.Append(err, stackerr.Errorf("start index %d is after end index %d", start, end))
	}
	return err
}

func (l *CircularList) logRejectedRange(op string, start int, end int, err error) {
	l.log().Debugw("Rejected range",
		"operation", op,
		"start", start,
		"end", end,
		"length", l.length,
		"reasons", len(multierr.Errors(err)),
		"error", err,
	)
}

// GetRange returns a new list holding copies of the values at positions start
// through end (inclusive), in their original order. 0 is the front of the list.
// If the range is invalid (see ValidateGetRange), an empty list is returned.
func (l *CircularList) GetRange(start int, end int) *CircularList {
	if err := l.ValidateGetRange(start, end); err != nil {
		l.logRejectedRange("GetRange", start, end, err)
		return l.derive(0)
	}
	out := l.derive(end - start + 1)
	idx := l.indexAt(start)
	for pos := start; pos <= end; pos++ {
		out.pushBack(l.nodes[idx].value)
		idx = l.nodes[idx].next
	}
	return out
}

// RemoveRange removes the elements at positions start through end (inclusive).
// 0 is the front of the list. If the range is invalid (see ValidateRemoveRange),
// the list is not modified.
func (l *CircularList) RemoveRange(start int, end int) {
	if err := l.ValidateRemoveRange(start, end); err != nil {
		l.logRejectedRange("RemoveRange", start, end, err)
		return
	}
	// end may be one past the last element
	stop := numbers.Min(end, l.length-1)
	if start > stop {
		return
	}
	idx := l.indexAt(start)
	for pos := start; pos <= stop; pos++ {
		idx = l.remove(idx)
	}
}
