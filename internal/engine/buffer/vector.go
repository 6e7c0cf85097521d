package buffer

import (
	"fmt"
	"math"
)

// Capacity policy shared by Line and Document.
const (
	growNumerator   = 3 // grow when length would exceed 3/4 of capacity
	growDenominator = 4
	shrinkDivisor   = 4 // shrink while length is below 1/4 of capacity
)

// allocLimit caps a single allocation in elements. Zero means unlimited.
// Tests lower it to exercise ErrAllocationFailed.
var allocLimit int

// vector is a contiguous sequence with explicit capacity management.
// len(data) is the logical length; cap(data) only changes through grow and
// shrink, which apply the hysteresis policy above.
type vector[T any] struct {
	data []T
	min  int
}

func newVector[T any](min, n int) (vector[T], error) {
	c, err := growTarget(0, 0, n, min)
	if err != nil {
		return vector[T]{}, err
	}
	data, err := allocate[T](0, c)
	if err != nil {
		return vector[T]{}, err
	}
	return vector[T]{data: data, min: min}, nil
}

func (v *vector[T]) len() int { return len(v.data) }

func (v *vector[T]) capacity() int { return cap(v.data) }

// reserve makes room for n more elements, reallocating if the growth
// threshold would be crossed. On error v is unchanged.
func (v *vector[T]) reserve(n int) error {
	c, err := growTarget(len(v.data), cap(v.data), n, v.min)
	if err != nil {
		return err
	}
	if c <= cap(v.data) {
		return nil
	}
	data, err := allocate[T](len(v.data), c)
	if err != nil {
		return err
	}
	copy(data, v.data)
	v.data = data
	return nil
}

// insert places items at index at, shifting the tail right.
func (v *vector[T]) insert(at int, items ...T) error {
	n := len(items)
	if n == 0 {
		return nil
	}
	if err := v.open(at, n); err != nil {
		return err
	}
	copy(v.data[at:], items)
	return nil
}

// insertFill places n copies of val at index at.
func (v *vector[T]) insertFill(at, n int, val T) error {
	if n == 0 {
		return nil
	}
	if err := v.open(at, n); err != nil {
		return err
	}
	for i := at; i < at+n; i++ {
		v.data[i] = val
	}
	return nil
}

// open extends the length by n and moves [at, len) to [at+n, len+n).
func (v *vector[T]) open(at, n int) error {
	if err := v.reserve(n); err != nil {
		return err
	}
	old := len(v.data)
	v.data = v.data[:old+n]
	copy(v.data[at+n:], v.data[at:old])
	return nil
}

// erase removes n elements starting at index at, then shrinks if the
// length fell below the shrink threshold.
func (v *vector[T]) erase(at, n int) {
	if n == 0 {
		return
	}
	old := len(v.data)
	copy(v.data[at:], v.data[at+n:])
	clear(v.data[old-n : old])
	v.data = v.data[:old-n]
	v.shrink()
}

// shrink halves capacity while the length is below the shrink threshold.
// It is best-effort: if the smaller array cannot be allocated the current
// one is kept.
func (v *vector[T]) shrink() {
	c := shrinkTarget(len(v.data), cap(v.data), v.min)
	if c >= cap(v.data) {
		return
	}
	data, err := allocate[T](len(v.data), c)
	if err != nil {
		return
	}
	copy(data, v.data)
	v.data = data
}

// growTarget returns the capacity required to hold length+n elements
// without crossing the growth threshold.
func growTarget(length, capacity, n, min int) (int, error) {
	if n > math.MaxInt-length {
		return 0, fmt.Errorf("%w: length %d + %d overflows", ErrAllocationFailed, length, n)
	}
	need := length + n
	if need > math.MaxInt/growDenominator {
		return 0, fmt.Errorf("%w: length %d too large", ErrAllocationFailed, need)
	}
	c := max(capacity, min, 1)
	for need*growDenominator > c*growNumerator {
		if c > math.MaxInt/(2*growDenominator) {
			return 0, fmt.Errorf("%w: capacity %d cannot double", ErrAllocationFailed, c)
		}
		c <<= 1
	}
	return c, nil
}

// shrinkTarget returns the capacity after applying the shrink threshold.
func shrinkTarget(length, capacity, min int) int {
	c := capacity
	for length*shrinkDivisor < c && c > min {
		c >>= 1
	}
	return max(c, min)
}

// allocate converts an allocation panic into ErrAllocationFailed.
func allocate[T any](length, capacity int) (data []T, err error) {
	if allocLimit > 0 && capacity > allocLimit {
		return nil, fmt.Errorf("%w: capacity %d exceeds limit %d", ErrAllocationFailed, capacity, allocLimit)
	}
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, fmt.Errorf("%w: capacity %d: %v", ErrAllocationFailed, capacity, r)
		}
	}()
	return make([]T, length, capacity), nil
}
