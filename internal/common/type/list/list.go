// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
package list

import (
	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/type/pair"
)

// Append appends each element in elements to list.
// If list is Null, a new list is created.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Append(start cell.I, elements ...cell.I) cell.I {
	if start == nil {
		panic("cannot append to non-existent list")
	}

	if len(elements) == 0 {
		return start
	}

	if start == pair.Null {
		start = pair.Cons(elements[0], pair.Null)
		elements = elements[1:]
	}

	var end cell.I
	for list := start; list != pair.Null; list = pair.Cdr(list) {
		end = list
	}

	for _, e := range elements {
		p := pair.Cons(e, pair.Null)
		pair.SetCdr(end, p)
		end = p
	}

	return start
}

// Get returns the element at index. Negative values of index count
// backwards from the end of list. An index out of range causes a panic.
func Get(list cell.I, index int64) cell.I {
	return pair.Car(Tail(list, index, nil))
}

// Join returns a new list holding every element of every list in lists.
// A non-pair where a pair is expected will cause a panic.
// All lists must be non-circular.
func Join(lists ...cell.I) cell.I {
	elements := []cell.I{}

	for _, l := range lists {
		elements = append(elements, Slice(l)...)
	}

	return New(elements...)
}

// Length returns the number of elements in list.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Length(list cell.I) int64 {
	var length int64

	for list != nil && list != pair.Null {
		length++

		list = pair.Cdr(list)
	}

	return length
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	if len(elements) == 0 {
		return pair.Null
	}

	start := pair.Cons(elements[0], pair.Null)
	end := start

	for _, e := range elements[1:] {
		p := pair.Cons(e, pair.Null)
		pair.SetCdr(end, p)
		end = p
	}

	return start
}

// Reverse reverses list.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Reverse(list cell.I) cell.I {
	reversed := pair.Null

	for list != nil && list != pair.Null {
		reversed = pair.Cons(pair.Car(list), reversed)

		list = pair.Cdr(list)
	}

	return reversed
}

// Set replaces the element at index with value.
// Negative values of index count backwards from the end of list.
// An index out of range causes a panic.
func Set(list cell.I, index int64, value cell.I) {
	pair.SetCar(Tail(list, index, nil), value)
}

// Slice returns the elements of list as a Go slice.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Slice(list cell.I) []cell.I {
	elements := []cell.I{}

	for list != nil && list != pair.Null {
		elements = append(elements, pair.Car(list))

		list = pair.Cdr(list)
	}

	return elements
}

// Sub creates a new list from the elements of list between start and end.
// Bounds are clamped to the list; negative bounds count backwards from the
// end of list. A nil bound means the start or end of list, respectively.
func Sub(list cell.I, start, end *int64) cell.I {
	elements := Slice(list)

	lo, hi := Bounds(int64(len(elements)), start, end)
	if lo >= hi {
		return pair.Null
	}

	return New(elements[lo:hi]...)
}

// Bounds clamps the optional start and end bounds to a sequence of length n.
func Bounds(n int64, start, end *int64) (int64, int64) {
	clamp := func(p *int64, dflt int64) int64 {
		if p == nil {
			return dflt
		}

		i := *p
		if i < 0 {
			i += n
		}

		if i < 0 {
			return 0
		}

		if i > n {
			return n
		}

		return i
	}

	return clamp(start, 0), clamp(end, n)
}

// Tail returns the sublist of list starting at element index.
// Negative values of index count backwards from the end of list.
// If index is out of range and dflt is provided it is returned.
// Otherwise, this function panics.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Tail(list cell.I, index int64, dflt cell.I) cell.I {
	length := Length(list)

	if index < 0 {
		index = length + index
	}

	msg := ""
	if index < 0 {
		msg = "index before first element"
	} else if index >= length {
		msg = "index out of range"
	}

	if msg != "" {
		if dflt == nil {
			panic(msg)
		}

		return dflt
	}

	for index > 0 {
		list = pair.Cdr(list)

		index--
	}

	return list
}
