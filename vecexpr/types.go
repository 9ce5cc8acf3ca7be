package vecexpr

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// MaxDim is the largest number of components a vector may have.
const MaxDim = 4

// Number is any numeric type that can be stored in a vector.
type Number interface {
	constraints.Integer | constraints.Float
}

// A Dim is a type-level vector dimension.
//
// Dimensions are empty types so that vectors of different sizes are
// different Go types, and operations mixing them fail to compile.
type Dim interface {
	Len() int
}

type D2 struct{}
type D3 struct{}
type D4 struct{}

func (D2) Len() int { return 2 }
func (D3) Len() int { return 3 }
func (D4) Len() int { return 4 }

func dimLen[D Dim]() int {
	var d D
	n := d.Len()
	if n < 0 || n > MaxDim {
		panic("vector dimension out of supported range")
	}
	return n
}

// A List is a general array type which can have an arbitrary getter.
// This can be useful for avoiding contiguous slice allocations.
type List[T any] struct {
	Len int
	Get func(int) T
}

// NewListSlice creates a List viewing the elements of s without copying.
func NewListSlice[T any](s []T) List[T] {
	return List[T]{
		Len: len(s),
		Get: func(i int) T {
			return s[i]
		},
	}
}

// Epsilon tolerances are measured in units in the last place relative to the
// larger operand (or one, whichever is greater).
const approxULPs = 16

// ApproxEqual checks if two values are equal up to a few ULPs of relative
// error. Integer values are compared exactly.
func ApproxEqual[T Number](a, b T) bool {
	eps, ok := machineEpsilon[T]()
	if !ok {
		return a == b
	}
	x, y := float64(a), float64(b)
	if x == y {
		return true
	}
	scale := math.Max(1, math.Max(math.Abs(x), math.Abs(y)))
	return math.Abs(x-y) <= eps*approxULPs*scale
}

// cmpValues is a three-way comparison which treats approximately equal
// floating point values as equal.
func cmpValues[T Number](a, b T) int {
	if ApproxEqual(a, b) {
		return 0
	} else if a < b {
		return -1
	}
	return 1
}

func machineEpsilon[T Number]() (float64, bool) {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Float32:
		return float64(math.Nextafter32(1, 2) - 1), true
	case reflect.Float64:
		return math.Nextafter(1, 2) - 1, true
	default:
		return 0, false
	}
}
