package vecexpr

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/pkg/errors"
)

type conversionKey struct {
	From reflect.Type
	To   reflect.Type
}

var conversionLock sync.RWMutex
var conversions = map[conversionKey][]int{}

func init() {
	RegisterConversion[RGBA, ARGB]([]int{3, 0, 1, 2})
	RegisterConversion[ARGB, RGBA]([]int{1, 2, 3, 0})
	RegisterConversion[XYZW, WXYZ]([]int{3, 0, 1, 2})
	RegisterConversion[WXYZ, XYZW]([]int{1, 2, 3, 0})
}

// RegisterConversion defines a conversion from axes From to axes To by
// reordering components.
//
// For each index i of the target vector, perm[i] is the index of the source
// component to use. Registering a conversion twice replaces the old one.
func RegisterConversion[From, To Axes](perm []int) {
	if len(perm) > MaxDim {
		panic(fmt.Sprintf("permutation has %d entries but at most %d are supported",
			len(perm), MaxDim))
	}
	var seen [MaxDim]bool
	for _, idx := range perm {
		if idx < 0 || idx >= MaxDim || seen[idx] {
			panic(fmt.Sprintf("invalid permutation: %v", perm))
		}
		seen[idx] = true
	}
	key := conversionKey{
		From: reflect.TypeOf((*From)(nil)).Elem(),
		To:   reflect.TypeOf((*To)(nil)).Elem(),
	}
	conversionLock.Lock()
	defer conversionLock.Unlock()
	conversions[key] = append([]int{}, perm...)
}

// Convert changes the axes of a vector expression.
//
// Converting between identical axes, or to or from None, leaves the
// components unchanged. Other conversions must be registered with
// RegisterConversion, and otherwise ErrNoConversion is returned.
// The result is lazy, so no components are computed by Convert.
func Convert[B Axes, T Number, D Dim, A Axes](v Vec[T, D, A]) (Vec[T, D, B], error) {
	if !shapeSupported[D, B]() {
		return Vec[T, D, B]{}, errors.Wrapf(ErrNoConversion, "axes %s do not support %d components",
			axesName[B](), dimLen[D]())
	}

	var a A
	var b B
	_, fromNone := any(a).(None)
	_, toNone := any(b).(None)
	if fromNone || toNone || reflect.TypeOf(a) == reflect.TypeOf(b) {
		return Vec[T, D, B]{data: v.data, node: v.node}, nil
	}

	conversionLock.RLock()
	perm, ok := conversions[conversionKey{From: reflect.TypeOf(a), To: reflect.TypeOf(b)}]
	conversionLock.RUnlock()
	if !ok {
		return Vec[T, D, B]{}, errors.Wrapf(ErrNoConversion, "convert %s to %s",
			axesName[A](), axesName[B]())
	}

	n := dimLen[D]()
	if len(perm) < n {
		return Vec[T, D, B]{}, errors.Wrapf(ErrNoConversion, "convert %s to %s with %d components",
			axesName[A](), axesName[B](), n)
	}
	node := permuteNode[T, D, A]{src: v}
	for i := 0; i < n; i++ {
		if perm[i] >= n {
			return Vec[T, D, B]{}, errors.Wrapf(ErrNoConversion,
				"convert %s to %s with %d components", axesName[A](), axesName[B](), n)
		}
		node.perm[i] = perm[i]
	}
	return newVec[T, D, B](node), nil
}

// Untag converts a vector to the untyped axes None.
// This always succeeds and does not change any components.
func Untag[T Number, D Dim, A Axes](v Vec[T, D, A]) Vec[T, D, None] {
	return Vec[T, D, None]{data: v.data, node: v.node}
}

type permuteNode[T Number, D Dim, A Axes] struct {
	src  Vec[T, D, A]
	perm [MaxDim]int
}

func (p permuteNode[T, D, A]) at(i int) T {
	return p.src.at(p.perm[i])
}
