package vecexpr

import "golang.org/x/exp/slices"

// Compare creates a lexicographic three-way comparison of two vectors.
//
// Components are compared in index order, and the first component which
// differs determines the result. Floating point components are considered
// equal when they are within rounding error, as determined by ApproxEqual().
//
// The result is -1 if v1 < v2, 0 if v1 == v2, and 1 if v1 > v2.
func Compare[T Number, D Dim, A Axes](v1, v2 Vec[T, D, A]) Scalar[int] {
	return newScalar[int](cmpNode[T, D, A]{lhs: v1, rhs: v2})
}

// Equal creates a lazy equality check for two vectors.
func Equal[T Number, D Dim, A Axes](v1, v2 Vec[T, D, A]) Cond {
	return cmpCond(v1, v2, func(c int) bool { return c == 0 })
}

func NotEqual[T Number, D Dim, A Axes](v1, v2 Vec[T, D, A]) Cond {
	return Not(Equal(v1, v2))
}

// Less creates a lazy lexicographic v1 < v2 check.
func Less[T Number, D Dim, A Axes](v1, v2 Vec[T, D, A]) Cond {
	return cmpCond(v1, v2, func(c int) bool { return c < 0 })
}

func LessEqual[T Number, D Dim, A Axes](v1, v2 Vec[T, D, A]) Cond {
	return Not(Less(v2, v1))
}

func Greater[T Number, D Dim, A Axes](v1, v2 Vec[T, D, A]) Cond {
	return Less(v2, v1)
}

func GreaterEqual[T Number, D Dim, A Axes](v1, v2 Vec[T, D, A]) Cond {
	return Not(Less(v1, v2))
}

// Sort sorts stored or lazy vectors lexicographically, in place.
func Sort[T Number, D Dim, A Axes](vs []Vec[T, D, A]) {
	slices.SortFunc(vs, func(v1, v2 Vec[T, D, A]) bool {
		return compareVecs(v1, v2) < 0
	})
}

func cmpCond[T Number, D Dim, A Axes](v1, v2 Vec[T, D, A], accept func(int) bool) Cond {
	return newCond(vecCmpCond[T, D, A]{cmp: cmpNode[T, D, A]{lhs: v1, rhs: v2}, accept: accept})
}

func compareVecs[T Number, D Dim, A Axes](v1, v2 Vec[T, D, A]) int {
	for i := 0; i < dimLen[D](); i++ {
		if c := cmpValues(v1.at(i), v2.at(i)); c != 0 {
			return c
		}
	}
	return 0
}

type cmpNode[T Number, D Dim, A Axes] struct {
	lhs Vec[T, D, A]
	rhs Vec[T, D, A]
}

func (c cmpNode[T, D, A]) value() int {
	return compareVecs(c.lhs, c.rhs)
}

type vecCmpCond[T Number, D Dim, A Axes] struct {
	cmp    cmpNode[T, D, A]
	accept func(int) bool
}

func (v vecCmpCond[T, D, A]) value() bool {
	return v.accept(v.cmp.value())
}
