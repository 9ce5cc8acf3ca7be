package vecexpr

import (
	"fmt"
	"math"
)

// A Scalar is a lazily evaluated numeric value.
//
// The zero value is the constant zero. Arithmetic on scalars builds an
// expression which is only computed when Value() is called.
type Scalar[T Number] struct {
	constant T
	node     scalarNode[T]
}

type scalarNode[T Number] interface {
	value() T
}

// Const wraps a literal in a constant scalar expression.
func Const[T Number](x T) Scalar[T] {
	return Scalar[T]{constant: x}
}

func newScalar[T Number](n scalarNode[T]) Scalar[T] {
	return Scalar[T]{node: n}
}

// Value evaluates the expression.
//
// Evaluation is pure, so it is safe to call Value() any number of times.
func (s Scalar[T]) Value() T {
	if s.node == nil {
		return s.constant
	}
	return s.node.value()
}

// IsConst returns true if the scalar is a literal rather than a
// computation.
func (s Scalar[T]) IsConst() bool {
	return s.node == nil
}

func (s Scalar[T]) Add(s1 Scalar[T]) Scalar[T] {
	return newScalar[T](scalarBinary[T]{op: '+', lhs: s, rhs: s1})
}

func (s Scalar[T]) Sub(s1 Scalar[T]) Scalar[T] {
	return newScalar[T](scalarBinary[T]{op: '-', lhs: s, rhs: s1})
}

func (s Scalar[T]) Mul(s1 Scalar[T]) Scalar[T] {
	return newScalar[T](scalarBinary[T]{op: '*', lhs: s, rhs: s1})
}

// Div divides two scalars.
// Integer division by zero panics when the result is evaluated.
func (s Scalar[T]) Div(s1 Scalar[T]) Scalar[T] {
	return newScalar[T](scalarBinary[T]{op: '/', lhs: s, rhs: s1})
}

func (s Scalar[T]) Neg() Scalar[T] {
	return newScalar[T](scalarNeg[T]{arg: s})
}

// Sqrt is equivalent to the package-level Sqrt().
func (s Scalar[T]) Sqrt() Scalar[T] {
	return Sqrt(s)
}

// Less creates a lazy condition s < s1.
func (s Scalar[T]) Less(s1 Scalar[T]) Cond {
	return newCond(scalarCmp[T]{lhs: s, rhs: s1, accept: func(c int) bool { return c < 0 }})
}

// Equal creates a lazy condition which is true when the two values are
// equal up to rounding error.
func (s Scalar[T]) Equal(s1 Scalar[T]) Cond {
	return newCond(scalarCmp[T]{lhs: s, rhs: s1, accept: func(c int) bool { return c == 0 }})
}

func (s Scalar[T]) String() string {
	return fmt.Sprint(s.Value())
}

// Sqrt creates a square root expression.
//
// The result is computed once and cached. Negative inputs are not checked,
// and produce NaN for floating point types.
func Sqrt[T Number](s Scalar[T]) Scalar[T] {
	return newScalar[T](&scalarSqrt[T]{arg: s})
}

type scalarBinary[T Number] struct {
	op  byte
	lhs Scalar[T]
	rhs Scalar[T]
}

func (s scalarBinary[T]) value() T {
	l, r := s.lhs.Value(), s.rhs.Value()
	switch s.op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		return l / r
	}
	panic("unknown scalar operator: " + string(s.op))
}

type scalarNeg[T Number] struct {
	arg Scalar[T]
}

func (s scalarNeg[T]) value() T {
	return -s.arg.Value()
}

type scalarSqrt[T Number] struct {
	arg   Scalar[T]
	cache memo[T]
}

func (s *scalarSqrt[T]) value() T {
	return s.cache.Get(func() T {
		return T(math.Sqrt(float64(s.arg.Value())))
	})
}

type scalarCmp[T Number] struct {
	lhs    Scalar[T]
	rhs    Scalar[T]
	accept func(int) bool
}

func (s scalarCmp[T]) value() bool {
	return s.accept(cmpValues(s.lhs.Value(), s.rhs.Value()))
}

// A Cond is a lazily evaluated boolean, such as the result of a comparison.
type Cond struct {
	constant bool
	node     condNode
}

type condNode interface {
	value() bool
}

// ConstCond wraps a literal boolean.
func ConstCond(b bool) Cond {
	return Cond{constant: b}
}

func newCond(n condNode) Cond {
	return Cond{node: n}
}

func (c Cond) Value() bool {
	if c.node == nil {
		return c.constant
	}
	return c.node.value()
}

// Not is equivalent to the package-level Not().
func (c Cond) Not() Cond {
	return Not(c)
}

// And creates a short-circuiting conjunction.
func (c Cond) And(c1 Cond) Cond {
	return newCond(condBinary{and: true, lhs: c, rhs: c1})
}

// Or creates a short-circuiting disjunction.
func (c Cond) Or(c1 Cond) Cond {
	return newCond(condBinary{lhs: c, rhs: c1})
}

func (c Cond) String() string {
	return fmt.Sprint(c.Value())
}

// Not creates a logical negation of c.
func Not(c Cond) Cond {
	return newCond(condNot{arg: c})
}

type condNot struct {
	arg Cond
}

func (c condNot) value() bool {
	return !c.arg.Value()
}

type condBinary struct {
	and bool
	lhs Cond
	rhs Cond
}

func (c condBinary) value() bool {
	if c.and {
		return c.lhs.Value() && c.rhs.Value()
	}
	return c.lhs.Value() || c.rhs.Value()
}
