package glm

type Vec2[T numeric] [2]T

// Mul multiplies both vectors component wise
func (lhs Vec2[T]) Mul(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] * rhs[0],
		lhs[1] * rhs[1],
	}
}

// Div divides both vectors component wise
func (lhs Vec2[T]) Div(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] / rhs[0],
		lhs[1] / rhs[1],
	}
}

func (lhs Vec2[T]) XY() (x, y T) {
	x = lhs[0]
	y = lhs[1]
	return
}

// Vec2Of converts between vector element types, e.g. from the float64
// cursor position reported by a window system to a Vec2f.
func Vec2Of[T, S numeric](x, y S) Vec2[T] {
	return Vec2[T]{T(x), T(y)}
}
