// pkg/physics/vector.go
package physics

import "math"

// Vector2D represents a 2D vector with x and y components.
// The type is dimensionless: a value may stand for a position, a
// displacement, a velocity or a force, and the interpretation belongs
// to the caller. The zero value is the zero vector.
type Vector2D struct {
	X float64
	Y float64
}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// Scale multiplies the vector by a scalar value. Scalar multiplication
// is commutative, so this single method covers both operand orders.
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{
		X: v.X * factor,
		Y: v.Y * factor,
	}
}

// Div divides the vector by a scalar value. Division by zero follows
// IEEE-754 semantics and yields Inf/NaN components rather than an error.
func (v Vector2D) Div(factor float64) Vector2D {
	return Vector2D{
		X: v.X / factor,
		Y: v.Y / factor,
	}
}

// Neg returns the component-wise negation of the vector
func (v Vector2D) Neg() Vector2D {
	return Vector2D{
		X: -v.X,
		Y: -v.Y,
	}
}

// AddAssign adds other to v in place and returns v for chaining
func (v *Vector2D) AddAssign(other Vector2D) *Vector2D {
	v.X += other.X
	v.Y += other.Y
	return v
}

// SubAssign subtracts other from v in place and returns v for chaining
func (v *Vector2D) SubAssign(other Vector2D) *Vector2D {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

// ScaleAssign multiplies v by a scalar in place and returns v for chaining
func (v *Vector2D) ScaleAssign(factor float64) *Vector2D {
	v.X *= factor
	v.Y *= factor
	return v
}

// DivAssign divides v by a scalar in place and returns v for chaining.
// Division by zero follows IEEE-754 semantics, as in Div.
func (v *Vector2D) DivAssign(factor float64) *Vector2D {
	v.X /= factor
	v.Y /= factor
	return v
}

// Equals reports exact component-wise equality. There is no epsilon
// tolerance; callers that need one must compare explicitly.
func (v Vector2D) Equals(other Vector2D) bool {
	return v.X == other.X && v.Y == other.Y
}

// Less reports whether v orders before other lexicographically,
// comparing X first and Y on ties. The ordering has no geometric
// meaning; it exists so the type can key sorted containers.
func (v Vector2D) Less(other Vector2D) bool {
	if v.X != other.X {
		return v.X < other.X
	}
	return v.Y < other.Y
}

// Compare returns -1, 0 or +1 per the lexicographic ordering of Less
func (v Vector2D) Compare(other Vector2D) int {
	switch {
	case v.Less(other):
		return -1
	case other.Less(v):
		return 1
	default:
		return 0
	}
}

// Dot returns the dot product of two vectors
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the 2D cross product, the z-component of the 3D cross
// product. A positive result means other is counter-clockwise from v,
// negative means clockwise, zero means the vectors are parallel.
func (v Vector2D) Cross(other Vector2D) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Length returns the magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns magnitude squared (optimization for comparisons)
func (v Vector2D) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction. The zero
// vector normalizes to the zero vector; the division is short-circuited
// so no NaN is produced.
func (v Vector2D) Normalize() Vector2D {
	length := v.Length()
	if length == 0 {
		return Vector2D{}
	}
	return Vector2D{
		X: v.X / length,
		Y: v.Y / length,
	}
}

// Distance returns the distance between two vectors
func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance between two vectors
// (optimization for comparisons)
func (v Vector2D) DistanceSquared(other Vector2D) float64 {
	return v.Sub(other).LengthSquared()
}

// Perpendicular returns the vector rotated 90 degrees counter-clockwise.
// The result has the same length as v and a zero dot product with it.
func (v Vector2D) Perpendicular() Vector2D {
	return Vector2D{
		X: -v.Y,
		Y: v.X,
	}
}

// Lerp linearly interpolates between v and other: t=0 yields v, t=1
// yields other. t is not clamped; values outside [0,1] extrapolate.
func (v Vector2D) Lerp(other Vector2D, t float64) Vector2D {
	return v.Add(other.Sub(v).Scale(t))
}

// Angle returns the angle of the vector in radians
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotate rotates the vector by angle (in radians)
func (v Vector2D) Rotate(angle float64) Vector2D {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vector2D{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// FromAngle creates a vector from an angle and magnitude
func FromAngle(angle float64, magnitude float64) Vector2D {
	return Vector2D{
		X: magnitude * math.Cos(angle),
		Y: magnitude * math.Sin(angle),
	}
}
