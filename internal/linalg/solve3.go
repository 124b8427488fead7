// Package linalg provides the fixed-size linear solve shared by the
// curve-fitting code. The system is always 3x3, so the solve is a
// closed-form Cramer expansion rather than a general routine.
package linalg

import (
	"errors"
	"math"
)

// ErrSingular indicates a coefficient matrix with determinant magnitude
// below the singularity epsilon.
var ErrSingular = errors.New("linalg: singular 3x3 system")

// singularEps is the determinant magnitude below which the system is
// treated as singular.
const singularEps = 1e-10

// Mat3 is a 3x3 coefficient matrix in row-major order.
type Mat3 [3][3]float64

// Vec3 is a length-3 vector.
type Vec3 [3]float64

// Det returns the determinant of m.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Solve3 solves m*x = b by Cramer's rule. Returns ErrSingular when the
// determinant magnitude is below 1e-10.
func Solve3(m Mat3, b Vec3) (Vec3, error) {
	det := m.Det()
	if math.Abs(det) < singularEps {
		return Vec3{}, ErrSingular
	}

	var x Vec3
	for col := 0; col < 3; col++ {
		repl := m
		for row := 0; row < 3; row++ {
			repl[row][col] = b[row]
		}
		x[col] = repl.Det() / det
	}
	return x, nil
}
