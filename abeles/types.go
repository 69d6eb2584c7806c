// SPDX-License-Identifier: MIT

package abeles

// Polarization selects a transfer channel.
type Polarization int

const (
	// TE is the transverse-electric (s-polarized) channel.
	TE Polarization = iota
	// TM is the transverse-magnetic (p-polarized) channel.
	TM
)

// Polarizations lists both channels in canonical order.
var Polarizations = [...]Polarization{TE, TM}

// String implements fmt.Stringer.
func (p Polarization) String() string {
	switch p {
	case TE:
		return "TE"
	case TM:
		return "TM"
	default:
		return "Polarization(?)"
	}
}

// valid reports whether p is TE or TM.
func (p Polarization) valid() bool { return p == TE || p == TM }

// Matrix2 is a 2x2 complex matrix in row-major order (offset = i*2 + j).
// It is a value type: assignment copies, products return new values.
type Matrix2 [4]complex128

// Identity returns the 2x2 identity.
func Identity() Matrix2 { return Matrix2{1, 0, 0, 1} }

// At returns the entry at (i, j). Indices outside {0,1} panic like any
// out-of-range array access.
func (m Matrix2) At(i, j int) complex128 { return m[i*2+j] }

// Mul returns m × b.
// Complexity: O(1), eight complex multiplies.
func (m Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		m[0]*b[0] + m[1]*b[2], m[0]*b[1] + m[1]*b[3],
		m[2]*b[0] + m[3]*b[2], m[2]*b[1] + m[3]*b[3],
	}
}

// Det returns the determinant m00*m11 - m01*m10.
func (m Matrix2) Det() complex128 { return m[0]*m[3] - m[1]*m[2] }
