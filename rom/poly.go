package rom

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

var (
	// ErrDuplicateRoot is returned when two requested roots coincide mod the
	// scalar field. Distinct points produce distinct tagged lanes, so a
	// duplicate means a modular collision and the table would be wrong even
	// if the linear system happened to be solvable.
	ErrDuplicateRoot = errors.New("rom: duplicate root value")

	// ErrSingularSystem is returned when Gaussian elimination finds a column
	// with no nonzero pivot.
	ErrSingularSystem = errors.New("rom: singular linear system")
)

// rootPolynomial returns the coefficients, constant term first, of the unique
// monic polynomial over the scalar field whose roots are exactly the given
// values. For n roots the result has length n+1 and ends in 1.
//
// The coefficients solve M·x ≡ 0 with x[n] forced to 1, where row i of M is
// the power row [1, vᵢ, vᵢ², …, vᵢⁿ]. Elimination pivots on the first nonzero
// entry in each column; the field has no magnitude so any nonzero pivot is as
// good as another.
func rootPolynomial(roots []fr.Element) ([]fr.Element, error) {
	n := len(roots)

	seen := make(map[fr.Element]struct{}, n)
	for i := range roots {
		if _, ok := seen[roots[i]]; ok {
			return nil, ErrDuplicateRoot
		}
		seen[roots[i]] = struct{}{}
	}

	m := make([][]fr.Element, n)
	for i := range roots {
		row := make([]fr.Element, n+1)
		row[0].SetOne()
		for j := 1; j <= n; j++ {
			row[j].Mul(&row[j-1], &roots[i])
		}
		m[i] = row
	}

	// forward elimination
	for col := 0; col < n; col++ {
		pivot := col
		for pivot < n && m[pivot][col].IsZero() {
			pivot++
		}
		if pivot == n {
			return nil, ErrSingularSystem
		}
		m[col], m[pivot] = m[pivot], m[col]

		var inv fr.Element
		inv.Inverse(&m[col][col])
		for j := col; j <= n; j++ {
			m[col][j].Mul(&m[col][j], &inv)
		}

		var t fr.Element
		for r := col + 1; r < n; r++ {
			factor := m[r][col]
			if factor.IsZero() {
				continue
			}
			for j := col; j <= n; j++ {
				t.Mul(&factor, &m[col][j])
				m[r][j].Sub(&m[r][j], &t)
			}
		}
	}

	// back substitution with the monic constraint x[n] = 1
	coeffs := make([]fr.Element, n+1)
	coeffs[n].SetOne()
	for i := n - 1; i >= 0; i-- {
		var sum, t fr.Element
		for j := i + 1; j <= n; j++ {
			t.Mul(&m[i][j], &coeffs[j])
			sum.Add(&sum, &t)
		}
		coeffs[i].Neg(&sum)
	}
	return coeffs, nil
}
