// Package curve implements affine short-Weierstrass point arithmetic over a
// prime field, sized for the 256-bit windowed-multiple tables this tool
// generates. Coordinates live in big.Int form; field elements of the proof
// system's scalar field never enter this package.
package curve

import (
	"errors"
	"math/big"
)

// ErrPointsInverse is returned by Add when the chord or tangent slope has a
// non-invertible denominator, i.e. the operands are additive inverses of one
// another (vertical chord) or the doubled point has y = 0 (vertical tangent).
// Neither case is reachable for multiples of the base point enumerated by the
// table builder.
var ErrPointsInverse = errors.New("curve: points are additive inverses, slope undefined")

// Params holds the constants of a short-Weierstrass curve y² = x³ + ax + b
// together with its base point. Values are never mutated after construction;
// a single Params is threaded explicitly through every component that does
// point arithmetic.
type Params struct {
	P  *big.Int // base field modulus
	A  *big.Int // curve coefficient a, reduced into [0, P)
	Gx *big.Int // base point x
	Gy *big.Int // base point y
}

// P256 returns the NIST P-256 parameters (a = p - 3).
func P256() *Params {
	p, _ := new(big.Int).SetString("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff", 16)
	gx, _ := new(big.Int).SetString("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296", 16)
	gy, _ := new(big.Int).SetString("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5", 16)
	a := new(big.Int).Sub(p, big.NewInt(3))
	return &Params{P: p, A: a, Gx: gx, Gy: gy}
}

// Point is an affine point on the curve, coordinates reduced into [0, P).
// There is no representation of the point at infinity; see ScalarMul for how
// the group law is driven without one.
type Point struct {
	X, Y *big.Int
}

// Equal reports whether p and q have the same coordinates.
func (p Point) Equal(q Point) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Generator returns a fresh copy of the base point.
func (c *Params) Generator() Point {
	return Point{X: new(big.Int).Set(c.Gx), Y: new(big.Int).Set(c.Gy)}
}

var three = big.NewInt(3)

// Add returns p + q under the chord/tangent group law. The tangent (doubling)
// branch is taken when the operands have identical coordinates.
func (c *Params) Add(p, q Point) (Point, error) {
	var num, den big.Int
	if p.Equal(q) {
		// λ = (3x² + a) / (2y)
		num.Mul(p.X, p.X)
		num.Mul(&num, three)
		num.Add(&num, c.A)
		den.Lsh(p.Y, 1)
	} else {
		// λ = (y₂ - y₁) / (x₂ - x₁)
		num.Sub(q.Y, p.Y)
		den.Sub(q.X, p.X)
	}
	den.Mod(&den, c.P)
	if den.ModInverse(&den, c.P) == nil {
		return Point{}, ErrPointsInverse
	}
	lambda := num.Mul(&num, &den)
	lambda.Mod(lambda, c.P)

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p.X)
	x3.Sub(x3, q.X)
	x3.Mod(x3, c.P)

	y3 := new(big.Int).Sub(p.X, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p.Y)
	y3.Mod(y3, c.P)

	return Point{X: x3, Y: y3}, nil
}

// ScalarMul returns k·G by double-and-add over bits 0..255 of k, least
// significant first. The accumulator stays nil until the first set bit, so no
// identity element is ever materialized. Bits of k above 255 are ignored, and
// a scalar with no set bit in its low 256 bits yields the base point itself;
// the final table window (k = 256/l) relies on this wraparound.
func (c *Params) ScalarMul(k *big.Int) (Point, error) {
	var acc *Point
	r := c.Generator()
	for i := 0; i < 256; i++ {
		if k.Bit(i) == 1 {
			if acc == nil {
				p := Point{X: new(big.Int).Set(r.X), Y: new(big.Int).Set(r.Y)}
				acc = &p
			} else {
				s, err := c.Add(*acc, r)
				if err != nil {
					return Point{}, err
				}
				acc = &s
			}
		}
		if i < 255 {
			var err error
			r, err = c.Add(r, r)
			if err != nil {
				return Point{}, err
			}
		}
	}
	if acc == nil {
		return c.Generator(), nil
	}
	return *acc, nil
}
