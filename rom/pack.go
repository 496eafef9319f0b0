package rom

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/nope-zk/grom/curve"
)

// Coordinate packing: each 256-bit coordinate splits into its low 160 bits
// (5 × 32-bit circom chunks) and its high 96 bits (3 chunks). The two high
// fragments of a point share one lane so that a point costs exactly three
// field elements.
const (
	lowBits  = 160
	highBits = 96
)

var lowMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), lowBits), big.NewInt(1))

// PackCoordinates maps a point to its three lanes:
//
//	lane 0 = x mod 2^160
//	lane 1 = y mod 2^160
//	lane 2 = (x >> 160) | ((y >> 160) << 96)
//
// Lossless for coordinates below 2^256.
func PackCoordinates(p curve.Point) [3]*big.Int {
	var lanes [3]*big.Int
	lanes[0] = new(big.Int).And(p.X, lowMask)
	lanes[1] = new(big.Int).And(p.Y, lowMask)
	hi := new(big.Int).Rsh(p.Y, lowBits)
	hi.Lsh(hi, highBits)
	lanes[2] = new(big.Int).Rsh(p.X, lowBits)
	lanes[2].Or(lanes[2], hi)
	return lanes
}

// UnpackCoordinates recombines the three lanes back into (x, y). Inverse of
// PackCoordinates for untagged lanes.
func UnpackCoordinates(lanes [3]*big.Int) (x, y *big.Int) {
	highMask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), highBits), big.NewInt(1))
	xHi := new(big.Int).And(lanes[2], highMask)
	yHi := new(big.Int).Rsh(lanes[2], highBits)
	x = new(big.Int).Lsh(xHi, lowBits)
	x.Or(x, new(big.Int).And(lanes[0], lowMask))
	y = new(big.Int).Lsh(yHi, lowBits)
	y.Or(y, new(big.Int).And(lanes[1], lowMask))
	return x, y
}

// tagged shifts a lane left by l bits and stores the point's window index in
// the freed low bits, then carries the result into the scalar field. The tag
// is what lets a circuit recover which table row matched from a zero
// evaluation. Tagged lanes stay below 2^(192+16) and therefore below the fr
// modulus, so no reduction happens here.
func tagged(lane *big.Int, idx, l int) fr.Element {
	t := new(big.Int).Lsh(lane, uint(l))
	t.Add(t, big.NewInt(int64(idx)))
	var e fr.Element
	e.SetBigInt(t)
	return e
}
