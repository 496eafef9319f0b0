package rom

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/nope-zk/grom/curve"
)

func TestPackRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	// coordinates assembled from four uint64 limbs cover the full 256-bit
	// range the packing must be lossless over
	coord := gen.SliceOfN(4, gen.UInt64()).Map(func(limbs []uint64) *big.Int {
		v := new(big.Int)
		for _, l := range limbs {
			v.Lsh(v, 64)
			v.Or(v, new(big.Int).SetUint64(l))
		}
		return v
	})

	properties := gopter.NewProperties(parameters)
	properties.Property("unpack(pack(P)) == P", prop.ForAll(
		func(x, y *big.Int) bool {
			gotX, gotY := UnpackCoordinates(PackCoordinates(curve.Point{X: x, Y: y}))
			return gotX.Cmp(x) == 0 && gotY.Cmp(y) == 0
		},
		coord,
		coord,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestPackLaneLayout(t *testing.T) {
	assert := require.New(t)

	x := new(big.Int).Lsh(big.NewInt(0xab), 160) // only high bits set
	x.Or(x, big.NewInt(7))
	y := new(big.Int).Lsh(big.NewInt(0xcd), 160)
	y.Or(y, big.NewInt(9))

	lanes := PackCoordinates(curve.Point{X: x, Y: y})
	assert.Zero(lanes[0].Cmp(big.NewInt(7)))
	assert.Zero(lanes[1].Cmp(big.NewInt(9)))

	want := new(big.Int).Lsh(big.NewInt(0xcd), 96)
	want.Or(want, big.NewInt(0xab))
	assert.Zero(lanes[2].Cmp(want))
}

func TestTaggedLayout(t *testing.T) {
	assert := require.New(t)

	const l = 4
	lane := big.NewInt(0x1234)
	e := tagged(lane, 11, l)

	want := new(big.Int).Lsh(lane, l)
	want.Add(want, big.NewInt(11))
	assert.Equal(want.String(), e.Text(10))
}
