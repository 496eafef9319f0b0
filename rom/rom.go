// Package rom assembles the windowed-multiple lookup tables: it packs curve
// points into scalar-field lanes and rewrites each group of packed values as
// the coefficients of the monic polynomial vanishing on them.
package rom

import (
	"fmt"
	"math/big"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/sync/errgroup"

	"github.com/nope-zk/grom/curve"
	"github.com/nope-zk/grom/logger"
)

// Builder generates the tables for one window width l over a fixed curve.
type Builder struct {
	c *curve.Params
	l int
}

// NewBuilder validates the window width: l must be even and in [1, 16], so
// that 2^l points per window split into 2^(l/2) groups of 2^(l/2).
func NewBuilder(c *curve.Params, l int) (*Builder, error) {
	if l < 1 || l > 16 || l%2 != 0 {
		return nil, fmt.Errorf("rom: window width %d out of range, need an even l in [1,16]", l)
	}
	return &Builder{c: c, l: l}, nil
}

// L returns the window width.
func (b *Builder) L() int { return b.l }

// GroupSize returns 2^(l/2), the number of points per table and of tables
// per lane.
func (b *Builder) GroupSize() int { return 1 << (b.l / 2) }

// WindowCount returns the number of window positions, 256/l + 1, covering
// the full 256-bit scalar range.
func (b *Builder) WindowCount() int { return 256/b.l + 1 }

// WindowSet holds the tables of one window position k: three lanes, each
// with GroupSize tables of GroupSize+1 coefficients (constant term first,
// leading 1 last).
type WindowSet struct {
	K     int
	Lanes [3][][]fr.Element
}

// windowPoints enumerates the 2^l points of window k in order: the window's
// base offset Σ_{i=1..k} (2^(i·l))·G, then base + j·(2^(k·l))·G for each j.
// The offset is accumulated term by term, matching the consumer's indexing.
func (b *Builder) windowPoints(k int) ([]curve.Point, error) {
	one := big.NewInt(1)
	base := b.c.Generator()
	for i := 1; i <= k; i++ {
		q, err := b.c.ScalarMul(new(big.Int).Lsh(one, uint(i*b.l)))
		if err != nil {
			return nil, err
		}
		if base, err = b.c.Add(base, q); err != nil {
			return nil, err
		}
	}

	points := make([]curve.Point, 1<<b.l)
	points[0] = base
	for j := 1; j < 1<<b.l; j++ {
		s := new(big.Int).Lsh(big.NewInt(int64(j)), uint(k*b.l))
		q, err := b.c.ScalarMul(s)
		if err != nil {
			return nil, err
		}
		if points[j], err = b.c.Add(base, q); err != nil {
			return nil, err
		}
	}
	return points, nil
}

// BuildWindow computes the full table set for window position k. The group
// of 2^l points is partitioned row-major into GroupSize runs of GroupSize
// consecutive points; each run yields one root set per lane, tagged with the
// point's global index so a matching row can be identified by the consumer.
func (b *Builder) BuildWindow(k int) (*WindowSet, error) {
	log := logger.Logger()
	start := time.Now()

	points, err := b.windowPoints(k)
	if err != nil {
		return nil, fmt.Errorf("window %d: %w", k, err)
	}

	n := b.GroupSize()
	ws := &WindowSet{K: k}
	for r := range ws.Lanes {
		ws.Lanes[r] = make([][]fr.Element, n)
	}

	// table builds are independent per (lane, group) pair
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			var roots [3][]fr.Element
			for r := range roots {
				roots[r] = make([]fr.Element, n)
			}
			for j := 0; j < n; j++ {
				idx := j + i*n
				lanes := PackCoordinates(points[idx])
				for r := range lanes {
					roots[r][j] = tagged(lanes[r], idx, b.l)
				}
			}
			for r := range roots {
				coeffs, err := rootPolynomial(roots[r])
				if err != nil {
					return fmt.Errorf("window %d lane %d group %d: %w", k, r, i, err)
				}
				ws.Lanes[r][i] = coeffs
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debug().Int("k", k).Dur("took", time.Since(start)).Msg("built window")
	return ws, nil
}
