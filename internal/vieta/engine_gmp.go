//go:build gmp

// This file provides a GMP-backed product engine, compiled only with the
// "gmp" build tag so that default builds need neither cgo nor libgmp:
//
//	go build -tags=gmp ./cmd/vieta
//
// System requirements: libgmp-dev (Debian/Ubuntu) or `brew install gmp`.

package vieta

import (
	"context"
	"math/big"

	"github.com/ncw/gmp"
)

func init() {
	RegisterEngine("gmp", func() ProductEngine { return &GMPEngine{} })
}

// GMPEngine multiplies roots with GNU MP. Roots are non-negative, so the
// conversion through big-endian magnitude bytes is lossless.
type GMPEngine struct{}

// Name returns "gmp".
func (e *GMPEngine) Name() string { return "gmp" }

// Product returns the product of factors.
func (e *GMPEngine) Product(ctx context.Context, factors []*big.Int) (*big.Int, error) {
	acc := gmp.NewInt(1)
	f := gmp.NewInt(0)
	for _, x := range factors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f.SetBytes(x.Bytes())
		if x.Sign() < 0 {
			f.Neg(f)
		}
		acc.Mul(acc, f)
	}
	return gmpToStdBigInt(acc), nil
}

// gmpToStdBigInt converts a gmp.Int to a standard library big.Int.
func gmpToStdBigInt(g *gmp.Int) *big.Int {
	z := new(big.Int).SetBytes(g.Bytes())
	if g.Sign() < 0 {
		z.Neg(z)
	}
	return z
}
