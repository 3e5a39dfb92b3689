// Package vieta evaluates the constant term of a polynomial from its roots
// using Vieta's formula: for n roots r₁…rₙ and leading coefficient k,
//
//	constant = k · (−1)ⁿ · r₁ · r₂ · … · rₙ
//
// Roots arrive encoded as digit strings in bases 2–36 and are decoded with
// package radix. Every intermediate value is a *big.Int, so neither the
// roots nor the coefficient are bounded in size.
package vieta

import (
	"math/big"
	"time"
)

// EncodedRoot is a root as it appears in the input document: an
// identifier, a base and the digit string in that base.
type EncodedRoot struct {
	// ID is the root's key in the input document (e.g. "1", "r2").
	ID string
	// Base is the radix of Value, between 2 and 36.
	Base int
	// Value is the digit string, case-insensitive.
	Value string
}

// Problem is a fully parsed input record. Roots keep the order in which
// they were declared, which fixes the "Root i" labels of the report.
type Problem struct {
	// N is the declared number of roots. It drives the sign factor even when
	// it disagrees with len(Roots).
	N int
	// K is the leading coefficient.
	K *big.Int
	// Roots are the encoded roots in declaration order.
	Roots []EncodedRoot
}

// DecodedRoot is a root after base conversion.
type DecodedRoot struct {
	// Index is the 1-based position of the root in declaration order.
	Index int
	// ID is the root's key in the input document.
	ID string
	// Base is the radix the root was written in.
	Base int
	// Encoded is the original digit string.
	Encoded string
	// Value is the decoded, non-negative integer.
	Value *big.Int
}

// Result holds every quantity of one evaluation, so the report can show
// its working.
type Result struct {
	N        int
	K        *big.Int
	Roots    []DecodedRoot
	Product  *big.Int
	Sign     *big.Int
	Constant *big.Int
	// Engine is the name of the product engine that multiplied the roots.
	Engine string
	// Duration is the wall time of the evaluation.
	Duration time.Duration
}
