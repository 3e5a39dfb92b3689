// Package radix converts digit strings written in bases 2 through 36 to
// arbitrary-precision integers and back.
//
// Digits are '0'–'9' followed by 'a'–'z' (case-insensitive), so base 36 uses
// every alphanumeric ASCII character. All arithmetic is performed on
// *big.Int; no intermediate value is ever held in a fixed-width type that
// could overflow.
package radix

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	apperrors "github.com/agbru/vieta/internal/errors"
)

const (
	// MinBase is the smallest supported base.
	MinBase = 2
	// MaxBase is the largest supported base.
	MaxBase = 36
)

// ErrBaseOutOfRange is returned when a base outside [MinBase, MaxBase] is used.
var ErrBaseOutOfRange = errors.New("base out of range")

// wordDigits[b] is the number of base-b digits that always fit in a uint64
// accumulator, i.e. the largest k with b^k <= math.MaxUint64.
var wordDigits [MaxBase + 1]int

func init() {
	for b := MinBase; b <= MaxBase; b++ {
		k, p := 0, uint64(1)
		for p <= math.MaxUint64/uint64(b) {
			p *= uint64(b)
			k++
		}
		wordDigits[b] = k
	}
}

// DigitWeight returns the numeric weight of r: '0'–'9' map to 0–9 and
// 'a'–'z' or 'A'–'Z' map to 10–35. The boolean is false for any other rune.
func DigitWeight(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10, true
	default:
		return 0, false
	}
}

// ValidateBase reports whether base is supported.
func ValidateBase(base int) error {
	if base < MinBase || base > MaxBase {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrBaseOutOfRange, base, MinBase, MaxBase)
	}
	return nil
}

// Decode converts value, written most-significant digit first in the given
// base, into a non-negative integer. It is the positional sum
// Σ digit_i · base^(len−1−i), accumulated as result = result·base + digit.
//
// Runs of digits are first gathered in a machine word and folded into the
// big result once the word is full, which keeps the number of big-integer
// multiplications proportional to len(value)/wordDigits.
//
// The empty string decodes to 0. A character without a digit weight, or
// with a weight not strictly less than base, yields an
// apperrors.InvalidDigitError naming the character, its position and the base.
//
// Parameters:
//   - value: The digit string (case-insensitive).
//   - base: The base, between MinBase and MaxBase.
//
// Returns:
//   - *big.Int: The decoded value.
//   - error: ErrBaseOutOfRange (wrapped) or apperrors.InvalidDigitError.
func Decode(value string, base int) (*big.Int, error) {
	if err := ValidateBase(base); err != nil {
		return nil, err
	}

	result := new(big.Int)
	scale, chunk := new(big.Int), new(big.Int)
	b, limit := uint64(base), wordDigits[base]

	// word holds the pending digits, pow is b^n for the n digits in word.
	var word, pow uint64 = 0, 1
	n := 0
	flush := func() {
		result.Mul(result, scale.SetUint64(pow))
		result.Add(result, chunk.SetUint64(word))
		word, pow, n = 0, 1, 0
	}

	pos := 0
	for _, r := range value {
		d, ok := DigitWeight(r)
		if !ok || d >= base {
			return nil, apperrors.InvalidDigitError{Char: r, Position: pos, Base: base}
		}
		word = word*b + uint64(d)
		pow *= b
		n++
		if n == limit {
			flush()
		}
		pos++
	}
	if n > 0 {
		flush()
	}
	return result, nil
}

// MustDecode is like Decode but panics on error. It is intended for
// constants and tests.
func MustDecode(value string, base int) *big.Int {
	x, err := Decode(value, base)
	if err != nil {
		panic(fmt.Sprintf("radix: MustDecode(%q, %d): %v", value, base, err))
	}
	return x
}

// Encode renders a non-negative integer in the given base using lowercase
// digits, most-significant digit first, without leading zeros. Zero is
// rendered as "0".
func Encode(x *big.Int, base int) (string, error) {
	if err := ValidateBase(base); err != nil {
		return "", err
	}
	if x == nil {
		return "", errors.New("radix: cannot encode a nil integer")
	}
	if x.Sign() < 0 {
		return "", fmt.Errorf("radix: cannot encode negative value %s", x.String())
	}
	return x.Text(base), nil
}
