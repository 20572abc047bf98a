// Package twos converts signed integers to fixed-width two's complement binary
// and hexadecimal strings.
//
// Values are arbitrary precision; the bit width only decides the mask and the
// length of the emitted strings. Values outside the signed range of the width
// are flagged as overflowing and wrapped, never rejected.
package twos

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrInvalidWidth is returned for a bit width that is not positive.
var ErrInvalidWidth = errors.New("bit width must be positive")

const hexDigits = "0123456789ABCDEF"

var (
	bigTwo     = big.NewInt(2)
	bigSixteen = big.NewInt(16)
)

// Result is the encoded form of a value at a given width.
type Result struct {
	Bits     int
	Masked   *big.Int // value mod 2^Bits, in [0, 2^Bits)
	Binary   string   // exactly Bits characters, MSB first
	Hex      string   // exactly ceil(Bits/4) characters, MSB first
	Overflow bool     // value outside [-2^(Bits-1), 2^(Bits-1)-1]
}

// Mask returns 2^bits - 1.
func Mask(bits int) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	return m.Sub(m, big.NewInt(1))
}

// HexLen is the number of hexadecimal digits needed for bits.
func HexLen(bits int) int {
	return (bits + 3) / 4
}

// InRange reports whether value fits the signed range of bits.
func InRange(value *big.Int, bits int) bool {
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	if value.Cmp(new(big.Int).Neg(limit)) < 0 {
		return false
	}
	return value.Cmp(limit) < 0
}

// Encode masks value to bits and renders the binary and hexadecimal forms.
func Encode(value *big.Int, bits int) (Result, error) {
	if bits <= 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidWidth, bits)
	}

	// big.Int.And uses two's complement semantics for negative operands.
	masked := new(big.Int).And(value, Mask(bits))

	return Result{
		Bits:     bits,
		Masked:   masked,
		Binary:   digits(masked, bits, bigTwo),
		Hex:      digits(masked, HexLen(bits), bigSixteen),
		Overflow: !InRange(value, bits),
	}, nil
}

// EncodeInt64 is Encode for native integers.
func EncodeInt64(value int64, bits int) (Result, error) {
	return Encode(big.NewInt(value), bits)
}

// digits emits exactly width digits of n in base, most significant first,
// by repeated division. Higher digits beyond width are dropped.
func digits(n *big.Int, width int, base *big.Int) string {
	out := make([]byte, width)
	q := new(big.Int).Set(n)
	r := new(big.Int)
	for i := width - 1; i >= 0; i-- {
		q.DivMod(q, base, r)
		out[i] = hexDigits[r.Int64()]
	}
	return string(out)
}

// DecodeUnsigned parses a binary string as an unsigned integer.
func DecodeUnsigned(binary string) (*big.Int, error) {
	if binary == "" || strings.Trim(binary, "01") != "" {
		return nil, fmt.Errorf("invalid binary string %q", binary)
	}
	v, _ := new(big.Int).SetString(binary, 2)
	return v, nil
}

// DecodeSigned parses a binary string as a two's complement value whose width
// is the string length.
func DecodeSigned(binary string) (*big.Int, error) {
	v, err := DecodeUnsigned(binary)
	if err != nil {
		return nil, err
	}
	if binary[0] == '1' {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(len(binary))))
	}
	return v, nil
}
