package lsag

import (
	"crypto/rand"
	"io"
	"math/big"
)

// ToBytes32 encodes a non-negative integer as a 32-byte big-endian array,
// zero-padding as FillBytes does; FillBytes panics on a value that does not
// fit, so callers are expected to have already validated the value is in
// [0, 2^256) via Encode.
func ToBytes32(i *big.Int) [32]byte {
	var b [32]byte
	i.FillBytes(b[:])
	return b
}

// FromBytes32 interprets a 32-byte array as an unsigned big-endian integer.
func FromBytes32(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// sampleScalar draws a uniform scalar in [1, q) from rand, resampling on a
// zero draw. Spec tightens the reference's [0, q) range to [1, q) so that
// the signer's commitment g^u is never the identity, which would otherwise
// leak information to an observer comparing signatures.
//
// q is assumed to fit in 32 bytes, as curve.N does; the draw is taken at
// the same fixed width ToBytes32/FromBytes32 use elsewhere in this package.
func sampleScalar(rnd io.Reader, q *big.Int) (*big.Int, error) {
	var buf [32]byte
	for {
		if _, err := io.ReadFull(rnd, buf[:]); err != nil {
			return nil, err
		}
		k := reduceMod(FromBytes32(buf[:]), q)
		if k.Sign() != 0 {
			return k, nil
		}
	}
}

// SampleScalar draws a cryptographically secure uniform scalar in [1, Q()),
// using rand as the entropy source. It is exported so callers assembling
// their own protocol on top of Sign/Verify can draw scalars the same way
// the signer does.
func SampleScalar(rnd io.Reader) (*big.Int, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	return sampleScalar(rnd, curve.N)
}

// reduceMod returns x mod q as a non-negative value.
func reduceMod(x, q *big.Int) *big.Int {
	return new(big.Int).Mod(x, q)
}

// scalarInRange reports whether x is a valid scalar representation, i.e.
// 0 <= x < q. Negative big.Ints are never produced by this package, but
// Verify must still reject them if handed one by a caller.
func scalarInRange(x, q *big.Int) bool {
	return x.Sign() >= 0 && x.Cmp(q) < 0
}
