package lsag

import "math/big"

// Point is an affine point (x, y) on secp256k1, or the identity element.
//
// The identity is represented as (0, 0), the convention used by
// crypto/elliptic and by github.com/ethereum/go-ethereum/crypto/secp256k1:
// (0, 0) never arises from a valid scalar multiplication on this curve, so
// it is safe to use as a sentinel for the point at infinity.
type Point struct {
	X *big.Int
	Y *big.Int
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.X.Sign() == 0 && p.Y.Sign() == 0
}

// IsOnCurve reports whether p is a valid, non-identity point on secp256k1.
func (p *Point) IsOnCurve() bool {
	if p.IsIdentity() {
		return false
	}
	return curve.IsOnCurve(p.X, p.Y)
}

// Equal reports whether p and q represent the same point.
func (p *Point) Equal(q *Point) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Copy returns an independent copy of p.
func (p *Point) Copy() *Point {
	return &Point{X: new(big.Int).Set(p.X), Y: new(big.Int).Set(p.Y)}
}

// Coords returns the affine (x, y) coordinates of p. It satisfies
// internal/testutils.Point so tests can assert on point equality without
// that package importing this one.
func (p *Point) Coords() (*big.Int, *big.Int) {
	return p.X, p.Y
}

// ScalarBaseMul returns k*G.
func ScalarBaseMul(k *big.Int) *Point {
	kmod := new(big.Int).Mod(k, curve.N)
	x, y := curve.ScalarBaseMult(kmod.Bytes())
	return &Point{X: x, Y: y}
}

// ScalarMul returns k*p.
func ScalarMul(p *Point, k *big.Int) *Point {
	kmod := new(big.Int).Mod(k, curve.N)
	x, y := curve.ScalarMult(p.X, p.Y, kmod.Bytes())
	return &Point{X: x, Y: y}
}

// Add returns p + q.
func Add(p, q *Point) *Point {
	x, y := curve.Add(p.X, p.Y, q.X, q.Y)
	return &Point{X: x, Y: y}
}

// AddMul returns a*p + b*q, the two-term combination used throughout the
// signing and verification chain (z1 = s_i*G + c_i*y_i, z2 = s_i*h + c_i*Y).
func AddMul(p *Point, a *big.Int, q *Point, b *big.Int) *Point {
	return Add(ScalarMul(p, a), ScalarMul(q, b))
}
