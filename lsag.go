// Package lsag implements Linkable Spontaneous Anonymous Group (LSAG)
// signatures over secp256k1.
//
// [LSAG]
//
//	Liu, J. K., Wei, V. K., and Wong, D. S., "Linkable Spontaneous Anonymous
//	Group Signature for Ad Hoc Groups", Information Security and Privacy,
//	ACSISP 2004.
//	<https://eprint.iacr.org/2004/027.pdf>
//
// A signer holding one private key out of an ad-hoc ring of public keys can
// produce a signature that convinces a verifier some member of the ring
// signed the message, without revealing which member. Two signatures
// produced by the same private key over the same ring and message carry the
// same link tag, so repeated signing by one member is detectable without
// deanonymizing a lone signer.
//
// The package draws its elliptic-curve group arithmetic from
// [github.com/ethereum/go-ethereum/crypto/secp256k1]; it does not implement
// scalar multiplication or point addition itself. The modular square root
// used by hash-to-curve is computed in this package (see sqrtModP).
package lsag

import (
	"math/big"

	"github.com/ethereum/go-ethereum/crypto/secp256k1"
)

// curve is the secp256k1 group all package operations are defined over.
var curve = secp256k1.S256()

// G is the fixed generator of curve.
var G = &Point{X: new(big.Int).Set(curve.Gx), Y: new(big.Int).Set(curve.Gy)}

// Q is the order of the prime-order subgroup generated by G. Because
// secp256k1 has cofactor 1, Q is also the order of the whole curve group.
func Q() *big.Int {
	return new(big.Int).Set(curve.N)
}

// P is the field modulus curve points' coordinates are reduced modulo.
func P() *big.Int {
	return new(big.Int).Set(curve.P)
}
