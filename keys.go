package lsag

import (
	"io"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
)

// GenerateKeyPair samples a fresh private scalar in [1, Q()) and its
// public point privateKey*G, for use in tests and demos. Key generation is
// explicitly out of scope for the signing/verification core (the spec
// names it as an external collaborator); this exists only because tests
// need ring members to sign and verify against.
func GenerateKeyPair(rnd io.Reader) (privateKey *big.Int, publicKey *Point, err error) {
	d, err := SampleScalar(rnd)
	if err != nil {
		return nil, nil, err
	}
	return d, ScalarBaseMul(d), nil
}

// btcecPublicKey converts a Point to github.com/btcsuite/btcd/btcec's
// public-key representation. It exists so tests can cross-check this
// package's own curve arithmetic (curve.go, backed by
// github.com/ethereum/go-ethereum/crypto/secp256k1) against an
// independently implemented secp256k1 stack, rather than only testing the
// scheme against itself.
func btcecPublicKey(p *Point) *btcec.PublicKey {
	return &btcec.PublicKey{Curve: btcec.S256(), X: p.X, Y: p.Y}
}
