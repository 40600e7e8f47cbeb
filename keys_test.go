package lsag

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec"
)

func TestGenerateKeyPairMatchesBtcecCrossCheck(t *testing.T) {
	priv, pub, err := GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	_, btcecPub := btcec.PrivKeyFromBytes(btcec.S256(), priv.Bytes())
	ours := btcecPublicKey(pub)

	if ours.X.Cmp(btcecPub.X) != 0 || ours.Y.Cmp(btcecPub.Y) != 0 {
		t.Fatalf("this package's scalar-base-mul diverged from btcec: got (%v, %v), want (%v, %v)",
			ours.X, ours.Y, btcecPub.X, btcecPub.Y)
	}
}

func TestScalarBaseMulMatchesBtcecAcrossSeveralScalars(t *testing.T) {
	for _, k := range []int64{1, 2, 3, 17, 255, 65537} {
		scalar := big.NewInt(k)
		ours := ScalarBaseMul(scalar)

		_, btcecPub := btcec.PrivKeyFromBytes(btcec.S256(), scalar.Bytes())

		if ours.X.Cmp(btcecPub.X) != 0 || ours.Y.Cmp(btcecPub.Y) != 0 {
			t.Fatalf("scalar %d: this package diverged from btcec: got (%v, %v), want (%v, %v)",
				k, ours.X, ours.Y, btcecPub.X, btcecPub.Y)
		}
	}
}

func TestGenerateKeyPairDrawsDistinctKeys(t *testing.T) {
	d1, _, err := GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	d2, _, err := GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	if d1.Cmp(d2) == 0 {
		t.Fatal("expected two independently generated private keys to differ")
	}
}

func TestGenerateKeyPairDefaultsToCryptoRandWhenNil(t *testing.T) {
	_, pub, err := GenerateKeyPair(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !pub.IsOnCurve() {
		t.Fatal("expected a key pair generated with a nil reader to be valid")
	}
}
