package lsag

import (
	"crypto/rand"
	"math/big"
	"testing"
)

func TestVerifyDetailedRejectsNilSignature(t *testing.T) {
	_, pubs := generateRing(t, 3)
	ok, err := verifyDetailed([]byte("msg"), pubs, nil)
	if ok || err != ErrMalformedSignature {
		t.Fatalf("expected (false, ErrMalformedSignature), got (%v, %v)", ok, err)
	}
}

func TestVerifyDetailedRejectsEmptyRing(t *testing.T) {
	privs, pubs := generateRing(t, 1)
	sig, err := Sign(privs[0], 0, []byte("msg"), pubs, nil)
	if err != nil {
		t.Fatal(err)
	}
	ok, verr := verifyDetailed([]byte("msg"), nil, sig)
	if ok || verr != ErrRingTooSmall {
		t.Fatalf("expected (false, ErrRingTooSmall), got (%v, %v)", ok, verr)
	}
}

func TestVerifyDetailedRejectsWrongLengthResponseSlice(t *testing.T) {
	privs, pubs := generateRing(t, 4)
	sig, err := Sign(privs[0], 0, []byte("msg"), pubs, nil)
	if err != nil {
		t.Fatal(err)
	}
	sig.S = sig.S[:len(sig.S)-1]

	ok, verr := verifyDetailed([]byte("msg"), pubs, sig)
	if ok || verr != ErrMalformedSignature {
		t.Fatalf("expected (false, ErrMalformedSignature), got (%v, %v)", ok, verr)
	}
}

func TestVerifyDetailedRejectsNilC0(t *testing.T) {
	privs, pubs := generateRing(t, 4)
	sig, err := Sign(privs[0], 0, []byte("msg"), pubs, nil)
	if err != nil {
		t.Fatal(err)
	}
	sig.C0 = nil

	ok, verr := verifyDetailed([]byte("msg"), pubs, sig)
	if ok || verr != ErrMalformedSignature {
		t.Fatalf("expected (false, ErrMalformedSignature), got (%v, %v)", ok, verr)
	}
}

func TestVerifyDetailedRejectsNilY(t *testing.T) {
	privs, pubs := generateRing(t, 4)
	sig, err := Sign(privs[0], 0, []byte("msg"), pubs, nil)
	if err != nil {
		t.Fatal(err)
	}
	sig.Y = nil

	ok, verr := verifyDetailed([]byte("msg"), pubs, sig)
	if ok || verr != ErrMalformedSignature {
		t.Fatalf("expected (false, ErrMalformedSignature), got (%v, %v)", ok, verr)
	}
}

func TestVerifyDetailedRejectsOffCurveY(t *testing.T) {
	privs, pubs := generateRing(t, 4)
	sig, err := Sign(privs[0], 0, []byte("msg"), pubs, nil)
	if err != nil {
		t.Fatal(err)
	}
	sig.Y = &Point{X: new(big.Int).Add(sig.Y.X, big.NewInt(1)), Y: new(big.Int).Set(sig.Y.Y)}

	ok, verr := verifyDetailed([]byte("msg"), pubs, sig)
	if ok || verr != ErrMalformedSignature {
		t.Fatalf("expected (false, ErrMalformedSignature), got (%v, %v)", ok, verr)
	}
}

func TestVerifyDetailedRejectsOutOfRangeResponseScalar(t *testing.T) {
	privs, pubs := generateRing(t, 4)
	sig, err := Sign(privs[0], 0, []byte("msg"), pubs, nil)
	if err != nil {
		t.Fatal(err)
	}
	sig.S[2] = new(big.Int).Add(curve.N, big.NewInt(1))

	ok, verr := verifyDetailed([]byte("msg"), pubs, sig)
	if ok || verr != ErrMalformedSignature {
		t.Fatalf("expected (false, ErrMalformedSignature), got (%v, %v)", ok, verr)
	}
}

func TestVerifyDetailedRejectsNegativeResponseScalar(t *testing.T) {
	privs, pubs := generateRing(t, 4)
	sig, err := Sign(privs[0], 0, []byte("msg"), pubs, nil)
	if err != nil {
		t.Fatal(err)
	}
	sig.S[0] = big.NewInt(-1)

	ok, verr := verifyDetailed([]byte("msg"), pubs, sig)
	if ok || verr != ErrMalformedSignature {
		t.Fatalf("expected (false, ErrMalformedSignature), got (%v, %v)", ok, verr)
	}
}

func TestVerifyDetailedRejectsInvalidRingMember(t *testing.T) {
	privs, pubs := generateRing(t, 4)
	sig, err := Sign(privs[0], 0, []byte("msg"), pubs, nil)
	if err != nil {
		t.Fatal(err)
	}
	tampered := make([]*Point, len(pubs))
	copy(tampered, pubs)
	tampered[1] = &Point{X: big.NewInt(0), Y: big.NewInt(0)}

	ok, verr := verifyDetailed([]byte("msg"), tampered, sig)
	if ok || verr != ErrMalformedSignature {
		t.Fatalf("expected (false, ErrMalformedSignature), got (%v, %v)", ok, verr)
	}
}

func TestVerifyDetailedAcceptsGenuineSignature(t *testing.T) {
	privs, pubs := generateRing(t, 4)
	message := []byte("genuine")
	sig, err := Sign(privs[2], 2, message, pubs, nil)
	if err != nil {
		t.Fatal(err)
	}

	ok, verr := verifyDetailed(message, pubs, sig)
	if !ok || verr != nil {
		t.Fatalf("expected (true, nil), got (%v, %v)", ok, verr)
	}
}

func TestVerifyRejectsMessageMismatch(t *testing.T) {
	privs, pubs := generateRing(t, 4)
	sig, err := Sign(privs[0], 0, []byte("original message"), pubs, nil)
	if err != nil {
		t.Fatal(err)
	}
	if Verify([]byte("different message"), pubs, sig) {
		t.Fatal("expected verification to fail against a different message")
	}
}

func TestGenerateKeyPairProducesPointOnCurve(t *testing.T) {
	_, pub, err := GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	if !pub.IsOnCurve() {
		t.Fatal("expected generated public key to be a valid curve point")
	}
}
