package lsag

import "math/big"

// Verify reports whether sig is a valid LSAG signature by some member of
// ring over message. It implements section 4.2 of [LSAG]: recompute the
// key image h = H2(ring, message), then walk the challenge chain starting
// at sig.C0, folding each ring member's (s_i, c_i) pair into the next
// challenge, and accept iff the chain closes back on sig.C0.
//
// Malformed input — wrong-length S, an out-of-range scalar, a ring member
// or Y that isn't a valid non-identity curve point — is rejected (false
// returned) rather than panicking, and Verify never reveals which
// structural check failed through its boolean return.
//
// Linkage: two accepted signatures over the same (ring, message) with
// equal sig.Y were produced by the same private key. Over a different
// ring or message the link tag differs by construction and carries no
// information tying the two signatures together.
func Verify(message []byte, ring []*Point, sig *Signature) bool {
	ok, _ := verifyDetailed(message, ring, sig)
	return ok
}

// verifyDetailed is Verify's internal counterpart, returning the specific
// reason for a rejection so tests can assert on it without the public API
// leaking that detail (spec section 4.4's "optional diagnostic").
func verifyDetailed(message []byte, ring []*Point, sig *Signature) (bool, error) {
	if sig == nil {
		return false, ErrMalformedSignature
	}
	n := len(ring)
	if n < 1 {
		return false, ErrRingTooSmall
	}
	if len(sig.S) != n {
		return false, ErrMalformedSignature
	}
	if sig.C0 == nil || sig.Y == nil {
		return false, ErrMalformedSignature
	}
	if !sig.Y.IsOnCurve() {
		return false, ErrMalformedSignature
	}
	q := curve.N
	for _, si := range sig.S {
		if si == nil || !scalarInRange(si, q) {
			return false, ErrMalformedSignature
		}
	}
	for _, yi := range ring {
		if yi == nil || !yi.IsOnCurve() {
			return false, ErrMalformedSignature
		}
	}

	L := ringItem(ring)
	h, err := HashToPoint(L, BytesItem(message))
	if err != nil {
		return false, err
	}

	c := sig.C0
	for i := 0; i < n; i++ {
		z1 := AddMul(G, sig.S[i], ring[i], c)
		z2 := AddMul(h, sig.S[i], sig.Y, c)

		next, err := HashToScalar(L, PointItem(sig.Y), BytesItem(message), PointItem(z1), PointItem(z2))
		if err != nil {
			return false, err
		}

		if i < n-1 {
			c = next
		} else {
			return scalarsEqual(sig.C0, next), nil
		}
	}
	return false, nil
}

// scalarsEqual reports whether a and b are the same integer value.
func scalarsEqual(a, b *big.Int) bool {
	return a.Cmp(b) == 0
}
