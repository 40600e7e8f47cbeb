package lsag

import (
	"crypto/rand"
	"io"
	"math/big"
)

// Signature is an LSAG signature: a closed challenge chain anchored at c0,
// one response scalar per ring member, and the link tag Y. Two signatures
// produced by the same private key over the same ring and message carry
// equal Y values; see Verify's doc comment for the linkage predicate.
type Signature struct {
	C0 *big.Int
	S  []*big.Int
	Y  *Point
}

// Sign produces an LSAG signature over message for the ring L, on behalf
// of the ring member at index signerIndex holding privateKey. It
// implements the algorithm of section 4.1 of [LSAG]:
//
//  1. Compute the key image h = H2(L, m) and the link tag Y = privateKey*h.
//  2. Pick a random commitment u, and compute the challenge one step ahead
//     of the signer: c[signerIndex+1] = H1(L, Y, m, u*G, u*h).
//  3. Walk the rest of the ring starting one past the signer: for each
//     index, pick a random response s[i], derive z1 = s[i]*G + c[i]*L[i]
//     and z2 = s[i]*h + c[i]*Y, and fold them into the next challenge.
//  4. Close the chain at the signer's own index:
//     s[signerIndex] = u - privateKey*c[signerIndex] mod q.
//
// rand is the source of randomness for u and every sᵢ; it must be safe for
// the caller's concurrency needs (crypto/rand.Reader is used if rand is
// nil). Sign does not check that L[signerIndex] == privateKey*G — a
// mismatched key simply produces a signature that will not verify.
func Sign(privateKey *big.Int, signerIndex int, message []byte, ring []*Point, rnd io.Reader) (*Signature, error) {
	n := len(ring)
	if n < 1 {
		return nil, ErrRingTooSmall
	}
	if signerIndex < 0 || signerIndex >= n {
		return nil, ErrInvalidSignerIndex
	}
	if rnd == nil {
		rnd = rand.Reader
	}

	q := curve.N
	L := ringItem(ring)

	h, err := HashToPoint(L, BytesItem(message))
	if err != nil {
		return nil, err
	}
	Y := ScalarMul(h, privateKey)

	c := make([]*big.Int, n)
	s := make([]*big.Int, n)

	u, err := sampleScalar(rnd, q)
	if err != nil {
		return nil, err
	}

	next := (signerIndex + 1) % n
	c[next], err = HashToScalar(L, PointItem(Y), BytesItem(message), PointItem(ScalarBaseMul(u)), PointItem(ScalarMul(h, u)))
	if err != nil {
		return nil, err
	}

	for i := next; i != signerIndex; i = (i + 1) % n {
		si, err := sampleScalar(rnd, q)
		if err != nil {
			return nil, err
		}
		s[i] = si

		z1 := AddMul(G, si, ring[i], c[i])
		z2 := AddMul(h, si, Y, c[i])

		j := (i + 1) % n
		c[j], err = HashToScalar(L, PointItem(Y), BytesItem(message), PointItem(z1), PointItem(z2))
		if err != nil {
			return nil, err
		}
	}

	sPi := new(big.Int).Mul(privateKey, c[signerIndex])
	sPi.Sub(u, sPi)
	s[signerIndex] = reduceMod(sPi, q)

	return &Signature{C0: c[0], S: s, Y: Y}, nil
}

// ringItem packages a ring of public keys as the nested-list Item that H1
// and H2 expect: Item encoding recurses into lists, so the ring's n points
// are encoded back-to-back exactly as the flat concatenation
// Encode(PointItem(L[0]), ..., PointItem(L[n-1])) would produce.
func ringItem(ring []*Point) Item {
	items := make([]Item, len(ring))
	for i, p := range ring {
		items[i] = PointItem(p)
	}
	return ListItem(items...)
}
