package lsag

import "math/big"

// itemKind tags the variant held by an Item.
type itemKind int

const (
	kindInt itemKind = iota
	kindPoint
	kindBytes
	kindList
)

// maxIntBytes is the fixed width every encoded integer is zero-padded to
// (wider integers are rejected, not truncated): secp256k1's field and order both fit comfortably in 32
// bytes, and the hash layer that consumes Encode's output expects a fixed
// width per item so the concatenation carries no internal length framing.
const maxIntBytes = 32

// two2the256 bounds the accepted integer range: [0, 2^256).
var two2the256 = new(big.Int).Lsh(big.NewInt(1), 256)

// Item is a canonical-encoder input: an integer, a curve point, a byte
// string, or a nested list of Items. Item is a closed tagged union —
// constructed only through IntItem, PointItem, BytesItem, TextItem, and
// ListItem — so a value that doesn't fit one of those shapes simply cannot
// be built into an Item. This replaces the untyped-dispatch-with-point-
// fallback of the reference implementation, which silently treated any
// unrecognized input as a curve point.
type Item struct {
	kind itemKind
	i    *big.Int
	p    *Point
	b    []byte
	list []Item
}

// IntItem wraps an integer for canonical encoding. i must be in
// [0, 2^256); Encode returns ErrEncoding otherwise.
func IntItem(i *big.Int) Item {
	return Item{kind: kindInt, i: i}
}

// PointItem wraps a curve point for canonical encoding. p must be a valid
// non-identity point; encoding the identity is a programming error (see
// Encode), not a condition callers are expected to probe for in advance.
func PointItem(p *Point) Item {
	return Item{kind: kindPoint, p: p}
}

// BytesItem wraps a raw byte string for canonical encoding.
func BytesItem(b []byte) Item {
	return Item{kind: kindBytes, b: b}
}

// TextItem wraps a UTF-8 string for canonical encoding.
func TextItem(s string) Item {
	return Item{kind: kindBytes, b: []byte(s)}
}

// ListItem wraps a nested sequence of Items, encoded by recursively
// applying Encode to the sublist and splicing the result in place.
func ListItem(items ...Item) Item {
	return Item{kind: kindList, list: items}
}

// Encode deterministically serializes items into a single byte string:
// concatenation in order, with no separators and no length prefixes. Two
// calls with the same sequence of item values and kinds always produce the
// same bytes; Encode has no framing, so Encode(a, b) == Encode(a) ++
// Encode(b) is a deliberate, documented property of the scheme — callers
// must keep the call-site *shape* of their inputs fixed for the resulting
// hashes to mean anything.
func Encode(items ...Item) ([]byte, error) {
	out := make([]byte, 0, len(items)*maxIntBytes)
	for _, it := range items {
		enc, err := it.encode()
		if err != nil {
			return nil, err
		}
		out = append(out, enc...)
	}
	return out, nil
}

func (it Item) encode() ([]byte, error) {
	switch it.kind {
	case kindInt:
		if it.i.Sign() < 0 || it.i.Cmp(two2the256) >= 0 {
			return nil, ErrEncoding
		}
		b := ToBytes32(it.i)
		return b[:], nil
	case kindPoint:
		if it.p == nil || !it.p.IsOnCurve() {
			// The signer and verifier never construct an identity or
			// off-curve point to encode; reaching this means a caller
			// bypassed the pre-checks that are supposed to guarantee it.
			panic("lsag: encode called with identity or invalid point")
		}
		x, y := ToBytes32(it.p.X), ToBytes32(it.p.Y)
		b := make([]byte, 0, 2*maxIntBytes)
		b = append(b, x[:]...)
		b = append(b, y[:]...)
		return b, nil
	case kindBytes:
		return it.b, nil
	case kindList:
		return Encode(it.list...)
	default:
		return nil, ErrEncoding
	}
}
