package lsag

import "errors"

// Sentinel errors returned by this package. Callers should compare with
// errors.Is rather than string matching.
var (
	// ErrInvalidSignerIndex is returned by Sign when signerIndex is not a
	// valid index into the ring.
	ErrInvalidSignerIndex = errors.New("lsag: signer index out of range")

	// ErrRingTooSmall is returned by Sign, and surfaced internally during
	// verification, when the ring has fewer than one member.
	ErrRingTooSmall = errors.New("lsag: ring must contain at least one public key")

	// ErrMalformedSignature is returned internally when a signature fails
	// its structural pre-checks: a nil signature, nil c0, wrong-length s,
	// a scalar out of [0, q), or a ring member or Y that is not a valid
	// non-identity curve point. Verify itself reports this as a plain false, never as an
	// error, per the spec's requirement that malformed input reject rather
	// than panic or leak which check failed.
	ErrMalformedSignature = errors.New("lsag: malformed signature")

	// ErrHashToCurveDiverged is returned by HashToPoint when try-and-
	// increment exceeds its iteration cap without finding a valid point.
	ErrHashToCurveDiverged = errors.New("lsag: hash-to-curve did not converge")

	// ErrEncoding is returned by Encode when an item cannot be canonically
	// serialized: an out-of-range integer or an unknown item kind. An
	// identity or invalid point is not reported this way; Encode panics.
	ErrEncoding = errors.New("lsag: cannot encode item")
)
