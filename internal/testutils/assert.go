package testutils

import (
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// Point is the minimal shape this package needs from lsag.Point, avoided as
// a direct import to keep testutils free of a dependency on the package it
// helps test.
type Point interface {
	// Coords returns the affine (x, y) coordinates of the point.
	Coords() (*big.Int, *big.Int)
}

// AssertPointsEqual checks if two curve points have equal coordinates. If
// not, it reports a test failure.
func AssertPointsEqual(t *testing.T, description string, expected, actual Point) {
	ex, ey := expected.Coords()
	ax, ay := actual.Coords()
	if ex.Cmp(ax) != 0 || ey.Cmp(ay) != 0 {
		t.Errorf(
			"unexpected %s\nexpected: (%v, %v)\nactual:   (%v, %v)\n",
			description,
			ex, ey,
			ax, ay,
		)
	}
}

// AssertBigIntSlicesEqual checks that two slices of scalars have the same
// length and equal elements pairwise. If not, it reports a test failure
// dumped with go-spew for a readable multi-line diff.
func AssertBigIntSlicesEqual(t *testing.T, description string, expected, actual []*big.Int) {
	if len(expected) != len(actual) {
		t.Errorf("unexpected %s length\nexpected: %d\nactual:   %d\n", description, len(expected), len(actual))
		return
	}
	for i := range expected {
		if expected[i].Cmp(actual[i]) != 0 {
			t.Errorf(
				"unexpected %s\nexpected:\n%s\nactual:\n%s\n",
				description,
				spew.Sdump(expected),
				spew.Sdump(actual),
			)
			return
		}
	}
}
