// Sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers use errors.Is.
//   - Option constructors (WithX) panic on meaningless input; constructors
//     (Rectangle, Polygon, ...) return these sentinels instead, since a bad
//     n or radius discovered mid-construction is a normal, recoverable
//     caller mistake, not a programmer error.
package builder

import "errors"

// ErrTooFewVertices indicates a shape parameter (n, sides, points) fell
// below the minimum the requested constructor needs to describe a closed
// polygon.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidRadius indicates a non-positive radius, width or height was
// supplied to a constructor that requires one.
var ErrInvalidRadius = errors.New("builder: radius must be positive")

// ErrNeedRandSource indicates RandomPoints was called without WithSeed or
// WithRand having supplied a source of randomness.
var ErrNeedRandSource = errors.New("builder: rng is required")
