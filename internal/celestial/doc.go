// Package celestial holds the reference bodies used to re-derive stage TWR
// and sea-level performance.
//
// A Table is populated lazily from a Provider the first time it is read and
// is read-only afterwards, so it can be shared freely. Surface gravity is
// derived from the gravitational parameter and radius; surface density comes
// from the body's atmospheric profile, which is linearly interpolated
// between altitude samples. Airless bodies have no profile.
package celestial
