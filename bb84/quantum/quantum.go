// Package quantum provides execution backends for gate-level circuits.
package quantum

import (
	"github.com/JayantiSingh/quantum-computing-course/bb84/bitmap"
	"github.com/JayantiSingh/quantum-computing-course/bb84/circuit"
)

// A Backend executes a measured circuit against some quantum device or
// simulation thereof.
type Backend interface {
	// Measure runs c for exactly one shot and returns one measured bit per
	// qubit, indexed identically to the circuit's qubit register. Repeated
	// calls with the same circuit yield independently sampled outcomes.
	Measure(c *circuit.Circuit) (bitmap.Dense, error)
}
