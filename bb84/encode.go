package bb84

import (
	"fmt"

	"github.com/JayantiSingh/quantum-computing-course/bb84/circuit"
)

// Basis values, as they appear in basis bit strings.
const (
	BasisComputational byte = 0
	BasisHadamard      byte = 1
)

// EncodingOps returns the ordered gate sequence that prepares a single qubit
// from |0> according to the sender's state bit and encoding basis:
//
//	state 0, computational -> |0>  (no ops)
//	state 1, computational -> |1>  (X)
//	state 0, Hadamard      -> |+>  (H)
//	state 1, Hadamard      -> |->  (X, H)
//
// Both inputs must be 0 or 1.
func EncodingOps(state, basis byte) ([]circuit.Op, error) {
	if err := checkBit("state", state); err != nil {
		return nil, err
	}
	if err := checkBit("basis", basis); err != nil {
		return nil, err
	}
	var ops []circuit.Op
	if state == 1 {
		ops = append(ops, circuit.OpX)
	}
	if basis == BasisHadamard {
		ops = append(ops, circuit.OpH)
	}
	return ops, nil
}

// MeasurementOps returns the gate sequence that rotates a single qubit into
// the receiver's measurement basis ahead of the terminal computational-basis
// measurement: a lone H for the Hadamard basis, nothing for the computational
// basis. The input must be 0 or 1.
func MeasurementOps(basis byte) ([]circuit.Op, error) {
	if err := checkBit("basis", basis); err != nil {
		return nil, err
	}
	if basis == BasisHadamard {
		return []circuit.Op{circuit.OpH}, nil
	}
	return nil, nil
}

func checkBit(name string, v byte) error {
	if v > 1 {
		return fmt.Errorf("%w: %s must be 0 or 1, got %d", ErrInvalidArgument, name, v)
	}
	return nil
}
