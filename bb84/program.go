package bb84

import (
	"fmt"

	"github.com/JayantiSingh/quantum-computing-course/bb84/bitmap"
	"github.com/JayantiSingh/quantum-computing-course/bb84/circuit"
)

// BuildCircuit assembles the full N-qubit program for one protocol run: every
// qubit's preparation gates in ascending index order, a barrier marking the
// transmission of the qubits from sender to receiver, every qubit's
// measurement-basis rotation, a second barrier, and a terminal measurement of
// the whole register. The three bit strings must have equal, positive length.
//
// The builder performs no randomness and no execution; it only assembles the
// program description.
func BuildCircuit(senderBits, senderBases, receiverBases bitmap.Dense) (*circuit.Circuit, error) {
	n := senderBits.Size()
	if n <= 0 {
		return nil, fmt.Errorf("%w: qubit count must be positive, got %d", ErrInvalidArgument, n)
	}
	if senderBases.Size() != n || receiverBases.Size() != n {
		return nil, fmt.Errorf("%w: bit string lengths must agree: %d, %d, %d",
			ErrInvalidArgument, n, senderBases.Size(), receiverBases.Size())
	}
	c, err := circuit.New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		ops, err := EncodingOps(bitVal(senderBits.Get(i)), bitVal(senderBases.Get(i)))
		if err != nil {
			return nil, err
		}
		for _, op := range ops {
			if err := c.AddGate(op, i); err != nil {
				return nil, err
			}
		}
	}
	if err := c.AddBarrier(); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		ops, err := MeasurementOps(bitVal(receiverBases.Get(i)))
		if err != nil {
			return nil, err
		}
		for _, op := range ops {
			if err := c.AddGate(op, i); err != nil {
				return nil, err
			}
		}
	}
	if err := c.AddBarrier(); err != nil {
		return nil, err
	}
	if err := c.MeasureAll(); err != nil {
		return nil, err
	}
	return c, nil
}

func bitVal(b bool) byte {
	if b {
		return 1
	}
	return 0
}
