// Package circuit provides a gate-level description of an N-qubit program.
//
// A Circuit is only a program description: it performs no simulation of its
// own. Execution is the business of whatever backend consumes it.
package circuit

import (
	"errors"
	"fmt"
	"strings"
)

// An Op names a single instruction in a circuit.
type Op string

const (
	// OpX is the bit-flip (Pauli-X) gate.
	OpX Op = "X"
	// OpH is the Hadamard gate.
	OpH Op = "H"
	// OpBarrier is a synchronization boundary across all qubits. It has no
	// computational effect; it documents ordering intent, e.g. that state
	// preparation completes before measurement-basis rotation begins.
	OpBarrier Op = "BARRIER"
	// OpMeasure is a terminal computational-basis measurement of all qubits.
	OpMeasure Op = "MEASURE"
)

// A Gate is a single placed instruction. Target is the qubit index for
// single-qubit ops, and -1 for ops spanning the whole register.
type Gate struct {
	Op     Op
	Target int
}

// A Circuit is an ordered program over a fixed-size qubit register.
type Circuit struct {
	numQubits int
	gates     []Gate
	measured  bool
}

// New returns an empty circuit over numQubits qubits.
func New(numQubits int) (*Circuit, error) {
	if numQubits <= 0 {
		return nil, fmt.Errorf("circuit needs a positive qubit count, got %d", numQubits)
	}
	return &Circuit{numQubits: numQubits}, nil
}

// NumQubits returns the size of the circuit's qubit register.
func (c *Circuit) NumQubits() int {
	return c.numQubits
}

// Gates returns the circuit's instructions in program order.
func (c *Circuit) Gates() []Gate {
	r := make([]Gate, len(c.gates))
	copy(r, c.gates)
	return r
}

// AddGate appends a single-qubit gate acting on target.
func (c *Circuit) AddGate(op Op, target int) error {
	if op != OpX && op != OpH {
		return fmt.Errorf("unknown single-qubit op %q", op)
	}
	if target < 0 || target >= c.numQubits {
		return fmt.Errorf("gate target %d outside register of %d qubits", target, c.numQubits)
	}
	if c.measured {
		return fmt.Errorf("cannot add %s gate after measurement", op)
	}
	c.gates = append(c.gates, Gate{Op: op, Target: target})
	return nil
}

// AddBarrier appends a synchronization boundary across all qubits.
func (c *Circuit) AddBarrier() error {
	if c.measured {
		return errors.New("cannot add barrier after measurement")
	}
	c.gates = append(c.gates, Gate{Op: OpBarrier, Target: -1})
	return nil
}

// MeasureAll terminates the circuit with a computational-basis measurement of
// every qubit. Further instructions are rejected, as is a second measurement.
func (c *Circuit) MeasureAll() error {
	if c.measured {
		return errors.New("circuit already measured")
	}
	c.measured = true
	c.gates = append(c.gates, Gate{Op: OpMeasure, Target: -1})
	return nil
}

// Measured reports whether the circuit ends in a full measurement.
func (c *Circuit) Measured() bool {
	return c.measured
}

// QubitOps returns, in program order, the single-qubit ops acting on qubit q.
// Barriers and the terminal measurement are omitted; since the program
// contains no multi-qubit gates, this is the complete unitary history of q.
func (c *Circuit) QubitOps(q int) []Op {
	var r []Op
	for _, g := range c.gates {
		if g.Target == q && (g.Op == OpX || g.Op == OpH) {
			r = append(r, g.Op)
		}
	}
	return r
}

// ToQASM renders the circuit as OPENQASM 2.0 text.
func (c *Circuit) ToQASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.numQubits)
	fmt.Fprintf(&sb, "creg c[%d];\n\n", c.numQubits)
	for _, g := range c.gates {
		switch g.Op {
		case OpBarrier:
			sb.WriteString("barrier q;\n")
		case OpMeasure:
			sb.WriteString("measure q -> c;\n")
		default:
			fmt.Fprintf(&sb, "%s q[%d];\n", strings.ToLower(string(g.Op)), g.Target)
		}
	}
	return sb.String()
}
