// Package bb84 simulates a single noiseless run of the BB84 quantum key
// distribution protocol between two honest parties.
//
// One run generates the sender's state and basis strings and the receiver's
// basis string, assembles the corresponding preparation-and-measurement
// circuit, executes it for one shot against a quantum backend, and sifts the
// measured outcome down to the positions where the two parties' bases agree.
package bb84

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/JayantiSingh/quantum-computing-course/bb84/bitmap"
	"github.com/JayantiSingh/quantum-computing-course/bb84/circuit"
	"github.com/JayantiSingh/quantum-computing-course/bb84/quantum"
)

// DefaultQubits is the number of qubits exchanged per run when ProtocolOpts
// leaves Qubits unset.
var DefaultQubits = 64

var (
	// ErrInvalidArgument reports input that the protocol is undefined for:
	// non-positive lengths, non-bit values, or mismatched string lengths.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSimulation reports a failure of the quantum backend. The run is
	// aborted as a whole; there are no retries.
	ErrSimulation = errors.New("simulation failed")
)

// A ProtocolOpts packages together the arguments necessary to construct a new
// Protocol.
type ProtocolOpts struct {
	// Backend executes the assembled circuit, one shot per run. Must be
	// non-nil.
	Backend quantum.Backend

	// Rand provides the randomness for all three bit strings. This may use
	// pRNG for experiments and testing; for real security it would need to be
	// truly random. Must be non-nil.
	Rand *rand.Rand

	// Qubits specifies the number of qubits exchanged per run. Defaults to
	// DefaultQubits.
	Qubits int
}

// A Protocol runs rounds of simulated BB84 key agreement.
type Protocol struct {
	backend quantum.Backend
	rand    *rand.Rand
	qubits  int
}

// NewProtocol returns a new Protocol, configured in accordance with opts, or
// an error if the options are nonsensical.
func NewProtocol(opts ProtocolOpts) (*Protocol, error) {
	if opts.Backend == nil {
		return nil, fmt.Errorf("%w: must provide Backend", ErrInvalidArgument)
	}
	if opts.Rand == nil {
		return nil, fmt.Errorf("%w: must provide Rand", ErrInvalidArgument)
	}
	qubits := opts.Qubits
	if qubits == 0 {
		qubits = DefaultQubits
	}
	if qubits < 0 {
		return nil, fmt.Errorf("%w: qubit count must be positive, got %d", ErrInvalidArgument, qubits)
	}
	return &Protocol{
		backend: opts.Backend,
		rand:    opts.Rand,
		qubits:  qubits,
	}, nil
}

// A Result packages together everything observable about one protocol run.
type Result struct {
	// SenderBits holds the sender's random state bits, SenderBases and
	// ReceiverBases the two parties' independently chosen encoding and
	// measurement bases (0 = computational, 1 = Hadamard).
	SenderBits    bitmap.Dense
	SenderBases   bitmap.Dense
	ReceiverBases bitmap.Dense

	// Matches marks the positions where the two basis strings agree.
	Matches bitmap.Dense

	// Outcome holds the receiver's measured bit for every qubit, and Key the
	// sifted key derived from it.
	Outcome bitmap.Dense
	Key     bitmap.Dense

	// Report summarizes the sifted key.
	Report KeyReport

	// Program is the circuit that was executed.
	Program *circuit.Circuit
}

// Run performs one full protocol round: bit generation, circuit assembly, a
// single shot against the backend, sifting, and key statistics. Every run
// draws fresh bit strings; no state is carried between runs.
func (p *Protocol) Run() (*Result, error) {
	senderBits, err := RandomBits(p.qubits, p.rand)
	if err != nil {
		return nil, fmt.Errorf("generating sender bits: %w", err)
	}
	senderBases, err := RandomBits(p.qubits, p.rand)
	if err != nil {
		return nil, fmt.Errorf("generating sender bases: %w", err)
	}
	receiverBases, err := RandomBits(p.qubits, p.rand)
	if err != nil {
		return nil, fmt.Errorf("generating receiver bases: %w", err)
	}
	program, err := BuildCircuit(senderBits, senderBases, receiverBases)
	if err != nil {
		return nil, fmt.Errorf("assembling circuit: %w", err)
	}
	outcome, err := p.backend.Measure(program)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSimulation, err)
	}
	if outcome.Size() != p.qubits {
		return nil, fmt.Errorf("%w: got %d outcome bits, want %d", ErrSimulation, outcome.Size(), p.qubits)
	}
	key, err := Sift(senderBases, receiverBases, outcome)
	if err != nil {
		return nil, fmt.Errorf("sifting outcome: %w", err)
	}
	return &Result{
		SenderBits:    senderBits,
		SenderBases:   senderBases,
		ReceiverBases: receiverBases,
		Matches:       senderBases.XNor(receiverBases),
		Outcome:       outcome,
		Key:           key,
		Report:        Summarize(key),
		Program:       program,
	}, nil
}
