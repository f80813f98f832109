package bb84

import (
	"errors"
	"testing"

	"github.com/JayantiSingh/quantum-computing-course/bb84/bitmap"
	"github.com/JayantiSingh/quantum-computing-course/bb84/circuit"
)

func mustBits(t *testing.T, s string) bitmap.Dense {
	t.Helper()
	d, err := bitmap.FromString(s)
	if err != nil {
		t.Fatalf("bugged test setup: %v", err)
	}
	return d
}

func TestBuildCircuit(t *testing.T) {
	// senderBits [0,1,1,0], senderBases [0,0,1,1], receiverBases [0,1,1,0].
	c, err := BuildCircuit(
		mustBits(t, "0110"),
		mustBits(t, "0011"),
		mustBits(t, "0110"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.NumQubits() != 4 {
		t.Errorf("NumQubits() == %d, want 4", c.NumQubits())
	}
	egates := []circuit.Gate{
		// Preparation: q0 |0>, q1 |1>, q2 |->, q3 |+>.
		{Op: circuit.OpX, Target: 1},
		{Op: circuit.OpX, Target: 2},
		{Op: circuit.OpH, Target: 2},
		{Op: circuit.OpH, Target: 3},
		{Op: circuit.OpBarrier, Target: -1},
		// Rotation into the receiver's bases: Hadamard at q1 and q2.
		{Op: circuit.OpH, Target: 1},
		{Op: circuit.OpH, Target: 2},
		{Op: circuit.OpBarrier, Target: -1},
		{Op: circuit.OpMeasure, Target: -1},
	}
	gates := c.Gates()
	if len(gates) != len(egates) {
		t.Fatalf("got %d instructions, want %d: %v", len(gates), len(egates), gates)
	}
	for i := range gates {
		if gates[i] != egates[i] {
			t.Errorf("instruction %d == %v, want %v", i, gates[i], egates[i])
		}
	}
	if !c.Measured() {
		t.Error("assembled circuit does not end in a measurement")
	}
}

func TestBuildCircuitInvalid(t *testing.T) {
	tcs := []struct {
		name               string
		bits, sendB, recvB bitmap.Dense
	}{
		{"empty", bitmap.Empty(), bitmap.Empty(), bitmap.Empty()},
		{"short sender bases", mustBits(t, "0110"), mustBits(t, "011"), mustBits(t, "0110")},
		{"short receiver bases", mustBits(t, "0110"), mustBits(t, "0011"), mustBits(t, "01")},
		{"long receiver bases", mustBits(t, "0110"), mustBits(t, "0011"), mustBits(t, "01101")},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := BuildCircuit(tc.bits, tc.sendB, tc.recvB); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("error == %v, want ErrInvalidArgument", err)
			}
		})
	}
}
