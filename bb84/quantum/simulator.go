package quantum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/JayantiSingh/quantum-computing-course/bb84/bitmap"
	"github.com/JayantiSingh/quantum-computing-course/bb84/circuit"
)

var (
	gateX = mat.NewCDense(2, 2, []complex128{
		0, 1,
		1, 0,
	})
	gateH = mat.NewCDense(2, 2, []complex128{
		complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0),
		complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0),
	})
)

// A Simulator is a state-vector Backend. Since the circuits it accepts
// contain only single-qubit gates, the register state is always a product
// state and each qubit's two-amplitude vector evolves independently; the
// simulator never materializes a 2^N-dimensional state.
type Simulator struct {
	rand *rand.Rand
}

// NewSimulator returns a Simulator drawing its measurement outcomes from rnd.
// A seeded source makes runs reproducible.
func NewSimulator(rnd *rand.Rand) (*Simulator, error) {
	if rnd == nil {
		return nil, errors.New("must provide a randomness source")
	}
	return &Simulator{rand: rnd}, nil
}

// Measure implements the Backend interface. Each qubit's unitary history is
// applied to |0> and the result is collapsed with a Born-rule sample.
func (s *Simulator) Measure(c *circuit.Circuit) (bitmap.Dense, error) {
	if c == nil {
		return bitmap.Empty(), errors.New("must provide a circuit")
	}
	if !c.Measured() {
		return bitmap.Empty(), errors.New("circuit does not end in a measurement")
	}
	var out bitmap.Dense
	for q := 0; q < c.NumQubits(); q++ {
		state := mat.NewCDense(2, 1, []complex128{1, 0})
		for _, op := range c.QubitOps(q) {
			u, err := unitaryFor(op)
			if err != nil {
				return bitmap.Empty(), fmt.Errorf("simulating qubit %d: %w", q, err)
			}
			state = applyUnitary(u, state)
		}
		amp := state.At(1, 0)
		pOne := real(amp * cmplx.Conj(amp))
		out.AppendBit(s.rand.Float64() < pOne)
	}
	return out, nil
}

// applyUnitary returns u*state for a 2x2 unitary and a 2x1 state vector. The
// product is spelled out because CDense carries no matrix-multiply of its own
// at the gonum release this module pins.
func applyUnitary(u, state *mat.CDense) *mat.CDense {
	a0, a1 := state.At(0, 0), state.At(1, 0)
	return mat.NewCDense(2, 1, []complex128{
		u.At(0, 0)*a0 + u.At(0, 1)*a1,
		u.At(1, 0)*a0 + u.At(1, 1)*a1,
	})
}

func unitaryFor(op circuit.Op) (*mat.CDense, error) {
	switch op {
	case circuit.OpX:
		return gateX, nil
	case circuit.OpH:
		return gateH, nil
	}
	return nil, fmt.Errorf("no unitary for op %q", op)
}
