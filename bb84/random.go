package bb84

import (
	"fmt"
	"math/rand"

	"github.com/JayantiSingh/quantum-computing-course/bb84/bitmap"
)

// RandomBits returns a bit string of length n whose bits are drawn
// independently and uniformly from rnd. The protocol is undefined for
// non-positive lengths, which are rejected as invalid arguments.
func RandomBits(n int, rnd *rand.Rand) (bitmap.Dense, error) {
	if n <= 0 {
		return bitmap.Empty(), fmt.Errorf("%w: bit string length must be positive, got %d", ErrInvalidArgument, n)
	}
	if rnd == nil {
		return bitmap.Empty(), fmt.Errorf("%w: must provide a randomness source", ErrInvalidArgument)
	}
	buf := make([]byte, bitmap.BytesFor(n))
	rnd.Read(buf)
	return bitmap.NewDense(buf, n), nil
}
