package bb84

import (
	"fmt"

	"github.com/JayantiSingh/quantum-computing-course/bb84/bitmap"
)

// Sift derives the shared key from one run's measurement outcome: positions
// where the sender's and receiver's bases agree keep their outcome bit, in
// ascending index order; every other position is discarded. All three bit
// strings must have the same length.
func Sift(senderBases, receiverBases, outcome bitmap.Dense) (bitmap.Dense, error) {
	n := senderBases.Size()
	if receiverBases.Size() != n || outcome.Size() != n {
		return bitmap.Empty(), fmt.Errorf("%w: basis and outcome lengths must agree: %d, %d, %d",
			ErrInvalidArgument, n, receiverBases.Size(), outcome.Size())
	}
	return outcome.Select(senderBases.XNor(receiverBases)), nil
}
