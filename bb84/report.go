package bb84

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/JayantiSingh/quantum-computing-course/bb84/bitmap"
)

// A KeyReport packages together summary statistics for a sifted key.
type KeyReport struct {
	// Length is the number of bits in the key; Zeros and Ones partition it.
	Length int
	Zeros  int
	Ones   int

	// Bias is the proportion of one bits, 0.5 being ideal.
	Bias float64

	// Entropy is the Shannon entropy, in bits, of the key's empirical 0/1
	// distribution. A perfectly balanced key scores 1.
	Entropy float64
}

// Summarize computes a KeyReport for key in a single pass. The empty key
// reports zero for every field.
func Summarize(key bitmap.Dense) KeyReport {
	r := KeyReport{
		Length: key.Size(),
		Ones:   key.CountOnes(),
	}
	r.Zeros = r.Length - r.Ones
	if r.Length == 0 {
		return r
	}
	pOne := float64(r.Ones) / float64(r.Length)
	r.Bias = pOne
	r.Entropy = stat.Entropy([]float64{1 - pOne, pOne}) / math.Ln2
	return r
}
