// bb84sim runs rounds of simulated BB84 key agreement for each requested
// qubit count and outputs a CSV of per-round key statistics, e.g. sifted key
// length, bit bias and entropy.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/JayantiSingh/quantum-computing-course/bb84"
	"github.com/JayantiSingh/quantum-computing-course/bb84/quantum"
)

var (
	qubits = flag.IntSlice("qubits", []int{bb84.DefaultQubits},
		"The qubit counts to exchange per round, one experiment per entry.")
	runs = flag.Int("runs", 1, "The number of protocol rounds to run per qubit count.")
	seed = flag.Int64("seed", 1, "The seed for the protocol and simulator randomness.")
	qasm = flag.Bool("qasm", false, "Dump the first assembled circuit as OPENQASM 2.0 to stderr.")
)

var columns = []string{"Qubits", "Run", "KeyBits", "Zeros", "Ones", "Bias", "Entropy", "Key"}

func main() {
	flag.Parse()
	sim, err := quantum.NewSimulator(rand.New(rand.NewSource(*seed + 1)))
	if err != nil {
		log.Fatalf("Building simulator: %v", err)
	}
	fmt.Println(strings.Join(columns, ", "))
	dumped := !*qasm
	for _, n := range *qubits {
		p, err := bb84.NewProtocol(bb84.ProtocolOpts{
			Backend: sim,
			Rand:    rand.New(rand.NewSource(*seed)),
			Qubits:  n,
		})
		if err != nil {
			log.Fatalf("Configuring %d-qubit protocol: %v", n, err)
		}
		for run := 0; run < *runs; run++ {
			res, err := p.Run()
			if err != nil {
				log.Fatalf("Running %d-qubit round %d: %v", n, run, err)
			}
			if !dumped {
				fmt.Fprint(os.Stderr, res.Program.ToQASM())
				dumped = true
			}
			fmt.Printf("%d, %d, %d, %d, %d, %.3f, %.3f, %s\n",
				n, run, res.Report.Length, res.Report.Zeros, res.Report.Ones,
				res.Report.Bias, res.Report.Entropy, res.Key)
		}
	}
}
