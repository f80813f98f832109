package bb84

import (
	"errors"
	"testing"
)

func TestSift(t *testing.T) {
	tcs := []struct {
		name         string
		sendB, recvB string
		outcome      string
		ekey         string
	}{
		{
			// Bases agree at indices 0 and 2, so the key is outcome[0],
			// outcome[2] in that order.
			name:    "partial agreement",
			sendB:   "0011",
			recvB:   "0110",
			outcome: "0111",
			ekey:    "01",
		}, {
			name:    "full agreement",
			sendB:   "0110 1",
			recvB:   "0110 1",
			outcome: "1010 1",
			ekey:    "10101",
		}, {
			name:    "no agreement",
			sendB:   "0000",
			recvB:   "1111",
			outcome: "1010",
			ekey:    "",
		}, {
			name:    "multibyte",
			sendB:   "00001111 0101",
			recvB:   "00111100 0101",
			outcome: "10110100 1100",
			ekey:    "10 01 1100",
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			key, err := Sift(mustBits(t, tc.sendB), mustBits(t, tc.recvB), mustBits(t, tc.outcome))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ekey := mustBits(t, tc.ekey); !key.Equal(ekey) {
				t.Errorf("Sift == %s, want %s", key, ekey)
			}
		})
	}
}

func TestSiftLengthMismatch(t *testing.T) {
	tcs := []struct {
		name                  string
		sendB, recvB, outcome string
	}{
		{"short outcome", "011", "010", "0111"},
		{"short receiver bases", "0110", "010", "0110"},
		{"short sender bases", "011", "0101", "0110"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Sift(mustBits(t, tc.sendB), mustBits(t, tc.recvB), mustBits(t, tc.outcome))
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("error == %v, want ErrInvalidArgument", err)
			}
		})
	}
}
