package hw

import "testing"

func readFrame(t *testing.T, s *Simulator) uint32 {
	t.Helper()
	var w, r [4]byte
	if err := s.Tx(w[:], r[:]); err != nil {
		t.Fatalf("Tx() err=%v", err)
	}
	return uint32(r[0])<<24 | uint32(r[1])<<16 | uint32(r[2])<<8 | uint32(r[3])
}

func TestSimulatorReplaysAndRepeats(t *testing.T) {
	s := NewSimulator(1, 2, 3)

	for _, want := range []uint32{1, 2, 3, 3, 3} {
		if got := readFrame(t, s); got != want {
			t.Fatalf("frame=%d, want %d", got, want)
		}
	}
}

func TestSimulatorDefaultFrame(t *testing.T) {
	s := NewSimulator()
	if got := readFrame(t, s); got != defaultSimFrame {
		t.Errorf("frame=%#08x, want %#08x", got, defaultSimFrame)
	}
}
