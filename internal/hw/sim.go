package hw

import (
	"encoding/binary"
	"sync"
)

// defaultSimFrame reads as 23.50°C thermocouple / 22.00°C internal.
const defaultSimFrame = uint32(94)<<18 | uint32(352)<<4

// Simulator is a scripted Transporter and ChipSelect pair for running the
// stack without hardware. Frames are replayed in order and the last one
// repeats forever.
type Simulator struct {
	mu     sync.Mutex
	frames []uint32
	next   int
}

// NewSimulator creates a simulator replaying the given raw frames. With no
// frames it reports a steady room-temperature reading.
func NewSimulator(frames ...uint32) *Simulator {
	if len(frames) == 0 {
		frames = []uint32{defaultSimFrame}
	}
	return &Simulator{frames: frames}
}

func (s *Simulator) Tx(w, r []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := s.frames[s.next]
	if s.next < len(s.frames)-1 {
		s.next++
	}

	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], raw)
	copy(r, buf[:])
	return nil
}

// Set is a no-op; the simulator has no chip-select line.
func (s *Simulator) Set(level bool) {}
