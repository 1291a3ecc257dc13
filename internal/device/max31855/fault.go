package max31855

import "strings"

// Fault describes the wiring faults the chip self-detects. It is a bitmask:
// multiple faults can be present at once and are reported together.
type Fault uint8

const (
	FaultOpen   Fault = 1 << iota // thermocouple open circuit
	FaultGround                   // thermocouple shorted to GND
	FaultVCC                      // thermocouple shorted to VCC

	// FaultUnknown means the chip raised its generic fault flag without
	// naming a specific cause.
	FaultUnknown
)

// None reports whether no fault is present.
func (f Fault) None() bool { return f == 0 }

// Has reports whether all faults in mask are present.
func (f Fault) Has(mask Fault) bool { return f&mask == mask }

// String names the faults in bit order, joined with " + "
// (e.g. "Open Circuit + Short to GND"). Returns "" for no fault.
func (f Fault) String() string {
	if f == 0 {
		return ""
	}
	if f.Has(FaultUnknown) {
		return "Unknown Fault"
	}

	parts := make([]string, 0, 3)
	if f.Has(FaultOpen) {
		parts = append(parts, "Open Circuit")
	}
	if f.Has(FaultGround) {
		parts = append(parts, "Short to GND")
	}
	if f.Has(FaultVCC) {
		parts = append(parts, "Short to VCC")
	}
	return strings.Join(parts, " + ")
}
