package max31855

import (
	"fmt"
	"strings"
)

// Celsius is a temperature in degrees Celsius.
type Celsius float64

// String formats the temperature to two decimal places.
func (c Celsius) String() string {
	return fmt.Sprintf("%.2f°C", float64(c))
}

// Reading is the decoded result of one bus transaction.
//
// Connection state, chip fault state and the two temperature channels are
// independently observable: a chip fault suppresses the thermocouple
// channel but leaves the internal channel valid, and a transport failure
// leaves only Connected and Err populated.
type Reading struct {
	// Connected is false only when the transport itself failed (no
	// response, or the bus stuck high).
	Connected bool

	// Raw is the 32-bit frame this reading was decoded from, retained for
	// diagnostics. Meaningful only when Connected.
	Raw uint32

	// Thermocouple is the hot-junction temperature. ThermocoupleOK is
	// false when a fault invalidates the channel or the sensor did not
	// respond.
	Thermocouple   Celsius
	ThermocoupleOK bool

	// Internal is the cold-junction temperature at the chip itself,
	// decoded whenever the transport responded, fault or not.
	Internal   Celsius
	InternalOK bool

	// Fault holds the chip-reported wiring faults, zero when none.
	Fault Fault

	// Err is the transport error when Connected is false, nil otherwise.
	Err error
}

// Diagnose renders the reading as a multi-line human-readable report,
// useful when bringing up wiring. The output is informational only and not
// meant for machine parsing.
func (r Reading) Diagnose() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Connected: %v", r.Connected)

	if !r.Connected {
		if r.Err != nil {
			fmt.Fprintf(&b, "\nError: %s", r.Err)
		}
		return b.String()
	}

	fmt.Fprintf(&b, "\nRaw value: 0x%08X", r.Raw)
	if r.ThermocoupleOK {
		fmt.Fprintf(&b, "\nTC Temp: %s", r.Thermocouple)
	}
	if r.InternalOK {
		fmt.Fprintf(&b, "\nInternal: %s", r.Internal)
	}
	if !r.Fault.None() {
		fmt.Fprintf(&b, "\nFAULT: %s", r.Fault)
	}
	return b.String()
}
