package max31855

import "time"

// fault status bits (datasheet table 4).
const (
	faultOpen    = 0x01    // D0: thermocouple open circuit
	faultGround  = 0x02    // D1: thermocouple shorted to GND
	faultVCC     = 0x04    // D2: thermocouple shorted to VCC
	faultGeneric = 0x10000 // D16: any fault
)

// thermocouple channel: 14-bit signed field in D31..D18, 0.25°C per LSB.
const (
	tcShift      = 18
	tcMask       = 0x3FFF
	tcSignBit    = 0x80000000
	tcModulus    = 0x4000
	tcResolution = 0.25
)

// internal channel: 12-bit signed field in D15..D4, 0.0625°C per LSB.
const (
	internalShift      = 4
	internalMask       = 0x7FF
	internalSignBit    = 0x8000
	internalModulus    = 0x800
	internalResolution = 0.0625
)

// frameSize is the length of the one read-only transaction the chip knows.
const frameSize = 4

// DefaultSettleDelay is how long CS is held low before clocking starts.
// Comfortably above the chip's 100ns minimum; gives slow level shifters
// time to settle.
const DefaultSettleDelay = 10 * time.Microsecond
