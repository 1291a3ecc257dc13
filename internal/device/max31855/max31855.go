// Package max31855 drives the Maxim MAX31855 cold-junction-compensated
// thermocouple-to-digital converter.
//
// The chip is read-only: every SPI transaction shifts out one 32-bit frame
// holding the thermocouple temperature (0.25°C per LSB), the internal
// cold-junction temperature (0.0625°C per LSB) and fault status bits. The
// driver owns nothing beyond its two injected bus capabilities; bus clock
// configuration and pin mapping stay with the caller.
//
// Datasheet: https://datasheets.maximintegrated.com/en/ds/MAX31855.pdf
package max31855

import (
	"encoding/binary"
	"time"
)

type Config struct {
	// SettleDelay is how long the chip-select line is held low before the
	// transfer begins. Must be at least the chip's minimum access time.
	SettleDelay time.Duration
}

var DefaultConfig = Config{
	SettleDelay: DefaultSettleDelay,
}

// Device communicates with a MAX31855 over a Transporter and a ChipSelect.
// It holds no state between reads. A Device assumes exclusive, sequential
// ownership of its bus capabilities; concurrent calls must be serialized by
// the caller.
type Device struct {
	config    Config
	transport Transporter
	cs        ChipSelect
}

// New creates a MAX31855 driver. The Transporter must already be configured
// (mode 0, 8-bit words) before calling New. The chip-select line is driven
// high immediately so the chip releases the bus.
func New(config Config, transport Transporter, cs ChipSelect) *Device {
	if config.SettleDelay <= 0 {
		config.SettleDelay = DefaultSettleDelay
	}

	cs.Set(true)

	return &Device{
		config:    config,
		transport: transport,
		cs:        cs,
	}
}

// ReadRaw performs one 4-byte read transaction and returns the frame as a
// big-endian 32-bit value.
//
// An all-zero frame means nothing drove the bus (sensor disconnected) and
// an all-ones frame means the bus floated high; both are reported as
// transport errors rather than data. Every other pattern is returned
// verbatim, even when it happens to describe a degenerate temperature.
func (d *Device) ReadRaw() (uint32, error) {
	var wBuf, rBuf [frameSize]byte

	d.cs.Set(false)
	time.Sleep(d.config.SettleDelay)
	err := d.transport.Tx(wBuf[:], rBuf[:])
	d.cs.Set(true)

	if err != nil {
		return 0, err
	}

	raw := binary.BigEndian.Uint32(rBuf[:])
	switch raw {
	case 0x00000000:
		return 0, ErrNoResponse
	case 0xFFFFFFFF:
		return 0, ErrBusHigh
	}
	return raw, nil
}

// ReadAll reads the device once and decodes the frame. Transport failures
// are reported inside the Reading, not as an error: Connected is false, Err
// holds the cause and both temperature channels are absent.
func (d *Device) ReadAll() Reading {
	raw, err := d.ReadRaw()
	if err != nil {
		return Reading{Err: err}
	}
	return Decode(raw)
}

// Diagnose reads the device once and renders the result via
// [Reading.Diagnose].
func (d *Device) Diagnose() string {
	return d.ReadAll().Diagnose()
}
