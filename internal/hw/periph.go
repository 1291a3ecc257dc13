// Package hw binds the driver's bus capabilities to real hardware through
// periph, and provides a scripted simulator for running without any.
package hw

import (
	"fmt"
	"log/slog"

	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/conn/physic"
	"periph.io/x/periph/conn/spi"
	"periph.io/x/periph/conn/spi/spireg"
	"periph.io/x/periph/host"
)

// SPIPort is an open SPI port configured for the MAX31855: mode 0, 8-bit
// words, 1MHz. It satisfies the driver's Transporter.
type SPIPort struct {
	port spi.PortCloser
	conn spi.Conn
}

// OpenSPI initializes the host drivers and opens the named SPI port. An
// empty name selects the first available port.
func OpenSPI(name string) (*SPIPort, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("hw: host init: %w", err)
	}

	port, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("hw: open spi port %q: %w", name, err)
	}

	conn, err := port.Connect(1*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("hw: configure spi port %q: %w", name, err)
	}

	return &SPIPort{port: port, conn: conn}, nil
}

func (p *SPIPort) Tx(w, r []byte) error {
	return p.conn.Tx(w, r)
}

func (p *SPIPort) Close() error {
	return p.port.Close()
}

// Pin adapts a named GPIO pin to the driver's ChipSelect.
type Pin struct {
	name   string
	out    func(gpio.Level) error
	warned bool
}

// OpenPin looks up a GPIO pin by name and configures it as an output,
// released (high).
func OpenPin(name string) (*Pin, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("hw: no gpio pin named %q", name)
	}
	if err := p.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("hw: configure pin %q: %w", name, err)
	}
	return &Pin{name: name, out: p.Out}, nil
}

// Set drives the line. The ChipSelect contract is errorless, so a write
// failure is logged once rather than swallowed; the pin keeps being driven
// in case the condition clears.
func (p *Pin) Set(level bool) {
	if err := p.out(gpio.Level(level)); err != nil && !p.warned {
		p.warned = true
		slog.Warn("chip select write failed", "pin", p.name, "error", err)
	}
}
