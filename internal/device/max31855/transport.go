package max31855

// Transporter abstracts the duplex byte transfer the host SPI driver
// provides. Tx writes len(w) bytes while simultaneously reading len(r)
// bytes, blocking until the bus transaction completes. The bus must already
// be configured for SPI mode 0 and 8-bit words.
type Transporter interface {
	Tx(w, r []byte) error
}

// ChipSelect drives the chip-select line. The MAX31855 is selected while
// the line is low and releases the bus when it goes high.
type ChipSelect interface {
	// Set drives the line to the given logic level (false = low).
	Set(level bool)
}
