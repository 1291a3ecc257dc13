package max31855

import "errors"

var (
	ErrNoResponse = errors.New("max31855: no SPI response (disconnected)")
	ErrBusHigh    = errors.New("max31855: SPI bus error (all high)")
)
