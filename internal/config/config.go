// Package config holds the YAML-backed runtime configuration.
package config

type Config struct {
	LogLevel string      `yaml:"log_level"`
	SPI      SPIConfig   `yaml:"spi"`
	Poll     PollConfig  `yaml:"poll"`
	Alarm    AlarmConfig `yaml:"alarm"`
	MQTT     MQTTConfig  `yaml:"mqtt"`
}

// ---- BUS BINDING ----

type SPIConfig struct {
	// Port is the SPI port name as the host registry knows it
	// ("SPI0.0", "/dev/spidev0.0", ...). Empty selects the first
	// available port.
	Port string `yaml:"port"`

	// ChipSelect is the GPIO pin name driving the chip-select line.
	ChipSelect string `yaml:"chip_select"`

	// SettleUs is the CS-assert settle delay in microseconds.
	SettleUs int `yaml:"settle_us"`

	// Simulate replaces the hardware bus with a scripted transport, for
	// running off-target.
	Simulate bool `yaml:"simulate"`
}

// ---- POLL LOOP ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- ALARM ----

type AlarmConfig struct {
	Threshold int `yaml:"threshold"`
}

// ---- TELEMETRY ----

type MQTTConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Broker   string `yaml:"broker"`
	ClientID string `yaml:"client_id"`
	Topic    string `yaml:"topic"`
}
