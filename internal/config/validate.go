package config

import "fmt"

// Validate checks configuration correctness.
// It performs declarative validation only and MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", cfg.LogLevel)
	}

	if cfg.Poll.IntervalMs < 0 {
		return fmt.Errorf("config: poll.interval_ms must not be negative")
	}
	if cfg.SPI.SettleUs < 0 {
		return fmt.Errorf("config: spi.settle_us must not be negative")
	}
	if cfg.Alarm.Threshold < 0 {
		return fmt.Errorf("config: alarm.threshold must not be negative")
	}

	// A real bus needs a chip-select pin; the simulator does not.
	if !cfg.SPI.Simulate && cfg.SPI.ChipSelect == "" {
		return fmt.Errorf("config: spi.chip_select is required unless spi.simulate is set")
	}

	if cfg.MQTT.Enabled {
		if cfg.MQTT.Broker == "" {
			return fmt.Errorf("config: mqtt.broker is required when mqtt.enabled is set")
		}
		if cfg.MQTT.Topic == "" {
			return fmt.Errorf("config: mqtt.topic is required when mqtt.enabled is set")
		}
	}

	return nil
}
