package config

// Normalize applies defaults after validation.
// It is allowed to mutate configuration and MUST be called after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Poll.IntervalMs == 0 {
		cfg.Poll.IntervalMs = 500
	}
	if cfg.SPI.SettleUs == 0 {
		cfg.SPI.SettleUs = 10
	}
	if cfg.Alarm.Threshold == 0 {
		cfg.Alarm.Threshold = 3
	}

	if cfg.MQTT.ClientID == "" {
		cfg.MQTT.ClientID = "thermobox"
	}
	if cfg.MQTT.Broker == "" {
		cfg.MQTT.Broker = "tcp://127.0.0.1:1883"
	}
	if cfg.MQTT.Topic == "" {
		cfg.MQTT.Topic = "thermobox/reading"
	}
}
