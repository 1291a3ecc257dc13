package config

import "testing"

func validConfig() Config {
	return Config{
		LogLevel: "info",
		SPI:      SPIConfig{ChipSelect: "GPIO8"},
		Poll:     PollConfig{IntervalMs: 500},
	}
}

func TestValidateOK(t *testing.T) {
	cfg := validConfig()
	if err := Validate(&cfg); err != nil {
		t.Fatalf("Validate() err=%v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }},
		{"negative interval", func(c *Config) { c.Poll.IntervalMs = -1 }},
		{"negative settle", func(c *Config) { c.SPI.SettleUs = -1 }},
		{"negative threshold", func(c *Config) { c.Alarm.Threshold = -1 }},
		{"no chip select", func(c *Config) { c.SPI.ChipSelect = "" }},
		{"mqtt without broker", func(c *Config) {
			c.MQTT.Enabled = true
			c.MQTT.Topic = "t"
		}},
		{"mqtt without topic", func(c *Config) {
			c.MQTT.Enabled = true
			c.MQTT.Broker = "tcp://b:1883"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			if err := Validate(&cfg); err == nil {
				t.Error("Validate() err=nil, want error")
			}
		})
	}
}

func TestValidateSimulatorNeedsNoPin(t *testing.T) {
	cfg := validConfig()
	cfg.SPI.ChipSelect = ""
	cfg.SPI.Simulate = true
	if err := Validate(&cfg); err != nil {
		t.Errorf("Validate() err=%v, simulator must not require a pin", err)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := Config{SPI: SPIConfig{Simulate: true}}
	Normalize(&cfg)

	if cfg.LogLevel != "info" {
		t.Errorf("log_level=%q, want info", cfg.LogLevel)
	}
	if cfg.Poll.IntervalMs != 500 {
		t.Errorf("interval_ms=%d, want 500", cfg.Poll.IntervalMs)
	}
	if cfg.SPI.SettleUs != 10 {
		t.Errorf("settle_us=%d, want 10", cfg.SPI.SettleUs)
	}
	if cfg.Alarm.Threshold != 3 {
		t.Errorf("threshold=%d, want 3", cfg.Alarm.Threshold)
	}
	if cfg.MQTT.ClientID != "thermobox" || cfg.MQTT.Topic != "thermobox/reading" {
		t.Errorf("mqtt defaults not applied: %+v", cfg.MQTT)
	}
}
