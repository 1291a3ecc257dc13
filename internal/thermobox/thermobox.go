// Package thermobox wires configuration, the bus binding, the device driver
// and the services into one runnable instance.
package thermobox

import (
	"log/slog"
	"sync"
	"time"

	"thermobox/internal/config"
	"thermobox/internal/device/max31855"
	"thermobox/internal/event"
	"thermobox/internal/hw"
	"thermobox/internal/service"
	"thermobox/internal/service/alarm"
	"thermobox/internal/service/telemetry"
	"thermobox/internal/service/thermo"
)

type ThermoBox struct {
	log      *slog.Logger
	config   *config.Config
	events   *event.EventBus
	services *Services
	closers  []func() error
}

type Services struct {
	thermo    *thermo.Service
	alarm     *alarm.Service
	telemetry *telemetry.Service // nil unless enabled
}

func (s *Services) All() []service.Service {
	all := []service.Service{
		s.thermo,
		s.alarm,
	}
	if s.telemetry != nil {
		all = append(all, s.telemetry)
	}
	return all
}

// New builds a complete instance from a loaded configuration.
func New(cfg *config.Config) (*ThermoBox, error) {
	events := event.NewBus()

	transport, cs, closer, err := openBus(cfg.SPI)
	if err != nil {
		return nil, err
	}

	dev := max31855.New(max31855.Config{
		SettleDelay: time.Duration(cfg.SPI.SettleUs) * time.Microsecond,
	}, transport, cs)

	b := &ThermoBox{
		log:    slog.Default().With("service", "thermobox"),
		config: cfg,
		events: events,
		services: &Services{
			thermo: thermo.New(thermo.Config{
				Interval: time.Duration(cfg.Poll.IntervalMs) * time.Millisecond,
			}, dev, events),
			alarm: alarm.New(alarm.Config{
				Threshold: cfg.Alarm.Threshold,
			}, events),
		},
	}
	if closer != nil {
		b.closers = append(b.closers, closer)
	}

	if cfg.MQTT.Enabled {
		b.services.telemetry = telemetry.New(telemetry.Config{
			Broker:   cfg.MQTT.Broker,
			ClientID: cfg.MQTT.ClientID,
			Topic:    cfg.MQTT.Topic,
		}, events)
	}

	return b, nil
}

// openBus produces the device's two capabilities from config: either a real
// periph SPI port plus GPIO pin, or the scripted simulator standing in for
// both.
func openBus(cfg config.SPIConfig) (max31855.Transporter, max31855.ChipSelect, func() error, error) {
	if cfg.Simulate {
		sim := hw.NewSimulator()
		return sim, sim, nil, nil
	}

	port, err := hw.OpenSPI(cfg.Port)
	if err != nil {
		return nil, nil, nil, err
	}
	pin, err := hw.OpenPin(cfg.ChipSelect)
	if err != nil {
		port.Close()
		return nil, nil, nil, err
	}
	return port, pin, port.Close, nil
}

// Run starts every service and blocks until all of them have exited.
func (b *ThermoBox) Run() {
	b.log.Info("running")

	wg := sync.WaitGroup{}
	for _, svc := range b.services.All() {
		if err := svc.Start(&wg); err != nil {
			b.log.Error("failed to start service", "name", svc.Name(), "error", err)
		}
	}

	wg.Wait()

	for _, c := range b.closers {
		if err := c(); err != nil {
			b.log.Error("close failed", "error", err)
		}
	}
}

// Stop asks every running service to wind down; Run returns once they have.
func (b *ThermoBox) Stop() {
	b.log.Info("stopping")

	for _, svc := range b.services.All() {
		switch svc.State() {
		case service.Starting, service.Running:
			if err := svc.Stop(); err != nil {
				b.log.Error("failed to stop service", "name", svc.Name(), "error", err)
			}
		}
	}
}
