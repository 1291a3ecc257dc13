// Package thermo runs the sensor poll loop: one MAX31855 read per interval,
// fanned out to the rest of the system as events.
package thermo

import (
	"log/slog"
	"sync"
	"time"

	"thermobox/internal/device/max31855"
	"thermobox/internal/event"
	"thermobox/internal/service"
)

var _ service.Service = (*Service)(nil)

type Config struct {
	Interval time.Duration
}

var DefaultConfig = Config{
	Interval: 500 * time.Millisecond,
}

type Service struct {
	service.Base

	log    *slog.Logger
	config Config
	device *max31855.Device
	events *event.EventBus
	stop   chan struct{}

	// previous loop state, used to log and publish transitions once
	// instead of every interval
	lastFault    max31855.Fault
	disconnected bool
}

// New creates the poll service around an already constructed device. The
// device's bus binding stays with the caller so the loop itself runs the
// same against real SPI hardware or a simulator.
func New(config Config, device *max31855.Device, events *event.EventBus) *Service {
	if config.Interval <= 0 {
		config.Interval = DefaultConfig.Interval
	}

	return &Service{
		Base:   *service.New("thermo"),
		log:    slog.Default().With("service", "thermo"),
		config: config,
		device: device,
		events: events,
		stop:   make(chan struct{}),
	}
}

func (s *Service) Start(wg *sync.WaitGroup) error {
	s.log.Info("starting")

	if s.State() == service.Running {
		s.log.Error("unable to start service, service already in running state")
		return service.ErrAlreadyRunning
	}

	s.SetState(service.Starting)

	wg.Add(1)
	go s.run(wg)

	s.log.Info("started", "interval", s.config.Interval)
	return nil
}

func (s *Service) Stop() error {
	s.log.Info("stopping")

	if s.State() == service.Stopped {
		s.log.Error("unable to stop service, service is not running")
		return service.ErrNotRunning
	}

	s.SetState(service.Stopping)
	close(s.stop)
	return nil
}

func (s *Service) run(wg *sync.WaitGroup) {
	s.log.Info("running")
	s.SetState(service.Running)

	defer wg.Done()
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("panic recovered", "error", r)
		}
	}()

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	// First sample right away; the ticker paces the rest.
	s.observe(s.device.ReadAll())

	for {
		select {
		case <-s.stop:
			s.SetState(service.Stopped)
			s.log.Info("stopped")
			return

		case <-ticker.C:
			s.observe(s.device.ReadAll())
		}
	}
}

// observe classifies one reading against the previous loop state and
// publishes events. Fault and disconnect events go out every interval the
// condition holds so downstream counters see its duration; the log lines
// fire on transitions only.
func (s *Service) observe(r max31855.Reading) {
	switch {
	case !r.Connected:
		if !s.disconnected {
			s.log.Warn("sensor disconnected", "error", r.Err)
		}
		s.events.Publish(event.NewTextEvent(event.EventDisconnected, r.Err.Error()))
		s.disconnected = true
		s.lastFault = 0

	case !r.Fault.None():
		if r.Fault != s.lastFault {
			s.log.Warn("thermocouple fault",
				"fault", r.Fault.String(),
				"internal", r.Internal,
			)
		}
		s.events.Publish(event.NewFrameEvent(event.EventReading, r.Raw))
		s.events.Publish(event.NewFrameEvent(event.EventFault, r.Raw))
		s.disconnected = false
		s.lastFault = r.Fault

	default:
		if s.disconnected || !s.lastFault.None() {
			s.log.Info("sensor recovered", "thermocouple", r.Thermocouple)
			s.events.Publish(event.NewFrameEvent(event.EventRecovered, r.Raw))
		}
		s.log.Debug("reading",
			"thermocouple", r.Thermocouple,
			"internal", r.Internal,
		)
		s.events.Publish(event.NewFrameEvent(event.EventReading, r.Raw))
		s.disconnected = false
		s.lastFault = 0
	}
}
