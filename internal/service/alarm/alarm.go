// Package alarm watches the event stream for faults and disconnects and
// escalates once a condition persists, so a single noisy reading does not
// page anyone but a dead thermocouple does.
package alarm

import (
	"log/slog"
	"sync"

	"thermobox/internal/device/max31855"
	"thermobox/internal/event"
	"thermobox/internal/service"
)

var _ service.Service = (*Service)(nil)

type Config struct {
	// Threshold is the number of consecutive bad conditions (fault or
	// disconnect transitions) before the alarm raises.
	Threshold int
}

var DefaultConfig = Config{
	Threshold: 3,
}

type Service struct {
	service.Base

	log    *slog.Logger
	config Config
	events *event.EventBus
	ch     chan event.Event
	stop   chan struct{}

	consecutive int
	raised      bool
}

func New(config Config, events *event.EventBus) *Service {
	if config.Threshold <= 0 {
		config.Threshold = DefaultConfig.Threshold
	}

	return &Service{
		Base:   *service.New("alarm"),
		log:    slog.Default().With("service", "alarm"),
		config: config,
		events: events,
		ch:     make(chan event.Event, 16),
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

	err := s.events.Subscribe(s.ch,
		event.EventFault, event.EventDisconnected, event.EventRecovered)
	if err != nil {
		s.SetState(service.Errored)
		return err
	}

	wg.Add(1)
	go s.run(wg)

	s.log.Info("started", "threshold", s.config.Threshold)
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

	for {
		select {
		case <-s.stop:
			s.SetState(service.Stopped)
			s.log.Info("stopped")
			return

		case e := <-s.ch:
			s.handle(e)
		}
	}
}

func (s *Service) handle(e event.Event) {
	switch e.Type {
	case event.EventFault:
		s.bad("fault", max31855.FaultOf(e.Frame()).String())

	case event.EventDisconnected:
		s.bad("disconnect", e.Text())

	case event.EventRecovered:
		if s.raised {
			s.log.Info("alarm cleared", "after", s.consecutive)
		}
		s.consecutive = 0
		s.raised = false
	}
}

func (s *Service) bad(kind, detail string) {
	s.consecutive++
	if s.consecutive >= s.config.Threshold && !s.raised {
		s.raised = true
		s.log.Error("sensor condition persists",
			"kind", kind,
			"detail", detail,
			"consecutive", s.consecutive,
		)
	}
}
