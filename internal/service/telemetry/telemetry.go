// Package telemetry publishes decoded readings to an MQTT broker so control
// loops and dashboards elsewhere on the network can consume them.
package telemetry

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"thermobox/internal/device/max31855"
	"thermobox/internal/event"
	"thermobox/internal/service"
)

var _ service.Service = (*Service)(nil)

// ErrConnectTimeout is returned by Start when the broker does not answer
// within the connect window.
var ErrConnectTimeout = errors.New("telemetry: broker connect timeout")

type Config struct {
	Broker   string // broker URL, e.g. tcp://host:1883
	ClientID string
	Topic    string
}

var DefaultConfig = Config{
	Broker:   "tcp://127.0.0.1:1883",
	ClientID: "thermobox",
	Topic:    "thermobox/reading",
}

// payload is the JSON shape of one published reading. Absent channels are
// null so consumers can tell "0.00°C" from "no data".
type payload struct {
	TCTemp       *float64 `json:"tc_temp"`
	InternalTemp *float64 `json:"internal_temp"`
	Fault        string   `json:"fault,omitempty"`
	Raw          *uint32  `json:"raw"`
	Connected    bool     `json:"connected"`
}

type Service struct {
	service.Base

	log    *slog.Logger
	config Config
	events *event.EventBus
	conn   mqtt.Client
	ch     chan event.Event
	stop   chan struct{}
}

func New(config Config, events *event.EventBus) *Service {
	return &Service{
		Base:   *service.New("telemetry"),
		log:    slog.Default().With("service", "telemetry"),
		config: config,
		events: events,
		ch:     make(chan event.Event, 16),
		stop:   make(chan struct{}),
	}
}

func (s *Service) Start(wg *sync.WaitGroup) error {
	s.log.Info("starting", "broker", s.config.Broker)

	if s.State() == service.Running {
		s.log.Error("unable to start service, service already in running state")
		return service.ErrAlreadyRunning
	}

	s.SetState(service.Starting)

	opts := mqtt.NewClientOptions().
		AddBroker(s.config.Broker).
		SetClientID(s.config.ClientID).
		SetAutoReconnect(true)

	s.conn = mqtt.NewClient(opts)
	if err := waitConnect(s.conn.Connect(), 10*time.Second); err != nil {
		s.SetState(service.Errored)
		return err
	}

	err := s.events.Subscribe(s.ch,
		event.EventReading, event.EventDisconnected)
	if err != nil {
		s.SetState(service.Errored)
		return err
	}

	wg.Add(1)
	go s.run(wg)

	s.log.Info("started", "topic", s.config.Topic)
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
			s.conn.Disconnect(250)
			s.SetState(service.Stopped)
			s.log.Info("stopped")
			return

		case e := <-s.ch:
			body, err := encodePayload(e)
			if err != nil {
				s.log.Error("encode failed", "error", err)
				continue
			}
			if token := s.conn.Publish(s.config.Topic, 0, false, body); token.Wait() && token.Error() != nil {
				s.log.Error("publish failed", "error", token.Error())
			}
		}
	}
}

// waitConnect resolves a connect token into an error. The token can
// complete carrying a refusal, so a finished wait still needs its Error
// checked; a wait that never finishes has a nil Error and is reported as a
// timeout.
func waitConnect(token mqtt.Token, timeout time.Duration) error {
	if !token.WaitTimeout(timeout) {
		return ErrConnectTimeout
	}
	return token.Error()
}

// encodePayload turns a bus event back into the wire payload. Frame events
// are re-decoded; a disconnect carries only the transport error text.
func encodePayload(e event.Event) ([]byte, error) {
	var p payload

	switch e.Type {
	case event.EventDisconnected:
		p.Fault = e.Text()

	default:
		r := max31855.Decode(e.Frame())
		p.Connected = true
		raw := r.Raw
		p.Raw = &raw
		if r.ThermocoupleOK {
			tc := float64(r.Thermocouple)
			p.TCTemp = &tc
		}
		if r.InternalOK {
			in := float64(r.Internal)
			p.InternalTemp = &in
		}
		p.Fault = r.Fault.String()
	}

	return json.Marshal(p)
}
