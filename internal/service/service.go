// Package service defines the lifecycle shared by the long-running parts of
// thermobox: the sensor poll loop, the alarm monitor and the telemetry
// publisher all implement [Service] and are started together at boot.
package service

import (
	"errors"
	"sync"
)

type State int

const (
	Stopped State = iota
	Starting
	Running
	Stopping
	Errored
)

var ErrAlreadyRunning = errors.New("service already running")
var ErrNotRunning = errors.New("service not running")

// Service is a named goroutine with a start/stop lifecycle. Start registers
// the service on wg and returns once its goroutine is launched; wg is done
// when the service exits.
type Service interface {
	Name() string
	Start(wg *sync.WaitGroup) error
	Stop() error
	State() State
}

// Base carries the name and state bookkeeping common to all services and is
// meant to be embedded.
type Base struct {
	name  string
	state State
}

func (b *Base) Name() string     { return b.name }
func (b *Base) SetName(n string) { b.name = n }

func (b *Base) State() State     { return b.state }
func (b *Base) SetState(s State) { b.state = s }

func New(name string) *Base {
	return &Base{
		name:  name,
		state: Stopped,
	}
}
