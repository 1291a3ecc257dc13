package telemetry

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"thermobox/internal/event"
)

// fakeToken stands in for a paho connect token: either already complete
// (possibly carrying a refusal) or never finishing.
type fakeToken struct {
	done bool
	err  error
}

func (t *fakeToken) Wait() bool                     { return t.done }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return t.done }
func (t *fakeToken) Error() error                   { return t.err }

func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	if t.done {
		close(ch)
	}
	return ch
}

func TestWaitConnect(t *testing.T) {
	refused := errors.New("connection refused")

	tests := []struct {
		name  string
		token *fakeToken
		want  error
	}{
		{"connected", &fakeToken{done: true}, nil},
		// The token completes carrying the refusal; a finished wait alone
		// must not count as success.
		{"refused", &fakeToken{done: true, err: refused}, refused},
		{"timeout", &fakeToken{}, ErrConnectTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := waitConnect(tt.token, time.Millisecond); !errors.Is(got, tt.want) {
				t.Errorf("waitConnect() err=%v, want %v", got, tt.want)
			}
		})
	}
}

func decode(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("Unmarshal(%s) err=%v", body, err)
	}
	return m
}

func TestEncodeReading(t *testing.T) {
	// 23.50°C thermocouple, 22.00°C internal, no fault.
	raw := uint32(94)<<18 | uint32(352)<<4

	body, err := encodePayload(event.NewFrameEvent(event.EventReading, raw))
	if err != nil {
		t.Fatalf("encodePayload() err=%v", err)
	}

	m := decode(t, body)
	if m["connected"] != true {
		t.Error("connected=false")
	}
	if m["tc_temp"] != 23.5 {
		t.Errorf("tc_temp=%v, want 23.5", m["tc_temp"])
	}
	if m["internal_temp"] != 22.0 {
		t.Errorf("internal_temp=%v, want 22", m["internal_temp"])
	}
	if m["raw"] != float64(raw) {
		t.Errorf("raw=%v, want %d", m["raw"], raw)
	}
	if _, ok := m["fault"]; ok {
		t.Errorf("fault=%v present, want omitted", m["fault"])
	}
}

func TestEncodeFaultReading(t *testing.T) {
	raw := uint32(400)<<4 | 0x10000 | 0x01 // open circuit, internal 25.00°C

	body, err := encodePayload(event.NewFrameEvent(event.EventReading, raw))
	if err != nil {
		t.Fatalf("encodePayload() err=%v", err)
	}

	m := decode(t, body)
	if m["fault"] != "Open Circuit" {
		t.Errorf("fault=%v, want Open Circuit", m["fault"])
	}
	if m["tc_temp"] != nil {
		t.Errorf("tc_temp=%v, want null (suppressed by fault)", m["tc_temp"])
	}
	if m["internal_temp"] != 25.0 {
		t.Errorf("internal_temp=%v, want 25", m["internal_temp"])
	}
}

func TestEncodeDisconnect(t *testing.T) {
	body, err := encodePayload(event.NewTextEvent(event.EventDisconnected, "no SPI response"))
	if err != nil {
		t.Fatalf("encodePayload() err=%v", err)
	}

	m := decode(t, body)
	if m["connected"] != false {
		t.Error("connected=true for a disconnect")
	}
	if m["fault"] != "no SPI response" {
		t.Errorf("fault=%v, want transport error text", m["fault"])
	}
	if m["tc_temp"] != nil || m["internal_temp"] != nil || m["raw"] != nil {
		t.Error("channels populated for a disconnect")
	}
}
