package workflow

import (
	"github.com/clambin/tcc-thermostat/internal/thermostat"
)

type Encoder interface {
	Encode(any) error
}

// Report describes the outcome of a Run.
type Report struct {
	Location thermostat.Location   `json:"location" yaml:"location"`
	Target   float64               `json:"target" yaml:"target"`
	Before   *thermostat.ZoneState `json:"before,omitempty" yaml:"before,omitempty"`
	After    *thermostat.ZoneState `json:"after,omitempty" yaml:"after,omitempty"`
	// Accepted is true if the portal accepted the new setpoint.
	Accepted bool `json:"accepted" yaml:"accepted"`
	// Mismatch is true if the setpoint read back after the change doesn't match the target.
	Mismatch bool `json:"mismatch" yaml:"mismatch"`
}

func (r Report) Encode(e Encoder) error {
	return e.Encode(r)
}
