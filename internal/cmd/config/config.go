package config

import (
	"context"
	"fmt"
	"github.com/clambin/tcc-thermostat/internal/tcc"
)

type Encoder interface {
	Encode(any) error
}

type LocationsGetter interface {
	GetLocations(context.Context) (tcc.LocationsResponse, error)
}

type zone struct {
	ID          tcc.ID   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Temperature *float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	Setpoint    *float64 `json:"setpoint,omitempty" yaml:"setpoint,omitempty"`
}

type location struct {
	ID    tcc.ID `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Zones []zone `json:"zones" yaml:"zones"`
}

type report struct {
	Locations []location `json:"locations" yaml:"locations"`
}

// ShowConfig writes the locations and zones of the account, with their current readings.
func ShowConfig(ctx context.Context, c LocationsGetter, e Encoder) error {
	resp, err := c.GetLocations(ctx)
	if err != nil {
		return fmt.Errorf("tcc: locations: %w", err)
	}

	var r report
	if resp.Content != nil {
		for _, l := range resp.Content.Locations {
			entry := location{Name: l.Name}
			entry.ID, _ = l.Id()
			for _, z := range l.Zones {
				zoneEntry := zone{Name: z.Name}
				zoneEntry.ID, _ = z.Id()
				if temp, ok := z.IndoorTemperature(); ok {
					zoneEntry.Temperature = &temp
				}
				if setpoint, ok := z.HeatSetpoint(); ok {
					zoneEntry.Setpoint = &setpoint
				}
				entry.Zones = append(entry.Zones, zoneEntry)
			}
			r.Locations = append(r.Locations, entry)
		}
	}

	return e.Encode(r)
}
