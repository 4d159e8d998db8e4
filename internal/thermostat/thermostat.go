// Package thermostat reads and sets the heat setpoint of the user's zone, using a logged-in tcc.Session.
//
// Only the first location of the account, and the first zone of that location, are ever considered.
package thermostat

import (
	"context"
	"errors"
	"fmt"
	"github.com/clambin/tcc-thermostat/internal/tcc"
	"log/slog"
	"math"
)

var (
	// ErrNotFound indicates that no location or zone could be found.
	ErrNotFound = errors.New("zone not found")
	// ErrUnavailable indicates that the zone's temperature or setpoint could not be read.
	ErrUnavailable = errors.New("zone state unavailable")
)

// Tolerance is the largest difference, in °C, between two setpoints that are considered equal.
const Tolerance = 0.1

// NotificationTitle is the title of the notification sent when the setpoint changes.
const NotificationTitle = "Thermostat Update"

// Session is the part of tcc.Session used by the Thermostat.
type Session interface {
	Login(ctx context.Context, credentials tcc.Credentials) error
	GetLocations(ctx context.Context) (tcc.LocationsResponse, error)
	SetZoneTemperature(ctx context.Context, request tcc.ZoneTemperature) error
}

type Notifier interface {
	Notify(title, message string)
}

// A Location is the location & zone the Thermostat controls.
type Location struct {
	ID     tcc.ID `json:"locationId" yaml:"locationId"`
	ZoneID tcc.ID `json:"zoneId" yaml:"zoneId"`
}

// ZoneState is the zone's measured temperature and current heat setpoint, in °C.
type ZoneState struct {
	Temperature float64 `json:"temperature" yaml:"temperature"`
	Setpoint    float64 `json:"setpoint" yaml:"setpoint"`
}

func (s ZoneState) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("temperature", s.Temperature),
		slog.Float64("setpoint", s.Setpoint),
	)
}

type Thermostat struct {
	session     Session
	credentials tcc.Credentials
	notifier    Notifier
	until       tcc.TimeOfDay
	logger      *slog.Logger
}

type Option func(*Thermostat)

// WithNotifier sends a notification when SetTemperature changes the setpoint. Without a Notifier, no notifications are sent.
func WithNotifier(n Notifier) Option {
	return func(t *Thermostat) { t.notifier = n }
}

// WithUntil sets the time of day at which a setpoint override ends. Default is tcc.DefaultUntil.
func WithUntil(until tcc.TimeOfDay) Option {
	return func(t *Thermostat) { t.until = until }
}

func WithLogger(logger *slog.Logger) Option {
	return func(t *Thermostat) { t.logger = logger }
}

func New(session Session, credentials tcc.Credentials, options ...Option) *Thermostat {
	t := Thermostat{
		session:     session,
		credentials: credentials,
		until:       tcc.DefaultUntil,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, o := range options {
		o(&t)
	}
	return &t
}

// Login logs in to the portal with the Thermostat's credentials.
func (t *Thermostat) Login(ctx context.Context) error {
	t.logger.Info("logging in", "credentials", t.credentials)
	if err := t.session.Login(ctx, t.credentials); err != nil {
		t.logger.Error("login failed", "err", err)
		return err
	}
	return nil
}

// Resolve returns the first location and its first zone. All failures are reported as ErrNotFound.
func (t *Thermostat) Resolve(ctx context.Context) (Location, error) {
	t.logger.Debug("fetching locations")
	locations, err := t.session.GetLocations(ctx)
	if err != nil {
		t.logger.Error("failed to get locations", "err", err)
		return Location{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	location, ok := locations.FirstLocation()
	if !ok {
		t.logger.Warn("no locations found")
		return Location{}, fmt.Errorf("%w: no locations", ErrNotFound)
	}
	var l Location
	if l.ID, ok = location.Id(); !ok {
		t.logger.Warn("location has no id")
		return Location{}, fmt.Errorf("%w: location has no id", ErrNotFound)
	}
	t.logger.Info("found location", "id", l.ID)

	zone, ok := location.FirstZone()
	if !ok {
		t.logger.Warn("location has no zones", "location", l.ID)
		return Location{}, fmt.Errorf("%w: location %s has no zones", ErrNotFound, l.ID)
	}
	if l.ZoneID, ok = zone.Id(); !ok {
		t.logger.Warn("zone has no id", "location", l.ID)
		return Location{}, fmt.Errorf("%w: zone has no id", ErrNotFound)
	}
	t.logger.Info("found zone", "id", l.ZoneID)
	return l, nil
}

// ReadZoneState returns the current temperature & setpoint of the zone.
// The portal has no call for a single zone, so all locations are fetched and the zone is looked up in the first location.
// All failures are reported as ErrUnavailable.
func (t *Thermostat) ReadZoneState(ctx context.Context, zoneID tcc.ID) (ZoneState, error) {
	locations, err := t.session.GetLocations(ctx)
	if err != nil {
		t.logger.Error("failed to get zone status", "err", err)
		return ZoneState{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	location, ok := locations.FirstLocation()
	if !ok {
		return ZoneState{}, fmt.Errorf("%w: no locations", ErrUnavailable)
	}
	zone, ok := location.Zone(zoneID)
	if !ok {
		t.logger.Warn("zone not found in location", "zone", zoneID)
		return ZoneState{}, fmt.Errorf("%w: zone %s not found", ErrUnavailable, zoneID)
	}

	var state ZoneState
	if state.Temperature, ok = zone.IndoorTemperature(); !ok {
		t.logger.Warn("zone has no valid temperature", "zone", zoneID)
		return ZoneState{}, fmt.Errorf("%w: no valid temperature", ErrUnavailable)
	}
	if state.Setpoint, ok = zone.HeatSetpoint(); !ok {
		t.logger.Warn("zone has no valid setpoint", "zone", zoneID)
		return ZoneState{}, fmt.Errorf("%w: no valid setpoint", ErrUnavailable)
	}
	t.logger.Debug("zone state read", "zone", zoneID, "state", state)
	return state, nil
}

// SetTemperature overrides the zone's heat setpoint until the configured time of day.
//
// If the setpoint before the change is known, and differs from the new setpoint, a notification is sent.
// Each call creates a new override, even if the setpoint doesn't change.
func (t *Thermostat) SetTemperature(ctx context.Context, zoneID tcc.ID, celsius float64) error {
	before, err := t.ReadZoneState(ctx, zoneID)
	known := err == nil
	if !known {
		t.logger.Warn("current setpoint unknown", "err", err)
	}

	if err = t.session.SetZoneTemperature(ctx, tcc.NewZoneTemperature(zoneID, celsius, t.until)); err != nil {
		t.logger.Error("failed to set temperature", "err", err)
		return err
	}
	t.logger.Info("temperature set", "zone", zoneID, "setpoint", celsius, "until", t.until)

	if known && Changed(before.Setpoint, celsius) && t.notifier != nil {
		t.notifier.Notify(NotificationTitle, fmt.Sprintf("Temperature setpoint changed from %s°C to %s°C until %s",
			tcc.FormatTemperature(before.Setpoint),
			tcc.FormatTemperature(celsius),
			t.until,
		))
	}
	return nil
}

// Changed returns true if the two setpoints differ by more than Tolerance.
func Changed(a, b float64) bool {
	return math.Abs(a-b) > Tolerance
}
