// Package workflow drives a single setpoint change: log in, find the zone, change its setpoint & verify the result.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"github.com/clambin/tcc-thermostat/internal/tcc"
	"github.com/clambin/tcc-thermostat/internal/thermostat"
	"io"
	"log/slog"
	"time"
)

// DefaultSettle is how long to wait after a setpoint change before reading back the zone's state.
const DefaultSettle = 2 * time.Second

type Thermostat interface {
	Login(ctx context.Context) error
	Resolve(ctx context.Context) (thermostat.Location, error)
	ReadZoneState(ctx context.Context, zoneID tcc.ID) (thermostat.ZoneState, error)
	SetTemperature(ctx context.Context, zoneID tcc.ID, celsius float64) error
}

type Options struct {
	// Target is the requested setpoint, in °C.
	Target float64
	// Settle is the time to wait between setting the setpoint and verifying it.
	Settle time.Duration
	// Until is the time of day at which the new setpoint ends.
	Until tcc.TimeOfDay
}

var (
	ErrLogin          = errors.New("login failed")
	ErrResolve        = errors.New("failed to get location information")
	ErrSetTemperature = errors.New("failed to set temperature")
)

// Run performs the setpoint change. Progress is written to w.
//
// Login, zone resolution and the setpoint change itself must succeed: any failure aborts the run and is returned.
// Reading the zone's state before and after the change is best effort. A setpoint that doesn't match the
// target after the change is reported in the Report and written to w, but is not an error.
func Run(ctx context.Context, t Thermostat, opts Options, w io.Writer, logger *slog.Logger) (Report, error) {
	r := Report{Target: opts.Target}

	if err := t.Login(ctx); err != nil {
		return r, fmt.Errorf("%w: %w", ErrLogin, err)
	}

	location, err := t.Resolve(ctx)
	if err != nil {
		return r, fmt.Errorf("%w: %w", ErrResolve, err)
	}
	r.Location = location

	if before, err := t.ReadZoneState(ctx, location.ZoneID); err == nil {
		r.Before = &before
		_, _ = fmt.Fprintf(w, "Current temperature: %s°C\n", tcc.FormatTemperature(before.Temperature))
		_, _ = fmt.Fprintf(w, "Current setpoint: %s°C\n", tcc.FormatTemperature(before.Setpoint))
	} else {
		logger.Warn("could not read zone state before change", "err", err)
	}

	if err = t.SetTemperature(ctx, location.ZoneID, opts.Target); err != nil {
		return r, fmt.Errorf("%w: %w", ErrSetTemperature, err)
	}
	r.Accepted = true
	_, _ = fmt.Fprintf(w, "Successfully set temperature to %s°C until %s\n", tcc.FormatTemperature(opts.Target), opts.Until)

	_, _ = fmt.Fprintln(w, "Waiting for temperature change to take effect...")
	if err = sleep(ctx, opts.Settle); err != nil {
		return r, err
	}

	after, err := t.ReadZoneState(ctx, location.ZoneID)
	if err != nil {
		logger.Warn("could not read zone state after change", "err", err)
		return r, nil
	}
	r.After = &after
	_, _ = fmt.Fprintf(w, "New temperature: %s°C\n", tcc.FormatTemperature(after.Temperature))
	_, _ = fmt.Fprintf(w, "New setpoint: %s°C\n", tcc.FormatTemperature(after.Setpoint))

	if thermostat.Changed(after.Setpoint, opts.Target) {
		r.Mismatch = true
		logger.Warn("setpoint mismatch", "requested", opts.Target, "reported", after.Setpoint)
		_, _ = fmt.Fprintf(w, "Warning: new setpoint (%s°C) doesn't match requested temperature (%s°C)!\n",
			tcc.FormatTemperature(after.Setpoint),
			tcc.FormatTemperature(opts.Target),
		)
	}
	return r, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
