package tcc

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
)

// Credentials hold the account used to log in to the portal.
type Credentials struct {
	Email    string
	Password string
}

// LogValue implements slog.LogValuer. The password is never logged.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(slog.String("email", c.Email))
}

type loginRequest struct {
	EmailAddress            string   `json:"EmailAddress"`
	Password                string   `json:"Password"`
	RememberMe              bool     `json:"RememberMe"`
	IsServiceStatusReturned bool     `json:"IsServiceStatusReturned"`
	ApiActive               bool     `json:"ApiActive"`
	ApiDown                 bool     `json:"ApiDown"`
	RedirectUrl             string   `json:"RedirectUrl"`
	Events                  []string `json:"events"`
	FormErrors              []string `json:"formErrors"`
}

func newLoginRequest(c Credentials) loginRequest {
	return loginRequest{
		EmailAddress:            c.Email,
		Password:                c.Password,
		RememberMe:              false,
		IsServiceStatusReturned: true,
		ApiActive:               true,
		ApiDown:                 false,
		RedirectUrl:             "",
		Events:                  []string{},
		FormErrors:              []string{},
	}
}

// LocationsResponse is the body returned by the getlocations call. Every level may be missing.
type LocationsResponse struct {
	Content *LocationsContent `json:"Content"`
}

type LocationsContent struct {
	Locations []Location `json:"Locations"`
}

// FirstLocation returns the first location in the response.
func (r LocationsResponse) FirstLocation() (Location, bool) {
	if r.Content == nil || len(r.Content.Locations) == 0 {
		return Location{}, false
	}
	return r.Content.Locations[0], true
}

type Location struct {
	ID    *ID    `json:"Id"`
	Name  string `json:"Name"`
	Zones []Zone `json:"Zones"`
}

// Id returns the location's identifier, if the vendor sent one.
func (l Location) Id() (ID, bool) {
	return l.ID.get()
}

// FirstZone returns the first zone of the location.
func (l Location) FirstZone() (Zone, bool) {
	if len(l.Zones) == 0 {
		return Zone{}, false
	}
	return l.Zones[0], true
}

// Zone returns the zone with the specified identifier.
func (l Location) Zone(id ID) (Zone, bool) {
	for _, z := range l.Zones {
		if zoneID, ok := z.Id(); ok && zoneID == id {
			return z, true
		}
	}
	return Zone{}, false
}

type Zone struct {
	ID                    *ID      `json:"Id"`
	Name                  string   `json:"Name"`
	Temperature           *Reading `json:"Temperature"`
	TargetHeatTemperature *Reading `json:"TargetHeatTemperature"`
}

func (z Zone) Id() (ID, bool) {
	return z.ID.get()
}

// IndoorTemperature returns the zone's measured temperature in °C.
func (z Zone) IndoorTemperature() (float64, bool) {
	return z.Temperature.get()
}

// HeatSetpoint returns the zone's current heat setpoint in °C.
func (z Zone) HeatSetpoint() (float64, bool) {
	return z.TargetHeatTemperature.get()
}

// ID identifies a location or zone. The portal sends these as numbers, but strings are accepted too.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*id = ID(n.String())
		return nil
	}
	// anything else (objects, booleans, ...) can't be an identifier
	*id = ""
	return nil
}

func (id *ID) get() (ID, bool) {
	if id == nil || *id == "" {
		return "", false
	}
	return *id, true
}

func (id ID) String() string {
	return string(id)
}

// Reading is a temperature as reported by the portal. Numeric strings are accepted.
// Values that can't be interpreted as a number are treated as absent.
type Reading struct {
	value float64
	valid bool
}

func NewReading(value float64) *Reading {
	return &Reading{value: value, valid: true}
}

func (r *Reading) UnmarshalJSON(b []byte) error {
	*r = Reading{}
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*r = Reading{value: f, valid: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if f, err = strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*r = Reading{value: f, valid: true}
		}
	}
	return nil
}

func (r Reading) MarshalJSON() ([]byte, error) {
	if !r.valid {
		return []byte("null"), nil
	}
	return json.Marshal(r.value)
}

func (r *Reading) get() (float64, bool) {
	if r == nil || !r.valid {
		return 0, false
	}
	return r.value, true
}

// ZoneTemperature is the body of the SetZoneTemperature call.
type ZoneTemperature struct {
	ZoneID                    ID     `json:"zoneId"`
	HeatTemperature           string `json:"heatTemperature"`
	HotWaterStateIsOn         bool   `json:"hotWaterStateIsOn"`
	IsPermanent               bool   `json:"isPermanent"`
	SetUntilHours             string `json:"setUntilHours"`
	SetUntilMinutes           string `json:"setUntilMinutes"`
	LocationTimeOffsetMinutes int    `json:"locationTimeOffsetMinutes"`
	IsFollowingSchedule       bool   `json:"isFollowingSchedule"`
}

// DefaultTimeOffset is the location time offset, in minutes, sent with each setpoint change.
const DefaultTimeOffset = 60

// NewZoneTemperature builds a temporary override of the zone's heat setpoint, lasting until the specified time of day.
// Schedule following and hot water are switched off.
func NewZoneTemperature(zoneID ID, celsius float64, until TimeOfDay) ZoneTemperature {
	return ZoneTemperature{
		ZoneID:                    zoneID,
		HeatTemperature:           FormatTemperature(celsius),
		HotWaterStateIsOn:         false,
		IsPermanent:               false,
		SetUntilHours:             strconv.Itoa(until.Hours),
		SetUntilMinutes:           strconv.Itoa(until.Minutes),
		LocationTimeOffsetMinutes: DefaultTimeOffset,
		IsFollowingSchedule:       false,
	}
}

// FormatTemperature formats a temperature as a decimal string. Whole numbers keep one decimal ("21.0").
func FormatTemperature(celsius float64) string {
	s := strconv.FormatFloat(celsius, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
