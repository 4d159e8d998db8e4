package testtools

import (
	"encoding/json"
	"github.com/clambin/tcc-thermostat/internal/tcc"
	"net/http"
	"strconv"
	"sync"
)

const sessionCookie = ".ASPXAUTH_TRUEHOME"

// APIServer simulates the TCC portal calls used by tcc.Session. Use it with httptest.NewServer.
//
// Calls other than login are rejected with 401 unless the client presents the session cookie set at login.
type APIServer struct {
	// LoginStatus, LocationsStatus and SetStatus override the status code of each call (default: 200).
	LoginStatus     int
	LocationsStatus int
	SetStatus       int
	// LocationsBody, if set, is returned verbatim by the getlocations call.
	LocationsBody string
	// ApplySetpoint updates Setpoint when a SetZoneTemperature call succeeds.
	ApplySetpoint bool

	LocationID  string
	ZoneID      string
	Temperature float64
	Setpoint    float64

	lock     sync.Mutex
	logins   []map[string]any
	requests []tcc.ZoneTemperature
}

func (s *APIServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	switch r.URL.Path {
	case "/api/accountApi/login":
		s.login(w, r)
	case "/api/locationsapi/getlocations":
		if !s.authenticated(w, r) {
			return
		}
		s.getLocations(w, r)
	case "/api/ZonesApi/SetZoneTemperature":
		if !s.authenticated(w, r) {
			return
		}
		s.setZoneTemperature(w, r)
	default:
		http.Error(w, "not found", http.StatusNotFound)
	}
}

func (s *APIServer) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.logins = append(s.logins, body)
	if s.LoginStatus != 0 && s.LoginStatus != http.StatusOK {
		http.Error(w, "login failed", s.LoginStatus)
		return
	}
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "session", Path: "/"})
	_, _ = w.Write([]byte(`{"Content":{"DisplayName":"user"},"Errors":[]}`))
}

func (s *APIServer) authenticated(w http.ResponseWriter, r *http.Request) bool {
	if _, err := r.Cookie(sessionCookie); err != nil {
		http.Error(w, "not logged in", http.StatusUnauthorized)
		return false
	}
	return true
}

func (s *APIServer) getLocations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.LocationsStatus != 0 && s.LocationsStatus != http.StatusOK {
		http.Error(w, "getlocations failed", s.LocationsStatus)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if s.LocationsBody != "" {
		_, _ = w.Write([]byte(s.LocationsBody))
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"Content": map[string]any{
			"Locations": []any{
				map[string]any{
					"Id":   json.Number(s.LocationID),
					"Name": "Home",
					"Zones": []any{
						map[string]any{
							"Id":                    json.Number(s.ZoneID),
							"Name":                  "Living",
							"Temperature":           s.Temperature,
							"TargetHeatTemperature": s.Setpoint,
						},
					},
				},
			},
		},
	})
}

func (s *APIServer) setZoneTemperature(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var request tcc.ZoneTemperature
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.requests = append(s.requests, request)
	if s.SetStatus != 0 && s.SetStatus != http.StatusOK {
		http.Error(w, "setzonetemperature failed", s.SetStatus)
		return
	}
	if s.ApplySetpoint {
		if temp, err := strconv.ParseFloat(request.HeatTemperature, 64); err == nil {
			s.Setpoint = temp
		}
	}
	_, _ = w.Write([]byte(`{"Content":null,"Errors":[]}`))
}

// Update changes the server's configuration while it is running.
func (s *APIServer) Update(f func(s *APIServer)) {
	s.lock.Lock()
	defer s.lock.Unlock()
	f(s)
}

// Logins returns the bodies of all login calls received.
func (s *APIServer) Logins() []map[string]any {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]map[string]any(nil), s.logins...)
}

// Requests returns all SetZoneTemperature calls received.
func (s *APIServer) Requests() []tcc.ZoneTemperature {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]tcc.ZoneTemperature(nil), s.requests...)
}

// CurrentSetpoint returns the setpoint the server currently reports.
func (s *APIServer) CurrentSetpoint() float64 {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.Setpoint
}
