package cli

import (
	"bytes"
	"context"
	"github.com/clambin/tcc-thermostat/internal/notifier"
	"github.com/clambin/tcc-thermostat/internal/tcc"
	"github.com/clambin/tcc-thermostat/internal/testtools"
	"github.com/clambin/tcc-thermostat/internal/workflow"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func newConfig(t *testing.T, server *testtools.APIServer) *viper.Viper {
	t.Helper()
	ts := httptest.NewServer(server)
	t.Cleanup(ts.Close)

	v := viper.New()
	v.Set("honeywell.url", ts.URL)
	v.Set("honeywell.email", "user@example.com")
	v.Set("honeywell.password", "secret")
	v.Set("temperature", 21.0)
	v.Set("until", "22:50")
	v.Set("settle", "0s")
	v.Set("timeout", "5s")
	return v
}

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		server  *testtools.APIServer
		config  map[string]any
		wantErr error
		want    string
	}{
		{
			name:   "text",
			server: &testtools.APIServer{LocationID: "1234", ZoneID: "7", Temperature: 18.2, Setpoint: 18, ApplySetpoint: true},
			want: `Current temperature: 18.2°C
Current setpoint: 18.0°C
Successfully set temperature to 21.0°C until 22:50
Waiting for temperature change to take effect...
New temperature: 18.2°C
New setpoint: 21.0°C
`,
		},
		{
			name:   "mismatch",
			server: &testtools.APIServer{LocationID: "1234", ZoneID: "7", Temperature: 18.2, Setpoint: 18},
			want: `Current temperature: 18.2°C
Current setpoint: 18.0°C
Successfully set temperature to 21.0°C until 22:50
Waiting for temperature change to take effect...
New temperature: 18.2°C
New setpoint: 18.0°C
Warning: new setpoint (18.0°C) doesn't match requested temperature (21.0°C)!
`,
		},
		{
			name:   "until",
			server: &testtools.APIServer{LocationID: "1234", ZoneID: "7", Temperature: 18.2, Setpoint: 18, ApplySetpoint: true},
			config: map[string]any{"until": "07:30"},
			want: `Current temperature: 18.2°C
Current setpoint: 18.0°C
Successfully set temperature to 21.0°C until 07:30
Waiting for temperature change to take effect...
New temperature: 18.2°C
New setpoint: 21.0°C
`,
		},
		{
			name:   "json",
			server: &testtools.APIServer{LocationID: "1234", ZoneID: "7", Temperature: 18.2, Setpoint: 18, ApplySetpoint: true},
			config: map[string]any{"output": "json"},
			want: `{"location":{"locationId":"1234","zoneId":"7"},"target":21,"before":{"temperature":18.2,"setpoint":18},"after":{"temperature":18.2,"setpoint":21},"accepted":true,"mismatch":false}
`,
		},
		{
			name:   "yaml",
			server: &testtools.APIServer{LocationID: "1234", ZoneID: "7", Temperature: 18.2, Setpoint: 18, ApplySetpoint: true},
			config: map[string]any{"output": "yaml"},
			want: `location:
    locationId: "1234"
    zoneId: "7"
target: 21
before:
    temperature: 18.2
    setpoint: 18
after:
    temperature: 18.2
    setpoint: 21
accepted: true
mismatch: false
`,
		},
		{
			name:    "missing credentials",
			server:  &testtools.APIServer{},
			config:  map[string]any{"honeywell.password": ""},
			wantErr: ErrMissingCredentials,
		},
		{
			name:    "login failed",
			server:  &testtools.APIServer{LoginStatus: http.StatusUnauthorized},
			wantErr: workflow.ErrLogin,
		},
		{
			name:    "no locations",
			server:  &testtools.APIServer{LocationsBody: `{"Content":{"Locations":[]}}`},
			wantErr: workflow.ErrResolve,
		},
		{
			name:    "set failed",
			server:  &testtools.APIServer{LocationID: "1234", ZoneID: "7", SetStatus: http.StatusBadRequest},
			wantErr: workflow.ErrSetTemperature,
			want: `Current temperature: 0.0°C
Current setpoint: 0.0°C
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := newConfig(t, tt.server)
			for key, value := range tt.config {
				v.Set(key, value)
			}

			var out bytes.Buffer
			err := run(context.Background(), v, &out, slog.New(slog.DiscardHandler))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		config map[string]any
	}{
		{name: "output", config: map[string]any{"output": "xml"}},
		{name: "until", config: map[string]any{"until": "25:00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := testtools.APIServer{LocationID: "1", ZoneID: "2"}
			v := newConfig(t, &server)
			for key, value := range tt.config {
				v.Set(key, value)
			}
			assert.Error(t, run(context.Background(), v, io.Discard, slog.New(slog.DiscardHandler)))
			assert.Empty(t, server.Logins())
		})
	}
}

func TestRun_SlackNotification(t *testing.T) {
	var lock sync.Mutex
	var bodies []string
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		lock.Lock()
		bodies = append(bodies, string(body))
		lock.Unlock()
		_, _ = w.Write([]byte("ok"))
	}))
	t.Cleanup(webhook.Close)

	server := testtools.APIServer{LocationID: "1234", ZoneID: "7", Temperature: 18.2, Setpoint: 18, ApplySetpoint: true}
	v := newConfig(t, &server)
	v.Set("slack.webhook", webhook.URL)

	require.NoError(t, run(context.Background(), v, io.Discard, slog.New(slog.DiscardHandler)))

	lock.Lock()
	defer lock.Unlock()
	require.Len(t, bodies, 1)
	assert.Contains(t, bodies[0], "Temperature setpoint changed from 18.0°C to 21.0°C until 22:50")
}

func TestRun_PushMetrics(t *testing.T) {
	var lock sync.Mutex
	var paths []string
	var body bytes.Buffer
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lock.Lock()
		defer lock.Unlock()
		paths = append(paths, r.URL.Path)
		_, _ = io.Copy(&body, r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(gateway.Close)

	server := testtools.APIServer{LocationID: "1234", ZoneID: "7", Temperature: 18.2, Setpoint: 18, ApplySetpoint: true}
	v := newConfig(t, &server)
	v.Set("pushgateway.url", gateway.URL)

	require.NoError(t, run(context.Background(), v, io.Discard, slog.New(slog.DiscardHandler)))

	lock.Lock()
	defer lock.Unlock()
	assert.Equal(t, []string{"/metrics/job/tcc"}, paths)
	// body is protobuf-encoded: check the metric names are present.
	for _, name := range []string{"tcc_zone_setpoint_celsius", "tcc_zone_target_celsius", "tcc_http_requests_total"} {
		assert.True(t, strings.Contains(body.String(), name), name)
	}
}

func TestMakeNotifier(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	v := viper.New()
	assert.Nil(t, makeNotifier(v, logger))

	v.Set("pushover.token", "token")
	assert.Nil(t, makeNotifier(v, logger), "pushover needs both token and user key")

	v.Set("pushover.user", "user")
	n := makeNotifier(v, logger)
	require.IsType(t, notifier.Notifiers{}, n)
	assert.Len(t, n.(notifier.Notifiers), 2)

	v.Set("slack.webhook", "https://hooks.slack.com/services/foo")
	assert.Len(t, makeNotifier(v, logger).(notifier.Notifiers), 3)
}

func TestShowConfig(t *testing.T) {
	server := testtools.APIServer{LocationID: "1234", ZoneID: "7", Temperature: 18.2, Setpoint: 18}
	v := newConfig(t, &server)
	v.Set("output", "json")

	var out bytes.Buffer
	require.NoError(t, showConfig(context.Background(), v, &out, slog.New(slog.DiscardHandler)))
	assert.Equal(t, `{"locations":[{"id":"1234","name":"Home","zones":[{"id":"7","name":"Living","temperature":18.2,"setpoint":18}]}]}
`, out.String())
	assert.Empty(t, server.Requests())

	server.Update(func(s *testtools.APIServer) { s.LoginStatus = http.StatusUnauthorized })
	assert.Error(t, showConfig(context.Background(), v, &out, slog.New(slog.DiscardHandler)))
}

func TestShowConfig_LoginFailed(t *testing.T) {
	server := testtools.APIServer{LoginStatus: http.StatusUnauthorized}
	v := newConfig(t, &server)

	err := showConfig(context.Background(), v, io.Discard, slog.New(slog.DiscardHandler))
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(err.Error(), "login:"), err.Error())
}

func TestLoadDotEnv(t *testing.T) {
	server := testtools.APIServer{LocationID: "1234", ZoneID: "7", Temperature: 18.2, Setpoint: 18, ApplySetpoint: true}
	ts := httptest.NewServer(&server)
	t.Cleanup(ts.Close)

	filename := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(filename, []byte("HONEYWELL_EMAIL=dotenv@example.com\nHONEYWELL_PASSWORD=secret\nHONEYWELL_URL="+ts.URL+"\n"), 0o600))
	t.Setenv("HONEYWELL_EMAIL", "")
	t.Setenv("HONEYWELL_PASSWORD", "")
	t.Setenv("HONEYWELL_URL", "")

	v := viper.New()
	bindEnv(v)
	require.NoError(t, loadDotEnv(v, filename))
	v.Set("temperature", 21.0)
	v.Set("until", "22:50")
	v.Set("settle", "0s")

	require.NoError(t, run(context.Background(), v, io.Discard, slog.New(slog.DiscardHandler)))
	logins := server.Logins()
	require.Len(t, logins, 1)
	assert.Equal(t, "dotenv@example.com", logins[0]["EmailAddress"])
	assert.Equal(t, "secret", logins[0]["Password"])
}

func TestLoadDotEnv_EnvironmentWins(t *testing.T) {
	filename := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(filename, []byte("HONEYWELL_EMAIL=dotenv@example.com\nHONEYWELL_PASSWORD=secret\nPUSHOVER_USER_KEY=user\n"), 0o600))
	t.Setenv("HONEYWELL_EMAIL", "env@example.com")
	t.Setenv("HONEYWELL_PASSWORD", "")
	t.Setenv("PUSHOVER_USER_KEY", "")
	t.Setenv("HONEYWELL_URL", "")

	v := viper.New()
	bindEnv(v)
	require.NoError(t, loadDotEnv(v, filename))

	assert.Equal(t, "env@example.com", v.GetString("honeywell.email"))
	assert.Equal(t, "secret", v.GetString("honeywell.password"))
	assert.Equal(t, "user", v.GetString("pushover.user"))
	assert.Equal(t, tcc.ServerURL, v.GetString("honeywell.url"))

	assert.Error(t, loadDotEnv(viper.New(), filepath.Join(t.TempDir(), ".env")))
}

func TestInitConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HONEYWELL_EMAIL=dotenv@example.com\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("HONEYWELL_EMAIL", "")
	t.Cleanup(func() { viper.SetDefault("honeywell.email", "") })

	initConfig()
	assert.Equal(t, "dotenv@example.com", viper.GetString("honeywell.email"))
}

func TestRootCmd_ErrorsNotPrinted(t *testing.T) {
	var stderr bytes.Buffer
	RootCmd.SetOut(io.Discard)
	RootCmd.SetErr(&stderr)
	RootCmd.SetArgs([]string{})
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
	})

	err := RootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "temperature")
	assert.NotContains(t, stderr.String(), "Error:")
}
