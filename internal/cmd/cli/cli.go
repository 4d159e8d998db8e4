package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/clambin/go-common/charmer"
	"github.com/clambin/go-common/http/metrics"
	"github.com/clambin/tcc-thermostat/internal/cmd/config"
	"github.com/clambin/tcc-thermostat/internal/notifier"
	"github.com/clambin/tcc-thermostat/internal/tcc"
	"github.com/clambin/tcc-thermostat/internal/thermostat"
	"github.com/clambin/tcc-thermostat/internal/workflow"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
	"io"
	"log/slog"
	"os"
)

var (
	configFilename string
	RootCmd        = cobra.Command{
		Use:          "tcc",
		Short:        "Set the temperature of a Honeywell Total Connect Comfort thermostat",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			charmer.SetTextLogger(cmd, viper.GetBool("debug"))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), viper.GetViper(), cmd.OutOrStdout(), charmer.GetLogger(cmd))
		},
	}

	args = charmer.Arguments{
		"debug":   {Default: false, Help: "Log debug messages"},
		"until":   {Default: tcc.DefaultUntil.String(), Help: "Time of day (HH:MM) when the new setpoint ends"},
		"settle":  {Default: workflow.DefaultSettle.String(), Help: "Time to wait before verifying the new setpoint"},
		"timeout": {Default: tcc.DefaultTimeout.String(), Help: "Timeout for each call to the portal"},
		"output":  {Default: "text", Help: "Output format (text, yaml, json)"},
	}

	configCmd = cobra.Command{
		Use:   "config",
		Short: "Show the locations and zones of the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showConfig(cmd.Context(), viper.GetViper(), cmd.OutOrStdout(), charmer.GetLogger(cmd))
		},
	}

	// ErrMissingCredentials is returned when no Honeywell account is configured.
	ErrMissingCredentials = errors.New("please set HONEYWELL_EMAIL and HONEYWELL_PASSWORD")
)

func init() {
	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVar(&configFilename, "config", "", "Configuration file")
	_ = charmer.SetPersistentFlags(&RootCmd, viper.GetViper(), args)

	RootCmd.Flags().Float64("temperature", 0, "Target temperature in Celsius")
	_ = RootCmd.MarkFlagRequired("temperature")
	_ = viper.BindPFlag("temperature", RootCmd.Flags().Lookup("temperature"))

	bindEnv(viper.GetViper())
	RootCmd.AddCommand(&configCmd)
}

// dotEnvFilename is read at startup when no configuration file is given.
const dotEnvFilename = ".env"

// envKeys maps configuration keys to the environment variables that set them.
var envKeys = map[string]string{
	"honeywell.email":    "HONEYWELL_EMAIL",
	"honeywell.password": "HONEYWELL_PASSWORD",
	"honeywell.url":      "HONEYWELL_URL",
	"pushover.token":     "PUSHOVER_API_TOKEN",
	"pushover.user":      "PUSHOVER_USER_KEY",
	"slack.webhook":      "SLACK_WEBHOOK_URL",
	"pushgateway.url":    "PUSHGATEWAY_URL",
}

func initConfig() {
	if configFilename != "" {
		viper.SetConfigFile(configFilename)
		if err := viper.ReadInConfig(); err != nil {
			slog.Error("failed to read config file", "err", err)
			os.Exit(1)
		}
		return
	}
	if _, err := os.Stat(dotEnvFilename); err != nil {
		return
	}
	if err := loadDotEnv(viper.GetViper(), dotEnvFilename); err != nil {
		slog.Error("failed to read .env file", "err", err)
		os.Exit(1)
	}
}

// bindEnv binds the configuration keys that are set through the environment.
func bindEnv(v *viper.Viper) {
	for key, env := range envKeys {
		_ = v.BindEnv(key, env)
	}
	v.SetDefault("honeywell.url", tcc.ServerURL)
}

// loadDotEnv reads the environment variables in filename as defaults for their configuration keys.
// Flags, configuration values and the process environment take precedence.
func loadDotEnv(v *viper.Viper, filename string) error {
	dotEnv := viper.New()
	dotEnv.SetConfigFile(filename)
	dotEnv.SetConfigType("env")
	if err := dotEnv.ReadInConfig(); err != nil {
		return err
	}
	for key, env := range envKeys {
		if value := dotEnv.GetString(env); value != "" {
			v.SetDefault(key, value)
		}
	}
	return nil
}

func getCredentials(v *viper.Viper) (tcc.Credentials, error) {
	credentials := tcc.Credentials{
		Email:    v.GetString("honeywell.email"),
		Password: v.GetString("honeywell.password"),
	}
	if credentials.Email == "" || credentials.Password == "" {
		return tcc.Credentials{}, ErrMissingCredentials
	}
	return credentials, nil
}

func newSession(v *viper.Viper, requestMetrics metrics.RequestMetrics, logger *slog.Logger) (*tcc.Session, error) {
	options := []tcc.Option{
		tcc.WithTimeout(v.GetDuration("timeout")),
		tcc.WithLogger(logger.With("component", "session")),
	}
	if requestMetrics != nil {
		options = append(options, tcc.WithRequestMetrics(requestMetrics))
	}
	if url := v.GetString("honeywell.url"); url != "" {
		options = append(options, tcc.WithBaseURL(url))
	}
	session, err := tcc.NewSession(options...)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return session, nil
}

func run(ctx context.Context, v *viper.Viper, w io.Writer, logger *slog.Logger) error {
	credentials, err := getCredentials(v)
	if err != nil {
		return err
	}

	until, err := tcc.ParseTimeOfDay(v.GetString("until"))
	if err != nil {
		return fmt.Errorf("until: %w", err)
	}

	var encoder workflow.Encoder
	progress := w
	switch format := v.GetString("output"); format {
	case "", "text":
	case "yaml":
		encoder = yaml.NewEncoder(w)
		progress = io.Discard
	case "json":
		encoder = json.NewEncoder(w)
		progress = io.Discard
	default:
		return fmt.Errorf("invalid output format %q", format)
	}

	registry := prometheus.NewRegistry()
	requestMetrics := tcc.NewRequestMetrics("tcc", "", nil)
	registry.MustRegister(requestMetrics)

	session, err := newSession(v, requestMetrics, logger)
	if err != nil {
		return err
	}

	options := []thermostat.Option{
		thermostat.WithUntil(until),
		thermostat.WithLogger(logger.With("component", "thermostat")),
	}
	if n := makeNotifier(v, logger.With("component", "notifier")); n != nil {
		options = append(options, thermostat.WithNotifier(n))
	}
	th := thermostat.New(session, credentials, options...)

	report, err := workflow.Run(ctx, th, workflow.Options{
		Target: v.GetFloat64("temperature"),
		Settle: v.GetDuration("settle"),
		Until:  until,
	}, progress, logger)

	if url := v.GetString("pushgateway.url"); url != "" {
		pushMetrics(ctx, url, registry, report, logger.With("component", "pushgateway"))
	}

	if err != nil {
		return err
	}
	if encoder != nil {
		return report.Encode(encoder)
	}
	return nil
}

func showConfig(ctx context.Context, v *viper.Viper, w io.Writer, logger *slog.Logger) error {
	credentials, err := getCredentials(v)
	if err != nil {
		return err
	}
	session, err := newSession(v, nil, logger)
	if err != nil {
		return err
	}
	if err = session.Login(ctx, credentials); err != nil {
		return err
	}

	var encoder config.Encoder = yaml.NewEncoder(w)
	if v.GetString("output") == "json" {
		encoder = json.NewEncoder(w)
	}
	return config.ShowConfig(ctx, session, encoder)
}

// makeNotifier returns the notifiers for all configured push services, or nil if none are configured.
func makeNotifier(v *viper.Viper, logger *slog.Logger) thermostat.Notifier {
	var n notifier.Notifiers
	if token, user := v.GetString("pushover.token"), v.GetString("pushover.user"); token != "" && user != "" {
		n = append(n, notifier.NewPushoverNotifier(token, user, logger))
	}
	if webhook := v.GetString("slack.webhook"); webhook != "" {
		n = append(n, &notifier.SlackNotifier{WebhookURL: webhook, Timeout: v.GetDuration("timeout"), Logger: logger})
	}
	if len(n) == 0 {
		logger.Debug("no push services configured. notifications disabled")
		return nil
	}
	return append(notifier.Notifiers{&notifier.SLogNotifier{Logger: logger}}, n...)
}
