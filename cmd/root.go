package cmd

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/classpulse/classpulse/internal/agent"
	"github.com/classpulse/classpulse/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "classpulse",
	Short: "Live quiz dashboard for teachers",
	Long:  "ClassPulse — terminal dashboard for running server-driven adaptive quiz sessions with a class.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CLASSPULSE_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level for CLI commands (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format for CLI commands (text, json)")

	rootCmd.Flags().String("roster", "", "Path to a JSON roster file (defaults to the demo class)")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// viperForCmd binds a command's flags and environment to a fresh viper
// instance.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())

	v.SetEnvPrefix("CLASSPULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("classpulse")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/classpulse")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("error reading config file", "error", err)
		}
	}

	return v
}

// setupLogging configures slog for non-TUI commands. The TUI itself stays
// quiet on stderr so it does not fight the alternate screen.
func setupLogging(cmd *cobra.Command) {
	v := viperForCmd(cmd)

	var logLevel slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	var logHandler slog.Handler
	switch strings.ToLower(v.GetString("log-format")) {
	case "json":
		logHandler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	default:
		logHandler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}
	slog.SetDefault(slog.New(logHandler))
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CLASSPULSE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// agentConfig builds the quiz service config from flags, env, and config file.
func agentConfig(v *viper.Viper) agent.Config {
	cfg := agent.ConfigFromEnv()
	if u := v.GetString("api-base"); u != "" {
		cfg.BaseURL = u
	}
	if u := v.GetString("aiquiz-base"); u != "" {
		cfg.AuxBaseURL = u
	}
	if d := v.GetString("api-timeout"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil {
			cfg.Timeout = parsed
		}
	}
	return cfg
}
