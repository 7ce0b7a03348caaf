package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/config"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/errors"
)

// cli holds the flags shared by every command and the app they run against
type cli struct {
	build appBuilder
	app   *app

	envFile   string
	redisAddr string
	apiURL    string
	homebrew  string
	logLevel  string
	timeout   time.Duration
}

func newRootCmd(build appBuilder) *cobra.Command {
	c := &cli{build: build}

	rootCmd := &cobra.Command{
		Use:   "sheet",
		Short: "D&D 5.5e character sheet builder",
		Long: `sheet builds D&D 5.5e characters: race, class, subclass, background, ability
scores, skills, spells and armor, with every derived statistic recomputed on each change.
Characters are exported as JSON files or saved by name to Redis.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.app != nil && c.app.close != nil {
				return c.app.close()
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.envFile, "env-file", ".env", "Environment file to load")
	flags.StringVar(&c.redisAddr, "redis-addr", "", "Redis address (overrides REDIS_ADDR)")
	flags.StringVar(&c.apiURL, "api-url", "", "Reference API base URL (overrides DND5E_API_URL)")
	flags.StringVar(&c.homebrew, "homebrew", "", "Homebrew content file, YAML or JSON (overrides HOMEBREW_PATH)")
	flags.StringVar(&c.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
	flags.DurationVar(&c.timeout, "timeout", 60*time.Second, "Overall command timeout")

	rootCmd.AddCommand(c.deriveCmd())
	rootCmd.AddCommand(c.rollCmd())
	rootCmd.AddCommand(c.saveCmd())
	rootCmd.AddCommand(c.loadCmd())
	rootCmd.AddCommand(c.listCmd())
	rootCmd.AddCommand(c.deleteCmd())
	rootCmd.AddCommand(c.doctorCmd())
	rootCmd.AddCommand(c.catalogCmd())

	return rootCmd
}

// setup loads configuration, installs the logger and wires the app
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.envFile)
	if err != nil {
		return err
	}

	if c.redisAddr != "" {
		cfg.RedisAddr = c.redisAddr
	}
	if c.apiURL != "" {
		cfg.DND5eAPIURL = c.apiURL
	}
	if c.homebrew != "" {
		cfg.HomebrewPath = c.homebrew
	}
	if c.logLevel != "" {
		cfg.LogLevel = strings.ToLower(c.logLevel)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	ctx, cancel := context.WithTimeout(cmd.Context(), c.timeout)
	cobra.OnFinalize(cancel)
	cmd.SetContext(ctx)

	c.app, err = c.build(ctx, cfg)
	if err != nil {
		return err
	}
	return nil
}

// requireStore fails fast when the character store cannot be reached
func (c *cli) requireStore(ctx context.Context) error {
	if c.app.pingStore == nil {
		return nil
	}
	return c.app.pingStore(ctx)
}

// readInput reads a file, or standard input for "-"
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, errors.Wrap(err, "failed to read standard input")
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return data, nil
}

// writeOutput writes data to a file, or standard output for "-"
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
