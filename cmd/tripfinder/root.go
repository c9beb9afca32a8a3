package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/usestring/tripfinder-mcp/internal/config"
	"github.com/usestring/tripfinder-mcp/internal/logging"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	v          *viper.Viper
	cfgFile    string
	cfg        *config.Config
	logCleanup func() error
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "tripfinder",
		Short: "Search, filter and sort travel destinations",
		Long: `tripfinder searches a catalog of travel destinations with fuzzy,
case-insensitive text matching, filters it by trip type, category, price,
rating, tags, guide and dates, and sorts the result.

Run "tripfinder serve" to expose the same engine as an MCP server on stdio.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.close()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/tripfinder/config.yaml)")
	flags.String("catalog", "", "catalog file (.json, .yaml); empty uses the built-in catalog")
	flags.String("storage", "", "storage driver: file, sqlite or memory")
	flags.String("storage-path", "", "directory for saved favorites, reviews and history")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "log file; empty logs to stderr")

	_ = a.v.BindPFlag("catalog", flags.Lookup("catalog"))
	_ = a.v.BindPFlag("storage.driver", flags.Lookup("storage"))
	_ = a.v.BindPFlag("storage.path", flags.Lookup("storage-path"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.file", flags.Lookup("log-file"))

	cmd.AddCommand(a.serveCmd())
	cmd.AddCommand(a.searchCmd())
	cmd.AddCommand(a.presetsCmd())
	cmd.AddCommand(a.favoritesCmd())
	cmd.AddCommand(a.historyCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// initConfig layers the optional config file and flags over the environment.
func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(filepath.Join(home, ".config", "tripfinder"))
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix("TRIPFINDER")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	a.cfg = config.Load()
	a.overlay()

	// The MCP transport owns stdout; everything else keeps stderr quiet
	// unless asked otherwise.
	logCfg := logging.FromConfig(a.cfg)
	logCfg.Fallback = cmd.ErrOrStderr()
	if cmd.Name() != "serve" && !a.v.IsSet("log.level") {
		logCfg.Level = "warn"
	}
	_, cleanup, err := logging.Setup(logCfg)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	a.logCleanup = cleanup
	return nil
}

func (a *app) overlay() {
	if a.v.IsSet("catalog") {
		a.cfg.CatalogPath = a.v.GetString("catalog")
	}
	if a.v.IsSet("storage.driver") {
		a.cfg.StorageDriver = a.v.GetString("storage.driver")
	}
	if a.v.IsSet("storage.path") {
		a.cfg.StoragePath = a.v.GetString("storage.path")
	}
	if a.v.IsSet("log.level") {
		a.cfg.LogLevel = a.v.GetString("log.level")
	}
	if a.v.IsSet("log.file") {
		a.cfg.LogFile = a.v.GetString("log.file")
	}
	if a.v.IsSet("price_ceiling") {
		a.cfg.PriceCeiling = a.v.GetFloat64("price_ceiling")
	}
	if a.v.IsSet("history_limit") {
		a.cfg.HistoryLimit = a.v.GetInt("history_limit")
	}
	if a.v.IsSet("default_sort") {
		a.cfg.DefaultSort = a.v.GetString("default_sort")
	}
	if a.v.IsSet("cache.max_items") {
		a.cfg.ResultCacheMaxItems = a.v.GetInt("cache.max_items")
	}
}

func (a *app) close() error {
	if a.logCleanup == nil {
		return nil
	}
	err := a.logCleanup()
	a.logCleanup = nil
	return err
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "tripfinder %s\n", version)
			return err
		},
	}
}
