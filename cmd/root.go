// Package cmd implements the registrar command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/campusbase/registrar/internal/config"
	"github.com/campusbase/registrar/internal/logger"
	"github.com/campusbase/registrar/internal/pubsub"
	"github.com/campusbase/registrar/internal/registry"
	"github.com/campusbase/registrar/internal/seed"
)

var (
	cfg    *config.Config
	reg    *registry.Registry
	events *pubsub.Broadcaster
	log    zerolog.Logger

	configPath string
	seedPath   string
)

var rootCmd = &cobra.Command{
	Use:   "registrar",
	Short: "An in-memory academic records GraphQL API",
	Long: `Registrar serves a GraphQL API over in-memory academic records:
students, professors, courses, enrollments, and departments. Nothing is
persisted; records live for the lifetime of the process and can be
bootstrapped from a YAML seed file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		log = logger.New(cfg.Log.Level, cfg.Log.Pretty)

		reg = registry.New(cfg)
		events = pubsub.New()

		// --seed overrides the config's seed file
		path := cfg.Registry.SeedFile
		if seedPath != "" {
			path = seedPath
		}
		if path != "" {
			if err := seed.LoadAndApply(path, reg); err != nil {
				return fmt.Errorf("seeding registry: %w", err)
			}
			log.Debug().Str("file", path).Msg("registry seeded")
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.ConfigFile, "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&seedPath, "seed", "", "YAML seed file to load at startup (overrides config)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
