package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kinecta/kinecta/pkg/config"
	"github.com/kinecta/kinecta/pkg/history"
	"github.com/kinecta/kinecta/pkg/kv"
	"github.com/kinecta/kinecta/pkg/profile"
	"github.com/kinecta/kinecta/pkg/session"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "kinecta",
	Short: "Converse with a simulated ancestor, grounded in your heritage",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
		return nil
	},
}

// appContext bundles the wired application components shared by the
// subcommands.
type appContext struct {
	settings   *config.Settings
	backend    kv.Store
	history    *history.Store
	profiles   *profile.Store
	controller *session.Controller
}

func newAppContext() (*appContext, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}

	backend, err := kv.NewFileStore(settings.Storage.Dir)
	if err != nil {
		return nil, err
	}

	historyStore := history.NewStore(backend, settings.Storage.Namespace)
	mailbox := session.NewMailbox(backend, settings.Storage.Namespace)

	return &appContext{
		settings:   settings,
		backend:    backend,
		history:    historyStore,
		profiles:   profile.NewStore(backend, settings.Storage.Namespace),
		controller: session.NewController(historyStore, mailbox),
	}, nil
}

func (a *appContext) Close() {
	if err := a.backend.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close storage backend")
	}
}

func main() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(newChatCommand())
	rootCmd.AddCommand(newHistoryCommand())
	rootCmd.AddCommand(newProfileCommand())
	rootCmd.AddCommand(newCulturalCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
