package main

import (
	"context"
	"fmt"
	"io"

	"github.com/focusflow/focusflow/internal/app"
	"github.com/focusflow/focusflow/pkg/config"
	"github.com/focusflow/focusflow/pkg/logger"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

// session is one opened store plus the services over it.
type session struct {
	app     *app.App
	backing *app.Backing
}

func (s *session) Close() {
	s.app.Close()
	s.backing.Close()
}

// opener builds a session; tests replace it with an in-memory one.
type opener func(opts *rootOptions) (*session, error)

func openConfigured(opts *rootOptions) (*session, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	log := logger.NewNop()
	if opts.verbose {
		log = logger.NewLogger(cfg.Logging.Level)
	}

	backing, err := app.OpenStore(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &session{
		app:     app.New(cfg, backing.Store, log, app.Options{}),
		backing: backing,
	}, nil
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(openConfigured)
}

func newRootCmdWith(open opener) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "focusctl",
		Short:         "Inspect and update FocusFlow data from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config.yaml")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")

	// withSession opens the store for the duration of one command.
	var withSession sessionRunner = func(run runFunc) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			s, err := open(opts)
			if err != nil {
				return err
			}
			defer s.Close()
			return run(cmd.Context(), s, cmd.OutOrStdout(), args)
		}
	}

	root.AddCommand(
		newAnalyticsCmd(withSession),
		newHabitsCmd(withSession),
		newGoalsCmd(withSession),
	)
	return root
}

type runFunc func(ctx context.Context, s *session, out io.Writer, args []string) error

type sessionRunner func(run runFunc) func(*cobra.Command, []string) error
