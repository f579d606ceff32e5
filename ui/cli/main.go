// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for Roster using the Cobra
// library. It defines the root command, the global flags and the shared
// setup every subcommand runs through.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/toeirei/roster/internal/app"
	"github.com/toeirei/roster/internal/config"
	"github.com/toeirei/roster/internal/i18n"
	"github.com/toeirei/roster/internal/logging"
	"github.com/toeirei/roster/internal/notify"
	"github.com/toeirei/roster/ui/tui"
)

var appConfig config.Config

// newController builds the controller for a command run. Tests replace it.
var newController = app.Build

// runTUI starts the interactive interface. Tests replace it.
var runTUI = tui.Run

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	explicitPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), explicitPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	i18n.Init(appConfig.Language)

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logging.SetLevel("debug")
	} else {
		logging.SetLevel(appConfig.Log.Level)
	}
	logging.Debugf("config loaded: api=%s session=%s", appConfig.API.BaseURL, appConfig.Session.Store)
	return nil
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// withController builds the controller, runs fn and releases it again.
func withController(cmd *cobra.Command, fn func(ctx context.Context, ctrl *app.Controller) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctrl, err := newController(ctx, appConfig)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := ctrl.Close(context.WithoutCancel(ctx)); cerr != nil {
			logging.Warnf("closing controller: %v", cerr)
		}
	}()
	return fn(ctx, ctrl)
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd creates and configures a new root cobra command. Every call
// returns a fresh tree, so tests can build as many as they need.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: i18n.T("app.short"),
		Long: `Roster is a client for a paginated directory of users served by a
reqres-compatible REST service. Log in, page through the directory and
create, edit or delete users.

Running without a subcommand will launch the interactive TUI.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withController(cmd, func(ctx context.Context, ctrl *app.Controller) error {
				return runTUI(ctx, ctrl, tui.Options{LogFile: appConfig.Log.File})
			})
		},
	}
	cmd.Version = compositeVersion()
	cmd.SetVersionTemplate("{{.Version}}\n")

	flags := cmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.String("config", "", "config file")
	flags.String("language", "en", `Language ("en", "de")`)
	flags.String("api.base_url", config.Defaults()["api.base_url"].(string), "Base URL of the directory service")
	flags.String("session.store", "file", "Session store: file, sqlite, postgres, mysql or memory")

	cmd.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newUsersCmd(),
		newStubServerCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return cmd
}

// printNotice writes the visible notification, if any, to the matching
// stream.
func printNotice(cmd *cobra.Command, ctrl *app.Controller) {
	m, ok := ctrl.Notices.Current()
	if !ok {
		return
	}
	if m.Kind == notify.Error {
		fmt.Fprintln(cmd.ErrOrStderr(), m.Text)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), m.Text)
}

// requireView opens the directory or explains how to get a session.
func requireView(ctx context.Context, ctrl *app.Controller) (*app.View, error) {
	v, err := ctrl.OpenView(ctx)
	if errors.Is(err, app.ErrUnauthenticated) {
		return nil, errors.New(i18n.T("session.required"))
	}
	return v, err
}
