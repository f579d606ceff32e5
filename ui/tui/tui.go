// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/roster/internal/app"
	"github.com/toeirei/roster/internal/config"
	"github.com/toeirei/roster/internal/logging"
)

// Options configures Run.
type Options struct {
	// LogFile receives log output while the alternate screen is active.
	// Empty means roster.log in the data directory.
	LogFile string
}

// Run starts the interactive UI and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, ctrl *app.Controller, opts Options) error {
	path := opts.LogFile
	if path == "" {
		p, err := config.DefaultDataPath("roster.log")
		if err != nil {
			return err
		}
		path = p
	}
	restore, err := logging.RedirectToFile(path)
	if err != nil {
		return fmt.Errorf("redirect log: %w", err)
	}
	defer restore()

	m := New(ctx, ctrl)
	defer m.Close()

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
