// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/toeirei/roster/client"
	"github.com/toeirei/roster/internal/app"
	"github.com/toeirei/roster/internal/i18n"
	"github.com/toeirei/roster/internal/model"
	"golang.org/x/term"
)

// readPassword prompts on the terminal without echo. Tests replace it.
var readPassword = func(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", nil
	}
	fmt.Fprint(cmd.ErrOrStderr(), i18n.T("login.prompt_password"))
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

func newLoginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		Long: `Exchanges e-mail and password for a session token and stores it in the
configured session store. The password is prompted for when not given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				p, err := readPassword(cmd)
				if err != nil {
					return err
				}
				password = p
			}
			return withController(cmd, func(ctx context.Context, ctrl *app.Controller) error {
				if _, err := ctrl.Login(ctx, model.Credentials{Email: email, Password: password}); err != nil {
					printNotice(cmd, ctrl)
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("login.success", email))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", client.DemoEmail, "Account e-mail")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password (prompted when omitted)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withController(cmd, func(ctx context.Context, ctrl *app.Controller) error {
				if _, err := ctrl.Logout(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("logout.done"))
				return nil
			})
		},
	}
}
