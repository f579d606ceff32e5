// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/toeirei/roster/internal/app"
	"github.com/toeirei/roster/internal/export"
	"github.com/toeirei/roster/internal/i18n"
	"github.com/toeirei/roster/internal/model"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List and modify directory users",
	}
	cmd.AddCommand(
		newUsersListCmd(),
		newUsersCreateCmd(),
		newUsersUpdateCmd(),
		newUsersDeleteCmd(),
		newUsersExportCmd(),
	)
	return cmd
}

func newUsersListCmd() *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show one page of users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if page < 1 {
				return errors.New(i18n.T("users.invalid_page"))
			}
			return withController(cmd, func(ctx context.Context, ctrl *app.Controller) error {
				v, err := requireView(ctx, ctrl)
				if err != nil {
					return err
				}
				p, err := v.Load(page)
				if err != nil {
					printNotice(cmd, ctrl)
					return err
				}
				renderPage(cmd.OutOrStdout(), p)
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&page, "page", "n", 1, "Page number")
	return cmd
}

func renderPage(w io.Writer, p model.Page) {
	if len(p.Items) == 0 {
		fmt.Fprintln(w, i18n.T("users.empty"))
	} else {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("ID", i18n.T("form.first_name"), i18n.T("form.last_name"), i18n.T("form.email")).
			StyleFunc(func(row, col int) lipgloss.Style {
				return lipgloss.NewStyle().Padding(0, 1)
			})
		for _, u := range p.Items {
			t.Row(strconv.Itoa(u.ID), u.FirstName, u.LastName, u.Email)
		}
		fmt.Fprintln(w, t.Render())
	}
	fmt.Fprintln(w, i18n.T("users.page", p.Number, p.TotalPages))
}

type fieldFlags struct {
	first, last, email, avatar string
}

func (f *fieldFlags) register(cmd *cobra.Command, avatarDefault string) {
	cmd.Flags().StringVar(&f.first, "first-name", "", "First name")
	cmd.Flags().StringVar(&f.last, "last-name", "", "Last name")
	cmd.Flags().StringVar(&f.email, "email", "", "E-mail address")
	cmd.Flags().StringVar(&f.avatar, "avatar", avatarDefault, "Avatar URL")
}

// update holds only the flags given on the command line.
func (f *fieldFlags) update(cmd *cobra.Command) model.UserUpdate {
	var opts []model.UpdateOption
	if cmd.Flags().Changed("first-name") {
		opts = append(opts, model.WithFirstName(f.first))
	}
	if cmd.Flags().Changed("last-name") {
		opts = append(opts, model.WithLastName(f.last))
	}
	if cmd.Flags().Changed("email") {
		opts = append(opts, model.WithEmail(f.email))
	}
	if cmd.Flags().Changed("avatar") {
		opts = append(opts, model.WithAvatar(f.avatar))
	}
	return model.NewUserUpdate(opts...)
}

func newUsersCreateCmd() *cobra.Command {
	var f fieldFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withController(cmd, func(ctx context.Context, ctrl *app.Controller) error {
				v, err := requireView(ctx, ctrl)
				if err != nil {
					return err
				}
				u, err := v.Create(model.UserFields{FirstName: f.first, LastName: f.last, Email: f.email, Avatar: f.avatar})
				printNotice(cmd, ctrl)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), u.String())
				return nil
			})
		},
	}
	f.register(cmd, model.DefaultAvatar)
	return cmd
}

func newUsersUpdateCmd() *cobra.Command {
	var f fieldFlags
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of a user; only the given flags are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			upd := f.update(cmd)
			if upd.IsEmpty() {
				return errors.New(i18n.T("users.nothing_to_update"))
			}
			return withController(cmd, func(ctx context.Context, ctrl *app.Controller) error {
				v, err := requireView(ctx, ctrl)
				if err != nil {
					return err
				}
				// The service echoes only the submitted fields.
				_, err = v.Update(id, upd)
				printNotice(cmd, ctrl)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "#%d %s\n", id, upd)
				return nil
			})
		},
	}
	f.register(cmd, "")
	return cmd
}

func newUsersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Remove a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withController(cmd, func(ctx context.Context, ctrl *app.Controller) error {
				v, err := requireView(ctx, ctrl)
				if err != nil {
					return err
				}
				err = v.Delete(id)
				printNotice(cmd, ctrl)
				return err
			})
		},
	}
}

func newUsersExportCmd() *cobra.Command {
	var (
		page   int
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write one page of users to a json.zst or xlsx file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if page < 1 {
				return errors.New(i18n.T("users.invalid_page"))
			}
			f, err := resolveFormat(format, out)
			if err != nil {
				return err
			}
			return withController(cmd, func(ctx context.Context, ctrl *app.Controller) error {
				v, err := requireView(ctx, ctrl)
				if err != nil {
					return err
				}
				p, err := v.Load(page)
				if err != nil {
					printNotice(cmd, ctrl)
					return err
				}
				if err := export.WriteFile(out, f, p); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("export.done", len(p.Items), out))
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&page, "page", "n", 1, "Page number")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json.zst or xlsx (guessed from --out when omitted)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func resolveFormat(format, out string) (export.Format, error) {
	if format != "" {
		f, err := export.ParseFormat(format)
		if err != nil {
			return "", errors.New(i18n.T("export.unknown_format", format))
		}
		return f, nil
	}
	if f, ok := export.FormatFromPath(out); ok {
		return f, nil
	}
	return "", errors.New(i18n.T("export.unknown_format", out))
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New(i18n.T("users.invalid_id", raw))
	}
	return id, nil
}
