// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/roster/client"
	"github.com/toeirei/roster/internal/i18n"
	"github.com/toeirei/roster/internal/stubserver"
)

func newStubServerCmd() *cobra.Command {
	var (
		addr    string
		apiKey  string
		perPage int
	)
	cmd := &cobra.Command{
		Use:   "stub-server",
		Short: "Serve an in-memory directory for offline use",
		Long: `Starts a local, reqres-compatible directory service seeded with sample
users. Point --api.base_url at http://ADDR/api to use it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := client.NewMemoryClient(client.WithSampleData(), client.WithPerPage(perPage))
			var opts []stubserver.Option
			if apiKey != "" {
				opts = append(opts, stubserver.WithAPIKey(apiKey))
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("stub.listening", addr))
			return stubserver.New(store, opts...).ListenAndServe(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "Listen address")
	cmd.Flags().StringVar(&apiKey, "require-api-key", "", "Reject requests without this x-api-key")
	cmd.Flags().IntVar(&perPage, "per-page", client.DefaultPerPage, "Users per page")
	return cmd
}
